package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumniku_backend/internals/constants"
	authService "alumniku_backend/internals/features/users/auth/service"
	helperAuth "alumniku_backend/internals/helpers/auth"
)

const testSecret = "unit-test-secret"

func newTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(helperAuth.LocUserID),
			"role":    c.Locals(helperAuth.LocUserRole),
		})
	})
	app.Get("/protected", chain...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthJWT_ValidToken(t *testing.T) {
	app := newTestApp(AuthJWT(AuthJWTOpts{Secret: testSecret}))

	token, err := authService.IssueToken(testSecret, uuid.New(), "a@b.com", constants.RoleRegisteredAlumni)
	require.NoError(t, err)

	resp := doRequest(t, app, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthJWT_MissingToken(t *testing.T) {
	app := newTestApp(AuthJWT(AuthJWTOpts{Secret: testSecret}))

	resp := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	app := newTestApp(AuthJWT(AuthJWTOpts{Secret: testSecret}))

	token, err := authService.IssueToken("secret-lain", uuid.New(), "a@b.com", constants.RoleAdmin)
	require.NoError(t, err)

	resp := doRequest(t, app, token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	app := newTestApp(AuthJWT(AuthJWTOpts{Secret: testSecret}))

	past := time.Now().UTC().Add(-2 * time.Hour)
	claims := jwt.MapClaims{
		"id":    uuid.New().String(),
		"email": "a@b.com",
		"role":  constants.RoleAdmin,
		"iat":   past.Unix(),
		"exp":   past.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	resp := doRequest(t, app, token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWT_NonUUIDSubjectRejected(t *testing.T) {
	app := newTestApp(AuthJWT(AuthJWTOpts{Secret: testSecret}))

	claims := jwt.MapClaims{
		"id":   "bukan-uuid",
		"role": constants.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	resp := doRequest(t, app, token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWT_CookieFallback(t *testing.T) {
	app := newTestApp(AuthJWT(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true}))

	token, err := authService.IssueToken(testSecret, uuid.New(), "a@b.com", constants.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthJWT_PanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() { AuthJWT(AuthJWTOpts{}) })
}

func TestRequireOperation_EnforcesPolicy(t *testing.T) {
	issue := func(role string) string {
		token, err := authService.IssueToken(testSecret, uuid.New(), "a@b.com", role)
		require.NoError(t, err)
		return token
	}

	app := newTestApp(
		AuthJWT(AuthJWTOpts{Secret: testSecret}),
		RequireOperation(helperAuth.OpMessageSend),
	)

	// Registered alumni & admin lolos
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, issue(constants.RoleRegisteredAlumni)).StatusCode)
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, issue(constants.RoleAdmin)).StatusCode)

	// Applied alumni & visitor ditolak dengan 403 (bukan 401 — identitas valid)
	assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, issue(constants.RoleAppliedAlumni)).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, issue(constants.RoleVisitor)).StatusCode)
}

func TestRequireOperation_MissingRoleIs401(t *testing.T) {
	// Token tanpa klaim role: lolos AuthJWT tapi gagal di guard
	claims := jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	app := newTestApp(
		AuthJWT(AuthJWTOpts{Secret: testSecret}),
		RequireOperation(helperAuth.OpDirectoryList),
	)

	resp := doRequest(t, app, token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireOperation_AdminOnlyOperation(t *testing.T) {
	issue := func(role string) string {
		token, err := authService.IssueToken(testSecret, uuid.New(), "a@b.com", role)
		require.NoError(t, err)
		return token
	}

	app := newTestApp(
		AuthJWT(AuthJWTOpts{Secret: testSecret}),
		RequireOperation(helperAuth.OpEventWrite),
	)

	assert.Equal(t, fiber.StatusOK, doRequest(t, app, issue(constants.RoleAdmin)).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, issue(constants.RoleRegisteredAlumni)).StatusCode)
}
