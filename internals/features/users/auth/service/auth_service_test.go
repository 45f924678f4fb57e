package service

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"alumniku_backend/internals/configs"
	"alumniku_backend/internals/constants"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func newAuthApp(gdb *gorm.DB) *fiber.App {
	configs.JWTSecret = testSecret
	app := fiber.New()
	app.Post("/register", func(c *fiber.Ctx) error { return Register(gdb, c) })
	app.Post("/login", func(c *fiber.Ctx) error { return Login(gdb, c) })
	return app
}

func postJSON(t *testing.T, app *fiber.App, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func TestRegister_NewIdentityIsAppliedAlumni(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newAuthApp(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	resp := postJSON(t, app, "/register", `{"email":"maria@example.com","password":"secret-pass"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), constants.RoleAppliedAlumni)
	assert.Contains(t, string(body), `"token"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateEmailIs409(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newAuthApp(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	resp := postJSON(t, app, "/register", `{"email":"maria@example.com","password":"secret-pass"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_ShortPasswordIs400(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newAuthApp(gdb)

	resp := postJSON(t, app, "/register", `{"email":"maria@example.com","password":"short"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Tidak ada INSERT yang dieksekusi
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Email tak dikenal dan password salah harus menghasilkan respons yang
// identik — tidak membocorkan email mana yang terdaftar.
func TestLogin_GenericErrorIsSymmetric(t *testing.T) {
	hashed, err := HashPassword("right-password")
	require.NoError(t, err)

	// Kasus 1: email tidak ada
	gdb, mock := newMockDB(t)
	app := newAuthApp(gdb)
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	respUnknown := postJSON(t, app, "/login", `{"email":"ghost@example.com","password":"whatever1"}`)

	// Kasus 2: email ada, password salah
	gdb2, mock2 := newMockDB(t)
	app2 := newAuthApp(gdb2)
	mock2.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at", "updated_at"}).
			AddRow(uuid.New().String(), "maria@example.com", hashed, constants.RoleRegisteredAlumni, time.Now(), time.Now()))
	respWrong := postJSON(t, app2, "/login", `{"email":"maria@example.com","password":"wrong-password"}`)

	assert.Equal(t, fiber.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, respWrong.StatusCode)

	bodyUnknown, err := io.ReadAll(respUnknown.Body)
	require.NoError(t, err)
	bodyWrong, err := io.ReadAll(respWrong.Body)
	require.NoError(t, err)
	assert.Equal(t, string(bodyUnknown), string(bodyWrong))
}

func TestLogin_ValidCredentials(t *testing.T) {
	hashed, err := HashPassword("right-password")
	require.NoError(t, err)

	gdb, mock := newMockDB(t)
	app := newAuthApp(gdb)
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at", "updated_at"}).
			AddRow(uuid.New().String(), "maria@example.com", hashed, constants.RoleRegisteredAlumni, time.Now(), time.Now()))

	resp := postJSON(t, app, "/login", `{"email":"maria@example.com","password":"right-password"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"token"`)
	assert.Contains(t, string(body), constants.RoleRegisteredAlumni)
}
