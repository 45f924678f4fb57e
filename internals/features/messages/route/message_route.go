// file: internals/features/messages/route/message_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alumniku_backend/internals/configs"
	controller "alumniku_backend/internals/features/messages/controller"
	helperAuth "alumniku_backend/internals/helpers/auth"
	authMW "alumniku_backend/internals/middlewares/auth"
)

func MessageRoutes(app *fiber.App, db *gorm.DB) {
	messageController := controller.NewMessageController(db)

	// Semua route messaging protected: admin / registered_alumni saja.
	base := app.Group("/api/messages",
		authMW.AuthJWT(authMW.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
	)

	base.Get("/",
		authMW.RequireOperation(helperAuth.OpMessageList),
		messageController.Inbox,
	)
	base.Get("/sent",
		authMW.RequireOperation(helperAuth.OpMessageList),
		messageController.Sent,
	)
	base.Get("/unread-count",
		authMW.RequireOperation(helperAuth.OpMessageList),
		messageController.UnreadCount,
	)
	base.Get("/recipients",
		authMW.RequireOperation(helperAuth.OpMessageRecipients),
		messageController.Recipients,
	)
	base.Post("/",
		authMW.RequireOperation(helperAuth.OpMessageSend),
		messageController.Send,
	)
	base.Put("/:id/read",
		authMW.RequireOperation(helperAuth.OpMessageMarkRead),
		messageController.MarkAsRead,
	)
}
