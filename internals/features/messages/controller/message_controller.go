// file: internals/features/messages/controller/message_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	profileModel "alumniku_backend/internals/features/alumni/profile/model"
	dto "alumniku_backend/internals/features/messages/dto"
	model "alumniku_backend/internals/features/messages/model"
	msgService "alumniku_backend/internals/features/messages/service"
	userModel "alumniku_backend/internals/features/users/user/model"
	helper "alumniku_backend/internals/helpers"
	helperAuth "alumniku_backend/internals/helpers/auth"
)

/* =========================
   Controller
   ========================= */

type MessageController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *MessageController) callerID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return uuid.Nil, helper.JsonError(c, fe.Code, fe.Message)
	}
	return userID, nil
}

/*
=========================================================

	INBOX
	GET /api/messages
	Direct rows + broadcast yang match keanggotaan reader, terbaru dulu.

=========================================================
*/
func (ctl *MessageController) Inbox(c *fiber.Ctx) error {
	readerID, err := ctl.callerID(c)
	if err != nil {
		return err
	}

	mem, lerr := msgService.LookupMembership(ctl.DB, readerID)
	if lerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching messages")
	}

	var rows []model.MessageModel
	if err := ctl.DB.
		Scopes(msgService.ScopeInbox(readerID, mem)).
		Preload("Sender").
		Preload("Recipient").
		Preload("School").
		Preload("Course").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching messages")
	}

	return helper.JsonList(c, "", dto.FromModels(rows), fiber.Map{"count": len(rows)})
}

/*
=========================================================

	SENT
	GET /api/messages/sent

=========================================================
*/
func (ctl *MessageController) Sent(c *fiber.Ctx) error {
	senderID, err := ctl.callerID(c)
	if err != nil {
		return err
	}

	var rows []model.MessageModel
	if err := ctl.DB.
		Where("sender_id = ?", senderID).
		Preload("Sender").
		Preload("Recipient").
		Preload("School").
		Preload("Course").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching sent messages")
	}

	return helper.JsonList(c, "", dto.FromModels(rows), fiber.Map{"count": len(rows)})
}

/*
=========================================================

	UNREAD COUNT
	GET /api/messages/unread-count
	Predikat broadcast yang sama dengan inbox.

=========================================================
*/
func (ctl *MessageController) UnreadCount(c *fiber.Ctx) error {
	readerID, err := ctl.callerID(c)
	if err != nil {
		return err
	}

	mem, lerr := msgService.LookupMembership(ctl.DB, readerID)
	if lerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error counting unread messages")
	}

	var count int64
	if err := ctl.DB.
		Model(&model.MessageModel{}).
		Scopes(msgService.ScopeInbox(readerID, mem)).
		Where("is_read = ?", false).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error counting unread messages")
	}

	return helper.JsonOK(c, "", fiber.Map{"unread": count})
}

/*
=========================================================

	RECIPIENTS
	GET /api/messages/recipients
	Daftar compose — lewat predikat visibilitas alumni yang sama dengan
	directory.

=========================================================
*/
func (ctl *MessageController) Recipients(c *fiber.Ctx) error {
	callerID, err := ctl.callerID(c)
	if err != nil {
		return err
	}

	type recipientRow struct {
		UserID    uuid.UUID `json:"user_id"`
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
	}

	var rows []recipientRow
	if err := ctl.DB.
		Model(&profileModel.AlumniProfileModel{}).
		Scopes(profileModel.ScopeVisibleAlumni).
		Where("alumni_profiles.user_id <> ?", callerID).
		Select("alumni_profiles.user_id, alumni_profiles.first_name, alumni_profiles.last_name").
		Order("alumni_profiles.last_name, alumni_profiles.first_name").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching recipients")
	}

	return helper.JsonList(c, "", rows, fiber.Map{"count": len(rows)})
}

/*
=========================================================

	SEND
	POST /api/messages
	Tepat satu target; broadcast disimpan satu baris, tanpa fan-out.

=========================================================
*/
func (ctl *MessageController) Send(c *fiber.Ctx) error {
	senderID, err := ctl.callerID(c)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Recipient langsung harus identitas yang ada
	if req.RecipientID != nil {
		var n int64
		if err := ctl.DB.Model(&userModel.UserModel{}).
			Where("id = ?", *req.RecipientID).
			Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error sending message")
		}
		if n == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Recipient not found")
		}
	}

	m := req.ToModel(senderID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error sending message")
	}

	return helper.JsonCreated(c, "Message sent successfully", fiber.Map{"message_id": m.ID})
}

/*
=========================================================

	MARK READ
	PUT /api/messages/:id/read
	Hanya baris yang visible buat caller. Idempotent: sudah read → no-op 200.

=========================================================
*/
func (ctl *MessageController) MarkAsRead(c *fiber.Ctx) error {
	msgID, perr := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid message id")
	}

	readerID, err := ctl.callerID(c)
	if err != nil {
		return err
	}

	var msg model.MessageModel
	if err := ctl.DB.First(&msg, "id = ?", msgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found or access denied")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error marking message as read")
	}

	mem, lerr := msgService.LookupMembership(ctl.DB, readerID)
	if lerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error marking message as read")
	}

	// Ownership check pakai predikat yang sama dengan inbox.
	// 404 juga untuk baris milik orang lain — tidak bocorkan keberadaan pesan.
	if !msgService.CanReceive(&msg, readerID, mem) {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found or access denied")
	}

	if msg.IsRead {
		return helper.JsonUpdated(c, "Message already marked as read", nil)
	}

	if err := ctl.DB.Model(&model.MessageModel{}).
		Where("id = ?", msgID).
		Update("is_read", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error marking message as read")
	}

	return helper.JsonUpdated(c, "Message marked as read", nil)
}
