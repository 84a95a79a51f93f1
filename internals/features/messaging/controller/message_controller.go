package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "classdesk_backend/internals/helpers"

	d "classdesk_backend/internals/features/messaging/dto"
	m "classdesk_backend/internals/features/messaging/model"
)

type MessageController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMessageController(db *gorm.DB, v *validator.Validate) *MessageController {
	return &MessageController{DB: db, Validate: v}
}

var messageSortColumns = map[string]string{
	"id":         "id",
	"created_at": "created_at",
	"subject":    "subject",
}

// List supports ?recipient= and ?read=true|false narrowing.
func (ctl *MessageController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(messageSortColumns, "created_at")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.MessageModel{})
	if recipient := strings.TrimSpace(c.Query("recipient")); recipient != "" {
		q = q.Where("recipient = ?", recipient)
	}
	if read := strings.TrimSpace(c.Query("read")); read != "" {
		switch read {
		case "true":
			q = q.Where("read = ?", true)
		case "false":
			q = q.Where("read = ?", false)
		default:
			return helper.JsonError(c, http.StatusBadRequest, "read must be true or false")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	messages := make([]m.MessageModel, 0)
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&messages).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", messages, helper.BuildMeta(total, p))
}

func (ctl *MessageController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var msg m.MessageModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Message not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", msg)
}

func (ctl *MessageController) Create(c *fiber.Ctx) error {
	var req d.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	msg := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&msg).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Message sent", msg)
}

// Update PUT /api/messages/:id: {"read": true}.
func (ctl *MessageController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var msg m.MessageModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Message not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	req.Apply(&msg)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&msg).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Message updated", msg)
}

func (ctl *MessageController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&m.MessageModel{}, id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Message not found")
	}
	return helper.JsonDeleted(c, "Message deleted", fiber.Map{"id": id})
}
