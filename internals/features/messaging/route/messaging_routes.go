package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "classdesk_backend/internals/features/messaging/controller"
)

// MessagingRoutes mounts /messages under the api group.
func MessagingRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	messages := ctl.NewMessageController(db, v)
	g := api.Group("/messages")
	g.Get("/", messages.List)
	g.Get("/:id", messages.GetByID)
	g.Post("/", messages.Create)
	g.Put("/:id", messages.Update)
	g.Delete("/:id", messages.Delete)
}
