package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "classdesk_backend/internals/features/finance/controller"
)

// FinanceRoutes mounts /fees under the api group.
func FinanceRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	fees := ctl.NewFeeController(db, v)
	g := api.Group("/fees")
	g.Get("/", fees.List)
	g.Get("/:id", fees.GetByID)
	g.Post("/", fees.Create)
	g.Put("/:id", fees.Update)
	g.Delete("/:id", fees.Delete)
}
