package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "classdesk_backend/internals/features/assessment/controller"
)

// AssessmentRoutes mounts /exams and /results under the api group.
func AssessmentRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	exams := ctl.NewExamController(db, v)
	eg := api.Group("/exams")
	eg.Get("/", exams.List)
	eg.Get("/:id", exams.GetByID)
	eg.Post("/", exams.Create)
	eg.Put("/:id", exams.Update)
	eg.Delete("/:id", exams.Delete)

	results := ctl.NewResultController(db, v)
	rg := api.Group("/results")
	rg.Get("/", results.List)
	rg.Get("/:id", results.GetByID)
	rg.Post("/", results.Create)
	rg.Put("/:id", results.Update)
	rg.Delete("/:id", results.Delete)
}
