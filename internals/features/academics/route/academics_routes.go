package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "classdesk_backend/internals/features/academics/controller"
)

// AcademicsRoutes mounts /courses, /batches and /enrollments under the api group.
func AcademicsRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	courses := ctl.NewCourseController(db, v)
	cg := api.Group("/courses")
	cg.Get("/", courses.List)
	cg.Get("/:id", courses.GetByID)
	cg.Post("/", courses.Create)
	cg.Put("/:id", courses.Update)
	cg.Delete("/:id", courses.Delete)

	batches := ctl.NewBatchController(db, v)
	bg := api.Group("/batches")
	bg.Get("/", batches.List)
	bg.Get("/:id", batches.GetByID)
	bg.Post("/", batches.Create)
	bg.Put("/:id", batches.Update)
	bg.Delete("/:id", batches.Delete)

	enrollments := ctl.NewEnrollmentController(db, v)
	eg := api.Group("/enrollments")
	eg.Get("/", enrollments.List)
	eg.Get("/:id", enrollments.GetByID)
	eg.Post("/", enrollments.Create)
	eg.Put("/:id", enrollments.Update)
	eg.Delete("/:id", enrollments.Delete)
}
