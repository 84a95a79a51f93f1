package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "classdesk_backend/internals/features/people/controller"
)

// PeopleRoutes mounts /students and /teachers under the api group.
func PeopleRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	students := ctl.NewStudentController(db, v)
	sg := api.Group("/students")
	sg.Get("/", students.List)
	sg.Get("/:id", students.GetByID)
	sg.Post("/", students.Create)
	sg.Put("/:id", students.Update)
	sg.Delete("/:id", students.Delete)

	teachers := ctl.NewTeacherController(db, v)
	tg := api.Group("/teachers")
	tg.Get("/", teachers.List)
	tg.Get("/:id", teachers.GetByID)
	tg.Post("/", teachers.Create)
	tg.Put("/:id", teachers.Update)
	tg.Delete("/:id", teachers.Delete)
}
