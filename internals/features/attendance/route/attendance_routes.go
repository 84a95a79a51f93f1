package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "classdesk_backend/internals/features/attendance/controller"
)

// AttendanceRoutes mounts /attendance under the api group.
func AttendanceRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	attendance := ctl.NewAttendanceController(db, v)
	g := api.Group("/attendance")
	g.Get("/", attendance.List)
	g.Get("/:id", attendance.GetByID)
	g.Post("/", attendance.Create)
	g.Put("/:id", attendance.Update)
	g.Delete("/:id", attendance.Delete)
}
