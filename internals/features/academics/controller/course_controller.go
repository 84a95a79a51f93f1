package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "classdesk_backend/internals/helpers"

	d "classdesk_backend/internals/features/academics/dto"
	m "classdesk_backend/internals/features/academics/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validate: v}
}

var courseSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"code":       "code",
	"created_at": "created_at",
}

func (ctl *CourseController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "id", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(courseSortColumns, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.CourseModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	courses := make([]m.CourseModel, 0)
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&courses).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", courses, helper.BuildMeta(total, p))
}

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var course m.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Course not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", course)
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req d.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	course, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&course).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Course created", course)
}

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var course m.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Course not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if err := req.Apply(&course); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&course).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Course updated", course)
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&m.CourseModel{}, id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"id": id})
}
