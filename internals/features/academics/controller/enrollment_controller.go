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

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB, v *validator.Validate) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: v}
}

var enrollmentSortColumns = map[string]string{
	"id":              "id",
	"enrollment_date": "enrollment_date",
	"created_at":      "created_at",
}

// List supports ?batch_id= and ?student_id= narrowing.
func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "id", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(enrollmentSortColumns, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.EnrollmentModel{})
	if batchID, err := helper.QueryID(c, "batch_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if batchID > 0 {
		q = q.Where("batch_id = ?", batchID)
	}
	if studentID, err := helper.QueryID(c, "student_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if studentID > 0 {
		q = q.Where("student_id = ?", studentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	enrollments := make([]m.EnrollmentModel, 0)
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&enrollments).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", enrollments, helper.BuildMeta(total, p))
}

func (ctl *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var enrollment m.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Enrollment not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", enrollment)
}

func (ctl *EnrollmentController) Create(c *fiber.Ctx) error {
	var req d.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	enrollment, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&enrollment).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Enrollment created", enrollment)
}

func (ctl *EnrollmentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var enrollment m.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Enrollment not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if err := req.Apply(&enrollment); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&enrollment).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Enrollment updated", enrollment)
}

func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&m.EnrollmentModel{}, id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Enrollment not found")
	}
	return helper.JsonDeleted(c, "Enrollment deleted", fiber.Map{"id": id})
}
