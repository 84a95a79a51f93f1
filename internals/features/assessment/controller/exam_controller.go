package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "classdesk_backend/internals/helpers"

	d "classdesk_backend/internals/features/assessment/dto"
	m "classdesk_backend/internals/features/assessment/model"
)

type ExamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExamController(db *gorm.DB, v *validator.Validate) *ExamController {
	return &ExamController{DB: db, Validate: v}
}

var examSortColumns = map[string]string{
	"id":   "id",
	"name": "name",
	"date": "date",
}

// List supports ?batch_id= narrowing.
func (ctl *ExamController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "id", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(examSortColumns, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.ExamModel{})
	if batchID, err := helper.QueryID(c, "batch_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if batchID > 0 {
		q = q.Where("batch_id = ?", batchID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	exams := make([]m.ExamModel, 0)
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&exams).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", exams, helper.BuildMeta(total, p))
}

func (ctl *ExamController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var exam m.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&exam, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Exam not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", exam)
}

func (ctl *ExamController) Create(c *fiber.Ctx) error {
	var req d.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	exam, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&exam).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Exam created", exam)
}

func (ctl *ExamController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var exam m.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&exam, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Exam not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if err := req.Apply(&exam); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&exam).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Exam updated", exam)
}

func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&m.ExamModel{}, id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Exam not found")
	}
	return helper.JsonDeleted(c, "Exam deleted", fiber.Map{"id": id})
}
