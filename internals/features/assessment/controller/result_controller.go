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

type ResultController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewResultController(db *gorm.DB, v *validator.Validate) *ResultController {
	return &ResultController{DB: db, Validate: v}
}

var resultSortColumns = map[string]string{
	"id":             "id",
	"marks_obtained": "marks_obtained",
}

// List supports ?exam_id= and ?student_id= narrowing.
func (ctl *ResultController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "id", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(resultSortColumns, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.ResultModel{})
	if examID, err := helper.QueryID(c, "exam_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if examID > 0 {
		q = q.Where("exam_id = ?", examID)
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

	results := make([]m.ResultModel, 0)
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&results).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", results, helper.BuildMeta(total, p))
}

func (ctl *ResultController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var result m.ResultModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Result not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", result)
}

func (ctl *ResultController) Create(c *fiber.Ctx) error {
	var req d.CreateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	result := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&result).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Result created", result)
}

func (ctl *ResultController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var result m.ResultModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Result not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	req.Apply(&result)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&result).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Result updated", result)
}

func (ctl *ResultController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&m.ResultModel{}, id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Result not found")
	}
	return helper.JsonDeleted(c, "Result deleted", fiber.Map{"id": id})
}
