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

type BatchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBatchController(db *gorm.DB, v *validator.Validate) *BatchController {
	return &BatchController{DB: db, Validate: v}
}

var batchSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"start_date": "start_date",
	"created_at": "created_at",
}

// List supports ?course_id= and ?teacher_id= narrowing.
func (ctl *BatchController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "id", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(batchSortColumns, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.BatchModel{})
	if courseID, err := helper.QueryID(c, "course_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if courseID > 0 {
		q = q.Where("course_id = ?", courseID)
	}
	if teacherID, err := helper.QueryID(c, "teacher_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if teacherID > 0 {
		q = q.Where("teacher_id = ?", teacherID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	batches := make([]m.BatchModel, 0)
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&batches).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", batches, helper.BuildMeta(total, p))
}

func (ctl *BatchController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var batch m.BatchModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&batch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Batch not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", batch)
}

func (ctl *BatchController) Create(c *fiber.Ctx) error {
	var req d.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	batch, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&batch).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Batch created", batch)
}

func (ctl *BatchController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var batch m.BatchModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&batch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Batch not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if err := req.Apply(&batch); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&batch).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Batch updated", batch)
}

func (ctl *BatchController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&m.BatchModel{}, id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Batch not found")
	}
	return helper.JsonDeleted(c, "Batch deleted", fiber.Map{"id": id})
}
