package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "classdesk_backend/internals/helpers"

	d "classdesk_backend/internals/features/finance/dto"
	m "classdesk_backend/internals/features/finance/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type FeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeeController(db *gorm.DB, v *validator.Validate) *FeeController {
	return &FeeController{DB: db, Validate: v}
}

var feeSortColumns = map[string]string{
	"id":       "id",
	"due_date": "due_date",
	"amount":   "amount",
	"status":   "status",
}

// List supports ?student_id= and ?status= narrowing.
func (ctl *FeeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "id", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(feeSortColumns, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.FeeModel{})
	if studentID, err := helper.QueryID(c, "student_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if studentID > 0 {
		q = q.Where("student_id = ?", studentID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		switch m.FeeStatus(status) {
		case m.FeeStatusPending, m.FeeStatusPaid, m.FeeStatusOverdue:
			q = q.Where("status = ?", status)
		default:
			return helper.JsonError(c, http.StatusBadRequest, "status must be pending, paid or overdue")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	fees := make([]m.FeeModel, 0)
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&fees).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", fees, helper.BuildMeta(total, p))
}

func (ctl *FeeController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var fee m.FeeModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&fee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Fee not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", fee)
}

func (ctl *FeeController) Create(c *fiber.Ctx) error {
	var req d.CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	fee, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&fee).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Fee created", fee)
}

// Update PUT /api/fees/:id: typically {"status": "paid"}.
func (ctl *FeeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var fee m.FeeModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&fee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Fee not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if err := req.Apply(&fee, time.Now()); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&fee).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Fee updated", fee)
}

func (ctl *FeeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&m.FeeModel{}, id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Fee not found")
	}
	return helper.JsonDeleted(c, "Fee deleted", fiber.Map{"id": id})
}
