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

	d "classdesk_backend/internals/features/attendance/dto"
	m "classdesk_backend/internals/features/attendance/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
}

var attendanceSortColumns = map[string]string{
	"id":   "id",
	"date": "date",
}

// List supports ?batch_id=, ?student_id= and ?date=YYYY-MM-DD narrowing.
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "id", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(attendanceSortColumns, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.AttendanceModel{})
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
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		q = q.Where("date = ?", day.Format("2006-01-02"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	records := make([]m.AttendanceModel, 0)
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&records).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", records, helper.BuildMeta(total, p))
}

func (ctl *AttendanceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var record m.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Attendance record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", record)
}

func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	var req d.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&record).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Attendance recorded", record)
}

// Update PUT /api/attendance/:id: partial body, typically {"status": "..."}.
func (ctl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var record m.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Attendance record not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if err := req.Apply(&record); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&record).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Attendance updated", record)
}

func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&m.AttendanceModel{}, id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Attendance record not found")
	}
	return helper.JsonDeleted(c, "Attendance deleted", fiber.Map{"id": id})
}
