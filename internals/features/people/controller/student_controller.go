package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "classdesk_backend/internals/helpers"

	d "classdesk_backend/internals/features/people/dto"
	m "classdesk_backend/internals/features/people/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

var studentSortColumns = map[string]string{
	"id":         "id",
	"first_name": "first_name",
	"last_name":  "last_name",
	"email":      "email",
	"created_at": "created_at",
}

/* =========================
   List  GET /api/students
   ========================= */

func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "id", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(studentSortColumns, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.StudentModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	students := make([]m.StudentModel, 0)
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&students).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", students, helper.BuildMeta(total, p))
}

/* =========================
   Detail  GET /api/students/:id
   ========================= */

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var student m.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Student not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", student)
}

/* =========================
   Create  POST /api/students
   ========================= */

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req d.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	student := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&student).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Student created", student)
}

/* =========================
   Update  PUT /api/students/:id
   ========================= */

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var student m.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Student not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	req.Apply(&student)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&student).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Student updated", student)
}

/* =========================
   Delete  DELETE /api/students/:id
   ========================= */

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&m.StudentModel{}, id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Student not found")
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"id": id})
}
