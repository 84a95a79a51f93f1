package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	m "classdesk_backend/internals/features/academics/model"
)

/* =========================
   Course requests
   ========================= */

type CreateCourseRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=160"`
	Code          string  `json:"code" validate:"required,min=2,max=32"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	DurationWeeks *int    `json:"durationWeeks,omitempty" validate:"omitempty,gte=1,lte=520"`
	Fee           *string `json:"fee,omitempty" validate:"omitempty"`
}

type UpdateCourseRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=160"`
	Code          *string `json:"code,omitempty" validate:"omitempty,min=2,max=32"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	DurationWeeks *int    `json:"durationWeeks,omitempty" validate:"omitempty,gte=1,lte=520"`
	Fee           *string `json:"fee,omitempty" validate:"omitempty"`
}

func (r CreateCourseRequest) ToModel() (m.CourseModel, error) {
	out := m.CourseModel{
		Name:          r.Name,
		Code:          r.Code,
		Description:   r.Description,
		DurationWeeks: r.DurationWeeks,
	}
	if r.Fee != nil {
		fee, err := decimal.NewFromString(*r.Fee)
		if err != nil {
			return out, err
		}
		out.Fee = fee
	}
	return out, nil
}

func (r UpdateCourseRequest) Apply(course *m.CourseModel) error {
	if r.Name != nil {
		course.Name = *r.Name
	}
	if r.Code != nil {
		course.Code = *r.Code
	}
	if r.Description != nil {
		course.Description = r.Description
	}
	if r.DurationWeeks != nil {
		course.DurationWeeks = r.DurationWeeks
	}
	if r.Fee != nil {
		fee, err := decimal.NewFromString(*r.Fee)
		if err != nil {
			return err
		}
		course.Fee = fee
	}
	return nil
}

// ParseDate: YYYY-MM-DD → datatypes.Date (shared by the batch/enrollment DTOs)
func ParseDate(s string) (datatypes.Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, false
	}
	return datatypes.Date(t), true
}
