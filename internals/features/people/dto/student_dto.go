package dto

import (
	"time"

	"gorm.io/datatypes"

	m "classdesk_backend/internals/features/people/model"
)

/* =========================
   Requests
   ========================= */

type CreateStudentRequest struct {
	FirstName   string  `json:"firstName" validate:"required,min=1,max=80"`
	LastName    string  `json:"lastName" validate:"required,min=1,max=80"`
	Email       string  `json:"email" validate:"required,email,max=160"`
	Phone       string  `json:"phone" validate:"required,min=7,max=20"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
}

// UpdateStudentRequest: pointer fields, only provided fields are applied
type UpdateStudentRequest struct {
	FirstName   *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=80"`
	LastName    *string `json:"lastName,omitempty" validate:"omitempty,min=1,max=80"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=160"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
}

func (r CreateStudentRequest) ToModel() m.StudentModel {
	out := m.StudentModel{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
	if r.DateOfBirth != nil {
		if d, ok := parseDate(*r.DateOfBirth); ok {
			out.DateOfBirth = &d
		}
	}
	return out
}

func (r UpdateStudentRequest) Apply(s *m.StudentModel) {
	if r.FirstName != nil {
		s.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		s.LastName = *r.LastName
	}
	if r.Email != nil {
		s.Email = *r.Email
	}
	if r.Phone != nil {
		s.Phone = *r.Phone
	}
	if r.DateOfBirth != nil {
		if d, ok := parseDate(*r.DateOfBirth); ok {
			s.DateOfBirth = &d
		}
	}
	if r.Address != nil {
		s.Address = r.Address
	}
}

// parse YYYY-MM-DD → datatypes.Date
func parseDate(s string) (datatypes.Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, false
	}
	return datatypes.Date(t), true
}
