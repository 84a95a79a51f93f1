package dto

import (
	m "classdesk_backend/internals/features/people/model"
)

/* =========================
   Requests
   ========================= */

type CreateTeacherRequest struct {
	FirstName      string  `json:"firstName" validate:"required,min=1,max=80"`
	LastName       string  `json:"lastName" validate:"required,min=1,max=80"`
	Email          string  `json:"email" validate:"required,email,max=160"`
	Phone          string  `json:"phone" validate:"required,min=7,max=20"`
	Specialization *string `json:"specialization,omitempty" validate:"omitempty,max=120"`
}

type UpdateTeacherRequest struct {
	FirstName      *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=80"`
	LastName       *string `json:"lastName,omitempty" validate:"omitempty,min=1,max=80"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email,max=160"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Specialization *string `json:"specialization,omitempty" validate:"omitempty,max=120"`
}

func (r CreateTeacherRequest) ToModel() m.TeacherModel {
	return m.TeacherModel{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Specialization: r.Specialization,
	}
}

func (r UpdateTeacherRequest) Apply(t *m.TeacherModel) {
	if r.FirstName != nil {
		t.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		t.LastName = *r.LastName
	}
	if r.Email != nil {
		t.Email = *r.Email
	}
	if r.Phone != nil {
		t.Phone = *r.Phone
	}
	if r.Specialization != nil {
		t.Specialization = r.Specialization
	}
}
