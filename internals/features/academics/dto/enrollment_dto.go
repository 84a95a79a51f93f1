package dto

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	m "classdesk_backend/internals/features/academics/model"
)

/* =========================
   Enrollment requests
   ========================= */

type CreateEnrollmentRequest struct {
	StudentID      int64   `json:"studentId" validate:"required,gt=0"`
	BatchID        int64   `json:"batchId" validate:"required,gt=0"`
	EnrollmentDate *string `json:"enrollmentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=active completed dropped"`
}

type UpdateEnrollmentRequest struct {
	StudentID      *int64  `json:"studentId,omitempty" validate:"omitempty,gt=0"`
	BatchID        *int64  `json:"batchId,omitempty" validate:"omitempty,gt=0"`
	EnrollmentDate *string `json:"enrollmentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=active completed dropped"`
}

func (r CreateEnrollmentRequest) ToModel() (m.EnrollmentModel, error) {
	out := m.EnrollmentModel{
		StudentID:      r.StudentID,
		BatchID:        r.BatchID,
		EnrollmentDate: datatypes.Date(time.Now()),
		Status:         m.EnrollmentStatusActive,
	}
	if r.EnrollmentDate != nil {
		d, ok := ParseDate(*r.EnrollmentDate)
		if !ok {
			return out, fmt.Errorf("enrollmentDate must be YYYY-MM-DD")
		}
		out.EnrollmentDate = d
	}
	if r.Status != nil {
		out.Status = m.EnrollmentStatus(*r.Status)
	}
	return out, nil
}

func (r UpdateEnrollmentRequest) Apply(e *m.EnrollmentModel) error {
	if r.StudentID != nil {
		e.StudentID = *r.StudentID
	}
	if r.BatchID != nil {
		e.BatchID = *r.BatchID
	}
	if r.EnrollmentDate != nil {
		d, ok := ParseDate(*r.EnrollmentDate)
		if !ok {
			return fmt.Errorf("enrollmentDate must be YYYY-MM-DD")
		}
		e.EnrollmentDate = d
	}
	if r.Status != nil {
		e.Status = m.EnrollmentStatus(*r.Status)
	}
	return nil
}
