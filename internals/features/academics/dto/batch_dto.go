package dto

import (
	"fmt"

	m "classdesk_backend/internals/features/academics/model"
)

/* =========================
   Batch requests
   ========================= */

type CreateBatchRequest struct {
	CourseID  int64   `json:"courseId" validate:"required,gt=0"`
	TeacherID *int64  `json:"teacherId,omitempty" validate:"omitempty,gt=0"`
	Name      string  `json:"name" validate:"required,min=1,max=160"`
	StartDate string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   *string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Capacity  *int    `json:"capacity,omitempty" validate:"omitempty,gte=1,lte=1000"`
}

type UpdateBatchRequest struct {
	CourseID  *int64  `json:"courseId,omitempty" validate:"omitempty,gt=0"`
	TeacherID *int64  `json:"teacherId,omitempty" validate:"omitempty,gt=0"`
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=160"`
	StartDate *string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Capacity  *int    `json:"capacity,omitempty" validate:"omitempty,gte=1,lte=1000"`
}

func (r CreateBatchRequest) ToModel() (m.BatchModel, error) {
	start, ok := ParseDate(r.StartDate)
	if !ok {
		return m.BatchModel{}, fmt.Errorf("startDate must be YYYY-MM-DD")
	}
	out := m.BatchModel{
		CourseID:  r.CourseID,
		TeacherID: r.TeacherID,
		Name:      r.Name,
		StartDate: start,
		Capacity:  30,
	}
	if r.EndDate != nil {
		end, ok := ParseDate(*r.EndDate)
		if !ok {
			return m.BatchModel{}, fmt.Errorf("endDate must be YYYY-MM-DD")
		}
		out.EndDate = &end
	}
	if r.Capacity != nil {
		out.Capacity = *r.Capacity
	}
	return out, nil
}

func (r UpdateBatchRequest) Apply(batch *m.BatchModel) error {
	if r.CourseID != nil {
		batch.CourseID = *r.CourseID
	}
	if r.TeacherID != nil {
		batch.TeacherID = r.TeacherID
	}
	if r.Name != nil {
		batch.Name = *r.Name
	}
	if r.StartDate != nil {
		start, ok := ParseDate(*r.StartDate)
		if !ok {
			return fmt.Errorf("startDate must be YYYY-MM-DD")
		}
		batch.StartDate = start
	}
	if r.EndDate != nil {
		end, ok := ParseDate(*r.EndDate)
		if !ok {
			return fmt.Errorf("endDate must be YYYY-MM-DD")
		}
		batch.EndDate = &end
	}
	if r.Capacity != nil {
		batch.Capacity = *r.Capacity
	}
	return nil
}
