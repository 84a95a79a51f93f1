package dto

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	m "classdesk_backend/internals/features/assessment/model"
)

/* =========================
   Exam requests
   ========================= */

type CreateExamRequest struct {
	BatchID    int64  `json:"batchId" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,min=1,max=160"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	TotalMarks *int   `json:"totalMarks,omitempty" validate:"omitempty,gte=1,lte=1000"`
}

type UpdateExamRequest struct {
	BatchID    *int64  `json:"batchId,omitempty" validate:"omitempty,gt=0"`
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=160"`
	Date       *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TotalMarks *int    `json:"totalMarks,omitempty" validate:"omitempty,gte=1,lte=1000"`
}

func (r CreateExamRequest) ToModel() (m.ExamModel, error) {
	d, ok := parseDate(r.Date)
	if !ok {
		return m.ExamModel{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	out := m.ExamModel{
		BatchID:    r.BatchID,
		Name:       r.Name,
		Date:       d,
		TotalMarks: 100,
	}
	if r.TotalMarks != nil {
		out.TotalMarks = *r.TotalMarks
	}
	return out, nil
}

func (r UpdateExamRequest) Apply(e *m.ExamModel) error {
	if r.BatchID != nil {
		e.BatchID = *r.BatchID
	}
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Date != nil {
		d, ok := parseDate(*r.Date)
		if !ok {
			return fmt.Errorf("date must be YYYY-MM-DD")
		}
		e.Date = d
	}
	if r.TotalMarks != nil {
		e.TotalMarks = *r.TotalMarks
	}
	return nil
}

/* =========================
   Result requests
   ========================= */

type CreateResultRequest struct {
	ExamID        int64   `json:"examId" validate:"required,gt=0"`
	StudentID     int64   `json:"studentId" validate:"required,gt=0"`
	MarksObtained int     `json:"marksObtained" validate:"gte=0,lte=1000"`
	Grade         *string `json:"grade,omitempty" validate:"omitempty,max=4"`
}

type UpdateResultRequest struct {
	MarksObtained *int    `json:"marksObtained,omitempty" validate:"omitempty,gte=0,lte=1000"`
	Grade         *string `json:"grade,omitempty" validate:"omitempty,max=4"`
}

func (r CreateResultRequest) ToModel() m.ResultModel {
	return m.ResultModel{
		ExamID:        r.ExamID,
		StudentID:     r.StudentID,
		MarksObtained: r.MarksObtained,
		Grade:         r.Grade,
	}
}

func (r UpdateResultRequest) Apply(res *m.ResultModel) {
	if r.MarksObtained != nil {
		res.MarksObtained = *r.MarksObtained
	}
	if r.Grade != nil {
		res.Grade = r.Grade
	}
}

func parseDate(s string) (datatypes.Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, false
	}
	return datatypes.Date(t), true
}
