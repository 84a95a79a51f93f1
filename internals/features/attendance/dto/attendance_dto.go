package dto

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	m "classdesk_backend/internals/features/attendance/model"
)

/* =========================
   Requests
   ========================= */

type CreateAttendanceRequest struct {
	StudentID int64   `json:"studentId" validate:"required,gt=0"`
	BatchID   int64   `json:"batchId" validate:"required,gt=0"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string  `json:"status" validate:"required,oneof=present absent late"`
}

// UpdateAttendanceRequest: the attendance screen only flips status,
// but date corrections are allowed too.
type UpdateAttendanceRequest struct {
	Date   *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=present absent late"`
}

func (r CreateAttendanceRequest) ToModel() (m.AttendanceModel, error) {
	d, ok := parseDate(r.Date)
	if !ok {
		return m.AttendanceModel{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return m.AttendanceModel{
		StudentID: r.StudentID,
		BatchID:   r.BatchID,
		Date:      d,
		Status:    m.AttendanceStatus(r.Status),
	}, nil
}

func (r UpdateAttendanceRequest) Apply(a *m.AttendanceModel) error {
	if r.Date != nil {
		d, ok := parseDate(*r.Date)
		if !ok {
			return fmt.Errorf("date must be YYYY-MM-DD")
		}
		a.Date = d
	}
	if r.Status != nil {
		a.Status = m.AttendanceStatus(*r.Status)
	}
	return nil
}

func parseDate(s string) (datatypes.Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, false
	}
	return datatypes.Date(t), true
}
