package model

import (
	"time"

	"gorm.io/datatypes"
)

/* =========================================================
   ENUMS
========================================================= */

// Column uses CHECK ('present'|'absent'|'late')
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
)

/* =========================================================
   MODEL: attendance
========================================================= */

type AttendanceModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID int64 `gorm:"not null;index;uniqueIndex:uq_attendance_student_batch_date" json:"studentId"`
	BatchID   int64 `gorm:"not null;index;uniqueIndex:uq_attendance_student_batch_date" json:"batchId"`

	Date   datatypes.Date   `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_batch_date" json:"date"`
	Status AttendanceStatus `gorm:"type:varchar(16);not null" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AttendanceModel) TableName() string { return "attendance" }
