package model

import (
	"time"

	"gorm.io/datatypes"
)

/* =========================================================
   ENUMS
========================================================= */

// Column uses CHECK ('active'|'completed'|'dropped')
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

/* =========================================================
   MODEL: enrollments
========================================================= */

type EnrollmentModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID int64 `gorm:"not null;index;uniqueIndex:uq_enrollment_student_batch" json:"studentId"`
	BatchID   int64 `gorm:"not null;index;uniqueIndex:uq_enrollment_student_batch" json:"batchId"`

	EnrollmentDate datatypes.Date   `gorm:"type:date;not null" json:"enrollmentDate"`
	Status         EnrollmentStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
