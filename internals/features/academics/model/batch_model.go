package model

import (
	"time"

	"gorm.io/datatypes"
)

/* =========================================================
   MODEL: batches
========================================================= */

type BatchModel struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID int64 `gorm:"not null;index" json:"courseId"`

	// batches may run without an assigned teacher
	TeacherID *int64 `gorm:"index" json:"teacherId,omitempty"`

	Name      string          `gorm:"type:varchar(160);not null" json:"name"`
	StartDate datatypes.Date  `gorm:"type:date;not null" json:"startDate"`
	EndDate   *datatypes.Date `gorm:"type:date" json:"endDate,omitempty"`
	Capacity  int             `gorm:"not null;default:30" json:"capacity"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (BatchModel) TableName() string { return "batches" }
