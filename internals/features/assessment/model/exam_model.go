package model

import (
	"time"

	"gorm.io/datatypes"
)

/* =========================================================
   MODEL: exams
========================================================= */

type ExamModel struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	BatchID int64 `gorm:"not null;index" json:"batchId"`

	Name       string         `gorm:"type:varchar(160);not null" json:"name"`
	Date       datatypes.Date `gorm:"type:date;not null" json:"date"`
	TotalMarks int            `gorm:"not null;default:100" json:"totalMarks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ExamModel) TableName() string { return "exams" }
