package model

import (
	"time"

	"github.com/shopspring/decimal"
)

/* =========================================================
   MODEL: courses
========================================================= */

type CourseModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(160);not null" json:"name"`
	Code        string  `gorm:"type:varchar(32);not null;uniqueIndex" json:"code"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	DurationWeeks *int            `json:"durationWeeks,omitempty"`
	Fee           decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"fee"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CourseModel) TableName() string { return "courses" }
