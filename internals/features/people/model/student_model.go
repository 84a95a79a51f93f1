package model

import (
	"time"

	"gorm.io/datatypes"
)

/* =========================================================
   MODEL: students
========================================================= */

type StudentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:varchar(80);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(80);not null" json:"lastName"`
	Email     string `gorm:"type:varchar(160);not null;uniqueIndex" json:"email"`
	Phone     string `gorm:"type:varchar(20);not null" json:"phone"`

	DateOfBirth *datatypes.Date `gorm:"type:date" json:"dateOfBirth,omitempty"`
	Address     *string         `gorm:"type:text" json:"address,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (StudentModel) TableName() string { return "students" }
