package model

import "time"

/* =========================================================
   MODEL: teachers
========================================================= */

type TeacherModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:varchar(80);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(80);not null" json:"lastName"`
	Email     string `gorm:"type:varchar(160);not null;uniqueIndex" json:"email"`
	Phone     string `gorm:"type:varchar(20);not null" json:"phone"`

	// main subject/specialization shown on the teachers table
	Specialization *string `gorm:"type:varchar(120)" json:"specialization,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (TeacherModel) TableName() string { return "teachers" }
