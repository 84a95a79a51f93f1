package model

import "time"

/* =========================================================
   MODEL: results
========================================================= */

type ResultModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ExamID    int64 `gorm:"not null;index;uniqueIndex:uq_result_exam_student" json:"examId"`
	StudentID int64 `gorm:"not null;index;uniqueIndex:uq_result_exam_student" json:"studentId"`

	MarksObtained int     `gorm:"not null" json:"marksObtained"`
	Grade         *string `gorm:"type:varchar(4)" json:"grade,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ResultModel) TableName() string { return "results" }
