package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

/* =========================================================
   ENUMS
========================================================= */

// Column uses CHECK ('pending'|'paid'|'overdue')
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusOverdue FeeStatus = "overdue"
)

/* =========================================================
   MODEL: fees
========================================================= */

type FeeModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID int64 `gorm:"not null;index" json:"studentId"`

	Amount  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	DueDate datatypes.Date  `gorm:"type:date;not null" json:"dueDate"`
	Status  FeeStatus       `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`

	PaidAt *time.Time `json:"paidAt,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (FeeModel) TableName() string { return "fees" }
