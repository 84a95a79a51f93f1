package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	m "classdesk_backend/internals/features/finance/model"
)

/* =========================
   Requests
   ========================= */

type CreateFeeRequest struct {
	StudentID int64  `json:"studentId" validate:"required,gt=0"`
	Amount    string `json:"amount" validate:"required"`
	DueDate   string `json:"dueDate" validate:"required,datetime=2006-01-02"`
}

// UpdateFeeRequest: the fees screen mostly flips status to paid.
type UpdateFeeRequest struct {
	Amount  *string `json:"amount,omitempty" validate:"omitempty"`
	DueDate *string `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=pending paid overdue"`
}

func (r CreateFeeRequest) ToModel() (m.FeeModel, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return m.FeeModel{}, fmt.Errorf("amount must be a decimal number")
	}
	if amount.IsNegative() {
		return m.FeeModel{}, fmt.Errorf("amount must not be negative")
	}
	due, ok := parseDate(r.DueDate)
	if !ok {
		return m.FeeModel{}, fmt.Errorf("dueDate must be YYYY-MM-DD")
	}
	return m.FeeModel{
		StudentID: r.StudentID,
		Amount:    amount,
		DueDate:   due,
		Status:    m.FeeStatusPending,
	}, nil
}

func (r UpdateFeeRequest) Apply(fee *m.FeeModel, now time.Time) error {
	if r.Amount != nil {
		amount, err := decimal.NewFromString(*r.Amount)
		if err != nil {
			return fmt.Errorf("amount must be a decimal number")
		}
		if amount.IsNegative() {
			return fmt.Errorf("amount must not be negative")
		}
		fee.Amount = amount
	}
	if r.DueDate != nil {
		due, ok := parseDate(*r.DueDate)
		if !ok {
			return fmt.Errorf("dueDate must be YYYY-MM-DD")
		}
		fee.DueDate = due
	}
	if r.Status != nil {
		next := m.FeeStatus(*r.Status)
		// marking paid stamps PaidAt; leaving paid clears it
		if next == m.FeeStatusPaid && fee.Status != m.FeeStatusPaid {
			fee.PaidAt = &now
		}
		if next != m.FeeStatusPaid {
			fee.PaidAt = nil
		}
		fee.Status = next
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
