package dto

import (
	"testing"
	"time"

	m "classdesk_backend/internals/features/finance/model"
)

func TestCreateFeeToModel(t *testing.T) {
	fee, err := CreateFeeRequest{
		StudentID: 7, Amount: "250.50", DueDate: "2026-04-01",
	}.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if fee.Status != m.FeeStatusPending {
		t.Errorf("new fees start pending, got %s", fee.Status)
	}
	if fee.Amount.String() != "250.5" {
		t.Errorf("Amount = %s", fee.Amount)
	}

	if _, err := (CreateFeeRequest{StudentID: 7, Amount: "abc", DueDate: "2026-04-01"}).ToModel(); err == nil {
		t.Error("non-decimal amount must fail")
	}
	if _, err := (CreateFeeRequest{StudentID: 7, Amount: "-5", DueDate: "2026-04-01"}).ToModel(); err == nil {
		t.Error("negative amount must fail")
	}
	if _, err := (CreateFeeRequest{StudentID: 7, Amount: "10", DueDate: "01-04-2026"}).ToModel(); err == nil {
		t.Error("bad date must fail")
	}
}

func TestUpdateFeeStatusTransitionsStampPaidAt(t *testing.T) {
	fee, err := CreateFeeRequest{StudentID: 1, Amount: "100", DueDate: "2026-04-01"}.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	paid := "paid"
	if err := (UpdateFeeRequest{Status: &paid}).Apply(&fee, now); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if fee.Status != m.FeeStatusPaid || fee.PaidAt == nil || !fee.PaidAt.Equal(now) {
		t.Fatalf("after paying: %+v", fee)
	}

	// reverting to pending clears the payment timestamp
	pending := "pending"
	if err := (UpdateFeeRequest{Status: &pending}).Apply(&fee, now.Add(time.Hour)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if fee.Status != m.FeeStatusPending || fee.PaidAt != nil {
		t.Fatalf("after reverting: %+v", fee)
	}
}
