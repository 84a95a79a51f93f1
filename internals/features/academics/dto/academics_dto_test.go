package dto

import (
	"testing"
	"time"

	m "classdesk_backend/internals/features/academics/model"
)

func TestCreateEnrollmentDefaults(t *testing.T) {
	e, err := CreateEnrollmentRequest{StudentID: 1, BatchID: 5}.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if e.Status != m.EnrollmentStatusActive {
		t.Errorf("default status = %s, want active", e.Status)
	}
	if time.Time(e.EnrollmentDate).IsZero() {
		t.Error("default enrollment date must be today, not zero")
	}
}

func TestCreateEnrollmentExplicitValues(t *testing.T) {
	date := "2026-01-15"
	dropped := "dropped"
	e, err := CreateEnrollmentRequest{
		StudentID: 1, BatchID: 5, EnrollmentDate: &date, Status: &dropped,
	}.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if e.Status != m.EnrollmentStatusDropped {
		t.Errorf("status = %s", e.Status)
	}
	if d := time.Time(e.EnrollmentDate); d.Day() != 15 || d.Month() != time.January {
		t.Errorf("date = %v", d)
	}

	bad := "15-01-2026"
	if _, err := (CreateEnrollmentRequest{StudentID: 1, BatchID: 5, EnrollmentDate: &bad}).ToModel(); err == nil {
		t.Error("bad date must fail")
	}
}

func TestCreateCourseParsesFee(t *testing.T) {
	fee := "499.99"
	c, err := CreateCourseRequest{
		Name: "Intro to Computing", Code: "CS-101", Fee: &fee,
	}.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if c.Fee.String() != "499.99" {
		t.Errorf("Fee = %s", c.Fee)
	}

	bad := "free"
	if _, err := (CreateCourseRequest{Name: "X", Code: "X-1", Fee: &bad}).ToModel(); err == nil {
		t.Error("non-decimal fee must fail")
	}
}
