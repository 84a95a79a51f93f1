package dto

import (
	"testing"
	"time"
)

func TestCreateStudentToModel(t *testing.T) {
	dob := "2008-04-12"
	addr := "12 Analytical Way"
	req := CreateStudentRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Phone:       "555-0100",
		DateOfBirth: &dob,
		Address:     &addr,
	}

	s := req.ToModel()
	if s.FirstName != "Ada" || s.LastName != "Lovelace" {
		t.Errorf("names = %q %q", s.FirstName, s.LastName)
	}
	if s.DateOfBirth == nil {
		t.Fatal("DateOfBirth not parsed")
	}
	if got := time.Time(*s.DateOfBirth); got.Year() != 2008 || got.Month() != time.April || got.Day() != 12 {
		t.Errorf("DateOfBirth = %v", got)
	}
	if s.Address == nil || *s.Address != addr {
		t.Errorf("Address = %v", s.Address)
	}
}

func TestUpdateStudentApplyOnlyProvidedFields(t *testing.T) {
	s := CreateStudentRequest{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Phone: "555-0100",
	}.ToModel()

	phone := "555-0199"
	UpdateStudentRequest{Phone: &phone}.Apply(&s)

	if s.Phone != phone {
		t.Errorf("Phone = %q, want %q", s.Phone, phone)
	}
	if s.FirstName != "Ada" || s.Email != "ada@example.com" {
		t.Errorf("untouched fields changed: %+v", s)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, ok := parseDate("12/04/2008"); ok {
		t.Error("slash format must be rejected")
	}
	if _, ok := parseDate("2008-04-12"); !ok {
		t.Error("ISO date must parse")
	}
}
