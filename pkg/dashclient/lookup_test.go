package dashclient

import "testing"

func sampleStudents() []Student {
	return []Student{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
		{ID: 2, FirstName: "Alan", LastName: "Turing"},
		{ID: 3, FirstName: "Grace", LastName: "Hopper"},
		{ID: 4, FirstName: "Radia", LastName: "Perlman"},
	}
}

func TestSearchStudents(t *testing.T) {
	students := sampleStudents()

	got := SearchStudents(students, "ada")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("search %q = %+v, want only Ada Lovelace", "ada", got)
	}

	// case-insensitive, matches last names too
	got = SearchStudents(students, "PER")
	if len(got) != 2 {
		t.Fatalf("search %q = %+v, want Hopper and Perlman", "PER", got)
	}

	if got := SearchStudents(students, ""); len(got) != len(students) {
		t.Fatalf("empty query must return all, got %d", len(got))
	}

	if got := SearchStudents(students, "zzz"); len(got) != 0 {
		t.Fatalf("no-match query returned %+v", got)
	}
}

func TestSearchTeachersMatchesSpecialization(t *testing.T) {
	math := "Mathematics"
	teachers := []Teacher{
		{ID: 1, FirstName: "Emmy", LastName: "Noether", Specialization: &math},
		{ID: 2, FirstName: "Rosalind", LastName: "Franklin"},
	}
	got := SearchTeachers(teachers, "math")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("search %q = %+v", "math", got)
	}
}

func TestIndexLabelFallsBackToID(t *testing.T) {
	idx := StudentIndex(sampleStudents())

	if got := idx.Label(2, Student.FullName); got != "Alan Turing" {
		t.Errorf("Label(2) = %q", got)
	}
	if got := idx.Label(99, Student.FullName); got != "#99" {
		t.Errorf("Label(99) = %q, want #99", got)
	}
	if _, ok := idx.Get(99); ok {
		t.Errorf("Get(99) must miss")
	}
	if idx.Len() != 4 {
		t.Errorf("Len = %d", idx.Len())
	}
}
