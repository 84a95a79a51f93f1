package dashclient

import (
	"fmt"
	"strings"
)

// Index is an id lookup built from a fetched list, used to resolve foreign
// keys (a batch's teacherId, an enrollment's studentId) into labels
// without extra round trips.
type Index[T any] struct {
	byID map[int64]T
}

func NewIndex[T any](items []T, id func(T) int64) *Index[T] {
	idx := &Index[T]{byID: make(map[int64]T, len(items))}
	for _, it := range items {
		idx.byID[id(it)] = it
	}
	return idx
}

func (ix *Index[T]) Get(id int64) (T, bool) {
	v, ok := ix.byID[id]
	return v, ok
}

func (ix *Index[T]) Len() int {
	return len(ix.byID)
}

// Label resolves id through the index, falling back to "#<id>" when the
// referenced record is missing (deleted, or its list not loaded yet).
func (ix *Index[T]) Label(id int64, label func(T) string) string {
	if v, ok := ix.byID[id]; ok {
		return label(v)
	}
	return fmt.Sprintf("#%d", id)
}

func StudentIndex(students []Student) *Index[Student] {
	return NewIndex(students, func(s Student) int64 { return s.ID })
}

func TeacherIndex(teachers []Teacher) *Index[Teacher] {
	return NewIndex(teachers, func(t Teacher) int64 { return t.ID })
}

func CourseIndex(courses []Course) *Index[Course] {
	return NewIndex(courses, func(c Course) int64 { return c.ID })
}

func BatchIndex(batches []Batch) *Index[Batch] {
	return NewIndex(batches, func(b Batch) int64 { return b.ID })
}

// MatchFold reports whether s contains substr, case-insensitively.
func MatchFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Filter returns the items for which keep is true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SearchStudents filters by case-insensitive substring match on first or
// last name. An empty query returns the input unchanged.
func SearchStudents(students []Student, query string) []Student {
	if query == "" {
		return students
	}
	return Filter(students, func(s Student) bool {
		return MatchFold(s.FirstName, query) || MatchFold(s.LastName, query)
	})
}

// SearchTeachers is SearchStudents for teachers, also matching the
// specialization.
func SearchTeachers(teachers []Teacher, query string) []Teacher {
	if query == "" {
		return teachers
	}
	return Filter(teachers, func(t Teacher) bool {
		if MatchFold(t.FirstName, query) || MatchFold(t.LastName, query) {
			return true
		}
		return t.Specialization != nil && MatchFold(*t.Specialization, query)
	})
}

// SearchCourses matches on name or code.
func SearchCourses(courses []Course, query string) []Course {
	if query == "" {
		return courses
	}
	return Filter(courses, func(c Course) bool {
		return MatchFold(c.Name, query) || MatchFold(c.Code, query)
	})
}
