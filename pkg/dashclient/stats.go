package dashclient

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceSummary aggregates a slice of attendance records, typically
// one batch-day or one student's history.
type AttendanceSummary struct {
	Present int
	Absent  int
	Late    int
	Total   int
}

// Rate is the share of records marked present or late, in [0,1]. Zero
// records yields 0.
func (s AttendanceSummary) Rate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Present+s.Late) / float64(s.Total)
}

func SummarizeAttendance(records []Attendance) AttendanceSummary {
	var s AttendanceSummary
	for _, r := range records {
		switch r.Status {
		case AttendancePresent:
			s.Present++
		case AttendanceAbsent:
			s.Absent++
		case AttendanceLate:
			s.Late++
		}
		s.Total++
	}
	return s
}

// FeeSummary aggregates fee records into the totals the finance screens
// show.
type FeeSummary struct {
	PendingTotal decimal.Decimal
	PaidTotal    decimal.Decimal
	OverdueTotal decimal.Decimal
	OverdueCount int
	Count        int
}

// FeeIsOverdue reports whether a fee should be treated as overdue as of
// now: either the server already flagged it, or it is still pending past
// its due date and the sweep has not run yet.
func FeeIsOverdue(f Fee, now time.Time) bool {
	if f.Status == FeeOverdue {
		return true
	}
	if f.Status != FeePending {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, f.DueDate.Location())
	return f.DueDate.Before(today)
}

func SummarizeFees(fees []Fee, now time.Time) FeeSummary {
	s := FeeSummary{}
	for _, f := range fees {
		s.Count++
		switch {
		case f.Status == FeePaid:
			s.PaidTotal = s.PaidTotal.Add(f.Amount)
		case FeeIsOverdue(f, now):
			s.OverdueTotal = s.OverdueTotal.Add(f.Amount)
			s.OverdueCount++
		default:
			s.PendingTotal = s.PendingTotal.Add(f.Amount)
		}
	}
	return s
}
