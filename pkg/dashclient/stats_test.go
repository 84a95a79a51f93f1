package dashclient

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSummarizeAttendance(t *testing.T) {
	records := []Attendance{
		{Status: AttendancePresent},
		{Status: AttendancePresent},
		{Status: AttendanceLate},
		{Status: AttendanceAbsent},
	}
	s := SummarizeAttendance(records)
	if s.Present != 2 || s.Late != 1 || s.Absent != 1 || s.Total != 4 {
		t.Fatalf("summary = %+v", s)
	}
	if got := s.Rate(); got != 0.75 {
		t.Errorf("Rate = %v, want 0.75 (late counts as attended)", got)
	}
	if got := (AttendanceSummary{}).Rate(); got != 0 {
		t.Errorf("empty Rate = %v, want 0", got)
	}
}

func TestFeeIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	cases := []struct {
		name string
		fee  Fee
		want bool
	}{
		{"flagged by server", Fee{Status: FeeOverdue, DueDate: day(20)}, true},
		{"pending past due", Fee{Status: FeePending, DueDate: day(10)}, true},
		{"pending due today", Fee{Status: FeePending, DueDate: day(15)}, false},
		{"pending future", Fee{Status: FeePending, DueDate: day(20)}, false},
		{"paid past due", Fee{Status: FeePaid, DueDate: day(10)}, false},
	}
	for _, tc := range cases {
		if got := FeeIsOverdue(tc.fee, now); got != tc.want {
			t.Errorf("%s: FeeIsOverdue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSummarizeFees(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	amt := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	fees := []Fee{
		{Amount: amt("100.00"), Status: FeePaid, DueDate: day(1)},
		{Amount: amt("250.50"), Status: FeePending, DueDate: day(20)},
		{Amount: amt("75.25"), Status: FeePending, DueDate: day(1)},
		{Amount: amt("60.00"), Status: FeeOverdue, DueDate: day(5)},
	}
	s := SummarizeFees(fees, now)

	if !s.PaidTotal.Equal(amt("100.00")) {
		t.Errorf("PaidTotal = %s", s.PaidTotal)
	}
	if !s.PendingTotal.Equal(amt("250.50")) {
		t.Errorf("PendingTotal = %s", s.PendingTotal)
	}
	if !s.OverdueTotal.Equal(amt("135.25")) {
		t.Errorf("OverdueTotal = %s (pending past due must count)", s.OverdueTotal)
	}
	if s.OverdueCount != 2 || s.Count != 4 {
		t.Errorf("counts = %+v", s)
	}
}
