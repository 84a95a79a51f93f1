package dto

import "github.com/shopspring/decimal"

// DashboardMetrics is the precomputed summary behind /api/dashboard/metrics.
// Consumers cache it under its own resource key like any other collection.
type DashboardMetrics struct {
	Students    int64 `json:"students"`
	Teachers    int64 `json:"teachers"`
	Courses     int64 `json:"courses"`
	Batches     int64 `json:"batches"`
	Enrollments int64 `json:"enrollments"`

	// share of today's attendance records marked present or late
	AttendanceTodayRate float64 `json:"attendanceTodayRate"`

	FeesPendingTotal decimal.Decimal `json:"feesPendingTotal"`
	FeesOverdueTotal decimal.Decimal `json:"feesOverdueTotal"`

	MessagesUnread int64 `json:"messagesUnread"`
}
