package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viccon/sturdyc"
	"gorm.io/gorm"

	academicsModel "classdesk_backend/internals/features/academics/model"
	attendanceModel "classdesk_backend/internals/features/attendance/model"
	financeModel "classdesk_backend/internals/features/finance/model"
	dto "classdesk_backend/internals/features/home/dto"
	messagingModel "classdesk_backend/internals/features/messaging/model"
	peopleModel "classdesk_backend/internals/features/people/model"
)

const metricsKey = "dashboard::metrics"

// MetricsService computes the dashboard summary and caches it behind a
// short TTL so the dashboard poll does not hammer the DB with count
// queries. sturdyc also deduplicates concurrent requests for the key.
type MetricsService struct {
	db    *gorm.DB
	cache *sturdyc.Client[dto.DashboardMetrics]
}

func NewMetricsService(db *gorm.DB, ttl time.Duration) *MetricsService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &MetricsService{
		db:    db,
		cache: sturdyc.New[dto.DashboardMetrics](64, 1, ttl, 10),
	}
}

func (s *MetricsService) Metrics(ctx context.Context) (dto.DashboardMetrics, error) {
	return s.cache.GetOrFetch(ctx, metricsKey, func(ctx context.Context) (dto.DashboardMetrics, error) {
		return s.compute(ctx)
	})
}

func (s *MetricsService) compute(ctx context.Context) (dto.DashboardMetrics, error) {
	var out dto.DashboardMetrics
	db := s.db.WithContext(ctx)

	type counted struct {
		model any
		dst   *int64
	}
	for _, c := range []counted{
		{&peopleModel.StudentModel{}, &out.Students},
		{&peopleModel.TeacherModel{}, &out.Teachers},
		{&academicsModel.CourseModel{}, &out.Courses},
		{&academicsModel.BatchModel{}, &out.Batches},
		{&academicsModel.EnrollmentModel{}, &out.Enrollments},
	} {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return out, err
		}
	}

	// today's attendance rate: present+late over all records for today
	today := time.Now().Format("2006-01-02")
	var todayTotal, todayPresent int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("date = ?", today).Count(&todayTotal).Error; err != nil {
		return out, err
	}
	if todayTotal > 0 {
		if err := db.Model(&attendanceModel.AttendanceModel{}).
			Where("date = ? AND status IN ?", today, []attendanceModel.AttendanceStatus{
				attendanceModel.AttendanceStatusPresent,
				attendanceModel.AttendanceStatusLate,
			}).Count(&todayPresent).Error; err != nil {
			return out, err
		}
		out.AttendanceTodayRate = float64(todayPresent) / float64(todayTotal)
	}

	pending, err := s.sumFees(ctx, financeModel.FeeStatusPending)
	if err != nil {
		return out, err
	}
	out.FeesPendingTotal = pending

	overdue, err := s.sumFees(ctx, financeModel.FeeStatusOverdue)
	if err != nil {
		return out, err
	}
	out.FeesOverdueTotal = overdue

	if err := db.Model(&messagingModel.MessageModel{}).
		Where("read = ?", false).Count(&out.MessagesUnread).Error; err != nil {
		return out, err
	}
	return out, nil
}

func (s *MetricsService) sumFees(ctx context.Context, status financeModel.FeeStatus) (decimal.Decimal, error) {
	var raw *string
	err := s.db.WithContext(ctx).Model(&financeModel.FeeModel{}).
		Where("status = ?", status).
		Select("SUM(amount)::text").
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if raw == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}
