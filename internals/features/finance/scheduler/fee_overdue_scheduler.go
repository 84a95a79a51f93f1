package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	m "classdesk_backend/internals/features/finance/model"
)

// StartFeeOverdueScheduler flips pending fees whose due date passed to
// overdue once a day, shortly after midnight. Returns the cron so the
// caller can Stop() it on shutdown.
func StartFeeOverdueScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("5 0 * * *", func() {
		SweepOverdueFees(db, time.Now())
	})
	if err != nil {
		log.Printf("fee scheduler setup err: %v", err)
		return c
	}
	c.Start()

	// one sweep at boot so a long-stopped instance catches up
	go SweepOverdueFees(db, time.Now())
	return c
}

// SweepOverdueFees marks pending fees past due as overdue.
func SweepOverdueFees(db *gorm.DB, now time.Time) {
	today := now.Format("2006-01-02")
	res := db.Model(&m.FeeModel{}).
		Where("status = ? AND due_date < ?", m.FeeStatusPending, today).
		Update("status", m.FeeStatusOverdue)
	if res.Error != nil {
		log.Printf("[FEES] overdue sweep err: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[FEES] %d fee(s) marked overdue", res.RowsAffected)
	}
}
