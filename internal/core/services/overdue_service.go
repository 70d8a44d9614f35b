package services

import (
	"log"
	"time"

	"fundledger/internal/core/domain"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OverdueMonitor runs a daily scan for active loans past their due
// date and logs them for the treasurer's morning review. It never
// mutates the ledger; late fees are only assessed at repayment time.
type OverdueMonitor struct {
	db   *gorm.DB
	cron *cron.Cron
}

// NewOverdueMonitor creates a new overdue monitor
func NewOverdueMonitor(db *gorm.DB) *OverdueMonitor {
	return &OverdueMonitor{
		db:   db,
		cron: cron.New(),
	}
}

// Start schedules the daily scan at 08:30
func (m *OverdueMonitor) Start() {
	m.cron.AddFunc("30 8 * * *", m.scan)
	m.cron.Start()
	log.Println("Overdue monitor started (daily at 08:30)")
}

// Stop stops the scheduler
func (m *OverdueMonitor) Stop() {
	m.cron.Stop()
}

func (m *OverdueMonitor) scan() {
	var overdue []struct {
		ID             string
		BorrowerID     string
		NextPaymentDue time.Time
	}
	err := m.db.Table("loans").
		Where("status = ? AND next_payment_due < ?", string(domain.LoanActive), time.Now()).
		Select("id, borrower_id, next_payment_due").
		Scan(&overdue).Error
	if err != nil {
		log.Printf("Overdue scan failed: %v", err)
		return
	}

	if len(overdue) == 0 {
		log.Println("Overdue scan: no loans past due")
		return
	}
	for _, l := range overdue {
		log.Printf("Overdue: loan %s (borrower %s) due since %s",
			l.ID, l.BorrowerID, l.NextPaymentDue.Format("2006-01-02"))
	}
}
