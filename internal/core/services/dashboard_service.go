package services

import (
	"context"
	"time"

	"fundledger/internal/core/domain"

	"gorm.io/gorm"
)

// DashboardService aggregates fund-wide reporting figures straight from
// the database. Read-only.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardData represents the fund overview
type DashboardData struct {
	// Member statistics
	TotalMembers    int64 `json:"total_members"`
	ActiveMembers   int64 `json:"active_members"`
	InactiveMembers int64 `json:"inactive_members"`

	// Fund flows
	TotalContributions float64 `json:"total_contributions"`
	TotalDisbursed     float64 `json:"total_disbursed"`
	TotalRepaid        float64 `json:"total_repaid"`
	TotalFees          float64 `json:"total_fees"`

	// Loan statistics
	ActiveLoans          int64   `json:"active_loans"`
	PaidLoans            int64   `json:"paid_loans"`
	DefaultedLoans       int64   `json:"defaulted_loans"`
	OutstandingPrincipal float64 `json:"outstanding_principal"`

	// Loans past their due date
	OverdueLoans []OverdueLoan `json:"overdue_loans"`

	// Recent ledger activity
	RecentTransactions []TransactionSummary `json:"recent_transactions"`
}

// OverdueLoan represents one active loan past due
type OverdueLoan struct {
	LoanID           string    `json:"loan_id"`
	BorrowerID       string    `json:"borrower_id"`
	RemainingBalance float64   `json:"remaining_balance"`
	NextPaymentDue   time.Time `json:"next_payment_due"`
}

// TransactionSummary represents one recent ledger entry
type TransactionSummary struct {
	ID       string    `json:"id"`
	MemberID string    `json:"member_id"`
	Type     string    `json:"type"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}

// GetDashboard returns the fund overview
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	// Member counts
	s.db.WithContext(ctx).Table("members").Count(&data.TotalMembers)
	s.db.WithContext(ctx).Table("members").Where("account_status = ?", string(domain.AccountActive)).Count(&data.ActiveMembers)
	data.InactiveMembers = data.TotalMembers - data.ActiveMembers

	// Fund flows by transaction type
	s.db.WithContext(ctx).Table("transactions").
		Where("type = ?", string(domain.TxContribution)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalContributions)
	s.db.WithContext(ctx).Table("transactions").
		Where("type = ?", string(domain.TxLoanDisbursal)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalDisbursed)
	s.db.WithContext(ctx).Table("transactions").
		Where("type = ?", string(domain.TxLoanRepayment)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalRepaid)
	s.db.WithContext(ctx).Table("transactions").
		Where("type = ?", string(domain.TxFee)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalFees)

	// Loan counts and outstanding principal
	s.db.WithContext(ctx).Table("loans").Where("status = ?", string(domain.LoanActive)).Count(&data.ActiveLoans)
	s.db.WithContext(ctx).Table("loans").Where("status = ?", string(domain.LoanPaid)).Count(&data.PaidLoans)
	s.db.WithContext(ctx).Table("loans").Where("status = ?", string(domain.LoanDefaulted)).Count(&data.DefaultedLoans)
	s.db.WithContext(ctx).Table("loans").
		Where("status = ?", string(domain.LoanActive)).
		Select("COALESCE(SUM(remaining_balance), 0)").
		Scan(&data.OutstandingPrincipal)

	// Overdue loans
	err := s.db.WithContext(ctx).Table("loans").
		Where("status = ? AND next_payment_due < ?", string(domain.LoanActive), time.Now()).
		Order("next_payment_due ASC").
		Select("id AS loan_id, borrower_id, remaining_balance, next_payment_due").
		Scan(&data.OverdueLoans).Error
	if err != nil {
		return nil, err
	}

	// Last 10 ledger entries
	err = s.db.WithContext(ctx).Table("transactions").
		Order("date DESC, created_at DESC").
		Limit(10).
		Select("id, member_id, type, amount, date").
		Scan(&data.RecentTransactions).Error
	if err != nil {
		return nil, err
	}

	return data, nil
}
