package models

import (
	"time"

	"fundledger/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Ledger tables
// ============================================================

// Member represents the members table
type Member struct {
	ID                string     `gorm:"primaryKey;size:20" json:"id"`
	FullName          string     `gorm:"size:100;not null" json:"full_name"`
	AccountStatus     string     `gorm:"size:20;not null;default:'ACTIVE'" json:"account_status"`
	TotalContribution float64    `gorm:"type:decimal(15,2);not null;default:0" json:"total_contribution"`
	ActiveLoanID      *string    `gorm:"size:36" json:"active_loan_id"`
	LastLoanPaidDate  *time.Time `json:"last_loan_paid_date"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// ToDomain converts the row to a domain member
func (m *Member) ToDomain() *domain.Member {
	return &domain.Member{
		ID:                m.ID,
		FullName:          m.FullName,
		AccountStatus:     domain.AccountStatus(m.AccountStatus),
		TotalContribution: m.TotalContribution,
		ActiveLoanID:      m.ActiveLoanID,
		LastLoanPaidDate:  m.LastLoanPaidDate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// MemberFromDomain converts a domain member to a row
func MemberFromDomain(m *domain.Member) *Member {
	return &Member{
		ID:                m.ID,
		FullName:          m.FullName,
		AccountStatus:     string(m.AccountStatus),
		TotalContribution: m.TotalContribution,
		ActiveLoanID:      m.ActiveLoanID,
		LastLoanPaidDate:  m.LastLoanPaidDate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// Loan represents the loans table
type Loan struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	BorrowerID       string    `gorm:"size:20;not null;index" json:"borrower_id"`
	CosignerID       *string   `gorm:"size:20;index" json:"cosigner_id"`
	OriginalAmount   float64   `gorm:"type:decimal(15,2);not null" json:"original_amount"`
	RemainingBalance float64   `gorm:"type:decimal(15,2);not null" json:"remaining_balance"`
	FeeAmount        float64   `gorm:"type:decimal(15,2);not null" json:"fee_amount"`
	FeeDisposition   string    `gorm:"size:20;not null" json:"fee_disposition"`
	TermMonths       int       `gorm:"not null" json:"term_months"`
	Status           string    `gorm:"size:20;not null;index" json:"status"`
	StartDate        time.Time `gorm:"not null" json:"start_date"`
	NextPaymentDue   time.Time `gorm:"not null" json:"next_payment_due"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Borrower *Member `gorm:"foreignKey:BorrowerID" json:"borrower,omitempty"`
	Cosigner *Member `gorm:"foreignKey:CosignerID" json:"cosigner,omitempty"`
}

func (Loan) TableName() string {
	return "loans"
}

// ToDomain converts the row to a domain loan
func (l *Loan) ToDomain() *domain.Loan {
	return &domain.Loan{
		ID:               l.ID,
		BorrowerID:       l.BorrowerID,
		CosignerID:       l.CosignerID,
		OriginalAmount:   l.OriginalAmount,
		RemainingBalance: l.RemainingBalance,
		FeeAmount:        l.FeeAmount,
		FeeDisposition:   domain.FeeDisposition(l.FeeDisposition),
		TermMonths:       l.TermMonths,
		Status:           domain.LoanStatus(l.Status),
		StartDate:        l.StartDate,
		NextPaymentDue:   l.NextPaymentDue,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// LoanFromDomain converts a domain loan to a row
func LoanFromDomain(l *domain.Loan) *Loan {
	return &Loan{
		ID:               l.ID,
		BorrowerID:       l.BorrowerID,
		CosignerID:       l.CosignerID,
		OriginalAmount:   l.OriginalAmount,
		RemainingBalance: l.RemainingBalance,
		FeeAmount:        l.FeeAmount,
		FeeDisposition:   string(l.FeeDisposition),
		TermMonths:       l.TermMonths,
		Status:           string(l.Status),
		StartDate:        l.StartDate,
		NextPaymentDue:   l.NextPaymentDue,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// Transaction represents the transactions table. Rows are append-only:
// nothing in the application updates or deletes them.
type Transaction struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	MemberID      string    `gorm:"size:20;not null;index" json:"member_id"`
	LoanID        *string   `gorm:"size:36;index" json:"loan_id"`
	Type          string    `gorm:"size:20;not null;index" json:"type"`
	Amount        float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	Description   string    `gorm:"type:text" json:"description"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	ReceivedBy    string    `gorm:"size:100" json:"received_by"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// ToDomain converts the row to a domain transaction
func (t *Transaction) ToDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:            t.ID,
		MemberID:      t.MemberID,
		LoanID:        t.LoanID,
		Type:          domain.TransactionType(t.Type),
		Amount:        t.Amount,
		Date:          t.Date,
		Description:   t.Description,
		PaymentMethod: t.PaymentMethod,
		ReceivedBy:    t.ReceivedBy,
		CreatedAt:     t.CreatedAt,
	}
}

// TransactionFromDomain converts a domain transaction to a row
func TransactionFromDomain(t *domain.Transaction) *Transaction {
	return &Transaction{
		ID:            t.ID,
		MemberID:      t.MemberID,
		LoanID:        t.LoanID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Date:          t.Date,
		Description:   t.Description,
		PaymentMethod: t.PaymentMethod,
		ReceivedBy:    t.ReceivedBy,
		CreatedAt:     t.CreatedAt,
	}
}

// YearlyContribution represents the yearly_contributions side ledger
type YearlyContribution struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MemberID  string    `gorm:"size:20;not null;uniqueIndex:idx_member_year" json:"member_id"`
	Year      int       `gorm:"not null;uniqueIndex:idx_member_year" json:"year"`
	Amount    float64   `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (YearlyContribution) TableName() string {
	return "yearly_contributions"
}

// ToDomain converts the row to a domain yearly contribution
func (y *YearlyContribution) ToDomain() *domain.YearlyContribution {
	return &domain.YearlyContribution{
		MemberID: y.MemberID,
		Year:     y.Year,
		Amount:   y.Amount,
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates all application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Member{},
		&Loan{},
		&Transaction{},
		&YearlyContribution{},
	)
}
