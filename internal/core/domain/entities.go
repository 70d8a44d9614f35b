package domain

import "time"

// AccountStatus represents a member's standing in the fund
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
)

// LoanStatus represents loan lifecycle state
type LoanStatus string

const (
	LoanActive    LoanStatus = "ACTIVE"
	LoanPaid      LoanStatus = "PAID"
	LoanDefaulted LoanStatus = "DEFAULTED"
)

// FeeDisposition controls how the application fee is collected
type FeeDisposition string

const (
	FeeUpfront     FeeDisposition = "UPFRONT"
	FeeCapitalized FeeDisposition = "CAPITALIZED"
)

// TransactionType classifies ledger entries
type TransactionType string

const (
	TxContribution  TransactionType = "CONTRIBUTION"
	TxLoanDisbursal TransactionType = "LOAN_DISBURSAL"
	TxLoanRepayment TransactionType = "LOAN_REPAYMENT"
	TxFee           TransactionType = "FEE"
)

// Member represents a fund member in the domain layer.
// ID is human-assigned at admin creation time and never changes.
type Member struct {
	ID                string        `json:"id"`
	FullName          string        `json:"full_name"`
	AccountStatus     AccountStatus `json:"account_status"`
	TotalContribution float64       `json:"total_contribution"`
	ActiveLoanID      *string       `json:"active_loan_id"`
	LastLoanPaidDate  *time.Time    `json:"last_loan_paid_date"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// Loan represents a member-to-member loan backed by the fund.
// RemainingBalance only decreases through repayment, or increases when a
// late fee is capitalized at repayment time.
type Loan struct {
	ID               string         `json:"id"`
	BorrowerID       string         `json:"borrower_id"`
	CosignerID       *string        `json:"cosigner_id"`
	OriginalAmount   float64        `json:"original_amount"`
	RemainingBalance float64        `json:"remaining_balance"`
	FeeAmount        float64        `json:"fee_amount"`
	FeeDisposition   FeeDisposition `json:"fee_disposition"`
	TermMonths       int            `json:"term_months"`
	Status           LoanStatus     `json:"status"`
	StartDate        time.Time      `json:"start_date"`
	NextPaymentDue   time.Time      `json:"next_payment_due"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Transaction is an immutable append-only ledger entry. Transactions are
// never updated or deleted; totals and schedules are recomputed from them.
type Transaction struct {
	ID            string          `json:"id"`
	MemberID      string          `json:"member_id"`
	LoanID        *string         `json:"loan_id,omitempty"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	ReceivedBy    string          `json:"received_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// YearlyContribution is the per-year side ledger for one member,
// reconciled on demand against Member.TotalContribution.
type YearlyContribution struct {
	MemberID string  `json:"member_id"`
	Year     int     `json:"year"`
	Amount   float64 `json:"amount"`
}

// EligibilityResult is the outcome of the loan eligibility check
type EligibilityResult struct {
	Eligible bool    `json:"eligible"`
	Reason   string  `json:"reason,omitempty"`
	Limit    float64 `json:"limit,omitempty"`
}

// ScheduleRow is one projected installment of a loan schedule
type ScheduleRow struct {
	Installment int        `json:"installment"`
	DueDate     time.Time  `json:"due_date"`
	Amount      float64    `json:"amount"`
	PaidAmount  *float64   `json:"paid_amount,omitempty"`
	PaidDate    *time.Time `json:"paid_date,omitempty"`
}

// ScheduleProjection is a read-only amortization view of a loan.
// Repayments are matched to rows positionally, best-effort; the
// authoritative figure is always Loan.RemainingBalance.
type ScheduleProjection struct {
	LoanID         string        `json:"loan_id"`
	MonthlyPayment float64       `json:"monthly_payment"`
	TotalPaid      float64       `json:"total_paid"`
	Rows           []ScheduleRow `json:"rows"`
}

// ReconcileResult reports a side-ledger reconciliation for one member
type ReconcileResult struct {
	MemberID          string  `json:"member_id"`
	TotalContribution float64 `json:"total_contribution"`
	YearlySum         float64 `json:"yearly_sum"`
	Difference        float64 `json:"difference"`
	Balanced          bool    `json:"balanced"`
}
