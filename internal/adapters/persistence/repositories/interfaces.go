package repositories

import (
	"context"
	"time"

	"fundledger/internal/core/domain"
)

// MemberRepository defines member data access
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*domain.Member, int64, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.Member, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// LoanRepository defines loan data access
type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	Update(ctx context.Context, loan *domain.Loan) error
	List(ctx context.Context, status string, offset, limit int) ([]*domain.Loan, int64, error)
	ListByBorrower(ctx context.Context, memberID string) ([]*domain.Loan, error)
	HasActiveAsCosigner(ctx context.Context, memberID string) (bool, error)
}

// TransactionRepository defines access to the append-only transaction log.
// There are deliberately no update or delete methods.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	List(ctx context.Context, txType string, offset, limit int) ([]*domain.Transaction, int64, error)
	ListByMember(ctx context.Context, memberID, txType string, offset, limit int) ([]*domain.Transaction, int64, error)
	// ListByMemberTypeAfter returns the member's transactions of one type
	// dated strictly after the given instant, in chronological order.
	ListByMemberTypeAfter(ctx context.Context, memberID string, txType domain.TransactionType, after time.Time) ([]*domain.Transaction, error)
}

// ContributionRepository defines access to the yearly contribution side ledger
type ContributionRepository interface {
	GetByMemberYear(ctx context.Context, memberID string, year int) (*domain.YearlyContribution, error)
	Upsert(ctx context.Context, yc *domain.YearlyContribution) error
	ListByMember(ctx context.Context, memberID string) ([]*domain.YearlyContribution, error)
	SumByMember(ctx context.Context, memberID string) (float64, error)
}

// Repos groups the ledger repositories bound to one transactional scope
type Repos struct {
	Members       MemberRepository
	Loans         LoanRepository
	Transactions  TransactionRepository
	Contributions ContributionRepository
}

// UnitOfWork runs a function against a transactional repository set.
// Either every write inside fn commits, or none do; no observer sees an
// intermediate ledger state.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r *Repos) error) error
}
