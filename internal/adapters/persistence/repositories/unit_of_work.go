package repositories

import (
	"context"

	"gorm.io/gorm"
)

// gormUnitOfWork implements UnitOfWork on a GORM transaction. All
// repositories handed to fn are bound to the same database transaction,
// so a ledger operation commits as a whole or rolls back as a whole.
type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a transactional unit of work
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

// Do runs fn inside one database transaction
func (u *gormUnitOfWork) Do(ctx context.Context, fn func(r *Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repos{
			Members:       NewMemberRepository(tx),
			Loans:         NewLoanRepository(tx),
			Transactions:  NewTransactionRepository(tx),
			Contributions: NewContributionRepository(tx),
		})
	})
}
