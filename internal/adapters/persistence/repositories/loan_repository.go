package repositories

import (
	"context"
	"errors"

	"fundledger/internal/adapters/persistence/models"
	"fundledger/internal/core/domain"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepository on GORM
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create inserts a new loan
func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	return r.db.WithContext(ctx).Create(models.LoanFromDomain(loan)).Error
}

// GetByID gets a loan by id
func (r *loanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	var row models.Loan
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Update saves a loan's mutable fields
func (r *loanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	row := models.LoanFromDomain(loan)
	return r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("id = ?", row.ID).
		Select("RemainingBalance", "Status", "NextPaymentDue").
		Updates(row).Error
}

// List lists loans, optionally filtered by status, with pagination
func (r *loanRepository) List(ctx context.Context, status string, offset, limit int) ([]*domain.Loan, int64, error) {
	var rows []*models.Loan
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Loan{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	q.Count(&total)

	err := q.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	loans := make([]*domain.Loan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, row.ToDomain())
	}
	return loans, total, nil
}

// ListByBorrower lists a member's loans, newest first
func (r *loanRepository) ListByBorrower(ctx context.Context, memberID string) ([]*domain.Loan, error) {
	var rows []*models.Loan
	err := r.db.WithContext(ctx).
		Where("borrower_id = ?", memberID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	loans := make([]*domain.Loan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, row.ToDomain())
	}
	return loans, nil
}

// HasActiveAsCosigner checks whether the member cosigns any ACTIVE loan
func (r *loanRepository) HasActiveAsCosigner(ctx context.Context, memberID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("cosigner_id = ? AND status = ?", memberID, string(domain.LoanActive)).
		Count(&count).Error
	return count > 0, err
}
