package repositories

import (
	"context"
	"time"

	"fundledger/internal/adapters/persistence/models"
	"fundledger/internal/core/domain"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepository on GORM.
// The log is append-only: the implementation exposes no way to mutate
// or remove rows.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create appends a ledger entry
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return r.db.WithContext(ctx).Create(models.TransactionFromDomain(tx)).Error
}

// List lists the fund-wide log, newest first, optionally by type
func (r *transactionRepository) List(ctx context.Context, txType string, offset, limit int) ([]*domain.Transaction, int64, error) {
	var rows []*models.Transaction
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Transaction{})
	if txType != "" {
		q = q.Where("type = ?", txType)
	}
	q.Count(&total)

	err := q.Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return toDomainTransactions(rows), total, nil
}

// ListByMember lists one member's statement, newest first
func (r *transactionRepository) ListByMember(ctx context.Context, memberID, txType string, offset, limit int) ([]*domain.Transaction, int64, error) {
	var rows []*models.Transaction
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("member_id = ?", memberID)
	if txType != "" {
		q = q.Where("type = ?", txType)
	}
	q.Count(&total)

	err := q.Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return toDomainTransactions(rows), total, nil
}

// ListByMemberTypeAfter returns a member's entries of one type dated
// strictly after the given instant, oldest first
func (r *transactionRepository) ListByMemberTypeAfter(ctx context.Context, memberID string, txType domain.TransactionType, after time.Time) ([]*domain.Transaction, error) {
	var rows []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND type = ? AND date > ?", memberID, string(txType), after).
		Order("date ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransactions(rows), nil
}

func toDomainTransactions(rows []*models.Transaction) []*domain.Transaction {
	txs := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, row.ToDomain())
	}
	return txs
}
