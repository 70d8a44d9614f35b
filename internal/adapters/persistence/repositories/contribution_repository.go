package repositories

import (
	"context"
	"errors"

	"fundledger/internal/adapters/persistence/models"
	"fundledger/internal/core/domain"

	"gorm.io/gorm"
)

// contributionRepository implements ContributionRepository on GORM
type contributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates a new yearly contribution repository
func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

// GetByMemberYear gets one member-year row, or nil when absent
func (r *contributionRepository) GetByMemberYear(ctx context.Context, memberID string, year int) (*domain.YearlyContribution, error) {
	var row models.YearlyContribution
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND year = ?", memberID, year).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Upsert creates or replaces the amount for one member-year
func (r *contributionRepository) Upsert(ctx context.Context, yc *domain.YearlyContribution) error {
	var row models.YearlyContribution
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND year = ?", yc.MemberID, yc.Year).
		First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return r.db.WithContext(ctx).Create(&models.YearlyContribution{
			MemberID: yc.MemberID,
			Year:     yc.Year,
			Amount:   yc.Amount,
		}).Error
	}

	return r.db.WithContext(ctx).
		Model(&models.YearlyContribution{}).
		Where("id = ?", row.ID).
		Update("amount", yc.Amount).Error
}

// ListByMember lists a member's year map ordered by year
func (r *contributionRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.YearlyContribution, error) {
	var rows []*models.YearlyContribution
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("year ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ycs := make([]*domain.YearlyContribution, 0, len(rows))
	for _, row := range rows {
		ycs = append(ycs, row.ToDomain())
	}
	return ycs, nil
}

// SumByMember sums all years for one member
func (r *contributionRepository) SumByMember(ctx context.Context, memberID string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&models.YearlyContribution{}).
		Where("member_id = ?", memberID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
