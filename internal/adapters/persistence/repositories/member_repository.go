package repositories

import (
	"context"
	"errors"

	"fundledger/internal/adapters/persistence/models"
	"fundledger/internal/core/domain"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository on GORM
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create inserts a new member
func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	return r.db.WithContext(ctx).Create(models.MemberFromDomain(member)).Error
}

// GetByID gets a member by id
func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	var row models.Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Update saves a member's mutable fields
func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	row := models.MemberFromDomain(member)
	return r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ?", row.ID).
		Select("FullName", "AccountStatus", "TotalContribution", "ActiveLoanID", "LastLoanPaidDate").
		Updates(row).Error
}

// Delete removes a member row. Business-rule guards live in the service.
func (r *memberRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Member{}).Error
}

// List lists members with pagination
func (r *memberRepository) List(ctx context.Context, offset, limit int) ([]*domain.Member, int64, error) {
	var rows []*models.Member
	var total int64

	r.db.WithContext(ctx).Model(&models.Member{}).Count(&total)

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	members := make([]*domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, row.ToDomain())
	}
	return members, total, nil
}

// Search searches members by id or full name
func (r *memberRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Member, error) {
	var rows []*models.Member
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("id LIKE ? OR full_name LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	members := make([]*domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, row.ToDomain())
	}
	return members, nil
}

// Exists checks whether a member id is taken
func (r *memberRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
