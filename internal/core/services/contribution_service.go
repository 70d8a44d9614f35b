package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"fundledger/internal/adapters/persistence/repositories"
	"fundledger/internal/core/domain"

	"github.com/google/uuid"
)

// ContributionService records member contributions and maintains the
// yearly side ledger. Contributions are always accepted for positive
// amounts; account status is deliberately not checked, so inactive
// members may keep contributing.
type ContributionService struct {
	uow   repositories.UnitOfWork
	repos *repositories.Repos
	now   func() time.Time
}

// NewContributionService creates a new contribution service
func NewContributionService(uow repositories.UnitOfWork, repos *repositories.Repos) *ContributionService {
	return &ContributionService{
		uow:   uow,
		repos: repos,
		now:   time.Now,
	}
}

// RecordContributionInput represents contribution input
type RecordContributionInput struct {
	MemberID      string  `json:"member_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	ReceivedBy    string  `json:"received_by"`
}

// RecordContribution appends a contribution entry, bumps the member's
// lifetime total and accrues the current year's side-ledger row, all in
// one unit of work.
func (s *ContributionService) RecordContribution(ctx context.Context, input *RecordContributionInput) (*domain.Transaction, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", domain.ErrValidation)
	}

	var entry *domain.Transaction
	err := s.uow.Do(ctx, func(r *repositories.Repos) error {
		member, err := r.Members.GetByID(ctx, input.MemberID)
		if err != nil {
			return err
		}

		now := s.now()
		member.TotalContribution += input.Amount
		if err := r.Members.Update(ctx, member); err != nil {
			return err
		}

		year := now.Year()
		yc, err := r.Contributions.GetByMemberYear(ctx, member.ID, year)
		if err != nil {
			return err
		}
		if yc == nil {
			yc = &domain.YearlyContribution{MemberID: member.ID, Year: year}
		}
		yc.Amount += input.Amount
		if err := r.Contributions.Upsert(ctx, yc); err != nil {
			return err
		}

		entry = &domain.Transaction{
			ID:            uuid.NewString(),
			MemberID:      member.ID,
			Type:          domain.TxContribution,
			Amount:        input.Amount,
			Date:          now,
			Description:   fmt.Sprintf("Fund contribution for %d", year),
			PaymentMethod: input.PaymentMethod,
			ReceivedBy:    input.ReceivedBy,
		}
		return r.Transactions.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// YearlyByMember returns a member's per-year contribution rows
func (s *ContributionService) YearlyByMember(ctx context.Context, memberID string) ([]*domain.YearlyContribution, error) {
	if _, err := s.repos.Members.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	return s.repos.Contributions.ListByMember(ctx, memberID)
}

// Reconcile recomputes the sum of a member's yearly rows and compares
// it to the lifetime total. It reports drift, it does not repair it.
func (s *ContributionService) Reconcile(ctx context.Context, memberID string) (*domain.ReconcileResult, error) {
	member, err := s.repos.Members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	sum, err := s.repos.Contributions.SumByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	diff := member.TotalContribution - sum
	return &domain.ReconcileResult{
		MemberID:          member.ID,
		TotalContribution: member.TotalContribution,
		YearlySum:         sum,
		Difference:        diff,
		Balanced:          math.Abs(diff) < domain.BalanceEpsilon,
	}, nil
}
