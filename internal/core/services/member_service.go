package services

import (
	"context"
	"fmt"
	"strings"

	"fundledger/internal/adapters/persistence/repositories"
	"fundledger/internal/core/domain"
)

// MemberService handles member administration. Members are created by
// an admin and never deleted while they hold ledger obligations.
type MemberService struct {
	uow   repositories.UnitOfWork
	repos *repositories.Repos
}

// NewMemberService creates a new member service
func NewMemberService(uow repositories.UnitOfWork, repos *repositories.Repos) *MemberService {
	return &MemberService{uow: uow, repos: repos}
}

// CreateMemberInput represents member creation input
type CreateMemberInput struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// Create registers a new member with a human-assigned id
func (s *MemberService) Create(ctx context.Context, input *CreateMemberInput) (*domain.Member, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: member id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, fmt.Errorf("%w: full name is required", domain.ErrValidation)
	}

	member := &domain.Member{
		ID:            id,
		FullName:      strings.TrimSpace(input.FullName),
		AccountStatus: domain.AccountActive,
	}
	err := s.uow.Do(ctx, func(r *repositories.Repos) error {
		taken, err := r.Members.Exists(ctx, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrMemberExists
		}
		return r.Members.Create(ctx, member)
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Get gets a member by id
func (s *MemberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	return s.repos.Members.GetByID(ctx, id)
}

// List lists members with pagination
func (s *MemberService) List(ctx context.Context, offset, limit int) ([]*domain.Member, int64, error) {
	return s.repos.Members.List(ctx, offset, limit)
}

// Search searches members by id or name
func (s *MemberService) Search(ctx context.Context, query string, limit int) ([]*domain.Member, error) {
	return s.repos.Members.Search(ctx, query, limit)
}

// UpdateStatus switches a member between ACTIVE and INACTIVE
func (s *MemberService) UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) (*domain.Member, error) {
	if status != domain.AccountActive && status != domain.AccountInactive {
		return nil, fmt.Errorf("%w: status must be ACTIVE or INACTIVE", domain.ErrValidation)
	}

	var member *domain.Member
	err := s.uow.Do(ctx, func(r *repositories.Repos) error {
		var err error
		member, err = r.Members.GetByID(ctx, id)
		if err != nil {
			return err
		}
		member.AccountStatus = status
		return r.Members.Update(ctx, member)
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a member. Deletion is blocked while the member has an
// active loan or actively cosigns someone else's.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	return s.uow.Do(ctx, func(r *repositories.Repos) error {
		member, err := r.Members.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if member.ActiveLoanID != nil {
			return fmt.Errorf("%w: %s", domain.ErrPolicyViolation, domain.ErrMemberHasLoan)
		}
		cosigning, err := r.Loans.HasActiveAsCosigner(ctx, id)
		if err != nil {
			return err
		}
		if cosigning {
			return fmt.Errorf("%w: %s", domain.ErrPolicyViolation, domain.ErrMemberIsCosigner)
		}
		return r.Members.Delete(ctx, id)
	})
}

// Statement returns a member's transaction log, newest first
func (s *MemberService) Statement(ctx context.Context, memberID, txType string, offset, limit int) ([]*domain.Transaction, int64, error) {
	if _, err := s.repos.Members.GetByID(ctx, memberID); err != nil {
		return nil, 0, err
	}
	return s.repos.Transactions.ListByMember(ctx, memberID, txType, offset, limit)
}
