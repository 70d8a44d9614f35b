package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"fundledger/internal/adapters/persistence/repositories"
	"fundledger/internal/core/domain"
)

// In-memory repositories backing the service tests. They honor the same
// contracts as the GORM implementations but keep everything in maps.

type memMemberRepo struct {
	members map[string]*domain.Member
}

func (m *memMemberRepo) Create(_ context.Context, member *domain.Member) error {
	cp := *member
	m.members[member.ID] = &cp
	return nil
}

func (m *memMemberRepo) GetByID(_ context.Context, id string) (*domain.Member, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	cp := *member
	return &cp, nil
}

func (m *memMemberRepo) Update(_ context.Context, member *domain.Member) error {
	if _, ok := m.members[member.ID]; !ok {
		return domain.ErrMemberNotFound
	}
	cp := *member
	m.members[member.ID] = &cp
	return nil
}

func (m *memMemberRepo) Delete(_ context.Context, id string) error {
	delete(m.members, id)
	return nil
}

func (m *memMemberRepo) List(_ context.Context, offset, limit int) ([]*domain.Member, int64, error) {
	ids := make([]string, 0, len(m.members))
	for id := range m.members {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.Member, 0, len(ids))
	for _, id := range ids {
		cp := *m.members[id]
		out = append(out, &cp)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (m *memMemberRepo) Search(_ context.Context, query string, limit int) ([]*domain.Member, error) {
	var out []*domain.Member
	for _, member := range m.members {
		if strings.Contains(member.ID, query) || strings.Contains(member.FullName, query) {
			cp := *member
			out = append(out, &cp)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memMemberRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.members[id]
	return ok, nil
}

type memLoanRepo struct {
	loans map[string]*domain.Loan
}

func (m *memLoanRepo) Create(_ context.Context, loan *domain.Loan) error {
	cp := *loan
	m.loans[loan.ID] = &cp
	return nil
}

func (m *memLoanRepo) GetByID(_ context.Context, id string) (*domain.Loan, error) {
	loan, ok := m.loans[id]
	if !ok {
		return nil, domain.ErrLoanNotFound
	}
	cp := *loan
	return &cp, nil
}

func (m *memLoanRepo) Update(_ context.Context, loan *domain.Loan) error {
	if _, ok := m.loans[loan.ID]; !ok {
		return domain.ErrLoanNotFound
	}
	cp := *loan
	m.loans[loan.ID] = &cp
	return nil
}

func (m *memLoanRepo) List(_ context.Context, status string, offset, limit int) ([]*domain.Loan, int64, error) {
	var out []*domain.Loan
	for _, loan := range m.loans {
		if status != "" && string(loan.Status) != status {
			continue
		}
		cp := *loan
		out = append(out, &cp)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (m *memLoanRepo) ListByBorrower(_ context.Context, memberID string) ([]*domain.Loan, error) {
	var out []*domain.Loan
	for _, loan := range m.loans {
		if loan.BorrowerID == memberID {
			cp := *loan
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memLoanRepo) HasActiveAsCosigner(_ context.Context, memberID string) (bool, error) {
	for _, loan := range m.loans {
		if loan.Status == domain.LoanActive && loan.CosignerID != nil && *loan.CosignerID == memberID {
			return true, nil
		}
	}
	return false, nil
}

type memTransactionRepo struct {
	entries []*domain.Transaction
}

func (m *memTransactionRepo) Create(_ context.Context, tx *domain.Transaction) error {
	cp := *tx
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memTransactionRepo) List(_ context.Context, txType string, offset, limit int) ([]*domain.Transaction, int64, error) {
	var out []*domain.Transaction
	for _, tx := range m.entries {
		if txType != "" && string(tx.Type) != txType {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (m *memTransactionRepo) ListByMember(_ context.Context, memberID, txType string, offset, limit int) ([]*domain.Transaction, int64, error) {
	var out []*domain.Transaction
	for _, tx := range m.entries {
		if tx.MemberID != memberID {
			continue
		}
		if txType != "" && string(tx.Type) != txType {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (m *memTransactionRepo) ListByMemberTypeAfter(_ context.Context, memberID string, txType domain.TransactionType, after time.Time) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, tx := range m.entries {
		if tx.MemberID == memberID && tx.Type == txType && tx.Date.After(after) {
			cp := *tx
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type memContributionRepo struct {
	rows map[string]map[int]*domain.YearlyContribution
}

func (m *memContributionRepo) GetByMemberYear(_ context.Context, memberID string, year int) (*domain.YearlyContribution, error) {
	byYear, ok := m.rows[memberID]
	if !ok {
		return nil, nil
	}
	yc, ok := byYear[year]
	if !ok {
		return nil, nil
	}
	cp := *yc
	return &cp, nil
}

func (m *memContributionRepo) Upsert(_ context.Context, yc *domain.YearlyContribution) error {
	byYear, ok := m.rows[yc.MemberID]
	if !ok {
		byYear = make(map[int]*domain.YearlyContribution)
		m.rows[yc.MemberID] = byYear
	}
	cp := *yc
	byYear[yc.Year] = &cp
	return nil
}

func (m *memContributionRepo) ListByMember(_ context.Context, memberID string) ([]*domain.YearlyContribution, error) {
	var out []*domain.YearlyContribution
	for _, yc := range m.rows[memberID] {
		cp := *yc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func (m *memContributionRepo) SumByMember(_ context.Context, memberID string) (float64, error) {
	var sum float64
	for _, yc := range m.rows[memberID] {
		sum += yc.Amount
	}
	return sum, nil
}

// memUnitOfWork applies writes directly; the rollback path is covered by
// the GORM implementation and not simulated here.
type memUnitOfWork struct {
	repos *repositories.Repos
}

func (u *memUnitOfWork) Do(_ context.Context, fn func(r *repositories.Repos) error) error {
	return fn(u.repos)
}

type memStore struct {
	members       *memMemberRepo
	loans         *memLoanRepo
	transactions  *memTransactionRepo
	contributions *memContributionRepo
	repos         *repositories.Repos
	uow           repositories.UnitOfWork
}

func newMemStore() *memStore {
	members := &memMemberRepo{members: make(map[string]*domain.Member)}
	loans := &memLoanRepo{loans: make(map[string]*domain.Loan)}
	transactions := &memTransactionRepo{}
	contributions := &memContributionRepo{rows: make(map[string]map[int]*domain.YearlyContribution)}
	repos := &repositories.Repos{
		Members:       members,
		Loans:         loans,
		Transactions:  transactions,
		Contributions: contributions,
	}
	return &memStore{
		members:       members,
		loans:         loans,
		transactions:  transactions,
		contributions: contributions,
		repos:         repos,
		uow:           &memUnitOfWork{repos: repos},
	}
}

func (s *memStore) addMember(member *domain.Member) {
	if member.AccountStatus == "" {
		member.AccountStatus = domain.AccountActive
	}
	cp := *member
	s.members.members[member.ID] = &cp
}
