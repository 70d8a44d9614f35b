package services

import (
	"context"
	"testing"
	"time"

	"fundledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContributionService(store *memStore, now time.Time) *ContributionService {
	svc := NewContributionService(store.uow, store.repos)
	svc.now = func() time.Time { return now }
	return svc
}

func TestRecordContribution(t *testing.T) {
	now := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	t.Run("bumps lifetime total and yearly row", func(t *testing.T) {
		store := newMemStore()
		store.addMember(&domain.Member{ID: "M001", FullName: "Alice Stone"})
		svc := newTestContributionService(store, now)

		entry, err := svc.RecordContribution(context.Background(), &RecordContributionInput{
			MemberID: "M001", Amount: 20, PaymentMethod: "cash", ReceivedBy: "treasurer",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.TxContribution, entry.Type)
		assert.Equal(t, 20.0, entry.Amount)
		assert.Equal(t, "Fund contribution for 2025", entry.Description)
		assert.NotEmpty(t, entry.ID)

		member, err := store.members.GetByID(context.Background(), "M001")
		require.NoError(t, err)
		assert.Equal(t, 20.0, member.TotalContribution)

		yc, err := store.contributions.GetByMemberYear(context.Background(), "M001", 2025)
		require.NoError(t, err)
		require.NotNil(t, yc)
		assert.Equal(t, 20.0, yc.Amount)
	})

	t.Run("repeat contributions accrue", func(t *testing.T) {
		store := newMemStore()
		store.addMember(&domain.Member{ID: "M001", FullName: "Alice Stone"})
		svc := newTestContributionService(store, now)

		first, err := svc.RecordContribution(context.Background(), &RecordContributionInput{MemberID: "M001", Amount: 20})
		require.NoError(t, err)
		second, err := svc.RecordContribution(context.Background(), &RecordContributionInput{MemberID: "M001", Amount: 35})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)

		member, err := store.members.GetByID(context.Background(), "M001")
		require.NoError(t, err)
		assert.Equal(t, 55.0, member.TotalContribution)

		yc, err := store.contributions.GetByMemberYear(context.Background(), "M001", 2025)
		require.NoError(t, err)
		assert.Equal(t, 55.0, yc.Amount)
		assert.Len(t, store.transactions.entries, 2)
	})

	t.Run("contributions split across years", func(t *testing.T) {
		store := newMemStore()
		store.addMember(&domain.Member{ID: "M001", FullName: "Alice Stone"})

		_, err := newTestContributionService(store, time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)).
			RecordContribution(context.Background(), &RecordContributionInput{MemberID: "M001", Amount: 10})
		require.NoError(t, err)
		_, err = newTestContributionService(store, now).
			RecordContribution(context.Background(), &RecordContributionInput{MemberID: "M001", Amount: 25})
		require.NoError(t, err)

		rows, err := store.contributions.ListByMember(context.Background(), "M001")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 2024, rows[0].Year)
		assert.Equal(t, 10.0, rows[0].Amount)
		assert.Equal(t, 2025, rows[1].Year)
		assert.Equal(t, 25.0, rows[1].Amount)
	})

	t.Run("inactive members may contribute", func(t *testing.T) {
		store := newMemStore()
		store.addMember(&domain.Member{ID: "M001", AccountStatus: domain.AccountInactive})
		svc := newTestContributionService(store, now)

		_, err := svc.RecordContribution(context.Background(), &RecordContributionInput{MemberID: "M001", Amount: 20})
		assert.NoError(t, err)
	})

	t.Run("non-positive amount refused", func(t *testing.T) {
		store := newMemStore()
		store.addMember(&domain.Member{ID: "M001"})
		svc := newTestContributionService(store, now)

		_, err := svc.RecordContribution(context.Background(), &RecordContributionInput{MemberID: "M001", Amount: 0})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.RecordContribution(context.Background(), &RecordContributionInput{MemberID: "M001", Amount: -5})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown member", func(t *testing.T) {
		store := newMemStore()
		svc := newTestContributionService(store, now)

		_, err := svc.RecordContribution(context.Background(), &RecordContributionInput{MemberID: "M404", Amount: 20})
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})
}

func TestReconcile(t *testing.T) {
	now := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	t.Run("balanced after normal recording", func(t *testing.T) {
		store := newMemStore()
		store.addMember(&domain.Member{ID: "M001"})
		svc := newTestContributionService(store, now)

		_, err := svc.RecordContribution(context.Background(), &RecordContributionInput{MemberID: "M001", Amount: 40})
		require.NoError(t, err)

		res, err := svc.Reconcile(context.Background(), "M001")
		require.NoError(t, err)
		assert.True(t, res.Balanced)
		assert.Equal(t, 40.0, res.TotalContribution)
		assert.Equal(t, 40.0, res.YearlySum)
	})

	t.Run("reports drift without repairing it", func(t *testing.T) {
		store := newMemStore()
		store.addMember(&domain.Member{ID: "M001", TotalContribution: 100})
		require.NoError(t, store.contributions.Upsert(context.Background(),
			&domain.YearlyContribution{MemberID: "M001", Year: 2025, Amount: 80}))
		svc := newTestContributionService(store, now)

		res, err := svc.Reconcile(context.Background(), "M001")
		require.NoError(t, err)
		assert.False(t, res.Balanced)
		assert.Equal(t, 20.0, res.Difference)

		member, err := store.members.GetByID(context.Background(), "M001")
		require.NoError(t, err)
		assert.Equal(t, 100.0, member.TotalContribution)
	})
}
