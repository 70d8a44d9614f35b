package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidTerm(t *testing.T) {
	assert.True(t, ValidTerm(12))
	assert.True(t, ValidTerm(24))
	assert.False(t, ValidTerm(0))
	assert.False(t, ValidTerm(6))
	assert.False(t, ValidTerm(36))
}

func TestComputeFee(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		term   int
		want   float64
	}{
		{"below threshold short term", 100, 12, 30},
		{"below threshold long term", 100, 24, 30},
		{"just under threshold", 2499.99, 12, 30},
		{"at threshold 12 months", 2500, 12, 50},
		{"at threshold 24 months", 2500, 24, 70},
		{"above threshold 12 months", 5000, 12, 50},
		{"above threshold 24 months", 5000, 24, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeFee(tt.amount, tt.term))
		})
	}
}

func TestLoanLimit(t *testing.T) {
	assert.Equal(t, 0.0, LoanLimit(0))
	assert.Equal(t, 400.0, LoanLimit(100))
	assert.Equal(t, 4000.0, LoanLimit(1000))
	assert.Equal(t, 5000.0, LoanLimit(1250))
	assert.Equal(t, 5000.0, LoanLimit(10000))
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			"same month ignores days",
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			0,
		},
		{
			"month boundary counts even one day apart",
			time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			1,
		},
		{
			"across a year boundary",
			time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			3,
		},
		{
			"negative when reversed",
			time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			-2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.from, tt.to))
		})
	}
}

func TestDueDates(t *testing.T) {
	start := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	first := FirstDueDate(start)
	assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), first)

	next := NextDueDate(first)
	assert.Equal(t, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), next)

	// December rolls into January of the next year
	dec := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), NextDueDate(dec))

	// Issuing in December also rolls forward
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		FirstDueDate(time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)))
}

func TestInstallmentDueDate(t *testing.T) {
	start := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, FirstDueDate(start), InstallmentDueDate(start, 1))
	assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), InstallmentDueDate(start, 4))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), InstallmentDueDate(start, 12))

	for i := 1; i <= 24; i++ {
		assert.Equal(t, 10, InstallmentDueDate(start, i).Day())
	}
}

func TestAfterDate(t *testing.T) {
	due := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	assert.False(t, AfterDate(time.Date(2025, 4, 9, 23, 59, 0, 0, time.UTC), due))
	// time of day on the due date itself does not matter
	assert.False(t, AfterDate(time.Date(2025, 4, 10, 23, 59, 59, 0, time.UTC), due))
	assert.True(t, AfterDate(time.Date(2025, 4, 11, 0, 0, 1, 0, time.UTC), due))
	assert.True(t, AfterDate(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), due))
	assert.True(t, AfterDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), due))
}
