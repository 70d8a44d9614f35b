package domain

import "time"

// Fund policy constants. Fees are flat tiers, not APR-based.
const (
	// Loan limit: four times lifetime contributions, hard-capped to
	// protect fund liquidity.
	ContributionMultiple = 4.0
	MaxLoanAmount        = 5000.0

	// Application fee tiers
	FeeTierThreshold = 2500.0
	FeeBelowTier     = 30.0
	FeeAboveTier12   = 50.0
	FeeAboveTier24   = 70.0

	// Flat fee added to the balance when a payment arrives past due
	LateFee = 5.00

	// Cool-off after a full payoff before borrowing again, in whole months
	CoolOffMonths = 3

	// Every payment due date falls on this day of the month
	PaymentDueDay = 10

	// BalanceEpsilon absorbs float rounding when deciding payoff
	BalanceEpsilon = 0.01
)

// ValidTerm reports whether termMonths is an offered loan term
func ValidTerm(termMonths int) bool {
	return termMonths == 12 || termMonths == 24
}

// ComputeFee returns the flat application fee for a requested principal
// and term. Below the tier threshold the term is ignored.
func ComputeFee(amount float64, termMonths int) float64 {
	if amount < FeeTierThreshold {
		return FeeBelowTier
	}
	if termMonths == 24 {
		return FeeAboveTier24
	}
	return FeeAboveTier12
}

// LoanLimit returns the maximum principal a member with the given
// lifetime contribution may borrow.
func LoanLimit(totalContribution float64) float64 {
	limit := totalContribution * ContributionMultiple
	if limit > MaxLoanAmount {
		return MaxLoanAmount
	}
	return limit
}

// MonthsBetween returns the whole-month difference between two dates
// using year*12+month arithmetic, not elapsed days.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()*12 + int(to.Month())) - (from.Year()*12 + int(from.Month()))
}

// FirstDueDate returns the first payment due date for a loan issued at
// start: the 10th of the following month.
func FirstDueDate(start time.Time) time.Time {
	return time.Date(start.Year(), start.Month()+1, PaymentDueDay, 0, 0, 0, 0, start.Location())
}

// NextDueDate advances a due date by exactly one calendar month, pinned
// to day 10. It derives from the previous due date, not from "now", so
// the schedule cannot drift.
func NextDueDate(due time.Time) time.Time {
	return time.Date(due.Year(), due.Month()+1, PaymentDueDay, 0, 0, 0, 0, due.Location())
}

// InstallmentDueDate returns the due date of installment i (1-based)
// for a loan started at start.
func InstallmentDueDate(start time.Time, i int) time.Time {
	return time.Date(start.Year(), start.Month()+time.Month(i), PaymentDueDay, 0, 0, 0, 0, start.Location())
}

// AfterDate reports whether a falls on a later calendar date than b.
// Time of day is ignored; lateness is a date-level comparison.
func AfterDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}
