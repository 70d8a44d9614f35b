package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fundledger/internal/adapters/persistence/repositories"
	"fundledger/internal/core/domain"

	"github.com/google/uuid"
)

// Eligibility refusal reasons. These strings travel to the caller
// verbatim, so they are written for humans.
const (
	reasonMemberNotFound = "member not found"
	reasonInactive       = "member account is inactive"
	reasonActiveLoan     = "active loan exists"
	reasonNoContribution = "no contributions"
	reasonActiveCosigner = "active cosigner on another loan"
)

// LedgerService implements the loan side of the fund ledger:
// eligibility, fee quoting, issuance, repayment and schedule
// projection. Every mutation runs inside one unit of work.
type LedgerService struct {
	uow   repositories.UnitOfWork
	repos *repositories.Repos
	now   func() time.Time
}

// NewLedgerService creates a new ledger service
func NewLedgerService(uow repositories.UnitOfWork, repos *repositories.Repos) *LedgerService {
	return &LedgerService{
		uow:   uow,
		repos: repos,
		now:   time.Now,
	}
}

// EvaluateEligibility decides whether a member may receive a new loan
// and, when eligible, the maximum principal. Rules are checked in order
// and the first failing rule wins.
func (s *LedgerService) EvaluateEligibility(ctx context.Context, memberID string) (*domain.EligibilityResult, error) {
	res, _, err := evaluate(ctx, s.repos, memberID, s.now())
	return res, err
}

// evaluate runs the eligibility rules against one repository scope so
// issuance can re-check inside its own transaction.
func evaluate(ctx context.Context, r *repositories.Repos, memberID string, now time.Time) (*domain.EligibilityResult, *domain.Member, error) {
	member, err := r.Members.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return &domain.EligibilityResult{Reason: reasonMemberNotFound}, nil, nil
		}
		return nil, nil, err
	}

	if member.AccountStatus == domain.AccountInactive {
		return &domain.EligibilityResult{Reason: reasonInactive}, member, nil
	}
	if member.ActiveLoanID != nil {
		return &domain.EligibilityResult{Reason: reasonActiveLoan}, member, nil
	}
	if member.TotalContribution <= 0 {
		return &domain.EligibilityResult{Reason: reasonNoContribution}, member, nil
	}

	cosigning, err := r.Loans.HasActiveAsCosigner(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	if cosigning {
		return &domain.EligibilityResult{Reason: reasonActiveCosigner}, member, nil
	}

	if member.LastLoanPaidDate != nil {
		elapsed := domain.MonthsBetween(*member.LastLoanPaidDate, now)
		if elapsed < domain.CoolOffMonths {
			remaining := domain.CoolOffMonths - elapsed
			return &domain.EligibilityResult{
				Reason: fmt.Sprintf("cool-off period: %d month(s) remaining", remaining),
			}, member, nil
		}
	}

	return &domain.EligibilityResult{
		Eligible: true,
		Limit:    domain.LoanLimit(member.TotalContribution),
	}, member, nil
}

// FeeQuote validates the request and returns the flat application fee
func (s *LedgerService) FeeQuote(amount float64, termMonths int) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be greater than 0", domain.ErrValidation)
	}
	if !domain.ValidTerm(termMonths) {
		return 0, fmt.Errorf("%w: term must be 12 or 24 months", domain.ErrValidation)
	}
	return domain.ComputeFee(amount, termMonths), nil
}

// IssueLoanInput represents loan issuance input
type IssueLoanInput struct {
	BorrowerID     string                `json:"borrower_id"`
	CosignerID     string                `json:"cosigner_id"`
	Amount         float64               `json:"amount"`
	TermMonths     int                   `json:"term_months"`
	FeeDisposition domain.FeeDisposition `json:"fee_disposition"`
}

// IssueLoan creates a loan for an eligible borrower. The loan row, the
// borrower update and the two ledger entries commit as one step.
func (s *LedgerService) IssueLoan(ctx context.Context, input *IssueLoanInput) (*domain.Loan, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", domain.ErrValidation)
	}
	if !domain.ValidTerm(input.TermMonths) {
		return nil, fmt.Errorf("%w: term must be 12 or 24 months", domain.ErrValidation)
	}
	if input.FeeDisposition != domain.FeeUpfront && input.FeeDisposition != domain.FeeCapitalized {
		return nil, fmt.Errorf("%w: fee disposition must be UPFRONT or CAPITALIZED", domain.ErrValidation)
	}
	if input.CosignerID == "" {
		return nil, fmt.Errorf("%w: a cosigner is required", domain.ErrPolicyViolation)
	}
	if input.CosignerID == input.BorrowerID {
		return nil, fmt.Errorf("%w: cosigner must be a different member", domain.ErrPolicyViolation)
	}

	var loan *domain.Loan
	err := s.uow.Do(ctx, func(r *repositories.Repos) error {
		now := s.now()

		res, borrower, err := evaluate(ctx, r, input.BorrowerID, now)
		if err != nil {
			return err
		}
		if !res.Eligible {
			if res.Reason == reasonMemberNotFound {
				return fmt.Errorf("borrower: %w", domain.ErrMemberNotFound)
			}
			return fmt.Errorf("%w: %s", domain.ErrPolicyViolation, res.Reason)
		}
		if input.Amount > res.Limit {
			return fmt.Errorf("%w: requested amount %.2f exceeds eligibility limit %.2f",
				domain.ErrPolicyViolation, input.Amount, res.Limit)
		}

		if _, err := r.Members.GetByID(ctx, input.CosignerID); err != nil {
			if errors.Is(err, domain.ErrMemberNotFound) {
				return fmt.Errorf("cosigner: %w", domain.ErrMemberNotFound)
			}
			return err
		}
		cosigning, err := r.Loans.HasActiveAsCosigner(ctx, input.CosignerID)
		if err != nil {
			return err
		}
		if cosigning {
			return fmt.Errorf("%w: cosigner already backs another active loan", domain.ErrPolicyViolation)
		}

		fee := domain.ComputeFee(input.Amount, input.TermMonths)
		principal := input.Amount
		feeNote := "application fee collected upfront"
		if input.FeeDisposition == domain.FeeCapitalized {
			principal += fee
			feeNote = "application fee capitalized into principal"
		}

		cosignerID := input.CosignerID
		loan = &domain.Loan{
			ID:               uuid.NewString(),
			BorrowerID:       input.BorrowerID,
			CosignerID:       &cosignerID,
			OriginalAmount:   principal,
			RemainingBalance: principal,
			FeeAmount:        fee,
			FeeDisposition:   input.FeeDisposition,
			TermMonths:       input.TermMonths,
			Status:           domain.LoanActive,
			StartDate:        now,
			NextPaymentDue:   domain.FirstDueDate(now),
		}
		if err := r.Loans.Create(ctx, loan); err != nil {
			return err
		}

		borrower.ActiveLoanID = &loan.ID
		if err := r.Members.Update(ctx, borrower); err != nil {
			return err
		}

		disbursal := &domain.Transaction{
			ID:          uuid.NewString(),
			MemberID:    input.BorrowerID,
			LoanID:      &loan.ID,
			Type:        domain.TxLoanDisbursal,
			Amount:      input.Amount,
			Date:        now,
			Description: fmt.Sprintf("Loan disbursal over %d months", input.TermMonths),
		}
		if err := r.Transactions.Create(ctx, disbursal); err != nil {
			return err
		}

		feeTx := &domain.Transaction{
			ID:          uuid.NewString(),
			MemberID:    input.BorrowerID,
			LoanID:      &loan.ID,
			Type:        domain.TxFee,
			Amount:      fee,
			Date:        now,
			Description: "Loan " + feeNote,
		}
		return r.Transactions.Create(ctx, feeTx)
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// RepaymentInput represents repayment input
type RepaymentInput struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	ReceivedBy    string  `json:"received_by"`
}

// RecordRepayment applies a payment to an active loan. A payment past
// the due date first capitalizes a flat late fee into the balance. All
// side effects commit as one step.
func (s *LedgerService) RecordRepayment(ctx context.Context, loanID string, input *RepaymentInput) (*domain.Loan, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", domain.ErrValidation)
	}

	var loan *domain.Loan
	err := s.uow.Do(ctx, func(r *repositories.Repos) error {
		var err error
		loan, err = r.Loans.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		if loan.Status != domain.LoanActive {
			return fmt.Errorf("%w: loan is %s, repayments are only accepted against active loans",
				domain.ErrPolicyViolation, loan.Status)
		}

		now := s.now()
		isLate := domain.AfterDate(now, loan.NextPaymentDue)
		lateFee := 0.0
		if isLate {
			lateFee = domain.LateFee
		}

		if input.Amount > loan.RemainingBalance+lateFee+domain.BalanceEpsilon {
			return fmt.Errorf("%w: payment %.2f exceeds payable balance %.2f",
				domain.ErrPolicyViolation, input.Amount, loan.RemainingBalance+lateFee)
		}

		newBalance := loan.RemainingBalance + lateFee - input.Amount
		if newBalance < domain.BalanceEpsilon {
			// snap float drift to an exact payoff
			newBalance = 0
		}
		loan.RemainingBalance = newBalance

		if newBalance == 0 {
			loan.Status = domain.LoanPaid
			borrower, err := r.Members.GetByID(ctx, loan.BorrowerID)
			if err != nil {
				return err
			}
			borrower.ActiveLoanID = nil
			paidAt := now
			borrower.LastLoanPaidDate = &paidAt
			if err := r.Members.Update(ctx, borrower); err != nil {
				return err
			}
		} else {
			loan.NextPaymentDue = domain.NextDueDate(loan.NextPaymentDue)
		}

		if err := r.Loans.Update(ctx, loan); err != nil {
			return err
		}

		// The repayment entry goes into the log ahead of the late fee,
		// both dated now.
		repayment := &domain.Transaction{
			ID:            uuid.NewString(),
			MemberID:      loan.BorrowerID,
			LoanID:        &loan.ID,
			Type:          domain.TxLoanRepayment,
			Amount:        input.Amount,
			Date:          now,
			Description:   "Loan repayment",
			PaymentMethod: input.PaymentMethod,
			ReceivedBy:    input.ReceivedBy,
		}
		if err := r.Transactions.Create(ctx, repayment); err != nil {
			return err
		}

		if isLate {
			feeTx := &domain.Transaction{
				ID:          uuid.NewString(),
				MemberID:    loan.BorrowerID,
				LoanID:      &loan.ID,
				Type:        domain.TxFee,
				Amount:      domain.LateFee,
				Date:        now,
				Description: "Late fee for missed due date",
			}
			if err := r.Transactions.Create(ctx, feeTx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// MarkDefaulted marks an active loan DEFAULTED. This is an admin
// override outside the repayment algorithm; once set, no further
// repayments are accepted against the loan.
func (s *LedgerService) MarkDefaulted(ctx context.Context, loanID string) (*domain.Loan, error) {
	var loan *domain.Loan
	err := s.uow.Do(ctx, func(r *repositories.Repos) error {
		var err error
		loan, err = r.Loans.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		if loan.Status != domain.LoanActive {
			return fmt.Errorf("%w: only active loans can be marked defaulted", domain.ErrPolicyViolation)
		}

		loan.Status = domain.LoanDefaulted
		if err := r.Loans.Update(ctx, loan); err != nil {
			return err
		}

		borrower, err := r.Members.GetByID(ctx, loan.BorrowerID)
		if err != nil {
			return err
		}
		borrower.ActiveLoanID = nil
		return r.Members.Update(ctx, borrower)
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// GetLoan gets a loan by id
func (s *LedgerService) GetLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	return s.repos.Loans.GetByID(ctx, loanID)
}

// ListLoans lists loans with pagination, optionally by status
func (s *LedgerService) ListLoans(ctx context.Context, status string, offset, limit int) ([]*domain.Loan, int64, error) {
	return s.repos.Loans.List(ctx, status, offset, limit)
}

// ListLoansByBorrower lists a member's loan history
func (s *LedgerService) ListLoansByBorrower(ctx context.Context, memberID string) ([]*domain.Loan, error) {
	return s.repos.Loans.ListByBorrower(ctx, memberID)
}

// ProjectSchedule derives the flat installment schedule for a loan and
// matches observed repayments to installments by position: the i-th
// chronological repayment is taken to satisfy the i-th installment.
// The projection is reporting only and never writes.
func (s *LedgerService) ProjectSchedule(ctx context.Context, loanID string) (*domain.ScheduleProjection, error) {
	loan, err := s.repos.Loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	repayments, err := s.repos.Transactions.ListByMemberTypeAfter(
		ctx, loan.BorrowerID, domain.TxLoanRepayment, loan.StartDate)
	if err != nil {
		return nil, err
	}

	monthly := loan.OriginalAmount / float64(loan.TermMonths)
	proj := &domain.ScheduleProjection{
		LoanID:         loan.ID,
		MonthlyPayment: monthly,
		Rows:           make([]domain.ScheduleRow, 0, loan.TermMonths),
	}

	for i := 1; i <= loan.TermMonths; i++ {
		row := domain.ScheduleRow{
			Installment: i,
			DueDate:     domain.InstallmentDueDate(loan.StartDate, i),
			Amount:      monthly,
		}
		if i <= len(repayments) {
			rep := repayments[i-1]
			amount := rep.Amount
			date := rep.Date
			row.PaidAmount = &amount
			row.PaidDate = &date
			proj.TotalPaid += rep.Amount
		}
		proj.Rows = append(proj.Rows, row)
	}
	return proj, nil
}
