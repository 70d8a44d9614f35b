package handlers

import (
	"strconv"

	"fundledger/internal/core/services"
	"fundledger/internal/pkg/pagination"
	"fundledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	ledgerService *services.LedgerService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(ledgerService *services.LedgerService) *LoanHandler {
	return &LoanHandler{ledgerService: ledgerService}
}

// Eligibility evaluates whether a member may receive a new loan
// @Summary Evaluate loan eligibility
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.Response
// @Router /members/{id}/eligibility [get]
func (h *LoanHandler) Eligibility(c *fiber.Ctx) error {
	result, err := h.ledgerService.EvaluateEligibility(c.Context(), c.Params("id"))
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Eligibility evaluated", fiber.Map{
		"eligibility": result,
	})
}

// FeeQuote returns the flat application fee for an amount and term
// @Summary Quote application fee
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param amount query number true "Requested principal"
// @Param term_months query int true "Loan term (12 or 24)"
// @Success 200 {object} response.Response
// @Router /loans/fee-quote [get]
func (h *LoanHandler) FeeQuote(c *fiber.Ctx) error {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		return response.BadRequest(c, "Invalid amount")
	}
	termMonths, err := strconv.Atoi(c.Query("term_months"))
	if err != nil {
		return response.BadRequest(c, "Invalid term")
	}

	fee, err := h.ledgerService.FeeQuote(amount, termMonths)
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Fee quoted", fiber.Map{
		"amount":      amount,
		"term_months": termMonths,
		"fee":         fee,
	})
}

// Issue creates a new loan for an eligible borrower
// @Summary Issue loan
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.IssueLoanInput true "Loan request"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /loans [post]
func (h *LoanHandler) Issue(c *fiber.Ctx) error {
	var input services.IssueLoanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.BorrowerID == "" {
		return response.BadRequest(c, "Borrower id is required")
	}

	loan, err := h.ledgerService.IssueLoan(c.Context(), &input)
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Created(c, "Loan issued successfully", fiber.Map{
		"loan": loan,
	})
}

// List lists loans
// @Summary List loans
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response.Response
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	loans, total, err := h.ledgerService.ListLoans(c.Context(), c.Query("status"),
		params.Offset, params.Limit)
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Loans retrieved successfully",
		pagination.NewResponse(loans, params, total))
}

// GetByID gets a loan
// @Summary Get loan
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /loans/{id} [get]
func (h *LoanHandler) GetByID(c *fiber.Ctx) error {
	loan, err := h.ledgerService.GetLoan(c.Context(), c.Params("id"))
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Loan retrieved successfully", fiber.Map{
		"loan": loan,
	})
}

// Repay applies a payment to a loan
// @Summary Record repayment
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Param body body services.RepaymentInput true "Payment"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /loans/{id}/repayments [post]
func (h *LoanHandler) Repay(c *fiber.Ctx) error {
	var input services.RepaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	loan, err := h.ledgerService.RecordRepayment(c.Context(), c.Params("id"), &input)
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Repayment recorded successfully", fiber.Map{
		"loan": loan,
	})
}

// Schedule returns the projected installment schedule of a loan
// @Summary Project loan schedule
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} response.Response
// @Router /loans/{id}/schedule [get]
func (h *LoanHandler) Schedule(c *fiber.Ctx) error {
	projection, err := h.ledgerService.ProjectSchedule(c.Context(), c.Params("id"))
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Schedule projected", fiber.Map{
		"schedule": projection,
	})
}

// Default marks an active loan DEFAULTED (admin override)
// @Summary Mark loan defaulted
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /loans/{id}/default [post]
func (h *LoanHandler) Default(c *fiber.Ctx) error {
	loan, err := h.ledgerService.MarkDefaulted(c.Context(), c.Params("id"))
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Loan marked defaulted", fiber.Map{
		"loan": loan,
	})
}

// BorrowerLoans lists a member's loan history
// @Summary List member loans
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.Response
// @Router /members/{id}/loans [get]
func (h *LoanHandler) BorrowerLoans(c *fiber.Ctx) error {
	loans, err := h.ledgerService.ListLoansByBorrower(c.Context(), c.Params("id"))
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Loans retrieved successfully", fiber.Map{
		"loans": loans,
	})
}
