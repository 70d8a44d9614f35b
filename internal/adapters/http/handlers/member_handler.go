package handlers

import (
	"fundledger/internal/core/domain"
	"fundledger/internal/core/services"
	"fundledger/internal/pkg/pagination"
	"fundledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member administration endpoints
type MemberHandler struct {
	memberService       *services.MemberService
	contributionService *services.ContributionService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService, contributionService *services.ContributionService) *MemberHandler {
	return &MemberHandler{
		memberService:       memberService,
		contributionService: contributionService,
	}
}

// Create registers a new member
// @Summary Create member
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateMemberInput true "Member data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var input services.CreateMemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.Create(c.Context(), &input)
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Created(c, "Member created successfully", fiber.Map{
		"member": member,
	})
}

// List lists members
// @Summary List members
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param q query string false "Search by id or name"
// @Success 200 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	if q := c.Query("q"); q != "" {
		members, err := h.memberService.Search(c.Context(), q, 20)
		if err != nil {
			return ledgerError(c, err)
		}
		return response.Success(c, "Members retrieved successfully", fiber.Map{
			"members": members,
		})
	}

	params := pagination.GetParams(c)
	members, total, err := h.memberService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Members retrieved successfully",
		pagination.NewResponse(members, params, total))
}

// GetByID gets a member
// @Summary Get member
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [get]
func (h *MemberHandler) GetByID(c *fiber.Ctx) error {
	member, err := h.memberService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Member retrieved successfully", fiber.Map{
		"member": member,
	})
}

// statusRequest carries an account status change
type statusRequest struct {
	AccountStatus string `json:"account_status"`
}

// UpdateStatus switches a member between ACTIVE and INACTIVE
// @Summary Update member status
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param body body statusRequest true "New status"
// @Success 200 {object} response.Response
// @Router /members/{id}/status [patch]
func (h *MemberHandler) UpdateStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.UpdateStatus(c.Context(), c.Params("id"),
		domain.AccountStatus(req.AccountStatus))
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Member status updated", fiber.Map{
		"member": member,
	})
}

// Delete removes a member without ledger obligations
// @Summary Delete member
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /members/{id} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	if err := h.memberService.Delete(c.Context(), c.Params("id")); err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Member deleted", nil)
}

// Statement returns a member's transaction log
// @Summary Member statement
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param type query string false "Filter by transaction type"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response.Response
// @Router /members/{id}/statement [get]
func (h *MemberHandler) Statement(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	txs, total, err := h.memberService.Statement(c.Context(), c.Params("id"),
		c.Query("type"), params.Offset, params.Limit)
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Statement retrieved successfully",
		pagination.NewResponse(txs, params, total))
}

// YearlyContributions returns a member's per-year contribution ledger
// @Summary Yearly contributions
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.Response
// @Router /members/{id}/contributions/yearly [get]
func (h *MemberHandler) YearlyContributions(c *fiber.Ctx) error {
	years, err := h.contributionService.YearlyByMember(c.Context(), c.Params("id"))
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Yearly contributions retrieved", fiber.Map{
		"years": years,
	})
}

// Reconcile compares the yearly side ledger against the lifetime total
// @Summary Reconcile contributions
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.Response
// @Router /members/{id}/contributions/reconcile [post]
func (h *MemberHandler) Reconcile(c *fiber.Ctx) error {
	result, err := h.contributionService.Reconcile(c.Context(), c.Params("id"))
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Success(c, "Reconciliation completed", fiber.Map{
		"result": result,
	})
}
