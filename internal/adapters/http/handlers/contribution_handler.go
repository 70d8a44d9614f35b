package handlers

import (
	"fundledger/internal/core/services"
	"fundledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContributionHandler handles contribution endpoints
type ContributionHandler struct {
	contributionService *services.ContributionService
}

// NewContributionHandler creates a new contribution handler
func NewContributionHandler(contributionService *services.ContributionService) *ContributionHandler {
	return &ContributionHandler{contributionService: contributionService}
}

// Record appends a contribution to the ledger
// @Summary Record contribution
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RecordContributionInput true "Contribution"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions [post]
func (h *ContributionHandler) Record(c *fiber.Ctx) error {
	var input services.RecordContributionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.MemberID == "" {
		return response.BadRequest(c, "Member id is required")
	}

	tx, err := h.contributionService.RecordContribution(c.Context(), &input)
	if err != nil {
		return ledgerError(c, err)
	}

	return response.Created(c, "Contribution recorded successfully", fiber.Map{
		"transaction": tx,
	})
}
