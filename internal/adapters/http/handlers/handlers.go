package handlers

import (
	"errors"

	"fundledger/internal/core/domain"
	"fundledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ledgerError maps domain error classes to HTTP responses. Rejected
// operations carry their human-readable reason through unchanged.
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrMemberExists):
		return response.Conflict(c, err.Error())
	case errors.Is(err, domain.ErrPolicyViolation):
		return response.UnprocessableEntity(c, err.Error())
	default:
		return response.InternalServerError(c, "Internal server error")
	}
}
