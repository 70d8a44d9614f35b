package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupErrorsAreNotFound(t *testing.T) {
	assert.ErrorIs(t, ErrMemberNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrLoanNotFound, ErrNotFound)

	// class membership survives a wrapping layer
	wrapped := fmt.Errorf("borrower: %w", ErrMemberNotFound)
	assert.ErrorIs(t, wrapped, ErrMemberNotFound)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	assert.Equal(t, "member not found", ErrMemberNotFound.Error())
	assert.Equal(t, "loan not found", ErrLoanNotFound.Error())
}

func TestErrorClassesAreDisjoint(t *testing.T) {
	assert.False(t, errors.Is(ErrMemberNotFound, ErrValidation))
	assert.False(t, errors.Is(ErrMemberNotFound, ErrPolicyViolation))
	assert.False(t, errors.Is(ErrValidation, ErrNotFound))
	assert.False(t, errors.Is(ErrPolicyViolation, ErrNotFound))
}
