package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every failure inside the ledger core is a rejected
// operation in one of these classes, never a partial write.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("invalid input")
	ErrPolicyViolation = errors.New("refused by fund policy")
)

// Entity lookup errors, both in the ErrNotFound class
var (
	ErrMemberNotFound = fmt.Errorf("member %w", ErrNotFound)
	ErrLoanNotFound   = fmt.Errorf("loan %w", ErrNotFound)
)

// Member errors
var (
	ErrMemberExists     = errors.New("member id already in use")
	ErrMemberHasLoan    = errors.New("member has an active loan")
	ErrMemberIsCosigner = errors.New("member is an active cosigner")
)
