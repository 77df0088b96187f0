package metrics

import (
	"errors"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

// Operation label values.
const (
	OperationGenerate = "generate"
	OperationVerify   = "verify"
)

// Outcome label values.
const (
	OutcomeOK                   = "ok"
	OutcomeMatch                = "match"
	OutcomeMismatch             = "mismatch"
	OutcomeInvalidInput         = "invalid_input"
	OutcomeInvalidConfiguration = "invalid_configuration"
	OutcomeError                = "error"
)

// GenerateOutcome classifies the result of a Generate call.
func GenerateOutcome(err error) string {
	if err != nil {
		return errorOutcome(err)
	}
	return OutcomeOK
}

// VerifyOutcome classifies the result of a Verify call.
func VerifyOutcome(matched bool, err error) string {
	switch {
	case err != nil:
		return errorOutcome(err)
	case matched:
		return OutcomeMatch
	default:
		return OutcomeMismatch
	}
}

func errorOutcome(err error) string {
	switch {
	case errors.Is(err, hashing.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, hashing.ErrInvalidConfiguration):
		return OutcomeInvalidConfiguration
	default:
		return OutcomeError
	}
}
