package cardano

import (
	"errors"
	"fmt"
)

var (
	ErrValidation            = errors.New("invalid request")
	ErrNotFound              = errors.New("not found")
	ErrMintingDisabled       = errors.New("minting is disabled for this project")
	ErrSupplyExhausted       = errors.New("max supply reached")
	ErrCollateralUnavailable = errors.New("collateral unavailable")
	ErrOracleMismatch        = errors.New("oracle token does not belong to the project")

	// ErrTransient marks a probe that found nothing yet. It is logged, never returned to callers.
	ErrTransient = errors.New("transaction not yet indexed")
)

// UpstreamError wraps a failed ledger or indexer call.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
