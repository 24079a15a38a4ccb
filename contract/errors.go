package contract

import "errors"

// Fault taxonomy. Every fault aborts the whole call with no partial
// durable effect; callers classify with errors.Is. Reads degrade to
// absent results instead of faulting.
var (
	// ErrUnauthorized means the caller failed the applicable authorization
	// policy. No state change and no payment occur.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means a mutation targeted a missing key or index.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange means a positional stage removal used an invalid index.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInsufficientDeposit means the prepaid amount was less than the
	// computed storage cost; the tentative mutation is rolled back.
	ErrInsufficientDeposit = errors.New("insufficient deposit for storage cost")

	// ErrStorageCostOverflow means pricing arithmetic overflowed. It is a
	// contract-level defect and aborts the call.
	ErrStorageCostOverflow = errors.New("storage cost overflow")

	// ErrEmptyStageSet means ESG recomputation was attempted on a product
	// with zero stages.
	ErrEmptyStageSet = errors.New("product has no stages to aggregate")

	// ErrTransferFailed means the host refused a settlement transfer.
	ErrTransferFailed = errors.New("transfer failed")
)
