// internal/allocation/errors.go
package allocation

import (
	"errors"
	"fmt"
)

// Capacity errors: the manager refuses to grow the installment set.
var (
	ErrCapacityExceeded = errors.New("maximum number of installments reached")
	ErrIncompleteEntry  = errors.New("enter a valid amount for all existing installments first")
	ErrFeeAlreadyMet    = errors.New("monthly fee already achieved, cannot add more installments")
)

// Structural errors: malformed local mutation requests.
var (
	ErrInvalidTarget = errors.New("installment does not exist or cannot be removed")
	ErrInvalidValue  = errors.New("installment amount cannot be negative")
)

// Validation errors: the allocation cannot be submitted as entered.
var ErrFeeExceeded = errors.New("total amount cannot exceed the monthly fee")

// Session errors.
var (
	ErrSessionActive = errors.New("this payment is already being edited")
	ErrSessionClosed = errors.New("edit session is closed")
)

// ZeroAmountError reports which installment was left at 0 at submission
// time. Number is 1 for a single-mode allocation.
type ZeroAmountError struct {
	Number int
}

func (e *ZeroAmountError) Error() string {
	return fmt.Sprintf("installment %d payment cannot be 0", e.Number)
}
