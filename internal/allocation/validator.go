// internal/allocation/validator.go
package allocation

// ValidateForSubmit runs the pre-submission checks, in order: zero
// amounts first (lowest installment number wins), then the fee ceiling.
// It is only called right before submission, never on every keystroke,
// and a failure means no network call is made. nil means the allocation
// may be submitted.
func (a *Allocation) ValidateForSubmit() error {
	if a.Mode == ModeInstallment {
		for _, ins := range a.Installments {
			if ins.Amount == 0 {
				return &ZeroAmountError{Number: ins.Number}
			}
		}
		if a.TotalPaid() > a.Obligation.FeeAmount {
			return ErrFeeExceeded
		}
		return nil
	}

	if a.SingleAmount == 0 {
		return &ZeroAmountError{Number: 1}
	}
	if a.SingleAmount > a.Obligation.FeeAmount {
		return ErrFeeExceeded
	}
	return nil
}
