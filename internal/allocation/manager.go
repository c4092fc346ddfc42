// internal/allocation/manager.go
package allocation

// AddInstallment appends an empty installment at the end of the sequence.
// Only meaningful in installment mode; all existing installments must
// carry an amount and the fee must not be covered yet.
func (a *Allocation) AddInstallment() (Installment, error) {
	if a.Mode != ModeInstallment {
		return Installment{}, ErrInvalidTarget
	}
	if len(a.Installments) >= a.Obligation.MaxInstallments {
		return Installment{}, ErrCapacityExceeded
	}
	for _, ins := range a.Installments {
		if ins.Amount == 0 {
			return Installment{}, ErrIncompleteEntry
		}
	}
	if a.TotalPaid() >= a.Obligation.FeeAmount {
		return Installment{}, ErrFeeAlreadyMet
	}

	ins := Installment{Number: len(a.Installments) + 1}
	a.Installments = append(a.Installments, ins)
	return ins, nil
}

// RemoveInstallment deletes the given installment and renumbers the ones
// after it. Installment 1 is the floor of the sequence and is never
// removable. The renumbered sequence replaces the old one in a single
// assignment, so callers never observe gaps or duplicates.
func (a *Allocation) RemoveInstallment(number int) error {
	if number == 1 {
		return ErrInvalidTarget
	}
	found := false
	for _, ins := range a.Installments {
		if ins.Number == number {
			found = true
			break
		}
	}
	if !found {
		return ErrInvalidTarget
	}

	next := make([]Installment, 0, len(a.Installments)-1)
	for _, ins := range a.Installments {
		if ins.Number == number {
			continue
		}
		if ins.Number > number {
			ins.Number--
		}
		next = append(next, ins)
	}
	a.Installments = next
	return nil
}

// SetAmount records a typed-in amount for one installment. No other
// validation runs here; totals are checked at submission time so the user
// can type incrementally.
func (a *Allocation) SetAmount(number int, value int64) error {
	if value < 0 {
		return ErrInvalidValue
	}
	for i := range a.Installments {
		if a.Installments[i].Number == number {
			a.Installments[i].Amount = value
			return nil
		}
	}
	return ErrInvalidTarget
}

// SeedFromHistory builds the installment set for an obligation that was
// already partially paid. priorAmounts holds the stored per-installment
// amounts in order; positions with no stored amount fall back to an equal
// split of PriorTotalPaid. Older records never persisted per-installment
// detail, so the equal split is documented degraded behavior and is
// flagged on the allocation rather than hidden.
func (a *Allocation) SeedFromHistory(priorAmounts []int64, targetCount int) {
	a.Mode = ModeInstallment
	a.SeededByFallback = false

	if targetCount <= 0 {
		a.Installments = []Installment{{Number: 1, Amount: a.Obligation.PriorTotalPaid}}
		return
	}

	share := a.Obligation.PriorTotalPaid / int64(targetCount)
	remainder := a.Obligation.PriorTotalPaid % int64(targetCount)

	seeded := make([]Installment, 0, targetCount)
	for n := 1; n <= targetCount; n++ {
		var amount int64
		if n-1 < len(priorAmounts) && priorAmounts[n-1] > 0 {
			amount = priorAmounts[n-1]
		} else {
			amount = share
			if !a.SeededByFallback {
				// sisa pembagian masuk ke posisi fallback pertama
				amount += remainder
			}
			a.SeededByFallback = true
		}
		seeded = append(seeded, Installment{Number: n, Amount: amount})
	}
	a.Installments = seeded
}
