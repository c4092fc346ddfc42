// internal/allocation/controller.go
package allocation

// New builds the initial working state for an obligation. An obligation
// with prior installments opens in installment mode (the set is seeded
// once history arrives, see Session.ApplySeed); anything else opens in
// single mode carrying the prior total.
func New(ob Obligation) *Allocation {
	a := &Allocation{
		Obligation:   ob,
		Mode:         ModeSingle,
		SingleAmount: ob.PriorTotalPaid,
	}
	if ob.PriorInstallmentCount > 0 {
		a.Mode = ModeInstallment
	}
	return a
}

// SetMode switches between single and installment mode. Switching to
// installment mode with an empty set seeds one installment carrying the
// current single amount. Switching back to single mode discards nothing:
// the installment set survives so the user can toggle back and forth
// without losing an intentional split, and the single amount keeps its
// last value rather than silently collapsing the split into one number.
func (a *Allocation) SetMode(m Mode) {
	if m == a.Mode {
		return
	}
	a.Mode = m
	if m == ModeInstallment && len(a.Installments) == 0 {
		a.Installments = []Installment{{Number: 1, Amount: a.SingleAmount}}
	}
}

// Submission is the outbound payload handed to the reconciliation client.
type Submission struct {
	ObligationID            uint          `json:"obligationId"`
	Mode                    Mode          `json:"mode"`
	AmountPaid              int64         `json:"amountPaid"`
	Installments            []Installment `json:"installments,omitempty"`
	AutoConvertedFromSingle bool          `json:"autoConvertedFromSingle"`
}

// ProjectSubmission serializes the allocation for submission. A strictly
// partial single payment (0 < amount < fee) is rewritten as a
// one-installment record: a partial payment is by definition the first
// installment of an eventual full settlement, and the ledger only
// distinguishes "settled" from "in progress via installments". The
// projection never mutates the mode the user sees. A single payment that
// covers the full fee is NOT converted.
func (a *Allocation) ProjectSubmission() Submission {
	if a.Mode == ModeInstallment {
		ins := make([]Installment, len(a.Installments))
		copy(ins, a.Installments)
		return Submission{
			ObligationID: a.Obligation.ID,
			Mode:         ModeInstallment,
			AmountPaid:   a.TotalPaid(),
			Installments: ins,
		}
	}

	amount := a.SingleAmount
	if amount > 0 && amount < a.Obligation.FeeAmount {
		return Submission{
			ObligationID:            a.Obligation.ID,
			Mode:                    ModeInstallment,
			AmountPaid:              amount,
			Installments:            []Installment{{Number: 1, Amount: amount}},
			AutoConvertedFromSingle: true,
		}
	}
	return Submission{
		ObligationID: a.Obligation.ID,
		Mode:         ModeSingle,
		AmountPaid:   amount,
	}
}
