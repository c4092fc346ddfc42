// internal/allocation/allocation.go
package allocation

// Mode describes how a payment obligation is being settled.
type Mode string

const (
	ModeSingle      Mode = "single"
	ModeInstallment Mode = "installment"
)

// Obligation is the read-only snapshot of the fee owed for one period,
// taken when an edit session opens.
type Obligation struct {
	ID                    uint  `json:"id"`
	FeeAmount             int64 `json:"feeAmount"`
	PriorTotalPaid        int64 `json:"priorTotalPaid"`
	PriorInstallmentCount int   `json:"priorInstallmentCount"`
	MaxInstallments       int   `json:"maxInstallments"`
}

// Installment is one numbered slice of an installment-mode allocation.
// Numbers are 1-based, dense and contiguous.
type Installment struct {
	Number int   `json:"number"`
	Amount int64 `json:"amount"`
}

// Allocation is the editable working state of how an obligation's payment
// is divided. Amounts are whole IDR.
type Allocation struct {
	Obligation   Obligation
	Mode         Mode
	SingleAmount int64
	Installments []Installment

	// SeededByFallback is set when at least one installment amount was
	// approximated by equal split because no stored detail was available.
	SeededByFallback bool
}

// TotalPaid returns the amount currently entered, per the active mode.
func (a *Allocation) TotalPaid() int64 {
	if a.Mode == ModeSingle {
		return a.SingleAmount
	}
	var total int64
	for _, ins := range a.Installments {
		total += ins.Amount
	}
	return total
}

// Remaining returns FeeAmount minus TotalPaid. A negative result means the
// entered total exceeds the fee; callers render that as an "exceeds fee"
// condition, not as negative currency.
func (a *Allocation) Remaining() int64 {
	return a.Obligation.FeeAmount - a.TotalPaid()
}
