// internal/allocation/allocation_test.go
package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testObligation() Obligation {
	return Obligation{
		ID:              42,
		FeeAmount:       500000,
		MaxInstallments: 2,
	}
}

func TestTotalPaid_SingleMode(t *testing.T) {
	a := &Allocation{
		Obligation:   testObligation(),
		Mode:         ModeSingle,
		SingleAmount: 200000,
		// leftover installments from a previous toggle must not count
		Installments: []Installment{{Number: 1, Amount: 999999}},
	}

	assert.Equal(t, int64(200000), a.TotalPaid())
	assert.Equal(t, int64(300000), a.Remaining())
}

func TestTotalPaid_InstallmentMode(t *testing.T) {
	a := &Allocation{
		Obligation: testObligation(),
		Mode:       ModeInstallment,
		Installments: []Installment{
			{Number: 1, Amount: 150000},
			{Number: 2, Amount: 100000},
		},
	}

	assert.Equal(t, int64(250000), a.TotalPaid())
	assert.Equal(t, int64(250000), a.Remaining())
}

func TestRemaining_CanGoNegative(t *testing.T) {
	a := &Allocation{
		Obligation:   testObligation(),
		Mode:         ModeSingle,
		SingleAmount: 600000,
	}

	// callers render this as "exceeds fee", but the model reports the raw figure
	assert.Equal(t, int64(-100000), a.Remaining())
}
