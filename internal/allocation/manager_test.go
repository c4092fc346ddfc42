// internal/allocation/manager_test.go
package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installmentAlloc(ob Obligation, amounts ...int64) *Allocation {
	a := &Allocation{Obligation: ob, Mode: ModeInstallment}
	for i, amount := range amounts {
		a.Installments = append(a.Installments, Installment{Number: i + 1, Amount: amount})
	}
	return a
}

func TestAddInstallment(t *testing.T) {
	a := installmentAlloc(testObligation(), 100000)

	ins, err := a.AddInstallment()
	require.NoError(t, err)
	assert.Equal(t, 2, ins.Number)
	assert.Equal(t, int64(0), ins.Amount)
	assert.Len(t, a.Installments, 2)
}

func TestAddInstallment_SingleModeRefused(t *testing.T) {
	a := New(testObligation())
	require.Equal(t, ModeSingle, a.Mode)

	_, err := a.AddInstallment()
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Empty(t, a.Installments)
}

func TestAddInstallment_CapacityExceeded(t *testing.T) {
	// feeAmount 500000, maxInstallments 2, two installments of 200000
	a := installmentAlloc(testObligation(), 200000, 200000)

	_, err := a.AddInstallment()
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Len(t, a.Installments, 2)
}

func TestAddInstallment_IncompleteEntry(t *testing.T) {
	a := installmentAlloc(testObligation(), 0)

	_, err := a.AddInstallment()
	assert.ErrorIs(t, err, ErrIncompleteEntry)
}

func TestAddInstallment_FeeAlreadyMet(t *testing.T) {
	ob := testObligation()
	ob.MaxInstallments = 3
	a := installmentAlloc(ob, 300000, 200000)

	_, err := a.AddInstallment()
	assert.ErrorIs(t, err, ErrFeeAlreadyMet)
}

func TestRemoveInstallment_Renumbers(t *testing.T) {
	ob := testObligation()
	ob.MaxInstallments = 4
	a := installmentAlloc(ob, 100000, 200000, 50000, 25000)

	require.NoError(t, a.RemoveInstallment(2))

	require.Len(t, a.Installments, 3)
	for k, ins := range a.Installments {
		assert.Equal(t, k+1, ins.Number, "numbers must stay dense and 1-based")
	}
	// relative order preserved
	assert.Equal(t, int64(100000), a.Installments[0].Amount)
	assert.Equal(t, int64(50000), a.Installments[1].Amount)
	assert.Equal(t, int64(25000), a.Installments[2].Amount)
}

func TestRemoveInstallment_FirstNotRemovable(t *testing.T) {
	a := installmentAlloc(testObligation(), 100000, 200000)

	assert.ErrorIs(t, a.RemoveInstallment(1), ErrInvalidTarget)
	assert.Len(t, a.Installments, 2)
}

func TestRemoveInstallment_MissingTarget(t *testing.T) {
	a := installmentAlloc(testObligation(), 100000)

	assert.ErrorIs(t, a.RemoveInstallment(5), ErrInvalidTarget)
}

func TestSetAmount(t *testing.T) {
	a := installmentAlloc(testObligation(), 100000, 0)

	require.NoError(t, a.SetAmount(2, 250000))
	assert.Equal(t, int64(250000), a.Installments[1].Amount)

	// no validation runs while typing, even past the fee
	require.NoError(t, a.SetAmount(2, 900000))
	assert.Equal(t, int64(900000), a.Installments[1].Amount)
}

func TestSetAmount_Errors(t *testing.T) {
	a := installmentAlloc(testObligation(), 100000)

	assert.ErrorIs(t, a.SetAmount(1, -1), ErrInvalidValue)
	assert.ErrorIs(t, a.SetAmount(9, 100), ErrInvalidTarget)
}

func TestSeedFromHistory_StoredAmounts(t *testing.T) {
	ob := testObligation()
	ob.PriorTotalPaid = 350000
	ob.PriorInstallmentCount = 2
	a := &Allocation{Obligation: ob, Mode: ModeInstallment}

	a.SeedFromHistory([]int64{200000, 150000}, 2)

	require.Len(t, a.Installments, 2)
	assert.Equal(t, int64(200000), a.Installments[0].Amount)
	assert.Equal(t, int64(150000), a.Installments[1].Amount)
	assert.False(t, a.SeededByFallback)
}

func TestSeedFromHistory_EqualSplitFallback(t *testing.T) {
	ob := testObligation()
	ob.PriorTotalPaid = 300000
	ob.PriorInstallmentCount = 3
	ob.MaxInstallments = 3
	a := &Allocation{Obligation: ob, Mode: ModeInstallment}

	a.SeedFromHistory(nil, 3)

	require.Len(t, a.Installments, 3)
	for _, ins := range a.Installments {
		assert.Equal(t, int64(100000), ins.Amount)
	}
	assert.True(t, a.SeededByFallback)
}

func TestSeedFromHistory_FallbackRemainderKeepsTotal(t *testing.T) {
	ob := testObligation()
	ob.PriorTotalPaid = 100001
	ob.PriorInstallmentCount = 3
	a := &Allocation{Obligation: ob, Mode: ModeInstallment}

	a.SeedFromHistory(nil, 3)

	assert.Equal(t, int64(100001), a.TotalPaid())
	assert.Equal(t, int64(33335), a.Installments[0].Amount)
}

func TestSeedFromHistory_PartialDetail(t *testing.T) {
	ob := testObligation()
	ob.PriorTotalPaid = 300000
	ob.PriorInstallmentCount = 3
	a := &Allocation{Obligation: ob, Mode: ModeInstallment}

	// only the first amount was persisted; the rest fall back to the split
	a.SeedFromHistory([]int64{120000}, 3)

	require.Len(t, a.Installments, 3)
	assert.Equal(t, int64(120000), a.Installments[0].Amount)
	assert.Equal(t, int64(100000), a.Installments[1].Amount)
	assert.Equal(t, int64(100000), a.Installments[2].Amount)
	assert.True(t, a.SeededByFallback)
}

func TestSeedFromHistory_ZeroTargetCount(t *testing.T) {
	ob := testObligation()
	ob.PriorTotalPaid = 400000
	a := &Allocation{Obligation: ob}

	a.SeedFromHistory(nil, 0)

	require.Len(t, a.Installments, 1)
	assert.Equal(t, 1, a.Installments[0].Number)
	assert.Equal(t, int64(400000), a.Installments[0].Amount)
	assert.Equal(t, ModeInstallment, a.Mode)
}
