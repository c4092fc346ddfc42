// internal/allocation/controller_test.go
package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InitialState(t *testing.T) {
	ob := testObligation()
	ob.PriorTotalPaid = 150000

	a := New(ob)
	assert.Equal(t, ModeSingle, a.Mode)
	assert.Equal(t, int64(150000), a.SingleAmount)

	ob.PriorInstallmentCount = 2
	a = New(ob)
	assert.Equal(t, ModeInstallment, a.Mode)
}

func TestSetMode_SeedsFromSingleAmount(t *testing.T) {
	a := New(testObligation())
	a.SingleAmount = 250000

	a.SetMode(ModeInstallment)

	require.Len(t, a.Installments, 1)
	assert.Equal(t, Installment{Number: 1, Amount: 250000}, a.Installments[0])
}

func TestSetMode_ToggleBackAndForthKeepsSplit(t *testing.T) {
	a := New(testObligation())
	a.SetMode(ModeInstallment)
	require.NoError(t, a.SetAmount(1, 100000))
	_, err := a.AddInstallment()
	require.NoError(t, err)
	require.NoError(t, a.SetAmount(2, 150000))

	a.SetMode(ModeSingle)
	a.SetMode(ModeInstallment)

	// the intentional split survives the round trip
	require.Len(t, a.Installments, 2)
	assert.Equal(t, int64(100000), a.Installments[0].Amount)
	assert.Equal(t, int64(150000), a.Installments[1].Amount)
}

func TestSetMode_BackToSingleKeepsLastAmount(t *testing.T) {
	a := New(testObligation())
	a.SingleAmount = 300000
	a.SetMode(ModeInstallment)
	require.NoError(t, a.SetAmount(1, 120000))

	a.SetMode(ModeSingle)

	// no automatic transfer of the installment total
	assert.Equal(t, int64(300000), a.SingleAmount)
}

func TestProjectSubmission_PartialSingleAutoConverts(t *testing.T) {
	// feeAmount 500000, single 200000 -> one-installment record
	a := New(testObligation())
	a.SingleAmount = 200000

	sub := a.ProjectSubmission()

	assert.Equal(t, ModeInstallment, sub.Mode)
	assert.Equal(t, int64(200000), sub.AmountPaid)
	require.Len(t, sub.Installments, 1)
	assert.Equal(t, Installment{Number: 1, Amount: 200000}, sub.Installments[0])
	assert.True(t, sub.AutoConvertedFromSingle)

	// the visible mode is untouched
	assert.Equal(t, ModeSingle, a.Mode)
}

func TestProjectSubmission_FullSingleDoesNotConvert(t *testing.T) {
	a := New(testObligation())
	a.SingleAmount = 500000

	sub := a.ProjectSubmission()

	assert.Equal(t, ModeSingle, sub.Mode)
	assert.Equal(t, int64(500000), sub.AmountPaid)
	assert.Empty(t, sub.Installments)
	assert.False(t, sub.AutoConvertedFromSingle)
}

func TestProjectSubmission_SingleDropsLeftoverInstallments(t *testing.T) {
	a := New(testObligation())
	a.SetMode(ModeInstallment)
	require.NoError(t, a.SetAmount(1, 100000))
	a.SetMode(ModeSingle)
	a.SingleAmount = 500000

	sub := a.ProjectSubmission()

	// single submissions never carry the leftover working set
	assert.Equal(t, ModeSingle, sub.Mode)
	assert.Empty(t, sub.Installments)
}

func TestProjectSubmission_InstallmentMode(t *testing.T) {
	a := installmentAlloc(testObligation(), 200000, 150000)

	sub := a.ProjectSubmission()

	assert.Equal(t, ModeInstallment, sub.Mode)
	assert.Equal(t, int64(350000), sub.AmountPaid)
	assert.Len(t, sub.Installments, 2)
	assert.False(t, sub.AutoConvertedFromSingle)

	// the projection is a copy, not a view
	sub.Installments[0].Amount = 1
	assert.Equal(t, int64(200000), a.Installments[0].Amount)
}
