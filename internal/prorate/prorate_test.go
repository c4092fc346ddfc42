// internal/prorate/prorate_test.go
package prorate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultFormula))
	assert.NoError(t, Validate("total / count * 1"))
	assert.NoError(t, Validate("(total / count) + (n * 0)"))

	// anything outside the enumerated variable set is rejected
	assert.Error(t, Validate("total / jumlah"))
	assert.Error(t, Validate("system('rm -rf /')"))
	assert.Error(t, Validate("total /"))
}

func TestSplit_EqualSplit(t *testing.T) {
	amounts, err := Split(DefaultFormula, 300000, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{100000, 100000, 100000}, amounts)
}

func TestSplit_TruncationRemainderGoesFirst(t *testing.T) {
	amounts, err := Split(DefaultFormula, 100001, 3)
	require.NoError(t, err)

	var sum int64
	for _, a := range amounts {
		sum += a
	}
	assert.Equal(t, int64(100001), sum)
	assert.Equal(t, int64(33335), amounts[0])
}

func TestSplit_PositionAwareFormula(t *testing.T) {
	// front-load: first installment gets half, the rest split the remainder
	amounts, err := Split("n == 1 ? total / 2 : total / 2 / (count - 1)", 400000, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{200000, 100000, 100000}, amounts)
}

func TestSplit_Errors(t *testing.T) {
	_, err := Split(DefaultFormula, 100, 0)
	assert.Error(t, err)

	_, err = Split("total - 2 * total", 100, 1)
	assert.Error(t, err, "negative amounts are refused")

	_, err = Split("total >", 100, 1)
	assert.Error(t, err)
}
