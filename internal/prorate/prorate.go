// internal/prorate/prorate.go
//
// Configurable proration for installment suggestions. The formula is a
// closed-form expression over a fixed variable set, never user-supplied
// code: total (amount paid so far), count (installment count) and n (the
// 1-based installment position).
package prorate

import (
	"errors"
	"fmt"

	"github.com/Knetic/govaluate"
)

// DefaultFormula is the plain equal split.
const DefaultFormula = "total / count"

var allowedVars = map[string]struct{}{
	"total": {},
	"count": {},
	"n":     {},
}

// Validate parses the formula and rejects anything referencing a variable
// outside the allowed set.
func Validate(formula string) error {
	expr, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return fmt.Errorf("invalid proration formula: %w", err)
	}
	for _, v := range expr.Vars() {
		if _, ok := allowedVars[v]; !ok {
			return fmt.Errorf("unknown variable %q in proration formula", v)
		}
	}
	return nil
}

// Split evaluates the formula once per installment position and returns
// the suggested amounts in whole IDR. When the evaluated amounts lose
// less than count rupiah against total, the loss is integer truncation
// and is added back onto the first installment.
func Split(formula string, total int64, count int) ([]int64, error) {
	if count <= 0 {
		return nil, errors.New("installment count must be positive")
	}
	expr, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return nil, fmt.Errorf("invalid proration formula: %w", err)
	}

	amounts := make([]int64, count)
	var sum int64
	for n := 1; n <= count; n++ {
		params := map[string]interface{}{
			"total": float64(total),
			"count": float64(count),
			"n":     float64(n),
		}
		result, err := expr.Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("could not evaluate proration formula: %w", err)
		}
		f, ok := result.(float64)
		if !ok {
			return nil, errors.New("proration formula did not produce a number")
		}
		if f < 0 {
			return nil, errors.New("proration formula produced a negative amount")
		}
		amounts[n-1] = int64(f)
		sum += amounts[n-1]
	}

	if diff := total - sum; diff > 0 && diff < int64(count) {
		amounts[0] += diff
	}
	return amounts, nil
}
