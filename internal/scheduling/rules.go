package scheduling

import "context"

// Result is the outcome of a single rule. A failed Result always carries a
// human readable Reason; a passing one has none.
type Result struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func Pass() Result {
	return Result{OK: true}
}

func Fail(reason string) Result {
	return Result{OK: false, Reason: reason}
}

// Rule is one step of a composite validation. Errors are reserved for
// infrastructure faults; a broken business rule is a failed Result.
type Rule func(ctx context.Context) (Result, error)

// Static wraps a precomputed Result as a Rule.
func Static(r Result) Rule {
	return func(context.Context) (Result, error) { return r, nil }
}

// Evaluate runs rules in order and stops at the first failure or error.
// Later rules are not invoked once an earlier one has failed, and a cancelled
// context aborts the chain before the next rule starts.
func Evaluate(ctx context.Context, rules ...Rule) (Result, error) {
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res, err := rule(ctx)
		if err != nil {
			return Result{}, err
		}
		if !res.OK {
			return res, nil
		}
	}
	return Pass(), nil
}
