// Package odds computes the equity a call needs to break even against a bet.
package odds

// Evaluate returns the fraction of the final pot the caller contributes,
// bet / (bet + pot). A call is profitable when the hand wins more often
// than this. Evaluate(0, 0) is NaN.
func Evaluate(pot, bet float64) float64 {
	return bet / (bet + pot)
}

// Percentage is Evaluate scaled to 0-100.
func Percentage(pot, bet float64) float64 {
	return Evaluate(pot, bet) * 100.0
}

type Verdict string

const (
	Call Verdict = "Call"
	Fold Verdict = "Fold"
)

// Decide compares an equity (0-1) with the threshold for pot and bet.
// The call must strictly beat the threshold; a NaN threshold folds.
func Decide(pot, bet, equity float64) Verdict {
	if equity > Evaluate(pot, bet) {
		return Call
	}
	return Fold
}
