package odds

import (
	"fmt"
	"io"
	"strings"
)

// Report is the printed answer for a single pot/bet pair.
type Report struct {
	Pot float64
	Bet float64
}

func (r Report) Ratio() float64 {
	return Evaluate(r.Pot, r.Bet)
}

func (r Report) Percentage() float64 {
	return Percentage(r.Pot, r.Bet)
}

// Summary is the first output line, e.g. "You need > 33.333% Equity.".
func (r Report) Summary() string {
	return fmt.Sprintf("You need > %.3f%% Equity.", r.Percentage())
}

// Breakdown restates the formula with the values substituted.
func (r Report) Breakdown() string {
	return fmt.Sprintf("%.3f / (%.3f + %.3f) = %.3f", r.Bet, r.Pot, r.Bet, r.Ratio())
}

func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString(r.Summary())
	sb.WriteString("\nCalculation is:\n")
	sb.WriteString(r.Breakdown())
	sb.WriteString("\n\n")
	return sb.String()
}

// WriteTo writes the summary, the breakdown and a closing blank line.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
