package poker

import "fmt"

type Round string

const (
	PreFlop Round = "Preflop"
	Flop    Round = "Flop"
	Turn    Round = "Turn"
	River   Round = "River"
)

// RoundOf names the betting round a board belongs to. Hold'em boards hold
// 0, 3, 4 or 5 cards; any other length is an error.
func RoundOf(board []Card) (Round, error) {
	switch len(board) {
	case 0:
		return PreFlop, nil
	case 3:
		return Flop, nil
	case 4:
		return Turn, nil
	case 5:
		return River, nil
	}
	return "", fmt.Errorf("a board of %d cards is not a hold'em street", len(board))
}

// Remaining is the number of community cards still to come.
func (r Round) Remaining() int {
	switch r {
	case PreFlop:
		return 5
	case Flop:
		return 2
	case Turn:
		return 1
	}
	return 0
}
