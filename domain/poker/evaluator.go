package poker

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
)

var ErrNotEnoughCards = errors.New("not enough cards")

// toLib converts a Card to the evaluator's representation. Both use
// clubs..spades as 0..3 and ace as rank 1.
func toLib(c Card) (poker.Card, error) {
	card, err := poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.rank))
	if err != nil {
		return card, fmt.Errorf("%w %s: %w", ErrInvalidCard, c.Code(), err)
	}
	return card, nil
}

func toLibAll(cards []Card) ([]poker.Card, error) {
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		lc, err := toLib(c)
		if err != nil {
			return nil, err
		}
		out[i] = lc
	}
	return out, nil
}

// makeFinalHand puts the five board cards and the two hole cards in the
// layout Eval7 expects.
func makeFinalHand(hand [2]Card, board []Card) ([7]poker.Card, error) {
	var finalHand [7]poker.Card
	if len(board) != 5 {
		return finalHand, fmt.Errorf("%w: board has %d cards, need 5", ErrNotEnoughCards, len(board))
	}
	for i, c := range board {
		card, err := toLib(c)
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid board card at idx %d: %w", i, err)
		}
		finalHand[i] = card
	}
	for i, c := range hand {
		card, err := toLib(c)
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid player card: %w", err)
		}
		finalHand[5+i] = card
	}
	return finalHand, nil
}

// Score rates the best five-card hand out of the hole cards and a complete
// board. Higher scores beat lower ones.
func Score(hand [2]Card, board []Card) (int16, error) {
	finalHand, err := makeFinalHand(hand, board)
	if err != nil {
		return 0, err
	}
	return poker.Eval7(&finalHand), nil
}

// Describe names the made hand, e.g. "pair of aces". The board must be
// complete.
func Describe(hand [2]Card, board []Card) (string, error) {
	finalHand, err := makeFinalHand(hand, board)
	if err != nil {
		return "", err
	}
	return poker.Describe(finalHand[:])
}
