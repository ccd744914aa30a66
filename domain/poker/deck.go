package poker

// Deck is an ordered set of cards.
type Deck []Card

// NewDeck returns the 52 cards, clubs first, ace to king within a suit.
func NewDeck() Deck {
	d := make(Deck, 0, 52)
	for suit := uint8(Club); suit <= Spade; suit++ {
		for rank := uint8(Ace); rank <= King; rank++ {
			d = append(d, Card{suit: suit, rank: rank})
		}
	}
	return d
}

// Without returns a copy of d with the given cards removed.
func (d Deck) Without(cards ...Card) Deck {
	drop := make(map[Card]bool, len(cards))
	for _, c := range cards {
		drop[c] = true
	}
	out := make(Deck, 0, len(d))
	for _, c := range d {
		if !drop[c] {
			out = append(out, c)
		}
	}
	return out
}
