package poker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 1  // A (low in straights, high in value)
)

// FaceDown is the display character for unknown cards
const (
	FaceDown = "▓"
)

var (
	ErrInvalidCard   = errors.New("invalid card")
	ErrDuplicateCard = errors.New("duplicate card")
)

const (
	rankLetters = "A23456789TJQK"
	suitLetters = "cdhs"
)

// Card represents a playing card with suit and rank.
// Rank 0 indicates an unknown card.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king (0 = unknown)
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("%w %d, %d", ErrInvalidCard, suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// ParseCard reads a card in short notation: a rank (A, K, Q, J, T or 10,
// 9 down to 2) followed by a suit letter (c, d, h, s). Case is ignored.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w %q", ErrInvalidCard, s)
	}
	rankPart, suitPart := strings.ToUpper(s[:len(s)-1]), strings.ToLower(s[len(s)-1:])
	if rankPart == "10" {
		rankPart = "T"
	}
	r := strings.Index(rankLetters, rankPart)
	su := strings.Index(suitLetters, suitPart)
	if len(rankPart) != 1 || r < 0 || su < 0 {
		return Card{}, fmt.Errorf("%w %q", ErrInvalidCard, s)
	}
	return NewCard(uint8(su), uint8(r+1))
}

// ParseCards reads a list of cards separated by spaces or commas. Cards
// may also be run together ("AhKd"). Duplicates are rejected.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	var tokens []string
	for _, f := range fields {
		tokens = append(tokens, splitRun(f)...)
	}
	cards := make([]Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	if err := checkDistinct(cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// splitRun cuts "AhKd10c" into "Ah", "Kd", "10c".
func splitRun(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.ContainsRune(suitLetters, rune(s[i]|0x20)) && i > start {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func checkDistinct(cards []Card) error {
	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("%w %s", ErrDuplicateCard, c.Code())
		}
		seen[c] = true
	}
	return nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// Code returns the short notation of the card, e.g. "Ah" or "Td".
func (c Card) Code() string {
	if c.rank == 0 || c.rank > 13 || c.suit > 3 {
		return "??"
	}
	return string(rankLetters[c.rank-1]) + string(suitLetters[c.suit])
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	if c.rank == 0 {
		return FaceDown
	}
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}

// FormatCards joins the String form of cards with spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
