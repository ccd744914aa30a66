package poker

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/paulhankin/poker"
	"golang.org/x/sync/errgroup"
)

// Estimator measures the share of showdowns a hand wins. Build one with
// NewEstimator.
type Estimator struct {
	trials    int
	opponents int
	workers   int
	seed      uint64
	seeded    bool
}

// Equity is the outcome of an estimate. Share sums 1 for each win and
// 1/n for each n-way split.
type Equity struct {
	Trials int
	Wins   int
	Ties   int
	Share  float64
	Exact  bool
}

// Value is the hand's equity as a fraction in [0, 1].
func (eq Equity) Value() float64 {
	if eq.Trials == 0 {
		return 0
	}
	return eq.Share / float64(eq.Trials)
}

func (eq Equity) Losses() int {
	return eq.Trials - eq.Wins - eq.Ties
}

func (eq *Equity) add(other Equity) {
	eq.Trials += other.Trials
	eq.Wins += other.Wins
	eq.Ties += other.Ties
	eq.Share += other.Share
}

func (e Estimator) Opponents() int { return e.opponents }

func (e Estimator) validate(hand [2]Card, board []Card) (Deck, error) {
	if e.opponents < 1 || e.opponents > MaxOpponents {
		return nil, fmt.Errorf("opponents must be between 1 and %d, got %d", MaxOpponents, e.opponents)
	}
	if e.trials < 1 {
		return nil, fmt.Errorf("trials must be positive, got %d", e.trials)
	}
	if _, err := RoundOf(board); err != nil {
		return nil, err
	}
	known := append([]Card{hand[0], hand[1]}, board...)
	for _, c := range known {
		if _, err := NewCard(c.suit, c.rank); err != nil {
			return nil, err
		}
	}
	if err := checkDistinct(known); err != nil {
		return nil, err
	}
	unseen := NewDeck().Without(known...)
	if need := 2*e.opponents + 5 - len(board); need > len(unseen) {
		return nil, fmt.Errorf("%w: need %d unseen cards, have %d", ErrNotEnoughCards, need, len(unseen))
	}
	return unseen, nil
}

// Estimate plays the hand against the configured opponents. With a
// complete board and a single opponent the result is exact.
func (e Estimator) Estimate(ctx context.Context, hand [2]Card, board []Card) (Equity, error) {
	unseen, err := e.validate(hand, board)
	if err != nil {
		return Equity{}, err
	}
	heroCards, err := toLibAll(hand[:])
	if err != nil {
		return Equity{}, err
	}
	boardCards, err := toLibAll(board)
	if err != nil {
		return Equity{}, err
	}
	unseenCards, err := toLibAll(unseen)
	if err != nil {
		return Equity{}, err
	}
	if len(board) == 5 && e.opponents == 1 {
		return enumerate(ctx, heroCards, boardCards, unseenCards)
	}
	return e.sample(ctx, heroCards, boardCards, unseenCards)
}

func enumerate(ctx context.Context, hero, board, unseen []poker.Card) (Equity, error) {
	var h, v [7]poker.Card
	copy(h[:], board)
	copy(v[:], board)
	h[5], h[6] = hero[0], hero[1]
	heroScore := poker.Eval7(&h)

	eq := Equity{Exact: true}
	for i := 0; i < len(unseen); i++ {
		if err := ctx.Err(); err != nil {
			return Equity{}, err
		}
		for j := i + 1; j < len(unseen); j++ {
			v[5], v[6] = unseen[i], unseen[j]
			eq.tally(heroScore, poker.Eval7(&v), 0)
		}
	}
	return eq, nil
}

// tally records one showdown. best is the strongest opponent score and
// splits the number of other opponents sharing it.
func (eq *Equity) tally(hero, best int16, splits int) {
	eq.Trials++
	switch {
	case hero > best:
		eq.Wins++
		eq.Share++
	case hero == best:
		eq.Ties++
		eq.Share += 1 / float64(splits+2)
	}
}

func (e Estimator) sample(ctx context.Context, hero, board, unseen []poker.Card) (Equity, error) {
	workers := e.workers
	if workers < 1 {
		workers = 1
	}
	if workers > e.trials {
		workers = e.trials
	}
	seed := e.seed
	if !e.seeded {
		seed = rand.Uint64()
	}

	results := make([]Equity, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		trials := e.trials / workers
		if w < e.trials%workers {
			trials++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, uint64(w)))
			eq, err := e.runTrials(ctx, rng, trials, hero, board, unseen)
			results[w] = eq
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Equity{}, err
	}

	var total Equity
	for _, r := range results {
		total.add(r)
	}
	return total, nil
}

func (e Estimator) runTrials(ctx context.Context, rng *rand.Rand, trials int, hero, board, unseen []poker.Card) (Equity, error) {
	deck := make([]poker.Card, len(unseen))
	copy(deck, unseen)
	missing := 5 - len(board)
	draw := missing + 2*e.opponents

	var h, v [7]poker.Card
	copy(h[:], board)
	h[5], h[6] = hero[0], hero[1]

	var eq Equity
	for t := 0; t < trials; t++ {
		if t%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return eq, err
			}
		}
		// partial Fisher-Yates: the first draw cards become the deal
		for i := 0; i < draw; i++ {
			j := i + rng.IntN(len(deck)-i)
			deck[i], deck[j] = deck[j], deck[i]
		}
		copy(h[len(board):5], deck[:missing])
		heroScore := poker.Eval7(&h)

		copy(v[:5], h[:5])
		best, splits := int16(math.MinInt16), 0
		for o := 0; o < e.opponents; o++ {
			v[5], v[6] = deck[missing+2*o], deck[missing+2*o+1]
			s := poker.Eval7(&v)
			switch {
			case s > best:
				best, splits = s, 0
			case s == best:
				splits++
			}
		}
		eq.tally(heroScore, best, splits)
	}
	return eq, nil
}
