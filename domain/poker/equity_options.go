package poker

import "runtime"

const (
	DefaultTrials    = 10000
	DefaultOpponents = 1
	MaxOpponents     = 9
)

type EstimatorOption func(Estimator) Estimator

// NewEstimator returns an Estimator playing DefaultTrials hands against
// DefaultOpponents opponent on GOMAXPROCS workers, unless overridden.
func NewEstimator(opts ...EstimatorOption) Estimator {
	e := Estimator{
		trials:    DefaultTrials,
		opponents: DefaultOpponents,
		workers:   runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

func WithTrials(trials int) EstimatorOption {
	return func(e Estimator) Estimator {
		e.trials = trials
		return e
	}
}

func WithOpponents(opponents int) EstimatorOption {
	return func(e Estimator) Estimator {
		e.opponents = opponents
		return e
	}
}

func WithWorkers(workers int) EstimatorOption {
	return func(e Estimator) Estimator {
		e.workers = workers
		return e
	}
}

// WithSeed makes sampling reproducible: the same seed, trial count and
// worker count give the same Equity.
func WithSeed(seed uint64) EstimatorOption {
	return func(e Estimator) Estimator {
		e.seed = seed
		e.seeded = true
		return e
	}
}
