package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/pot-odds/domain/locale"
	"github.com/luca-patrignani/pot-odds/domain/odds"
	"github.com/luca-patrignani/pot-odds/domain/poker"
	"github.com/luca-patrignani/pot-odds/prompt"
)

// exitUsage is reported as 255 by POSIX shells.
const exitUsage = -1

type config struct {
	hand      string
	board     string
	opponents int
	trials    int
	seed      uint64
	verbose   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	program := args[0]
	cfg := config{}
	flags := flag.NewFlagSet(program, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&cfg.hand, "hand", "", "your hole cards, e.g. AhKd; prints an equity estimate")
	flags.StringVar(&cfg.board, "board", "", "known community cards, e.g. \"Qh Jh 2c\"")
	flags.IntVar(&cfg.opponents, "opponents", poker.DefaultOpponents, "number of opponents in the hand")
	flags.IntVar(&cfg.trials, "trials", poker.DefaultTrials, "simulated showdowns for the estimate")
	flags.Uint64Var(&cfg.seed, "seed", 0, "random seed for a reproducible estimate (0 picks one)")
	flags.BoolVar(&cfg.verbose, "verbose", false, "enable debug logging on stderr")
	positional, parseErr := args[1:], flags.Parse(args[1:])
	switch {
	case errors.Is(parseErr, flag.ErrHelp):
		printHelp(stdout, program)
		flags.SetOutput(stderr)
		flags.PrintDefaults()
		return 0
	case parseErr != nil:
		// not flags after all: "-5 50" is a pot size that fails to parse
		cfg = config{opponents: poker.DefaultOpponents, trials: poker.DefaultTrials}
	default:
		positional = flags.Args()
	}

	logger := newLogger(stderr, cfg.verbose)
	if parseErr != nil {
		logger.Debug("treating arguments as values", "error", parseErr)
	}

	var pot, bet float64
	if len(positional) == 2 {
		var ok bool
		if pot, ok = locale.Parse(positional[0]); !ok {
			logger.Debug("invalid pot size", "value", positional[0])
			printHelp(stdout, program)
			return exitUsage
		}
		if bet, ok = locale.Parse(positional[1]); !ok {
			logger.Debug("invalid bet size", "value", positional[1])
			printHelp(stdout, program)
			return exitUsage
		}
	} else {
		var err error
		r := prompt.NewReader(stdin, stdout, logger)
		if pot, err = r.Ask(ctx, "Pot size: "); err != nil {
			logger.Error("could not read the pot size", "error", err)
			return 1
		}
		if bet, err = r.Ask(ctx, "Bet size: "); err != nil {
			logger.Error("could not read the bet size", "error", err)
			return 1
		}
	}

	report := odds.Report{Pot: pot, Bet: bet}
	logger.Debug("evaluated", "pot", pot, "bet", bet, "ratio", report.Ratio())
	if _, err := report.WriteTo(stdout); err != nil {
		logger.Error("could not write the result", "error", err)
		return 1
	}

	if cfg.hand == "" {
		return 0
	}
	if err := printEstimate(ctx, stdout, logger, cfg, report); err != nil {
		logger.Error("could not estimate the hand equity", "error", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := pterm.LogLevelInfo
	if verbose {
		level = pterm.LogLevelDebug
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithWriter(w).WithLevel(level))
	return slog.New(handler)
}

func printHelp(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s <pot_size> <bet_size>\n", program)
}

func printEstimate(ctx context.Context, w io.Writer, logger *slog.Logger, cfg config, report odds.Report) error {
	holeCards, err := poker.ParseCards(cfg.hand)
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}
	if len(holeCards) != 2 {
		return fmt.Errorf("hand: expected 2 cards, got %d", len(holeCards))
	}
	hand := [2]poker.Card{holeCards[0], holeCards[1]}
	board, err := poker.ParseCards(cfg.board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	opts := []poker.EstimatorOption{
		poker.WithOpponents(cfg.opponents),
		poker.WithTrials(cfg.trials),
	}
	if cfg.seed != 0 {
		opts = append(opts, poker.WithSeed(cfg.seed))
	}
	estimator := poker.NewEstimator(opts...)

	eq, err := estimator.Estimate(ctx, hand, board)
	if err != nil {
		return err
	}
	logger.Debug("estimated", "trials", eq.Trials, "wins", eq.Wins, "ties", eq.Ties, "exact", eq.Exact)

	pterm.Fprintln(w, getEquityPanel(report, hand, board, eq, estimator.Opponents()))
	return nil
}
