package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/pot-odds/prompt"
)

func runWith(t *testing.T, input string, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"pot-odds"}, args...), strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String()
}

func TestRunArguments(t *testing.T) {
	code, out := runWith(t, "", "100", "50")
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	expected := "You need > 33.333% Equity.\n" +
		"Calculation is:\n" +
		"50.000 / (100.000 + 50.000) = 0.333\n\n"
	if out != expected {
		t.Fatalf("expected %q, got %q", expected, out)
	}
}

func TestRunArgumentsThousands(t *testing.T) {
	code, out := runWith(t, "", "1.000", "500")
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.HasPrefix(out, "You need > 33.333% Equity.\n") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, "500.000 / (1000.000 + 500.000) = 0.333\n") {
		t.Fatalf("unexpected breakdown %q", out)
	}
}

func TestRunArgumentsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid pot", []string{"abc", "50"}},
		{"invalid bet", []string{"100", "50.5"}},
		{"leading zero", []string{"0100", "50"}},
		{"negative pot", []string{"-5", "50"}},
		{"negative bet", []string{"100", "-50"}},
		{"unknown flag as pot", []string{"-nope", "50"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := runWith(t, "", tt.args...)
			if code != exitUsage {
				t.Fatalf("expected exit code %d, got %d", exitUsage, code)
			}
			if out != "Usage: pot-odds <pot_size> <bet_size>\n" {
				t.Fatalf("unexpected output %q", out)
			}
		})
	}
}

func TestRunInteractive(t *testing.T) {
	code, out := runWith(t, "abc\n100\n50\n")
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	expected := "Pot size: " + prompt.RetryMessage + "Bet size: " +
		"You need > 33.333% Equity.\n" +
		"Calculation is:\n" +
		"50.000 / (100.000 + 50.000) = 0.333\n\n"
	if out != expected {
		t.Fatalf("expected %q, got %q", expected, out)
	}
}

func TestRunInteractiveWithOtherArgCounts(t *testing.T) {
	for _, args := range [][]string{{"100"}, {"100", "50", "25"}} {
		code, out := runWith(t, "10\n10\n", args...)
		if code != 0 {
			t.Fatalf("%v: expected exit code 0, got %d", args, code)
		}
		if !strings.HasPrefix(out, "Pot size: Bet size: You need > 50.000% Equity.\n") {
			t.Fatalf("%v: unexpected output %q", args, out)
		}
	}
}

func TestRunInteractiveEndOfInput(t *testing.T) {
	code, out := runWith(t, "100\n")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if out != "Pot size: Bet size: " {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunDashArgumentGoesInteractive(t *testing.T) {
	for _, args := range [][]string{{"-5"}, {"-nope", "100", "50"}} {
		code, out := runWith(t, "100\n50\n", args...)
		if code != 0 {
			t.Fatalf("%v: expected exit code 0, got %d", args, code)
		}
		if !strings.HasPrefix(out, "Pot size: Bet size: You need > 33.333% Equity.\n") {
			t.Fatalf("%v: unexpected output %q", args, out)
		}
	}
}

func TestRunHelp(t *testing.T) {
	code, out := runWith(t, "", "-h")
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if out != "Usage: pot-odds <pot_size> <bet_size>\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunEquityEstimate(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	code, out := runWith(t, "", "-hand", "AhKh", "-board", "Qh Jh Th 2c 7d", "100", "50")
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.HasPrefix(out, "You need > 33.333% Equity.\n") {
		t.Fatalf("the threshold must come first, got %q", out)
	}
	for _, want := range []string{"Street: River, 0 cards to come", "Showdowns: 990 won, 0 split, 0 lost", "Equity: 100.000% vs 1 opponent (exact)", "Needed: 33.333%", "Verdict: Call"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestRunEquityEstimateFold(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	code, out := runWith(t, "", "-hand", "7c2d", "-opponents", "5", "-trials", "2000", "-seed", "3", "1", "1.000")
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	for _, want := range []string{"Street: Preflop, 5 cards to come", "vs 5 opponents (2000 trials)", "Verdict: Fold"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestRunEquityEstimateBadHand(t *testing.T) {
	for _, hand := range []string{"Ah", "AhKhQh", "Zz9"} {
		if code, _ := runWith(t, "", "-hand", hand, "100", "50"); code != 1 {
			t.Fatalf("%q: expected exit code 1, got %d", hand, code)
		}
	}
}
