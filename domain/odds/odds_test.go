package odds

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		pot      float64
		bet      float64
		expected float64
	}{
		{"half pot", 100, 50, 50.0 / 150.0},
		{"pot sized", 100, 100, 0.5},
		{"thousands", 1000, 500, 500.0 / 1500.0},
		{"tiny bet", 1000, 1, 1.0 / 1001.0},
		{"no pot", 0, 10, 1},
		{"no bet", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.pot, tt.bet)
			if got != tt.expected {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			if p := Percentage(tt.pot, tt.bet); p != tt.expected*100 {
				t.Fatalf("expected percentage %v, got %v", tt.expected*100, p)
			}
		})
	}
}

func TestEvaluateZeroZeroIsNaN(t *testing.T) {
	if got := Evaluate(0, 0); !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %v", got)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		pot      float64
		bet      float64
		equity   float64
		expected Verdict
	}{
		{"clears threshold", 100, 50, 0.40, Call},
		{"below threshold", 100, 50, 0.30, Fold},
		{"exactly break even", 100, 100, 0.5, Fold},
		{"undefined threshold", 0, 0, 1, Fold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.pot, tt.bet, tt.equity); got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
