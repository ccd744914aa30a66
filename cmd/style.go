package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/pot-odds/domain/odds"
	"github.com/luca-patrignani/pot-odds/domain/poker"
)

func getEquityPanel(report odds.Report, hand [2]poker.Card, board []poker.Card, eq poker.Equity, opponents int) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)

	boardString := "-"
	if len(board) > 0 {
		boardString = poker.FormatCards(board)
	}
	info := pterm.Sprintfln("Hand: %s", poker.FormatCards(hand[:]))
	info += pterm.Sprintfln("Board: %s", boardString)
	if round, err := poker.RoundOf(board); err == nil {
		info += pterm.Sprintfln("Street: %s, %d cards to come", round, round.Remaining())
	}
	if len(board) == 5 {
		if made, err := poker.Describe(hand, board); err == nil {
			info += pterm.Sprintfln("Made hand: %s", made)
		}
	}
	info += pterm.Sprintfln("Equity: %.3f%% vs %s (%s)", eq.Value()*100, opponentsString(opponents), methodString(eq))
	info += pterm.Sprintfln("Showdowns: %d won, %d split, %d lost", eq.Wins, eq.Ties, eq.Losses())
	info += pterm.Sprintfln("Needed: %.3f%%", report.Percentage())
	info += "Verdict: " + verdictString(odds.Decide(report.Pot, report.Bet, eq.Value()))

	return pbox.WithTitle(pterm.LightYellow("|EQUITY|")).WithTitleTopCenter().Sprint(info)
}

func opponentsString(n int) string {
	if n == 1 {
		return "1 opponent"
	}
	return fmt.Sprintf("%d opponents", n)
}

func methodString(eq poker.Equity) string {
	if eq.Exact {
		return "exact"
	}
	return fmt.Sprintf("%d trials", eq.Trials)
}

func verdictString(v odds.Verdict) string {
	if v == odds.Call {
		return pterm.LightGreen(string(v))
	}
	return pterm.LightRed(string(v))
}
