// Package poker models playing cards and estimates how often a Texas
// Hold'em hand wins, so that the estimate can be held against the
// equity a pot-odds call requires.
//
// # Cards
//
// Card is a suit and a rank. Cards are written in the usual short
// notation, rank then suit: "Ah", "Td", "10d", "7c". ParseCards reads a
// whole hand or board such as "AhKd" or "Qs Jh 2c".
//
// # Equity
//
// Estimator deals the unseen cards to a number of opponents and completes
// the board, scoring each showdown with 7-card hand evaluation. Wins
// count as one, an n-way split as 1/n. With a complete board against a
// single opponent every villain holding is enumerated and the result is
// exact; otherwise trials are sampled across a pool of workers.
package poker
