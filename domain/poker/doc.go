// Package poker provides the playing card model shared by the range parser,
// the deck and the simulator.
//
// # Core Types
//
// Card: a playing card with suit (0-3) and rank (Ace=1 ... King=13).
//
// Value: a rank in showdown order, Two through Ace, with a successor function.
// Range notation is written in values ("AKs", "T9o") so parsing and range
// expansion work on Value rather than on raw ranks.
//
// # Hand Evaluation
//
// Eval7 and Showdown score seven card hands through github.com/paulhankin/poker.
// Describe names a hand for display.
package poker
