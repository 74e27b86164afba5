// Package handrange parses poker starting hand ranges written in the usual
// shorthand and draws hands from them.
//
// # Notation
//
// A range is a comma separated list of tokens:
//
//	AA      a pocket pair
//	AK      ace king, suited and offsuit
//	AKs     ace king suited (o or u for offsuit)
//	TT+     tens or better
//	J9+     J9, JT, suited and offsuit
//	ATs+    ATs, AJs, AQs, AKs
//	55-99   fives through nines
//
// Every token expands into RangeComponents. Components are de-duplicated, so
// "KK,KK" and "KK" are the same range.
//
// # Sampling
//
// Range.Draw weights each component by the number of physical hands it stands
// for (6 for a pair, 4 for suited cards, 12 for offsuit cards) and then picks
// concrete suits. Randomness is always passed in as a *rand.Rand so results can
// be reproduced with a fixed seed.
package handrange
