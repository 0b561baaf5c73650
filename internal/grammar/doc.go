// Package grammar is a small parser-combinator toolkit over string and
// []byte input.
//
// Rules are plain functions from a Cursor to an advanced Cursor plus a
// value, or a Failure. A Failure records the deepest offset reached and a
// trace of frames, innermost first; Context adds human labels on the way
// out. Rules are written once against the Text constraint and instantiated
// for each input representation, so a grammar decodes strings and byte
// slices identically.
//
// Cut marks a failure as committed so that Opt and SeparatedList report it
// instead of backtracking. AllConsuming rejects leftover input.
package grammar
