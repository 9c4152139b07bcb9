// Package textdiff compares texts line by line.
//
// Three comparisons are provided:
//
//   - [Lines] classifies lines with a forward scan and a bounded look-ahead.
//     It is fast and usually good but does not guarantee a minimal edit
//     script.
//   - [Minimal] produces an exact line diff on top of
//     github.com/sergi/go-diff.
//   - [Align] pairs the lines of both texts into rows for a two pane view,
//     using the longest common subsequence from package seq.
//
// All three report [change.Line] values and cover every line of both inputs
// exactly once per side, in order.
//
// [Inline] computes a character level diff of two single values, for
// highlighting what changed within a modified line or attribute.
package textdiff
