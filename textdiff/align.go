package textdiff

import (
	"github.com/signadot/cfgdiff/change"
	"github.com/signadot/cfgdiff/debug"
	"github.com/signadot/cfgdiff/seq"
)

// Align pairs the lines of left and right into rows for side by side
// display.
//
// Rows are unchanged when both lines belong to the longest common
// subsequence, a modification when neither does, and a deletion or an
// addition when only one side is off the subsequence. Once the subsequence
// is exhausted the remaining left lines are deletions and the remaining
// right lines additions.
//
// Line numbers increase monotonically within each side.
func Align(left, right string, opts ...Option) []change.Line {
	return AlignLines(SplitLines(left), SplitLines(right), opts...)
}

// AlignLines is [Align] over already split lines.
func AlignLines(left, right []string, opts ...Option) []change.Line {
	cfg := NewConfig(opts...)
	nl := normAll(cfg, left)
	nr := normAll(cfg, right)
	lcs := normAll(cfg, seq.LCSFunc(left, right, cfg.normFunc()))
	if debug.Align() {
		debug.Logf("align: %d left, %d right, lcs %d\n", len(left), len(right), len(lcs))
	}

	res := make([]change.Line, 0, max(len(left), len(right)))
	i, j, k := 0, 0, 0
	for i < len(left) || j < len(right) {
		if k < len(lcs) && i < len(left) && j < len(right) {
			lOn := nl[i] == lcs[k]
			rOn := nr[j] == lcs[k]
			switch {
			case lOn && rOn:
				res = append(res, change.Both(change.Unchanged, i+1, left[i], j+1, right[j]))
				i++
				j++
				k++
			case !lOn && !rOn:
				res = append(res, change.Both(change.Modification, i+1, left[i], j+1, right[j]))
				i++
				j++
			case !lOn:
				res = append(res, change.Left(change.Deletion, i+1, left[i]))
				i++
			default:
				res = append(res, change.Right(change.Addition, j+1, right[j]))
				j++
			}
			continue
		}
		if i < len(left) {
			res = append(res, change.Left(change.Deletion, i+1, left[i]))
			i++
			continue
		}
		res = append(res, change.Right(change.Addition, j+1, right[j]))
		j++
	}
	return res
}
