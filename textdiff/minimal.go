package textdiff

import (
	"unicode/utf8"

	"github.com/signadot/cfgdiff/change"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Minimal compares left and right line by line with an exact diff.
//
// Each distinct normalized line is mapped to a rune and the rune sequences
// are diffed, so the result has the same shape as [Lines]: unchanged rows
// carry both sides, deletions only the left and additions only the right.
// Inputs with more distinct lines than there are runes are compared with
// [Lines] instead.
func Minimal(left, right string, opts ...Option) []change.Line {
	return MinimalLines(SplitLines(left), SplitLines(right), opts...)
}

// MinimalLines is [Minimal] over already split lines.
func MinimalLines(left, right []string, opts ...Option) []change.Line {
	cfg := NewConfig(opts...)
	m := map[string]rune{}
	lRunes, lok := mapLines(m, normAll(cfg, left))
	rRunes, rok := mapLines(m, normAll(cfg, right))
	if !lok || !rok {
		return LinesOf(left, right, opts...)
	}
	diffCfg := diffpatch.New()
	diffCfg.DiffTimeout = 0
	diffs := diffCfg.DiffMainRunes(lRunes, rRunes, false)

	res := make([]change.Line, 0, max(len(left), len(right)))
	i, j := 0, 0
	for k := range diffs {
		diff := &diffs[k]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range n {
				res = append(res, change.Both(change.Unchanged, i+1, left[i], j+1, right[j]))
				i++
				j++
			}
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, change.Left(change.Deletion, i+1, left[i]))
				i++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, change.Right(change.Addition, j+1, right[j]))
				j++
			}
		}
	}
	return res
}

// mapLines maps each distinct line to a valid, non surrogate rune. It
// reports false when there are more distinct lines than such runes.
func mapLines(m map[string]rune, lines []string) ([]rune, bool) {
	rs := make([]rune, len(lines))
	for i, l := range lines {
		r, ok := m[l]
		if !ok {
			r = lineRune(len(m))
			if r > utf8.MaxRune {
				return nil, false
			}
			m[l] = r
		}
		rs[i] = r
	}
	return rs, true
}

func lineRune(n int) rune {
	r := rune(n)
	if r >= surrogateMin {
		r += surrogateMax - surrogateMin + 1
	}
	return r
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)
