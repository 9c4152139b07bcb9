package textdiff

import (
	"github.com/signadot/cfgdiff/change"
)

// Lines compares left and right line by line.
//
// Matching lines are consumed in lock step. At a mismatch, Lines looks up
// to [LookAhead] lines ahead on each side for the other side's current
// line: if the right line reappears soon on the left, the left line is a
// deletion; if the left line reappears soon on the right, the right line is
// an addition; if neither reappears both lines are reported as a deletion
// followed by an addition.
func Lines(left, right string, opts ...Option) []change.Line {
	return LinesOf(SplitLines(left), SplitLines(right), opts...)
}

// LinesOf is [Lines] over already split lines.
func LinesOf(left, right []string, opts ...Option) []change.Line {
	cfg := NewConfig(opts...)
	nl := normAll(cfg, left)
	nr := normAll(cfg, right)
	res := make([]change.Line, 0, max(len(left), len(right)))
	i, j := 0, 0
	for i < len(left) || j < len(right) {
		switch {
		case i >= len(left):
			res = append(res, change.Right(change.Addition, j+1, right[j]))
			j++
		case j >= len(right):
			res = append(res, change.Left(change.Deletion, i+1, left[i]))
			i++
		case nl[i] == nr[j]:
			res = append(res, change.Both(change.Unchanged, i+1, left[i], j+1, right[j]))
			i++
			j++
		default:
			li := lookAhead(nl, i, nr[j])
			ri := lookAhead(nr, j, nl[i])
			switch {
			case li != -1 && (ri == -1 || li-i <= ri-j):
				res = append(res, change.Left(change.Deletion, i+1, left[i]))
				i++
			case ri != -1:
				res = append(res, change.Right(change.Addition, j+1, right[j]))
				j++
			default:
				res = append(res,
					change.Left(change.Deletion, i+1, left[i]),
					change.Right(change.Addition, j+1, right[j]))
				i++
				j++
			}
		}
	}
	return res
}

// lookAhead returns the index of the first occurrence of want in
// lines[from:from+LookAhead], or -1.
func lookAhead(lines []string, from int, want string) int {
	end := min(from+LookAhead, len(lines))
	for k := from; k < end; k++ {
		if lines[k] == want {
			return k
		}
	}
	return -1
}

func normAll(cfg *Config, lines []string) []string {
	f := cfg.normFunc()
	if f == nil {
		return lines
	}
	res := make([]string, len(lines))
	for i, l := range lines {
		res[i] = f(l)
	}
	return res
}
