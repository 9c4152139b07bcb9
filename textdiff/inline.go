package textdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Segment is a run of characters of an inline diff.
type Segment struct {
	Op   Op
	Text string
}

// Inline computes a character level diff between two values, cleaned up
// for human reading.
func Inline(from, to string) []Segment {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	res := make([]Segment, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = OpDelete
		case diffpatch.DiffInsert:
			op = OpInsert
		default:
			op = OpEqual
		}
		res = append(res, Segment{Op: op, Text: diff.Text})
	}
	return res
}

// Side returns the segments of segs visible on one side of an inline diff:
// equal segments and either the deletions (left) or the insertions (right).
func Side(segs []Segment, left bool) []Segment {
	skip := OpInsert
	if !left {
		skip = OpDelete
	}
	res := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s.Op == skip {
			continue
		}
		res = append(res, s)
	}
	return res
}
