package treediff

import (
	"github.com/signadot/cfgdiff/debug"
)

// Pair is a left and a right node matched to each other.
type Pair struct {
	Left, Right *Node
	// Score is 1 for a key match and the similarity score otherwise.
	Score float64
	ByKey bool
}

// Matching is the result of matching two lists of sibling nodes.
type Matching struct {
	// Pairs are ordered by the position of their left node.
	Pairs []Pair
	// Removed are the unmatched left nodes, in order.
	Removed []*Node
	// Added are the unmatched right nodes, in order.
	Added []*Node
}

// MatchChildren pairs nodes of left with nodes of right.
//
// Nodes with an identity key are first paired with the first unused right
// node with the same key. Every left node still unpaired is then paired
// with the unused right node of the same name that has the best
// [Similarity], provided the score is above the configured threshold;
// among equal scores the first candidate wins. Each node is used at most
// once.
func MatchChildren(left, right []*Node, opts ...Option) *Matching {
	return matchChildren(left, right, NewConfig(opts...))
}

func matchChildren(left, right []*Node, cfg *Config) *Matching {
	leftTo := make([]int, len(left))
	for i := range leftTo {
		leftTo[i] = -1
	}
	usedRight := make([]bool, len(right))
	scores := make([]float64, len(left))
	byKey := make([]bool, len(left))

	rightKeys := make([]string, len(right))
	rightHasKey := make([]bool, len(right))
	for j, r := range right {
		rightKeys[j], rightHasKey[j] = r.Key(cfg.IdentifierAttrs)
	}
	for i, l := range left {
		key, ok := l.Key(cfg.IdentifierAttrs)
		if !ok {
			continue
		}
		for j := range right {
			if usedRight[j] || !rightHasKey[j] || rightKeys[j] != key {
				continue
			}
			leftTo[i] = j
			usedRight[j] = true
			scores[i] = 1
			byKey[i] = true
			if debug.Match() {
				debug.Logf("match key %s: %s <-> %s\n", key, l.Path, right[j].Path)
			}
			break
		}
	}

	for i, l := range left {
		if leftTo[i] != -1 {
			continue
		}
		best, bestScore := -1, cfg.Threshold
		for j, r := range right {
			if usedRight[j] {
				continue
			}
			score := Similarity(l, r)
			if debug.Matches() {
				debug.Logf("similarity %s <-> %s: %.3f\n", l.Path, r.Path, score)
			}
			if score > bestScore {
				best, bestScore = j, score
			}
		}
		if best == -1 {
			continue
		}
		leftTo[i] = best
		usedRight[best] = true
		scores[i] = bestScore
		if debug.Match() {
			debug.Logf("match similarity %.3f: %s <-> %s\n", bestScore, l.Path, right[best].Path)
		}
	}

	m := &Matching{}
	for i, j := range leftTo {
		if j == -1 {
			m.Removed = append(m.Removed, left[i])
			continue
		}
		m.Pairs = append(m.Pairs, Pair{Left: left[i], Right: right[j], Score: scores[i], ByKey: byKey[i]})
	}
	for j, r := range right {
		if !usedRight[j] {
			m.Added = append(m.Added, r)
		}
	}
	return m
}

// Similarity scores how alike two nodes are, from 0 to 1.
//
// Nodes with different names score 0. Otherwise the score is the number of
// attributes with the same name and value on both nodes over the number of
// distinct attribute names of the two. When neither node has attributes
// the score is 1 if their texts are equal and 0.4 otherwise.
func Similarity(a, b *Node) float64 {
	if a.Name != b.Name {
		return 0
	}
	if len(a.Attrs) == 0 && len(b.Attrs) == 0 {
		if a.Text == b.Text {
			return 1
		}
		return 0.4
	}
	names := make(map[string]struct{}, len(a.Attrs)+len(b.Attrs))
	for _, at := range a.Attrs {
		names[at.Name] = struct{}{}
	}
	same := 0
	for _, bt := range b.Attrs {
		names[bt.Name] = struct{}{}
		if v, ok := a.Attr(bt.Name); ok && v == bt.Value {
			same++
		}
	}
	return float64(same) / float64(len(names))
}
