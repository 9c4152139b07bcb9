package treediff

import (
	"fmt"
	"slices"

	"github.com/signadot/cfgdiff/change"
)

// Compare parses, canonicalizes and diffs two documents.
//
// The error wraps [ErrMalformedDocument] and names the failing side when
// either document does not parse.
func Compare(left, right []byte, opts ...Option) ([]change.Change, error) {
	cfg := NewConfig(opts...)
	l, err := Parse(left, opts...)
	if err != nil {
		return nil, fmt.Errorf("left document: %w", err)
	}
	r, err := Parse(right, opts...)
	if err != nil {
		return nil, fmt.Errorf("right document: %w", err)
	}
	return diff(l.Canonical(), r.Canonical(), cfg), nil
}

// Diff reports the differences between two trees, which should be
// canonical.
//
// The roots are always compared to each other. For each compared pair,
// attribute changes come first in attribute name order, then the text
// change, then the changes of matched children, then removed children,
// then added children. Matched and removed children follow left document
// order, added children right document order.
//
// Changes are reported under the display name path of the left node, and
// added elements under the path of the left parent. Root names are not
// compared.
func Diff(left, right *Node, opts ...Option) []change.Change {
	return diff(left, right, NewConfig(opts...))
}

func diff(left, right *Node, cfg *Config) []change.Change {
	return diffNode(nil, left, right, left.DisplayName, cfg)
}

func diffNode(res []change.Change, left, right *Node, path string, cfg *Config) []change.Change {
	res = diffAttrs(res, left, right, path)
	res = diffText(res, left, right, path)

	m := matchChildren(left.Children, right.Children, cfg)
	for _, p := range m.Pairs {
		res = diffNode(res, p.Left, p.Right, path+"/"+p.Left.DisplayName, cfg)
	}
	for _, l := range m.Removed {
		res = append(res, change.Remove(change.ElementScope, path+"/"+l.DisplayName, nil, l.Format()))
	}
	for _, r := range m.Added {
		res = append(res, change.Add(change.ElementScope, path+"/"+r.DisplayName, nil, r.Format()))
	}
	return res
}

func diffAttrs(res []change.Change, left, right *Node, path string) []change.Change {
	lm := left.AttrMap()
	rm := right.AttrMap()
	names := make([]string, 0, len(lm)+len(rm))
	for k := range lm {
		names = append(names, k)
	}
	for k := range rm {
		if _, ok := lm[k]; !ok {
			names = append(names, k)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		lv, lok := lm[name]
		rv, rok := rm[name]
		field := change.Ptr(name)
		switch {
		case !lok:
			res = append(res, change.Add(change.AttributeScope, path, field, rv))
		case !rok:
			res = append(res, change.Remove(change.AttributeScope, path, field, lv))
		case lv != rv:
			res = append(res, change.Modify(change.AttributeScope, path, field, lv, rv))
		}
	}
	return res
}

func diffText(res []change.Change, left, right *Node, path string) []change.Change {
	if left.Text == right.Text {
		return res
	}
	field := change.Ptr(change.TextField)
	switch {
	case left.Text == "":
		return append(res, change.Add(change.ValueScope, path, field, right.Text))
	case right.Text == "":
		return append(res, change.Remove(change.ValueScope, path, field, left.Text))
	default:
		return append(res, change.Modify(change.ValueScope, path, field, left.Text, right.Text))
	}
}
