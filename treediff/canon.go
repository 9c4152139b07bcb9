package treediff

import (
	"slices"
	"strings"
)

// Canonical returns a copy of n with attributes sorted by name and white
// space collapsed in attribute values and text. Canonicalizing a canonical
// tree yields an equal tree.
func (n *Node) Canonical() *Node {
	res := &Node{
		Name:        n.Name,
		Identifier:  n.Identifier,
		DisplayName: n.DisplayName,
		Path:        n.Path,
		Text:        collapse(n.Text),
	}
	if len(n.Attrs) != 0 {
		res.Attrs = make([]Attr, len(n.Attrs))
		for i, a := range n.Attrs {
			res.Attrs[i] = Attr{Name: a.Name, Value: collapse(a.Value)}
		}
		slices.SortStableFunc(res.Attrs, func(a, b Attr) int {
			return strings.Compare(a.Name, b.Name)
		})
	}
	if len(n.Children) != 0 {
		res.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			res.Children[i] = c.Canonical()
		}
	}
	return res
}
