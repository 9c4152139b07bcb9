package pathdiff

import (
	"strconv"

	"github.com/signadot/cfgdiff/change"
	"github.com/signadot/cfgdiff/treediff"
)

// TreeSep separates the element path from the attribute name in the paths
// of tree entries.
const TreeSep = "||"

// FlattenTree flattens an element tree into one entry per attribute and
// one entry for the element's text, keyed by element path and attribute
// name. An element with neither gets a single entry with an empty
// attribute name so that it still takes part in the comparison.
//
// Siblings sharing a display name are told apart by a "#n" suffix from the
// second one on.
func FlattenTree(n *treediff.Node) []Entry {
	return flattenTree(nil, n, n.DisplayName)
}

func flattenTree(res []Entry, n *treediff.Node, path string) []Entry {
	for _, a := range n.Attrs {
		res = append(res, Entry{Path: path + TreeSep + a.Name, Type: ScalarType, Scalar: "attribute", Value: a.Value})
	}
	if n.Text != "" {
		res = append(res, Entry{Path: path + TreeSep + change.TextField, Type: ScalarType, Scalar: "text", Value: n.Text})
	}
	if len(n.Attrs) == 0 && n.Text == "" {
		res = append(res, Entry{Path: path + TreeSep, Type: NullType, Scalar: "element"})
	}
	seen := map[string]int{}
	for _, c := range n.Children {
		seen[c.DisplayName]++
		name := c.DisplayName
		if k := seen[name]; k > 1 {
			name += "#" + strconv.Itoa(k)
		}
		res = flattenTree(res, c, path+"/"+name)
	}
	return res
}
