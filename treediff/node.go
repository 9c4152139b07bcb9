package treediff

import (
	"slices"
	"strings"
)

type Attr struct {
	Name  string
	Value string
}

// Node is an element of a parsed document.
type Node struct {
	Name string
	// Identifier is the value of the first non-empty identifier
	// attribute, or "".
	Identifier  string
	DisplayName string
	// Path is the slash separated chain of display names from the root.
	Path     string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// Attr returns the value of the attribute name.
func (n *Node) Attr(name string) (string, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

// AttrMap returns the attributes of n as a map.
func (n *Node) AttrMap() map[string]string {
	res := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		res[a.Name] = a.Value
	}
	return res
}

// Key returns the identity key of n under the identifier attributes attrs,
// of the form name[attr=value], and false if n has none of attrs.
func (n *Node) Key(attrs []string) (string, bool) {
	for _, a := range attrs {
		if v, ok := n.Attr(a); ok {
			return n.Name + "[" + a + "=" + v + "]", true
		}
	}
	return "", false
}

// Equal reports whether n and o have the same content. Attribute order is
// significant, so canonicalize both first to compare documents.
func (n *Node) Equal(o *Node) bool {
	if n.Name != o.Name || n.Text != o.Text || n.Identifier != o.Identifier {
		return false
	}
	if !slices.Equal(n.Attrs, o.Attrs) {
		return false
	}
	return slices.EqualFunc(n.Children, o.Children, (*Node).Equal)
}

func identifier(attrs []Attr, idAttrs []string) string {
	for _, a := range idAttrs {
		for i := range attrs {
			if attrs[i].Name == a && attrs[i].Value != "" {
				return attrs[i].Value
			}
		}
	}
	return ""
}

func displayName(name, id string) string {
	if id == "" {
		return name
	}
	return name + "[" + id + "]"
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// collapse replaces runs of white space with a single space and trims.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
