package treediff

import (
	"strings"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Format serializes n as indented XML for display. Attributes stay on the
// element's line when there are at most two, otherwise they are written one
// per line.
func (n *Node) Format() string {
	buf := &strings.Builder{}
	n.format(buf, 0)
	return buf.String()
}

func (n *Node) format(buf *strings.Builder, indent int) {
	spaces := strings.Repeat("  ", indent)
	buf.WriteString(spaces + "<" + n.Name)
	if len(n.Attrs) <= 2 {
		for _, a := range n.Attrs {
			buf.WriteString(" " + a.Name + `="` + escaper.Replace(a.Value) + `"`)
		}
	} else {
		for _, a := range n.Attrs {
			buf.WriteString("\n" + spaces + "    " + a.Name + `="` + escaper.Replace(a.Value) + `"`)
		}
	}
	if n.Text == "" && len(n.Children) == 0 {
		buf.WriteString("/>")
		return
	}
	buf.WriteString(">")
	if len(n.Children) == 0 {
		buf.WriteString(escaper.Replace(n.Text) + "</" + n.Name + ">")
		return
	}
	if n.Text != "" {
		buf.WriteString("\n" + spaces + "  " + escaper.Replace(n.Text))
	}
	buf.WriteString("\n")
	for _, c := range n.Children {
		c.format(buf, indent+1)
		buf.WriteString("\n")
	}
	buf.WriteString(spaces + "</" + n.Name + ">")
}

// String serializes n as XML on a single line.
func (n *Node) String() string {
	buf := &strings.Builder{}
	n.compact(buf)
	return buf.String()
}

func (n *Node) compact(buf *strings.Builder) {
	buf.WriteString("<" + n.Name)
	for _, a := range n.Attrs {
		buf.WriteString(" " + a.Name + `="` + escaper.Replace(a.Value) + `"`)
	}
	if n.Text == "" && len(n.Children) == 0 {
		buf.WriteString("/>")
		return
	}
	buf.WriteString(">" + escaper.Replace(n.Text))
	for _, c := range n.Children {
		c.compact(buf)
	}
	buf.WriteString("</" + n.Name + ">")
}
