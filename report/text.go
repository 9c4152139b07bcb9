// Package report renders comparison results for people and for other
// tools: a plain text summary, CSV, JSON and YAML exports, and a side by
// side view of text comparisons.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/cfgdiff"
	"github.com/signadot/cfgdiff/change"
	"github.com/signadot/cfgdiff/format"
	"github.com/signadot/cfgdiff/pathdiff"
)

const summaryHeader = "=== CONFIG COMPARISON SUMMARY ==="

// Text writes a plain text report of res. colors may be nil.
func Text(w io.Writer, res *cfgdiff.Result, colors *Colors) error {
	buf := &strings.Builder{}
	switch {
	case res.ByPath():
		pathText(buf, res.Rows, colors)
	case res.Kind() == format.TreeKind:
		treeText(buf, res.Changes, colors)
	default:
		if res.Fallback {
			buf.WriteString(colors.Color(HeaderColor, "=== COMPARED AS TEXT: "+res.FallbackReason+" ==="))
			buf.WriteString("\n\n")
		}
		lineText(buf, res.Lines, colors)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func treeText(buf *strings.Builder, cs []change.Change, colors *Colors) {
	var removedEls, addedEls, removedFields, addedFields, changed []*change.Change
	for i := range cs {
		c := &cs[i]
		switch {
		case c.Kind == change.Removed && c.Scope == change.ElementScope:
			removedEls = append(removedEls, c)
		case c.Kind == change.Added && c.Scope == change.ElementScope:
			addedEls = append(addedEls, c)
		case c.Kind == change.Removed:
			removedFields = append(removedFields, c)
		case c.Kind == change.Added:
			addedFields = append(addedFields, c)
		default:
			changed = append(changed, c)
		}
	}
	fields := append(append(removedFields, addedFields...), changed...)

	buf.WriteString(colors.Color(HeaderColor, summaryHeader) + "\n")
	fmt.Fprintf(buf, "Removed Elements : %d\n", len(removedEls))
	fmt.Fprintf(buf, "Added Elements   : %d\n", len(addedEls))
	fmt.Fprintf(buf, "Field Changes    : %d\n", len(fields))
	fmt.Fprintf(buf, "Total Differences: %d\n\n", len(cs))

	elements := func(title, sym string, cs []*change.Change) {
		if len(cs) == 0 {
			return
		}
		buf.WriteString(colors.Color(HeaderColor, fmt.Sprintf("=== %s (%d) ===", title, len(cs))) + "\n")
		for _, c := range cs {
			attr := KindAttr(c.Kind)
			buf.WriteString("\n" + colors.Color(attr, "["+sym+"]") + " " + colors.Color(PathColor, c.Path) + "\n")
			v := c.New
			if c.Kind == change.Removed {
				v = c.Old
			}
			if v == nil || *v == "" {
				continue
			}
			for _, line := range strings.Split(*v, "\n") {
				buf.WriteString("    " + colors.Color(attr, line) + "\n")
			}
		}
		buf.WriteString("\n")
	}
	elements("REMOVED ELEMENTS", "-", removedEls)
	elements("ADDED ELEMENTS", "+", addedEls)

	if len(fields) == 0 {
		return
	}
	buf.WriteString(colors.Color(HeaderColor, fmt.Sprintf("=== FIELD CHANGES (%d) ===", len(fields))) + "\n")
	var paths []string
	byPath := map[string][]*change.Change{}
	for _, c := range fields {
		if _, ok := byPath[c.Path]; !ok {
			paths = append(paths, c.Path)
		}
		byPath[c.Path] = append(byPath[c.Path], c)
	}
	for _, p := range paths {
		buf.WriteString("\n  " + colors.Color(PathColor, p) + "\n")
		for _, c := range byPath[p] {
			field := c.FieldName()
			if c.Scope == change.AttributeScope {
				field = "@" + field
			}
			buf.WriteString("    " + colors.Color(KindAttr(c.Kind), "["+symbol(c.Kind)+"]") + " " + colors.Color(FieldColor, field))
			if c.Old != nil {
				buf.WriteString("  was: " + *c.Old)
			}
			if c.New != nil {
				buf.WriteString("  now: " + *c.New)
			}
			buf.WriteString("\n")
		}
	}
}

func pathText(buf *strings.Builder, rows []pathdiff.Row, colors *Colors) {
	counts := pathdiff.Count(rows)
	buf.WriteString(colors.Color(HeaderColor, summaryHeader) + "\n")
	fmt.Fprintf(buf, "Added            : %d\n", counts.Added)
	fmt.Fprintf(buf, "Removed          : %d\n", counts.Removed)
	fmt.Fprintf(buf, "Modified         : %d\n", counts.Changed)
	fmt.Fprintf(buf, "Unchanged        : %d\n", counts.Unchanged)
	fmt.Fprintf(buf, "Total Differences: %d\n", counts.Total())
	if counts.Total() != 0 {
		buf.WriteString("\n")
	}
	for i := range rows {
		r := &rows[i]
		var kind change.Kind
		switch r.Status {
		case pathdiff.Unchanged:
			continue
		case pathdiff.Added:
			kind = change.Added
		case pathdiff.Removed:
			kind = change.Removed
		default:
			kind = change.Changed
		}
		buf.WriteString(colors.Color(KindAttr(kind), "["+symbol(kind)+"]") + " " +
			colors.Color(PathColor, r.Path) + " (" + r.Type + ")")
		if r.Left != nil {
			buf.WriteString("  was: " + r.Left.Value)
		}
		if r.Right != nil {
			buf.WriteString("  now: " + r.Right.Value)
		}
		buf.WriteString("\n")
	}
}

func lineText(buf *strings.Builder, ls []change.Line, colors *Colors) {
	for i := range ls {
		l := &ls[i]
		buf.WriteString(colors.Color(LineAttr(l.Kind), l.Kind.Prefix()+" "+l.Content()) + "\n")
	}
}

func symbol(k change.Kind) string {
	switch k {
	case change.Added:
		return "+"
	case change.Removed:
		return "-"
	default:
		return "~"
	}
}
