package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/signadot/cfgdiff/change"
	"github.com/signadot/cfgdiff/textdiff"
)

// DefaultWidth is the total width of a side by side view when none is
// given.
const DefaultWidth = 160

const (
	gutterWidth = 5
	tabWidth    = 4
)

// SideBySide writes aligned rows as two columns, left document first.
// Content wider than its column is cut. Modified rows highlight the
// characters that differ. colors may be nil.
func SideBySide(w io.Writer, rows []change.Line, width int, colors *Colors) error {
	if width <= 0 {
		width = DefaultWidth
	}
	col := max((width-3)/2-gutterWidth, 1)
	tabs := strings.NewReplacer("\t", strings.Repeat(" ", tabWidth))
	buf := &strings.Builder{}
	for i := range rows {
		r := &rows[i]
		var lsegs, rsegs []textdiff.Segment
		lc := tabs.Replace(deref(r.LeftContent))
		rc := tabs.Replace(deref(r.RightContent))
		if r.Kind == change.Modification {
			segs := textdiff.Inline(lc, rc)
			lsegs = textdiff.Side(segs, true)
			rsegs = textdiff.Side(segs, false)
		} else {
			lsegs = []textdiff.Segment{{Text: lc}}
			rsegs = []textdiff.Segment{{Text: rc}}
		}
		attr := LineAttr(r.Kind)
		writeGutter(buf, r.LeftNumber, colors)
		writeColumn(buf, lsegs, col, true, attr, colors)
		buf.WriteString(colors.Color(attr, " "+marker(r.Kind)+" "))
		writeGutter(buf, r.RightNumber, colors)
		writeColumn(buf, rsegs, col, false, attr, colors)
		buf.WriteString("\n")
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func marker(k change.LineKind) string {
	switch k {
	case change.Addition:
		return ">"
	case change.Deletion:
		return "<"
	default:
		return "|"
	}
}

func writeGutter(buf *strings.Builder, n int, colors *Colors) {
	if n == 0 {
		buf.WriteString(strings.Repeat(" ", gutterWidth))
		return
	}
	buf.WriteString(colors.Color(LineNumberColor, fmt.Sprintf("%4d ", n)))
}

// writeColumn writes segs cut to width runes, padded to width when pad is
// set.
func writeColumn(buf *strings.Builder, segs []textdiff.Segment, width int, pad bool, attr ColorAttr, colors *Colors) {
	n := 0
	for _, s := range segs {
		if n == width {
			break
		}
		text := s.Text
		if k := utf8.RuneCountInString(text); n+k > width {
			text = cut(text, width-n)
		}
		n += utf8.RuneCountInString(text)
		switch s.Op {
		case textdiff.OpDelete:
			buf.WriteString(colors.Color(InlineRemovedColor, text))
		case textdiff.OpInsert:
			buf.WriteString(colors.Color(InlineAddedColor, text))
		default:
			buf.WriteString(colors.Color(attr, text))
		}
	}
	if pad {
		buf.WriteString(strings.Repeat(" ", width-n))
	}
}

func cut(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}
