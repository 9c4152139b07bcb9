package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/signadot/cfgdiff"
	"github.com/signadot/cfgdiff/change"
	"github.com/signadot/cfgdiff/format"
	"github.com/signadot/cfgdiff/pathdiff"
)

// CSV writes res as CSV with CRLF line endings: one record per change for
// tree comparisons, per path for hierarchical and tabular comparisons and
// per aligned row for text comparisons.
func CSV(w io.Writer, res *cfgdiff.Result) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	var records [][]string
	switch {
	case res.ByPath():
		records = rowRecords(res.Rows)
	case res.Kind() == format.TreeKind:
		records = changeRecords(res.Changes)
	default:
		records = lineRecords(res.Alignment)
	}
	return cw.WriteAll(records)
}

func changeRecords(cs []change.Change) [][]string {
	res := [][]string{{"Kind", "Scope", "Path", "Field", "Old Value", "New Value"}}
	for i := range cs {
		c := &cs[i]
		res = append(res, []string{
			c.Kind.String(),
			c.Scope.String(),
			c.Path,
			c.FieldName(),
			deref(c.Old),
			deref(c.New),
		})
	}
	return res
}

func rowRecords(rows []pathdiff.Row) [][]string {
	res := [][]string{{"Path", "Type", "Value (left)", "Value (right)", "Status"}}
	for i := range rows {
		r := &rows[i]
		var l, rv string
		if r.Left != nil {
			l = r.Left.Value
		}
		if r.Right != nil {
			rv = r.Right.Value
		}
		res = append(res, []string{r.Path, r.Type, l, rv, r.Status.String()})
	}
	return res
}

func lineRecords(ls []change.Line) [][]string {
	res := [][]string{{"Kind", "Left Line", "Left", "Right Line", "Right"}}
	for i := range ls {
		l := &ls[i]
		res = append(res, []string{
			l.Kind.String(),
			lineNumber(l.LeftNumber),
			deref(l.LeftContent),
			lineNumber(l.RightNumber),
			deref(l.RightContent),
		})
	}
	return res
}

func lineNumber(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
