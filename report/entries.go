package report

import (
	"encoding/csv"
	"io"
	"text/tabwriter"

	"github.com/signadot/cfgdiff/pathdiff"
)

// Entries writes one line per entry: path, type and value separated by
// aligned columns.
func Entries(w io.Writer, es []pathdiff.Entry, colors *Colors) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i := range es {
		e := &es[i]
		if _, err := io.WriteString(tw, colors.Color(PathColor, e.Path)+"\t"+
			colors.Color(FieldColor, e.TypeName())+"\t"+e.Display()+"\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// EntriesCSV writes entries as CSV with a Path, Type, Value header.
func EntriesCSV(w io.Writer, es []pathdiff.Entry) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	records := [][]string{{"Path", "Type", "Value"}}
	for i := range es {
		e := &es[i]
		records = append(records, []string{e.Path, e.TypeName(), e.Display()})
	}
	return cw.WriteAll(records)
}
