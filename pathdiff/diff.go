package pathdiff

import (
	"fmt"
	"slices"

	"github.com/signadot/cfgdiff/change"
)

type Status int

const (
	Unchanged Status = iota
	Modified
	Removed
	Added
)

func (s Status) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case Unchanged:
		return []byte("unchanged"), nil
	case Modified:
		return []byte("modified"), nil
	case Removed:
		return []byte("removed"), nil
	case Added:
		return []byte("added"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a row status>", s)
	}
}

func (s *Status) UnmarshalText(d []byte) error {
	switch string(d) {
	case "unchanged":
		*s = Unchanged
	case "modified":
		*s = Modified
	case "removed":
		*s = Removed
	case "added":
		*s = Added
	default:
		return fmt.Errorf("unknown row status %q", d)
	}
	return nil
}

// Row is the comparison of one path. Left or Right is nil when the path is
// missing on that side.
type Row struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Left   *Entry `json:"left"`
	Right  *Entry `json:"right"`
	Status Status `json:"status"`
}

// Diff compares two flattened documents path by path. Rows are sorted by
// path. When a path occurs more than once on a side, the last entry wins.
func Diff(left, right []Entry, opts ...Option) []Row {
	cfg := NewConfig(opts...)
	lm := index(left)
	rm := index(right)
	paths := make([]string, 0, len(lm)+len(rm))
	for p := range lm {
		paths = append(paths, p)
	}
	for p := range rm {
		if _, ok := lm[p]; !ok {
			paths = append(paths, p)
		}
	}
	slices.Sort(paths)

	res := make([]Row, 0, len(paths))
	for _, p := range paths {
		l, r := lm[p], rm[p]
		row := Row{Path: p, Left: l, Right: r}
		switch {
		case r == nil:
			row.Type = l.TypeName()
			row.Status = Removed
		case l == nil:
			row.Type = r.TypeName()
			row.Status = Added
		default:
			row.Type = l.TypeName()
			if l.Value != r.Value || (cfg.StrictTypes && l.TypeName() != r.TypeName()) {
				row.Status = Modified
			}
		}
		res = append(res, row)
	}
	return res
}

func index(es []Entry) map[string]*Entry {
	res := make(map[string]*Entry, len(es))
	for i := range es {
		res[es[i].Path] = &es[i]
	}
	return res
}

// Changes converts rows to changes, dropping unchanged rows.
//
// Values are compared as printed, so when a modified row's values print
// the same they are reported as displayed by [Entry.Display].
func Changes(rows []Row) []change.Change {
	var res []change.Change
	for i := range rows {
		r := &rows[i]
		switch r.Status {
		case Added:
			res = append(res, change.Add(change.ValueScope, r.Path, nil, r.Right.Value))
		case Removed:
			res = append(res, change.Remove(change.ValueScope, r.Path, nil, r.Left.Value))
		case Modified:
			from, to := r.Left.Value, r.Right.Value
			if from == to {
				from, to = r.Left.Display(), r.Right.Display()
			}
			res = append(res, change.Modify(change.ValueScope, r.Path, nil, from, to))
		}
	}
	return res
}

// Count tallies rows by status.
func Count(rows []Row) change.Counts {
	res := change.Counts{}
	for i := range rows {
		switch rows[i].Status {
		case Unchanged:
			res.Unchanged++
		case Modified:
			res.Changed++
		case Removed:
			res.Removed++
		case Added:
			res.Added++
		}
	}
	return res
}
