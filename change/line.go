package change

import (
	"encoding/json"
	"fmt"
)

type LineKind int

const (
	Unchanged LineKind = iota
	Addition
	Deletion
	Modification
)

func (k LineKind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k LineKind) MarshalText() ([]byte, error) {
	switch k {
	case Unchanged:
		return []byte("unchanged"), nil
	case Addition:
		return []byte("addition"), nil
	case Deletion:
		return []byte("deletion"), nil
	case Modification:
		return []byte("modification"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a line kind>", k)
	}
}

func (k *LineKind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "unchanged":
		*k = Unchanged
	case "addition":
		*k = Addition
	case "deletion":
		*k = Deletion
	case "modification":
		*k = Modification
	default:
		return fmt.Errorf("unknown line kind %q", d)
	}
	return nil
}

// Prefix returns the unified diff prefix for k.
func (k LineKind) Prefix() string {
	switch k {
	case Addition:
		return "+"
	case Deletion:
		return "-"
	case Modification:
		return "~"
	default:
		return " "
	}
}

// Line is one row of a text comparison.
//
// Line numbers are 1-based positions in the respective input; 0 means the
// row has no line on that side, in which case the content is nil too.
type Line struct {
	Kind         LineKind
	LeftNumber   int
	RightNumber  int
	LeftContent  *string
	RightContent *string
}

// Left returns a line present only on the left side.
func Left(kind LineKind, n int, content string) Line {
	return Line{Kind: kind, LeftNumber: n, LeftContent: &content}
}

// Right returns a line present only on the right side.
func Right(kind LineKind, n int, content string) Line {
	return Line{Kind: kind, RightNumber: n, RightContent: &content}
}

// Both returns a line present on both sides.
func Both(kind LineKind, ln int, lc string, rn int, rc string) Line {
	return Line{Kind: kind, LeftNumber: ln, LeftContent: &lc, RightNumber: rn, RightContent: &rc}
}

// Content returns the content to show for l in a single column view: the
// left content when present, otherwise the right.
func (l *Line) Content() string {
	if l.LeftContent != nil {
		return *l.LeftContent
	}
	if l.RightContent != nil {
		return *l.RightContent
	}
	return ""
}

type jsonLine struct {
	Kind         LineKind `json:"kind"`
	LeftNumber   int      `json:"leftLineNumber,omitempty"`
	RightNumber  int      `json:"rightLineNumber,omitempty"`
	LeftContent  *string  `json:"leftContent,omitempty"`
	RightContent *string  `json:"rightContent,omitempty"`
}

func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonLine(l))
}

func (l *Line) UnmarshalJSON(d []byte) error {
	var jl jsonLine
	if err := json.Unmarshal(d, &jl); err != nil {
		return err
	}
	*l = Line(jl)
	return nil
}

// CountLines tallies lines by kind. Modification rows count as changed.
func CountLines(ls []Line) Counts {
	res := Counts{}
	for i := range ls {
		switch ls[i].Kind {
		case Unchanged:
			res.Unchanged++
		case Addition:
			res.Added++
		case Deletion:
			res.Removed++
		case Modification:
			res.Changed++
		}
	}
	return res
}
