// Package change holds the result model shared by the text, tree and path
// differs.
//
// A tree or path comparison reports a flat, ordered list of [Change]. A text
// comparison reports a list of [Line], either from the look-ahead line
// differ or from the side-by-side aligner. Both lists are stably ordered so
// that counts derived from them are reproducible for the same input pair.
package change

import (
	"encoding/json"
	"fmt"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Added:
		return []byte("added"), nil
	case Removed:
		return []byte("removed"), nil
	case Changed:
		return []byte("changed"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a change kind>", k)
	}
}

func (k *Kind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "added":
		*k = Added
	case "removed":
		*k = Removed
	case "changed":
		*k = Changed
	default:
		return fmt.Errorf("unknown change kind %q", d)
	}
	return nil
}

// Scope is the granularity of a change.
type Scope int

const (
	// ElementScope changes carry a serialized subtree as payload.
	ElementScope Scope = iota
	AttributeScope
	ValueScope
)

func (s Scope) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Scope) MarshalText() ([]byte, error) {
	switch s {
	case ElementScope:
		return []byte("element"), nil
	case AttributeScope:
		return []byte("attribute"), nil
	case ValueScope:
		return []byte("value"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a change scope>", s)
	}
}

func (s *Scope) UnmarshalText(d []byte) error {
	switch string(d) {
	case "element":
		*s = ElementScope
	case "attribute":
		*s = AttributeScope
	case "value":
		*s = ValueScope
	default:
		return fmt.Errorf("unknown change scope %q", d)
	}
	return nil
}

// TextField is the field name used for changes to an element's own text.
const TextField = "#text"

// Change is a single reported difference.
//
// Old and New are nil when the value is absent on that side, which is
// distinct from an empty value. Field is nil for element level changes.
type Change struct {
	Kind  Kind
	Scope Scope
	Path  string
	Field *string
	Old   *string
	New   *string
}

// Add returns an added change.
func Add(scope Scope, path string, field *string, v string) Change {
	return Change{Kind: Added, Scope: scope, Path: path, Field: field, New: &v}
}

// Remove returns a removed change.
func Remove(scope Scope, path string, field *string, v string) Change {
	return Change{Kind: Removed, Scope: scope, Path: path, Field: field, Old: &v}
}

// Modify returns a changed change.
func Modify(scope Scope, path string, field *string, from, to string) Change {
	return Change{Kind: Changed, Scope: scope, Path: path, Field: field, Old: &from, New: &to}
}

// Valid reports whether c respects the nullability rules of its kind.
func (c *Change) Valid() bool {
	switch c.Kind {
	case Added:
		return c.Old == nil && c.New != nil
	case Removed:
		return c.Old != nil && c.New == nil
	case Changed:
		return c.Old != nil && c.New != nil && *c.Old != *c.New
	}
	return false
}

// FieldName returns the field or "" for element level changes.
func (c *Change) FieldName() string {
	if c.Field == nil {
		return ""
	}
	return *c.Field
}

func (c Change) String() string {
	var sym string
	switch c.Kind {
	case Added:
		sym = "+"
	case Removed:
		sym = "-"
	default:
		sym = "~"
	}
	loc := c.Path
	if c.Field != nil {
		if c.Scope == AttributeScope {
			loc += " @" + *c.Field
		} else {
			loc += " " + *c.Field
		}
	}
	switch {
	case c.Old != nil && c.New != nil:
		return fmt.Sprintf("%s %s: %q -> %q", sym, loc, *c.Old, *c.New)
	case c.Old != nil:
		return fmt.Sprintf("%s %s: %q", sym, loc, *c.Old)
	case c.New != nil:
		return fmt.Sprintf("%s %s: %q", sym, loc, *c.New)
	}
	return sym + " " + loc
}

type jsonChange struct {
	Kind     Kind    `json:"kind"`
	Scope    Scope   `json:"scope"`
	Path     string  `json:"path"`
	Field    *string `json:"field"`
	OldValue *string `json:"oldValue"`
	NewValue *string `json:"newValue"`
}

func (c Change) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonChange{
		Kind:     c.Kind,
		Scope:    c.Scope,
		Path:     c.Path,
		Field:    c.Field,
		OldValue: c.Old,
		NewValue: c.New,
	})
}

func (c *Change) UnmarshalJSON(d []byte) error {
	var jc jsonChange
	if err := json.Unmarshal(d, &jc); err != nil {
		return err
	}
	*c = Change{
		Kind:  jc.Kind,
		Scope: jc.Scope,
		Path:  jc.Path,
		Field: jc.Field,
		Old:   jc.OldValue,
		New:   jc.NewValue,
	}
	return nil
}

// Counts tallies changes by kind.
type Counts struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
}

// Total is the number of differences, excluding unchanged items.
func (c Counts) Total() int {
	return c.Added + c.Removed + c.Changed
}

// Count tallies cs by kind.
func Count(cs []Change) Counts {
	res := Counts{}
	for i := range cs {
		switch cs[i].Kind {
		case Added:
			res.Added++
		case Removed:
			res.Removed++
		case Changed:
			res.Changed++
		}
	}
	return res
}

// Filter returns the changes of cs for which keep returns true.
func Filter(cs []Change, keep func(*Change) bool) []Change {
	var res []Change
	for i := range cs {
		if keep(&cs[i]) {
			res = append(res, cs[i])
		}
	}
	return res
}

// ByKind returns a predicate for [Filter] selecting changes of kind k.
func ByKind(k Kind) func(*Change) bool {
	return func(c *Change) bool { return c.Kind == k }
}

// Ptr returns a pointer to a copy of v.
func Ptr(v string) *string {
	return &v
}
