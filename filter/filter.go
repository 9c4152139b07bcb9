// Package filter selects changes and rows with boolean expressions.
//
// Expressions use the expr language (https://expr-lang.org). When
// filtering changes the variables are kind, scope, path, field, old and
// new; field, old and new are nil when absent. When filtering path rows
// they are path, type, status, left and right; left and right are nil on
// the side missing the path.
//
//	kind == "changed" && path startsWith "raml/cmData"
//	scope != "element" && field in ["speed", "mtu"]
//	status == "modified" && type == "number"
package filter

import (
	"errors"
	"fmt"

	"github.com/signadot/cfgdiff/change"
	"github.com/signadot/cfgdiff/pathdiff"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrFilter = errors.New("filter error")

type changeEnv struct {
	Kind  string `expr:"kind"`
	Scope string `expr:"scope"`
	Path  string `expr:"path"`
	Field any    `expr:"field"`
	Old   any    `expr:"old"`
	New   any    `expr:"new"`
}

type rowEnv struct {
	Path   string `expr:"path"`
	Type   string `expr:"type"`
	Status string `expr:"status"`
	Left   any    `expr:"left"`
	Right  any    `expr:"right"`
}

// Filter is a compiled filter expression.
type Filter struct {
	src        string
	changes    *vm.Program
	changesErr error
	rows       *vm.Program
	rowsErr    error
}

// Compile compiles src for filtering changes and rows. It fails when src
// is valid for neither.
func Compile(src string) (*Filter, error) {
	f := &Filter{src: src}
	f.changes, f.changesErr = expr.Compile(src, expr.Env(changeEnv{}), expr.AsBool())
	f.rows, f.rowsErr = expr.Compile(src, expr.Env(rowEnv{}), expr.AsBool())
	if f.changesErr != nil && f.rowsErr != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrFilter, src, f.changesErr)
	}
	return f, nil
}

func (f *Filter) String() string {
	return f.src
}

// Changes returns the changes of cs selected by f.
func (f *Filter) Changes(cs []change.Change) ([]change.Change, error) {
	if f.changesErr != nil {
		return nil, fmt.Errorf("%w: %q does not apply to changes: %w", ErrFilter, f.src, f.changesErr)
	}
	var res []change.Change
	for i := range cs {
		c := &cs[i]
		env := changeEnv{
			Kind:  c.Kind.String(),
			Scope: c.Scope.String(),
			Path:  c.Path,
			Field: optional(c.Field),
			Old:   optional(c.Old),
			New:   optional(c.New),
		}
		ok, err := f.run(f.changes, env)
		if err != nil {
			return nil, fmt.Errorf("%w: on %s: %w", ErrFilter, c.Path, err)
		}
		if ok {
			res = append(res, *c)
		}
	}
	return res, nil
}

// Rows returns the rows selected by f.
func (f *Filter) Rows(rows []pathdiff.Row) ([]pathdiff.Row, error) {
	if f.rowsErr != nil {
		return nil, fmt.Errorf("%w: %q does not apply to rows: %w", ErrFilter, f.src, f.rowsErr)
	}
	var res []pathdiff.Row
	for i := range rows {
		r := &rows[i]
		env := rowEnv{
			Path:   r.Path,
			Type:   r.Type,
			Status: r.Status.String(),
			Left:   entryValue(r.Left),
			Right:  entryValue(r.Right),
		}
		ok, err := f.run(f.rows, env)
		if err != nil {
			return nil, fmt.Errorf("%w: on %s: %w", ErrFilter, r.Path, err)
		}
		if ok {
			res = append(res, *r)
		}
	}
	return res, nil
}

func (f *Filter) run(p *vm.Program, env any) (bool, error) {
	v, err := expr.Run(p, env)
	if err != nil {
		return false, err
	}
	b, _ := v.(bool)
	return b, nil
}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func entryValue(e *pathdiff.Entry) any {
	if e == nil {
		return nil
	}
	return e.Value
}
