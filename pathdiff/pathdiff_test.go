package pathdiff

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/signadot/cfgdiff/change"
	"github.com/signadot/cfgdiff/format"
	"github.com/signadot/cfgdiff/treediff"

	"github.com/google/go-cmp/cmp"
)

func load(t *testing.T, doc string, f format.Format) []Entry {
	t.Helper()
	es, err := Load([]byte(doc), f)
	if err != nil {
		t.Fatal(err)
	}
	return es
}

func TestFlatten(t *testing.T) {
	es := load(t, `{"g": 1.50, "a": {"b": 1, "c": [true, {}]}, "d": null, "e": [], "f": "x"}`, format.JSONFormat)
	want := []Entry{
		{Path: "a.b", Type: ScalarType, Scalar: "number", Value: "1"},
		{Path: "a.c[0]", Type: ScalarType, Scalar: "boolean", Value: "true"},
		{Path: "a.c[1]", Type: ObjectType, Value: "{}"},
		{Path: "d", Type: NullType, Value: "null"},
		{Path: "e", Type: ArrayType, Value: "[]"},
		{Path: "f", Type: ScalarType, Scalar: "string", Value: "x"},
		{Path: "g", Type: ScalarType, Scalar: "number", Value: "1.5"},
	}
	if diff := cmp.Diff(want, es); diff != "" {
		t.Errorf("flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenYAML(t *testing.T) {
	es := load(t, "z: 1\na:\n  c: [x, y]\n  b: true\nd: ~\n", format.YAMLFormat)
	want := []Entry{
		{Path: "z", Type: ScalarType, Scalar: "number", Value: "1"},
		{Path: "a.c[0]", Type: ScalarType, Scalar: "string", Value: "x"},
		{Path: "a.c[1]", Type: ScalarType, Scalar: "string", Value: "y"},
		{Path: "a.b", Type: ScalarType, Scalar: "boolean", Value: "true"},
		{Path: "d", Type: NullType, Value: "null"},
	}
	if diff := cmp.Diff(want, es); diff != "" {
		t.Errorf("flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffScenario(t *testing.T) {
	rows := Diff(
		load(t, `{"a":{"b":1}}`, format.JSONFormat),
		load(t, `{"a":{"b":2,"c":3}}`, format.JSONFormat))
	want := []change.Change{
		change.Modify(change.ValueScope, "a.b", nil, "1", "2"),
		change.Add(change.ValueScope, "a.c", nil, "3"),
	}
	if diff := cmp.Diff(want, Changes(rows)); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
	wantCounts := change.Counts{Added: 1, Changed: 1}
	if diff := cmp.Diff(wantCounts, Count(rows)); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
	if rows[0].Type != "number" || rows[0].Status != Modified {
		t.Errorf("unexpected first row %+v", rows[0])
	}
}

func TestDiffOrder(t *testing.T) {
	rows := Diff(
		load(t, `{"b": 1, "a": [1, 2], "c": {"x": 1}}`, format.JSONFormat),
		load(t, `{"a": [1], "c": {"x": 1, "y": {}}, "B": 0}`, format.JSONFormat))
	var got []string
	for _, r := range rows {
		got = append(got, r.Path+" "+r.Status.String())
	}
	want := []string{
		"B added",
		"a[0] unchanged",
		"a[1] removed",
		"b removed",
		"c.x unchanged",
		"c.y added",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestStrictTypes(t *testing.T) {
	l := load(t, `{"a": 1, "b": null}`, format.JSONFormat)
	r := load(t, `{"a": "1", "b": "null"}`, format.JSONFormat)
	if c := Count(Diff(l, r)); c.Total() != 0 {
		t.Errorf("type blind comparison found differences: %+v", c)
	}
	got := Changes(Diff(l, r, StrictTypes(true)))
	want := []change.Change{
		change.Modify(change.ValueScope, "a", nil, "1", `"1"`),
		change.Modify(change.ValueScope, "b", nil, "null", `"null"`),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("strict changes mismatch (-want +got):\n%s", diff)
	}
	for i := range got {
		if !got[i].Valid() {
			t.Errorf("invalid change %s", got[i])
		}
	}
}

func TestJSONAndYAMLAgree(t *testing.T) {
	j := load(t, `{"a": {"b": 1, "c": ["x", "y"]}, "d": null}`, format.JSONFormat)
	y := load(t, "a:\n  b: 1\n  c:\n    - x\n    - y\nd: null\n", format.YAMLFormat)
	if c := Count(Diff(j, y)); c.Total() != 0 || c.Unchanged != 4 {
		t.Errorf("expected 4 unchanged rows, got %+v", c)
	}
}

var pairs = [][2]string{
	{`{"a":{"b":1}}`, `{"a":{"b":2,"c":3}}`},
	{`[1, 2, 3]`, `[1, {"x": []}]`},
	{`{"a": [], "b": {}}`, `{"a": [0], "b": {"c": null}}`},
	{`"x"`, `{"x": "x"}`},
}

func TestDiffSymmetry(t *testing.T) {
	for _, p := range pairs {
		l := load(t, p[0], format.JSONFormat)
		r := load(t, p[1], format.JSONFormat)
		ab, ba := Count(Diff(l, r)), Count(Diff(r, l))
		if ab.Added != ba.Removed || ab.Removed != ba.Added || ab.Changed != ba.Changed {
			t.Errorf("%s vs %s: counts not symmetric: %+v vs %+v", p[0], p[1], ab, ba)
		}
	}
}

func TestDiffReflexive(t *testing.T) {
	for _, p := range pairs {
		for _, doc := range p {
			es := load(t, doc, format.JSONFormat)
			if c := Count(Diff(es, es, StrictTypes(true))); c.Total() != 0 {
				t.Errorf("%s: comparing to itself gave %+v", doc, c)
			}
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		doc  string
		f    format.Format
		want error
	}{
		{`{"a":`, format.JSONFormat, ErrMalformedDocument},
		{`{"a":1} x`, format.JSONFormat, ErrMalformedDocument},
		{`{} {}`, format.JSONFormat, ErrMalformedDocument},
		{"a: [1, 2", format.YAMLFormat, ErrMalformedDocument},
		{"a b c", format.TextFormat, ErrNotHierarchical},
		{"<a/>", format.XMLFormat, ErrNotHierarchical},
	}
	for _, tc := range tests {
		_, err := Decode([]byte(tc.doc), tc.f)
		if !errors.Is(err, tc.want) {
			t.Errorf("Decode(%q, %s): got %v, want %v", tc.doc, tc.f, err, tc.want)
		}
	}
}

func TestFlattenTree(t *testing.T) {
	root, err := treediff.Parse([]byte(`<cfg mode="a"><port id="1">up</port><port/><port/></cfg>`))
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		{Path: "cfg||mode", Type: ScalarType, Scalar: "attribute", Value: "a"},
		{Path: "cfg/port[1]||id", Type: ScalarType, Scalar: "attribute", Value: "1"},
		{Path: "cfg/port[1]||#text", Type: ScalarType, Scalar: "text", Value: "up"},
		{Path: "cfg/port||", Type: NullType, Scalar: "element"},
		{Path: "cfg/port#2||", Type: NullType, Scalar: "element"},
	}
	if diff := cmp.Diff(want, FlattenTree(root.Canonical())); diff != "" {
		t.Errorf("flatten tree mismatch (-want +got):\n%s", diff)
	}
}

func decodeAny(t *testing.T, d []byte) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestMergePatch(t *testing.T) {
	left := []byte(`{"a": 1, "b": {"c": 2}, "l": [1, 2]}`)
	right := []byte(`{"a": 1, "b": {"d": 3}, "l": [2]}`)
	p, err := MergePatch(left, right)
	if err != nil {
		t.Fatal(err)
	}
	wantPatch := map[string]any{
		"b": map[string]any{"c": nil, "d": 3.0},
		"l": []any{2.0},
	}
	if diff := cmp.Diff(any(wantPatch), decodeAny(t, p)); diff != "" {
		t.Errorf("patch mismatch (-want +got):\n%s", diff)
	}
	got, err := ApplyMergePatch(left, p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(decodeAny(t, right), decodeAny(t, got)); diff != "" {
		t.Errorf("patched document mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyPatch(t *testing.T) {
	got, err := ApplyPatch([]byte(`{"a": 1}`), []byte(`[{"op": "add", "path": "/b", "value": [2]}]`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": 1.0, "b": []any{2.0}}
	if diff := cmp.Diff(any(want), decodeAny(t, got)); diff != "" {
		t.Errorf("patched document mismatch (-want +got):\n%s", diff)
	}
	if _, err := ApplyPatch([]byte(`{}`), []byte(`{"op": "add"}`)); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected malformed patch, got %v", err)
	}
}

func TestToJSON(t *testing.T) {
	j, err := ToJSON([]byte("a:\n  b: [1, x]\n"), format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": map[string]any{"b": []any{1.0, "x"}}}
	if diff := cmp.Diff(any(want), decodeAny(t, j)); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
}
