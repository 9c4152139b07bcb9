package change

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChangeValid(t *testing.T) {
	field := Ptr("id")
	tests := []struct {
		c     Change
		valid bool
	}{
		{Add(AttributeScope, "a", field, "1"), true},
		{Remove(AttributeScope, "a", field, "1"), true},
		{Modify(AttributeScope, "a", field, "1", "2"), true},
		{Modify(AttributeScope, "a", field, "1", "1"), false},
		{Change{Kind: Added}, false},
		{Change{Kind: Removed, New: Ptr("")}, false},
	}
	for i, tc := range tests {
		if got := tc.c.Valid(); got != tc.valid {
			t.Errorf("test %d: %s Valid() = %t, want %t", i, tc.c, got, tc.valid)
		}
	}
}

func TestChangeJSON(t *testing.T) {
	c := Add(ElementScope, "root/item[a]", nil, "<item/>")
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		t.Fatal(err)
	}
	d := bytes.TrimSpace(buf.Bytes())
	want := `{"kind":"added","scope":"element","path":"root/item[a]","field":null,"oldValue":null,"newValue":"<item/>"}`
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
	var back Change
	if err := json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCount(t *testing.T) {
	cs := []Change{
		Add(ValueScope, "a", nil, "1"),
		Add(ValueScope, "b", nil, "1"),
		Remove(ValueScope, "c", nil, "1"),
		Modify(ValueScope, "d", nil, "1", "2"),
	}
	got := Count(cs)
	want := Counts{Added: 2, Removed: 1, Changed: 1}
	if got != want {
		t.Errorf("got %+v want %+v", got, want)
	}
	if got.Total() != 4 {
		t.Errorf("total %d", got.Total())
	}
	if n := len(Filter(cs, ByKind(Added))); n != 2 {
		t.Errorf("filter added: %d", n)
	}
}

func TestLineJSON(t *testing.T) {
	l := Left(Deletion, 3, "x")
	d, err := json.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"deletion","leftLineNumber":3,"leftContent":"x"}`
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
}
