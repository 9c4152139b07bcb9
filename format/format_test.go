package format

import (
	"errors"
	"testing"
)

type detectTest struct {
	name string
	in   string
	want Format
}

var detectTests = []detectTest{
	{"empty", "", TextFormat},
	{"blank", " \n\t\n", TextFormat},
	{"xml", `<?xml version="1.0"?>
<raml version="2.1"><cmData/></raml>`, XMLFormat},
	{"xml without declaration", "  <a><b/></a>\n", XMLFormat},
	{"broken xml", "<a><b></a>", TextFormat},
	{"json object", `{"a": {"b": 1}}`, JSONFormat},
	{"json array", `[1, 2, 3]`, JSONFormat},
	{"broken json", `{"a": }`, TextFormat},
	{"yaml", "a:\n  b: 1\n  c: [x, y]\n", YAMLFormat},
	{"yaml sequence", "- name: a\n  port: 80\n- name: b\n  port: 81\n", YAMLFormat},
	{"single key", "host: example.org", YAMLFormat},
	{"scalar with colon", "see: the docs", YAMLFormat},
	{"prose", "hello world\nthis is text\n", TextFormat},
	{"ini", "[main]\nkey=value\n", TextFormat},
}

func TestDetect(t *testing.T) {
	for _, tc := range detectTests {
		if got := Detect([]byte(tc.in)); got != tc.want {
			t.Errorf("%s: Detect(%q) = %s, want %s", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %s", f.String(), got)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected bad format, got %v", err)
	}
	if f, _ := ParseFormat("YML"); f != YAMLFormat {
		t.Errorf("expected yaml, got %s", f)
	}
}

func TestKind(t *testing.T) {
	kinds := map[Format]Kind{
		TextFormat: TextKind,
		XMLFormat:  TreeKind,
		JSONFormat: HierarchicalKind,
		YAMLFormat: HierarchicalKind,
	}
	for f, k := range kinds {
		if f.Kind() != k {
			t.Errorf("%s: kind %s, want %s", f, f.Kind(), k)
		}
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a/b/config.xml", XMLFormat, true},
		{"values.yml", YAMLFormat, true},
		{"x.JSON", JSONFormat, true},
		{"notes.txt", TextFormat, true},
		{"router.cfg", 0, false},
		{"Makefile", 0, false},
	}
	for _, tc := range tests {
		got, ok := FromPath(tc.path)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FromPath(%q) = %s, %t", tc.path, got, ok)
		}
	}
}
