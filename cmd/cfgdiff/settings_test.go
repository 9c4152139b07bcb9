package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/cfgdiff/pathdiff"

	"github.com/google/go-cmp/cmp"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadSettings(t *testing.T) {
	p := writeSettings(t, `identifierAttrs: [distName, id]
threshold: 0.5
maxLines: 100
caseSensitive: false
width: 120
`)
	got, err := loadSettings(p)
	if err != nil {
		t.Fatal(err)
	}
	threshold, maxLines, caseSensitive := 0.5, 100, false
	want := &Settings{
		IdentifierAttrs: []string{"distName", "id"},
		Threshold:       &threshold,
		MaxLines:        &maxLines,
		CaseSensitive:   &caseSensitive,
		Width:           120,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	for _, content := range []string{
		"threshold: 2\n",
		"unknown: 1\n",
	} {
		if _, err := loadSettings(writeSettings(t, content)); err == nil {
			t.Errorf("%q: expected error", content)
		}
	}
}

func TestChangedRows(t *testing.T) {
	rows := []pathdiff.Row{
		{Path: "a", Status: pathdiff.Unchanged},
		{Path: "b", Status: pathdiff.Modified},
		{Path: "c", Status: pathdiff.Added},
	}
	got := changedRows(rows)
	want := []pathdiff.Row{rows[1], rows[2]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
