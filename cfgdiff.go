// Package cfgdiff compares two configuration documents.
//
// The format of each document is declared or detected. XML documents are
// compared as element trees with [treediff], JSON and YAML documents as
// sets of paths with [pathdiff], and anything else line by line with
// [textdiff]. A document that fails to parse as its structured format is
// compared as text instead, and the [Result] records why.
package cfgdiff

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/cfgdiff/change"
	"github.com/signadot/cfgdiff/debug"
	"github.com/signadot/cfgdiff/format"
	"github.com/signadot/cfgdiff/pathdiff"
	"github.com/signadot/cfgdiff/textdiff"
	"github.com/signadot/cfgdiff/treediff"
)

// Result holds the outcome of a comparison. Which of Changes, Lines,
// Alignment and Rows are set depends on the kind of Format.
type Result struct {
	// Format is the format the documents were compared as.
	Format format.Format `json:"format"`
	// Fallback is set when structured documents were compared as text.
	Fallback       bool   `json:"fallback,omitempty"`
	FallbackReason string `json:"fallbackReason,omitempty"`
	// Tabular is set when tree documents were compared as flattened rows.
	Tabular bool `json:"tabular,omitempty"`

	// Changes is set for tree, tabular and hierarchical comparisons.
	Changes []change.Change `json:"changes,omitempty"`
	// Lines and Alignment are set for text comparisons.
	Lines     []change.Line `json:"lines,omitempty"`
	Alignment []change.Line `json:"alignment,omitempty"`
	// Rows is set for hierarchical and tabular comparisons.
	Rows []pathdiff.Row `json:"rows,omitempty"`
}

func (r *Result) Kind() format.Kind {
	return r.Format.Kind()
}

// ByPath reports whether r holds path rows.
func (r *Result) ByPath() bool {
	return r.Tabular || r.Kind() == format.HierarchicalKind
}

// Counts tallies the differences of r.
func (r *Result) Counts() change.Counts {
	if r.ByPath() {
		return pathdiff.Count(r.Rows)
	}
	switch r.Kind() {
	case format.TreeKind:
		return change.Count(r.Changes)
	default:
		return change.CountLines(r.Lines)
	}
}

// Equal reports whether the comparison found no differences.
func (r *Result) Equal() bool {
	return r.Counts().Total() == 0
}

// Compare compares two documents.
func Compare(left, right string, opts ...CompareOpt) (*Result, error) {
	return CompareContext(context.Background(), left, right, opts...)
}

// CompareContext compares two documents, checking ctx before the
// comparison starts and after the documents are parsed.
func CompareContext(ctx context.Context, left, right string, opts ...CompareOpt) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := NewCompareConfig(opts...)
	if err := checkInput("left", left, cfg.MaxLines); err != nil {
		return nil, err
	}
	if err := checkInput("right", right, cfg.MaxLines); err != nil {
		return nil, err
	}
	lf, rf, err := formats(left, right, cfg)
	if err != nil {
		return nil, err
	}
	if debug.Engine() {
		debug.Logf("compare %s (%d bytes) with %s (%d bytes)\n", lf, len(left), rf, len(right))
	}
	if lf.Kind() != rf.Kind() {
		reason := fmt.Sprintf("left document is %s, right document is %s", lf, rf)
		return compareText(ctx, left, right, cfg, reason)
	}
	switch lf.Kind() {
	case format.TreeKind:
		return compareTree(ctx, left, right, cfg)
	case format.HierarchicalKind:
		return comparePaths(ctx, left, right, lf, rf, cfg)
	default:
		return compareText(ctx, left, right, cfg, "")
	}
}

func checkInput(side, doc string, maxLines int) error {
	if strings.TrimSpace(doc) == "" {
		return fmt.Errorf("%w: %s document", ErrEmptyDocument, side)
	}
	if maxLines <= 0 {
		return nil
	}
	if n := len(textdiff.SplitLines(doc)); n > maxLines {
		return fmt.Errorf("%w: %s document has %d lines, limit is %d", ErrTooLarge, side, n, maxLines)
	}
	return nil
}

func formats(left, right string, cfg *CompareConfig) (format.Format, format.Format, error) {
	if cfg.Left != nil && cfg.Right != nil {
		lf, rf := *cfg.Left, *cfg.Right
		if lf.Kind() != rf.Kind() {
			return 0, 0, fmt.Errorf("%w: %s and %s", ErrUnsupportedComparison, lf, rf)
		}
		return lf, rf, nil
	}
	lf := format.Detect([]byte(left))
	rf := format.Detect([]byte(right))
	cfg.Log.Debug("detected formats", "left", lf, "right", rf)
	return lf, rf, nil
}

func compareTree(ctx context.Context, left, right string, cfg *CompareConfig) (*Result, error) {
	l, err := treediff.Parse([]byte(left), cfg.Tree...)
	if err != nil {
		return compareText(ctx, left, right, cfg, "left document: "+err.Error())
	}
	r, err := treediff.Parse([]byte(right), cfg.Tree...)
	if err != nil {
		return compareText(ctx, left, right, cfg, "right document: "+err.Error())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.Tabular {
		rows := pathdiff.Diff(pathdiff.FlattenTree(l.Canonical()), pathdiff.FlattenTree(r.Canonical()), cfg.Path...)
		res := &Result{Format: format.XMLFormat, Tabular: true, Rows: rows, Changes: pathdiff.Changes(rows)}
		cfg.Log.Debug("tabular comparison", "rows", len(res.Rows), "changes", len(res.Changes))
		return res, nil
	}
	res := &Result{
		Format:  format.XMLFormat,
		Changes: treediff.Diff(l.Canonical(), r.Canonical(), cfg.Tree...),
	}
	cfg.Log.Debug("tree comparison", "changes", len(res.Changes))
	return res, nil
}

func comparePaths(ctx context.Context, left, right string, lf, rf format.Format, cfg *CompareConfig) (*Result, error) {
	l, err := pathdiff.Load([]byte(left), lf)
	if err != nil {
		return compareText(ctx, left, right, cfg, "left document: "+err.Error())
	}
	r, err := pathdiff.Load([]byte(right), rf)
	if err != nil {
		return compareText(ctx, left, right, cfg, "right document: "+err.Error())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := &Result{Format: lf, Rows: pathdiff.Diff(l, r, cfg.Path...)}
	res.Changes = pathdiff.Changes(res.Rows)
	cfg.Log.Debug("path comparison", "rows", len(res.Rows), "changes", len(res.Changes))
	return res, nil
}

func compareText(ctx context.Context, left, right string, cfg *CompareConfig, fallback string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := &Result{Format: format.TextFormat}
	if fallback != "" {
		res.Fallback = true
		res.FallbackReason = fallback
		cfg.Log.Info("comparing as text", "reason", fallback)
	}
	ll := textdiff.SplitLines(left)
	rl := textdiff.SplitLines(right)
	if textdiff.NewConfig(cfg.Text...).Exact {
		res.Lines = textdiff.MinimalLines(ll, rl, cfg.Text...)
	} else {
		res.Lines = textdiff.LinesOf(ll, rl, cfg.Text...)
	}
	res.Alignment = textdiff.AlignLines(ll, rl, cfg.Text...)
	return res, nil
}
