package report

import (
	"strings"

	"github.com/signadot/cfgdiff/change"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	PathColor
	FieldColor
	AddedColor
	RemovedColor
	ChangedColor
	UnchangedColor
	LineNumberColor
	InlineAddedColor
	InlineRemovedColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

// NewColors returns the terminal palette. Whether escape sequences are
// actually written follows [color.NoColor].
func NewColors() *Colors {
	colors := NoColors()
	colors.Map[HeaderColor] = color.New(color.Bold).SprintfFunc()
	colors.Map[PathColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[FieldColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[AddedColor] = color.GreenString
	colors.Map[RemovedColor] = color.RedString
	colors.Map[ChangedColor] = color.YellowString
	colors.Map[UnchangedColor] = color.RGB(128, 128, 128).SprintfFunc()
	colors.Map[LineNumberColor] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[InlineAddedColor] = color.New(color.FgBlack, color.BgGreen).SprintfFunc()
	colors.Map[InlineRemovedColor] = color.New(color.FgBlack, color.BgRed).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

// NoColors returns a palette that leaves text unchanged.
func NoColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
}

func colorDefault(v string, _ ...any) string { return v }

// Color colors s with attribute a. A nil receiver leaves s unchanged.
func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// KindAttr returns the color attribute for changes of kind k.
func KindAttr(k change.Kind) ColorAttr {
	switch k {
	case change.Added:
		return AddedColor
	case change.Removed:
		return RemovedColor
	default:
		return ChangedColor
	}
}

// LineAttr returns the color attribute for lines of kind k.
func LineAttr(k change.LineKind) ColorAttr {
	switch k {
	case change.Addition:
		return AddedColor
	case change.Deletion:
		return RemovedColor
	case change.Modification:
		return ChangedColor
	default:
		return UnchangedColor
	}
}
