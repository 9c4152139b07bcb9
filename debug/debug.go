package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match   bool
	Matches bool
	Detect  bool
	Align   bool
	Engine  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("CFGDIFF_DEBUG_MATCH")
	d.Matches = boolEnv("CFGDIFF_DEBUG_MATCHES")
	d.Detect = boolEnv("CFGDIFF_DEBUG_DETECT")
	d.Align = boolEnv("CFGDIFF_DEBUG_ALIGN")
	d.Engine = boolEnv("CFGDIFF_DEBUG_ENGINE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Matches() bool {
	return d.Matches
}
func Detect() bool {
	return d.Detect
}
func Align() bool {
	return d.Align
}
func Engine() bool {
	return d.Engine
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
