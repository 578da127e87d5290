// Package debug gates diagnostic logging behind PNACH_DEBUG_*
// environment variables, read once at process start.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Decode bool
	Merge  bool
	Source bool
	Lookup bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PNACH_DEBUG_PARSE")
	d.Decode = boolEnv("PNACH_DEBUG_DECODE")
	d.Merge = boolEnv("PNACH_DEBUG_MERGE")
	d.Source = boolEnv("PNACH_DEBUG_SOURCE")
	d.Lookup = boolEnv("PNACH_DEBUG_LOOKUP")
	d.Eval = boolEnv("PNACH_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Decode() bool {
	return d.Decode
}
func Merge() bool {
	return d.Merge
}
func Source() bool {
	return d.Source
}
func Lookup() bool {
	return d.Lookup
}
func Eval() bool {
	return d.Eval
}
