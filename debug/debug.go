package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type debug struct {
	Parse  bool
	Index  bool
	Filter bool
	Put    bool
	Drop   bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("LINECONF_DEBUG_PARSE")
	d.Index = boolEnv("LINECONF_DEBUG_INDEX")
	d.Filter = boolEnv("LINECONF_DEBUG_FILTER")
	d.Put = boolEnv("LINECONF_DEBUG_PUT")
	d.Drop = boolEnv("LINECONF_DEBUG_DROP")
	d.Patch = boolEnv("LINECONF_DEBUG_PATCH")
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
func Index() bool {
	return d.Index
}
func Filter() bool {
	return d.Filter
}
func Put() bool {
	return d.Put
}
func Drop() bool {
	return d.Drop
}
func Patch() bool {
	return d.Patch
}

// Logf writes a formatted line to stderr.
func Logf(format string, args ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
