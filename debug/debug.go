package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Compose bool
	Load    bool
	Expand  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Compose = boolEnv("SITECONF_DEBUG_COMPOSE")
	d.Load = boolEnv("SITECONF_DEBUG_LOAD")
	d.Expand = boolEnv("SITECONF_DEBUG_EXPAND")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Compose() bool {
	return d.Compose
}
func Load() bool {
	return d.Load
}
func Expand() bool {
	return d.Expand
}
