package bench

import (
	"strings"

	"github.com/cwbudde/vellobench/internal/simd"
	"github.com/cwbudde/vellobench/internal/timing"
)

// Run benchmarks the entry with the given identifier at the given SIMD
// level. It returns nil if no catalogue entry carries that identifier.
func Run(id string, level simd.Level, cfg timing.Config) *timing.Result {
	return RunWithCallback(id, level, cfg, nil)
}

// RunWithCallback is Run with a calibration callback, invoked after the
// timing engine finishes calibrating and before the measurement window
// opens.
func RunWithCallback(id string, level simd.Level, cfg timing.Config, onCalibrated func()) *timing.Result {
	c, name := lookup(id)
	if c == nil {
		return nil
	}

	f := c.build(name, level)
	r := timing.NewRunner(cfg)
	res := r.RunWithCallback(id, c.name, name, level.Suffix(), f, onCalibrated)
	return &res
}

// lookup resolves an identifier to its category and name. Category paths
// may themselves contain slashes, so the longest matching category prefix
// wins.
func lookup(id string) (*category, string) {
	var best *category
	var bestName string
	for i := range categories {
		c := &categories[i]
		rest, ok := strings.CutPrefix(id, c.name+"/")
		if !ok || rest == "" {
			continue
		}
		if best == nil || len(c.name) > len(best.name) {
			best = c
			bestName = rest
		}
	}
	if best == nil {
		return nil, ""
	}
	for _, n := range best.names() {
		if n == bestName {
			return best, bestName
		}
	}
	return nil, ""
}
