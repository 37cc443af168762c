package simd

import (
	"runtime"
	"sync"
)

// PlatformInfo describes the host a benchmark ran on. It is detected once
// and immutable thereafter.
type PlatformInfo struct {
	Arch         string   `json:"arch"`
	OS           string   `json:"os"`
	SimdFeatures []string `json:"simd_features"`
}

var detectPlatform = sync.OnceValue(func() PlatformInfo {
	os := runtime.GOOS
	if os == "js" {
		os = "browser"
	}

	fs := features()
	if len(fs) == 0 {
		fs = []string{"scalar"}
	}

	return PlatformInfo{
		Arch:         runtime.GOARCH,
		OS:           os,
		SimdFeatures: fs,
	}
})

// Platform returns the host platform description.
func Platform() PlatformInfo {
	return detectPlatform()
}
