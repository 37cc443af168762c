//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// detect returns the SIMD levels this CPU supports, fastest first.
// AVX2 kernels use fused multiply-add, so both flags must be present.
func detect() []Level {
	var levels []Level
	if cpu.X86.HasAVX2 && cpu.X86.HasFMA {
		levels = append(levels, Avx2)
	}
	if cpu.X86.HasSSE42 {
		levels = append(levels, Sse42)
	}
	return levels
}

func features() []string {
	var fs []string
	if cpu.X86.HasAVX2 && cpu.X86.HasFMA {
		fs = append(fs, "avx2")
	}
	if cpu.X86.HasSSE42 {
		fs = append(fs, "sse4.2")
	}
	return fs
}
