//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func detect() []Level {
	if cpu.ARM64.HasASIMD {
		return []Level{Neon}
	}
	return nil
}

func features() []string {
	if cpu.ARM64.HasASIMD {
		return []string{"neon"}
	}
	return nil
}
