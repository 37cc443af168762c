//go:build !amd64 && !arm64 && !(js && wasm)

package simd

func detect() []Level { return nil }

func features() []string { return nil }
