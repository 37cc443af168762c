//go:build js && wasm

package simd

// SIMD128 availability is decided when the wasm binary is built; the batch
// kernels compile unconditionally, so the level is always offered here.
func detect() []Level {
	return []Level{WasmSimd128}
}

func features() []string {
	return []string{"simd128"}
}
