// Package simd enumerates the SIMD kernel variants available on the host
// and converts between levels and their stable suffix strings.
package simd

// Level identifies a SIMD capability class for kernel selection.
type Level int

const (
	// Scalar is the portable fallback, present on every host.
	Scalar Level = iota
	// Sse42 is x86-64 SSE4.2.
	Sse42
	// Avx2 is x86-64 AVX2 (with FMA).
	Avx2
	// Neon is ARM64 NEON.
	Neon
	// WasmSimd128 is WebAssembly SIMD128.
	WasmSimd128
)

// Suffix returns the stable identifier used in benchmark results and the
// frontend protocol.
func (l Level) Suffix() string {
	switch l {
	case Sse42:
		return "sse42"
	case Avx2:
		return "avx2"
	case Neon:
		return "neon"
	case WasmSimd128:
		return "wasm_simd128"
	default:
		return "scalar"
	}
}

// DisplayName returns the human-readable name for this level.
func (l Level) DisplayName() string {
	switch l {
	case Sse42:
		return "SSE4.2"
	case Avx2:
		return "AVX2"
	case Neon:
		return "NEON"
	case WasmSimd128:
		return "WASM SIMD128"
	default:
		return "Scalar"
	}
}

func (l Level) String() string {
	return l.DisplayName()
}

// Available returns the levels usable on this host, fastest first.
// Scalar is always the last entry.
func Available() []Level {
	levels := detect()
	return append(levels, Scalar)
}

// Best returns the fastest level available on this host.
func Best() Level {
	return Available()[0]
}

// FromSuffix resolves a suffix string to a level.
//
// The exact suffix "scalar" always yields Scalar. A suffix naming a level
// that is available on this host yields that level. Any other suffix,
// unknown or unavailable here, yields Best(). This keeps callers
// forward-compatible with kernel variants they do not know about, and lets
// a saved reference from another machine still run here.
func FromSuffix(s string) Level {
	if s == "scalar" {
		return Scalar
	}
	for _, l := range Available() {
		if l.Suffix() == s {
			return l
		}
	}
	return Best()
}
