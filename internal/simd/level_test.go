package simd

import "testing"

func TestAvailable_ScalarAlwaysLast(t *testing.T) {
	levels := Available()
	if len(levels) == 0 {
		t.Fatal("Available returned no levels")
	}
	if levels[len(levels)-1] != Scalar {
		t.Errorf("Expected Scalar as last level, got %v", levels[len(levels)-1])
	}

	// Scalar must appear exactly once.
	count := 0
	for _, l := range levels {
		if l == Scalar {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected Scalar exactly once, found %d times", count)
	}
}

func TestBest_IsFirstAvailable(t *testing.T) {
	if Best() != Available()[0] {
		t.Errorf("Best() = %v, want %v", Best(), Available()[0])
	}
}

func TestSuffixRoundTrip(t *testing.T) {
	for _, l := range Available() {
		if got := FromSuffix(l.Suffix()); got != l {
			t.Errorf("FromSuffix(%q) = %v, want %v", l.Suffix(), got, l)
		}
	}
}

func TestFromSuffix_Scalar(t *testing.T) {
	if got := FromSuffix("scalar"); got != Scalar {
		t.Errorf("FromSuffix(scalar) = %v, want Scalar", got)
	}
	if got := FromSuffix("scalar").Suffix(); got != "scalar" {
		t.Errorf("round trip of scalar suffix = %q", got)
	}
}

func TestFromSuffix_UnknownFallsBackToBest(t *testing.T) {
	for _, s := range []string{"", "avx512", "bogus", "AVX2"} {
		if got := FromSuffix(s); got != Best() {
			t.Errorf("FromSuffix(%q) = %v, want Best() = %v", s, got, Best())
		}
	}
}

func TestFromSuffix_UnavailableLevelFallsBackToBest(t *testing.T) {
	available := make(map[Level]bool)
	for _, l := range Available() {
		available[l] = true
	}

	for _, l := range []Level{Sse42, Avx2, Neon, WasmSimd128} {
		if available[l] {
			continue
		}
		if got := FromSuffix(l.Suffix()); got != Best() {
			t.Errorf("FromSuffix(%q) on host without it = %v, want Best()", l.Suffix(), got)
		}
	}
}

func TestSuffixAndDisplayName(t *testing.T) {
	cases := []struct {
		level   Level
		suffix  string
		display string
	}{
		{Scalar, "scalar", "Scalar"},
		{Sse42, "sse42", "SSE4.2"},
		{Avx2, "avx2", "AVX2"},
		{Neon, "neon", "NEON"},
		{WasmSimd128, "wasm_simd128", "WASM SIMD128"},
	}

	for _, tc := range cases {
		if tc.level.Suffix() != tc.suffix {
			t.Errorf("%v.Suffix() = %q, want %q", tc.level, tc.level.Suffix(), tc.suffix)
		}
		if tc.level.DisplayName() != tc.display {
			t.Errorf("%v.DisplayName() = %q, want %q", tc.level, tc.level.DisplayName(), tc.display)
		}
	}
}

func TestPlatform(t *testing.T) {
	p := Platform()
	if p.Arch == "" {
		t.Error("Platform arch is empty")
	}
	if p.OS == "" {
		t.Error("Platform OS is empty")
	}
	if len(p.SimdFeatures) == 0 {
		t.Error("Platform SIMD features is empty; expected at least \"scalar\"")
	}

	// Detection is memoized; a second call must return identical data.
	q := Platform()
	if p.Arch != q.Arch || p.OS != q.OS || len(p.SimdFeatures) != len(q.SimdFeatures) {
		t.Error("Platform() is not stable across calls")
	}
}
