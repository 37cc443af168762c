package raster

import "testing"

func blendOne(t *testing.T, src, dst Color, mode BlendMode) Color {
	t.Helper()
	d := []uint8{dst[0], dst[1], dst[2], dst[3]}
	blendSpan(d, []uint8{src[0], src[1], src[2], src[3]}, mode)
	return Color{d[0], d[1], d[2], d[3]}
}

func TestBlendMixModes(t *testing.T) {
	red := Color{255, 0, 0, 255}
	white := Color{255, 255, 255, 255}
	grey := Color{128, 128, 128, 255}

	tests := []struct {
		name string
		mix  Mix
		src  Color
		dst  Color
		want Color
	}{
		{"normal replaces", MixNormal, red, white, red},
		{"multiply darkens", MixMultiply, red, white, red},
		{"multiply by white keeps", MixMultiply, white, grey, grey},
		{"screen lightens", MixScreen, red, white, white},
		{"darken", MixDarken, red, white, red},
		{"lighten", MixLighten, red, grey, Color{255, 128, 128, 255}},
		{"difference", MixDifference, red, white, Color{0, 255, 255, 255}},
		{"exclusion self cancels", MixExclusion, white, white, Color{0, 0, 0, 255}},
		{"luminosity of white", MixLuminosity, white, Color{0, 0, 0, 255}, white},
	}
	for _, tc := range tests {
		got := blendOne(t, tc.src, tc.dst, BlendMode{Mix: tc.mix, Compose: ComposeSrcOver})
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBlendComposeOperators(t *testing.T) {
	opaque := Color{255, 0, 0, 255}
	empty := Color{}

	// src-in against an empty backdrop leaves nothing.
	if got := blendOne(t, opaque, empty, BlendMode{Compose: ComposeSrcIn}); got != empty {
		t.Errorf("src-in over empty = %v, want transparent", got)
	}

	// dest-over keeps an opaque backdrop untouched.
	white := Color{255, 255, 255, 255}
	if got := blendOne(t, opaque, white, BlendMode{Compose: ComposeDestOver}); got != white {
		t.Errorf("dest-over under opaque = %v, want %v", got, white)
	}

	// xor of two opaque layers cancels.
	if got := blendOne(t, opaque, white, BlendMode{Compose: ComposeXor}); got != empty {
		t.Errorf("xor of opaque layers = %v, want transparent", got)
	}
}

func TestBlendMatchesSrcOverKernel(t *testing.T) {
	// The generic path must agree with the dedicated src-over kernel on the
	// default mode, within rounding.
	cases := []struct{ src, dst Color }{
		{Color{100, 50, 25, 128}, Color{10, 200, 30, 255}},
		{Color{0, 0, 0, 0}, Color{77, 77, 77, 200}},
		{Color{255, 255, 255, 255}, Color{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		generic := blendOne(t, tc.src, tc.dst, DefaultBlend)

		kernel := []uint8{tc.dst[0], tc.dst[1], tc.dst[2], tc.dst[3]}
		srcOverScalar(kernel, []uint8{tc.src[0], tc.src[1], tc.src[2], tc.src[3]})

		for ch := 0; ch < 4; ch++ {
			d := int(generic[ch]) - int(kernel[ch])
			if d < -2 || d > 2 {
				t.Errorf("src %v over %v: channel %d differs %d vs %d",
					tc.src, tc.dst, ch, generic[ch], kernel[ch])
			}
		}
	}
}

func TestBlendNonSeparableStaysInGamut(t *testing.T) {
	src := Color{255, 0, 0, 255}
	dst := Color{30, 200, 90, 255}
	for _, mix := range []Mix{MixHue, MixSaturation, MixColor, MixLuminosity} {
		got := blendOne(t, src, dst, BlendMode{Mix: mix, Compose: ComposeSrcOver})
		if got[3] != 255 {
			t.Errorf("mix %d lost alpha: %v", mix, got)
		}
	}
}

func TestBlendIsDefault(t *testing.T) {
	if !DefaultBlend.IsDefault() {
		t.Error("DefaultBlend not default")
	}
	if (BlendMode{Mix: MixMultiply, Compose: ComposeSrcOver}).IsDefault() {
		t.Error("multiply reported default")
	}
	if (BlendMode{Mix: MixNormal, Compose: ComposeXor}).IsDefault() {
		t.Error("xor reported default")
	}
}
