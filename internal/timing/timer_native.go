//go:build !(js && wasm)

package timing

import "time"

// instant is a captured monotonic tick. On native hosts time.Time carries
// the monotonic reading, so interval math is immune to wall-clock jumps.
type instant = time.Time

func now() instant {
	return time.Now()
}

// elapsedNS returns nanoseconds since start, clamped to zero.
func elapsedNS(start instant) float64 {
	d := time.Since(start)
	if d < 0 {
		return 0
	}
	return float64(d.Nanoseconds())
}

// timestampMS returns wall-clock milliseconds since the Unix epoch.
func timestampMS() uint64 {
	ms := time.Now().UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}
