//go:build js && wasm

package timing

import "syscall/js"

// instant is a performance.now() reading in milliseconds. The performance
// object is resolved through the global scope so the same code works on the
// document thread and inside a worker.
type instant = float64

var performance = js.Global().Get("performance")

func now() instant {
	return performance.Call("now").Float()
}

// elapsedNS converts the millisecond delta to nanoseconds, clamped to zero.
// The browser clock may be coarsened to microsecond ticks; measurement
// windows are several milliseconds long, so that is tolerable.
func elapsedNS(start instant) float64 {
	d := performance.Call("now").Float() - start
	if d < 0 {
		return 0
	}
	return d * 1e6
}

func timestampMS() uint64 {
	return uint64(performance.Call("now").Float())
}
