package bench

// sink receives a value derived from every measured iteration. The
// //go:noinline directives keep the calls opaque to the compiler, so the
// work inside the closure cannot be folded away as dead.
var sink uint64

//go:noinline
func sinkBytes(b []uint8) {
	if len(b) != 0 {
		sink += uint64(b[0])
	}
}

//go:noinline
func sinkInt(v int) {
	sink += uint64(v)
}
