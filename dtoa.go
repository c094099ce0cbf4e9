package jvx

import (
	"math"
	"strconv"
)

// dtoaContext formats doubles as the shortest decimal text that round-trips.
// One context lives for the duration of a single dump call and is reused for
// every number in the tree; its scratch buffer must not be shared between
// concurrent dumps.
type dtoaContext struct {
	buf []byte
}

// format renders a finite double. NaN and infinities must be normalised by
// the caller before this point. The returned slice aliases the context's
// scratch buffer and is only valid until the next call.
func (c *dtoaContext) format(d float64) []byte {
	// Same format selection as encoding/json: fixed notation within the
	// range exact integers occupy, exponent notation outside it.
	fmt := byte('f')
	if abs := math.Abs(d); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmt = 'e'
	}
	c.buf = strconv.AppendFloat(c.buf[:0], d, fmt, -1, 64)
	if fmt == 'e' {
		// Trim the zero-padded exponent: 2e-09 -> 2e-9.
		if n := len(c.buf); n >= 4 && c.buf[n-4] == 'e' && c.buf[n-3] == '-' && c.buf[n-2] == '0' {
			c.buf[n-2] = c.buf[n-1]
			c.buf = c.buf[:n-1]
		}
	}
	return c.buf
}

// release drops an oversized scratch buffer before the printer returns to the
// pool.
func (c *dtoaContext) release() {
	if cap(c.buf) > maxScratchCap {
		c.buf = nil
	} else {
		c.buf = c.buf[:0]
	}
}
