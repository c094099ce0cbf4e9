package jvx

import (
	"math"

	"pkt.systems/jvx/internal/ansi"
)

// printer holds the per-dump state: the normalized options, the resolved
// palette, the shared number-formatting context and the escape scratch
// buffer. One printer serves exactly one dump call; see pool.go.
type printer struct {
	opts    Options
	pal     ansi.Palette
	dtoa    dtoaContext
	scratch []byte
}

// kindColor maps a printable kind to its palette sequence. Invalid carries no
// colour of its own.
func (p *printer) kindColor(k Kind) string {
	switch k {
	case KindNull:
		return p.pal.Null
	case KindFalse:
		return p.pal.False
	case KindTrue:
		return p.pal.True
	case KindNumber:
		return p.pal.Number
	case KindString:
		return p.pal.String
	case KindArray:
		return p.pal.Array
	case KindObject:
		return p.pal.Object
	default:
		return ""
	}
}

// dump emits v at the given nesting depth. It is a pure structural recursion:
// the only state passed down is the depth and, implicitly, the enclosing
// colour, which callers re-assert after each nested element returns.
func (p *printer) dump(s sink, v Value, depth int) {
	colour := ""
	if p.opts.Color {
		colour = p.kindColor(v.Kind())
		if colour != "" {
			s.writeString(colour)
		}
	}

	switch v.Kind() {
	case KindInvalid:
		if !p.opts.RenderInvalid {
			panic("jvx: dump of invalid value")
		}
		if msg, ok := v.InvalidMessage(); ok {
			s.writeString("<invalid:")
			// The diagnostic is always ASCII-escaped so it stays printable.
			p.writeEscaped(s, []byte(msg), true)
			s.writeString(">")
		} else {
			s.writeString("<invalid>")
		}
	case KindNull:
		s.writeString("null")
	case KindFalse:
		s.writeString("false")
	case KindTrue:
		s.writeString("true")
	case KindNumber:
		d := v.Float()
		if math.IsNaN(d) {
			// JSON has no NaN, so render it as null.
			s.writeString("null")
		} else {
			// Normalise infinities to the largest value valid JSON can carry.
			if d > math.MaxFloat64 {
				d = math.MaxFloat64
			}
			if d < -math.MaxFloat64 {
				d = -math.MaxFloat64
			}
			s.write(p.dtoa.format(d))
		}
	case KindString:
		p.writeEscaped(s, v.strBytes(), p.opts.ASCII)
		p.writeRefs(s, v)
	case KindArray:
		p.dumpArray(s, v, colour, depth)
	case KindObject:
		p.dumpObject(s, v, colour, depth)
	}

	if colour != "" {
		s.writeString(ansi.Reset)
	}
}

func (p *printer) dumpArray(s sink, v Value, colour string, depth int) {
	n := v.Len()
	if n == 0 {
		s.writeString("[]")
		return
	}
	s.writeByte('[')
	if p.opts.Pretty {
		s.writeByte('\n')
		p.writeIndent(s, depth+1)
	}
	for i := 0; i < n; i++ {
		if i != 0 {
			if p.opts.Pretty {
				s.writeString(",\n")
				p.writeIndent(s, depth+1)
			} else {
				s.writeByte(',')
			}
		}
		p.dump(s, v.Index(i), depth+1)
		// Resume the array's colour after the element's trailing reset.
		if colour != "" {
			s.writeString(colour)
		}
	}
	if p.opts.Pretty {
		s.writeByte('\n')
		p.writeIndent(s, depth)
	}
	if colour != "" {
		s.writeString(colour)
	}
	s.writeByte(']')
	p.writeRefs(s, v)
}

func (p *printer) dumpObject(s sink, v Value, colour string, depth int) {
	if v.Len() == 0 {
		s.writeString("{}")
		return
	}
	s.writeByte('{')
	if p.opts.Pretty {
		s.writeByte('\n')
		p.writeIndent(s, depth+1)
	}
	first := true
	if p.opts.SortKeys {
		// Snapshot the key set once so the order is stable regardless of
		// what the insertion-order cursor would yield.
		for _, key := range v.Keys() {
			val, _ := v.Get(key)
			p.dumpPair(s, colour, key, val, depth, &first)
		}
	} else {
		for it := v.Iter(); it.Next(); {
			p.dumpPair(s, colour, it.Key(), it.Value(), depth, &first)
		}
	}
	if p.opts.Pretty {
		s.writeByte('\n')
		p.writeIndent(s, depth)
	}
	if colour != "" {
		s.writeString(colour)
	}
	s.writeByte('}')
	p.writeRefs(s, v)
}

func (p *printer) dumpPair(s sink, colour, key string, val Value, depth int, first *bool) {
	if !*first {
		if p.opts.Pretty {
			s.writeString(",\n")
			p.writeIndent(s, depth+1)
		} else {
			s.writeByte(',')
		}
	}
	*first = false
	if colour != "" {
		s.writeString(ansi.Reset)
		s.writeString(p.pal.Field)
	}
	p.writeEscaped(s, []byte(key), p.opts.ASCII)
	if colour != "" {
		s.writeString(ansi.Reset)
		s.writeString(colour)
	}
	if p.opts.Pretty {
		s.writeString(": ")
	} else {
		s.writeByte(':')
	}
	if colour != "" {
		s.writeString(ansi.Reset)
	}
	p.dump(s, val, depth+1)
	// Resume the object's colour after the value's trailing reset.
	if colour != "" {
		s.writeString(colour)
	}
}

// writeRefs appends the " (N)" share-count diagnostic after string, array and
// object values. The count goes through the same formatting context as
// numbers.
func (p *printer) writeRefs(s sink, v Value) {
	if !p.opts.ShowRefs {
		return
	}
	s.writeString(" (")
	s.write(p.dtoa.format(float64(v.Refs())))
	s.writeByte(')')
}

func (p *printer) writeEscaped(s sink, b []byte, asciiOnly bool) {
	p.scratch = appendEscaped(p.scratch[:0], b, asciiOnly)
	s.write(p.scratch)
}

// writeIndent emits the indentation for one line at nesting level n: n tabs,
// or n times the configured space width. Width zero keeps pretty mode's
// newlines with no visible indentation.
func (p *printer) writeIndent(s sink, n int) {
	if p.opts.Tab {
		for i := 0; i < n; i++ {
			s.writeByte('\t')
		}
		return
	}
	for i := n * p.opts.Indent; i > 0; i-- {
		s.writeByte(' ')
	}
}
