package jvx

import (
	"io"
	"os"
)

// Dump writes v as JSON text to w. A nil opts means compact monochrome
// output. Stream write errors are not surfaced; the dump is best-effort
// console output, not a delivery guarantee. Dumping an invalid value without
// Options.RenderInvalid panics.
func Dump(w io.Writer, v Value, opts *Options) {
	p := acquirePrinter(opts)
	defer releasePrinter(p)
	s := newStreamSink(w, p.opts.IsTTY || isTerminal(w))
	p.dump(s, v, 0)
	s.flush()
}

// DumpString renders v into a string. The input value is only read, never
// consumed.
func DumpString(v Value, opts *Options) string {
	p := acquirePrinter(opts)
	defer releasePrinter(p)
	var s stringSink
	p.dump(&s, v, 0)
	return s.b.String()
}

// DumpTrunc renders v compactly into a caller-provided fixed-size buffer and
// returns the text as a string. The buffer is NUL-terminated like a C debug
// buffer. When the text does not fit, the last three kept bytes become "..."
// provided the buffer holds at least four; smaller buffers truncate silently.
func DumpTrunc(v Value, buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	text := DumpString(v, nil)
	limit := len(buf) - 1
	n := copy(buf, text)
	if n > limit {
		n = limit
	}
	buf[n] = 0
	if len(text) > limit && len(buf) >= 4 {
		buf[len(buf)-2] = '.'
		buf[len(buf)-3] = '.'
		buf[len(buf)-4] = '.'
	}
	return string(buf[:n])
}

// Show dumps v to stderr for use in debuggers: nil opts defaults to pretty,
// coloured, two-space indented output, and invalid values are always rendered
// rather than fatal. Output is flushed before Show returns.
func Show(v Value, opts *Options) {
	var o Options
	if opts == nil {
		o = Options{Pretty: true, Color: true, Indent: 2}
	} else {
		o = *opts
	}
	o.RenderInvalid = true
	Dump(os.Stderr, v, &o)
}
