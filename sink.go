package jvx

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// sink is the dumper's output destination. Writes are ordered and best
// effort: stream errors are swallowed (console output semantics), the
// in-memory variant cannot fail.
type sink interface {
	write(b []byte)
	writeString(s string)
	writeByte(b byte)
}

// streamSink writes to an io.Writer. Non-terminal destinations go through a
// bufio.Writer for throughput; terminals are written raw and unbuffered, since
// at least one platform's buffered console path corrupts multi-byte UTF-8
// split across buffer boundaries. Both paths produce identical bytes.
type streamSink struct {
	w       io.Writer
	bw      *bufio.Writer
	byteBuf [1]byte
}

func newStreamSink(w io.Writer, tty bool) *streamSink {
	s := &streamSink{w: w}
	if !tty {
		s.bw = bufio.NewWriter(w)
	}
	return s
}

func (s *streamSink) write(b []byte) {
	if s.bw != nil {
		_, _ = s.bw.Write(b)
		return
	}
	_, _ = s.w.Write(b)
}

func (s *streamSink) writeString(str string) {
	if s.bw != nil {
		_, _ = s.bw.WriteString(str)
		return
	}
	_, _ = io.WriteString(s.w, str)
}

func (s *streamSink) writeByte(b byte) {
	if s.bw != nil {
		_ = s.bw.WriteByte(b)
		return
	}
	s.byteBuf[0] = b
	_, _ = s.w.Write(s.byteBuf[:])
}

// flush drains the buffered path. Raw terminal writes have nothing to flush.
func (s *streamSink) flush() {
	if s.bw != nil {
		_ = s.bw.Flush()
	}
}

// stringSink accumulates the dump in memory for DumpString.
type stringSink struct {
	b strings.Builder
}

func (s *stringSink) write(b []byte) { s.b.Write(b) }

func (s *stringSink) writeString(str string) { s.b.WriteString(str) }

func (s *stringSink) writeByte(b byte) { s.b.WriteByte(b) }

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
