package jvx

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

func TestDumpMatchesDumpString(t *testing.T) {
	v := sampleValue()
	var buf bytes.Buffer
	Dump(&buf, v, &Options{Pretty: true, Indent: 2})
	if got, want := buf.String(), DumpString(v, &Options{Pretty: true, Indent: 2}); got != want {
		t.Fatalf("stream and string sinks disagree\nstream: %q\nstring: %q", got, want)
	}
}

func TestDumpTTYPathProducesSameBytes(t *testing.T) {
	v := sampleValue()
	var buffered, raw bytes.Buffer
	Dump(&buffered, v, &Options{Pretty: true, Indent: 2})
	Dump(&raw, v, &Options{Pretty: true, Indent: 2, IsTTY: true})
	if buffered.String() != raw.String() {
		t.Fatalf("TTY write path altered the output\nbuffered: %q\nraw:      %q", buffered.String(), raw.String())
	}
}

func TestDumpRoundTripsThroughEncodingJSON(t *testing.T) {
	v := Object().
		Set("b", Number(1)).
		Set("a", Array(Number(1), Number(2))).
		Set("s", String("héllo\n\"quoted\"")).
		Set("t", True()).
		Set("n", Null())
	out := DumpString(v, nil)
	if !json.Valid([]byte(out)) {
		t.Fatalf("compact output is not valid JSON: %s", out)
	}

	var decoded any
	dec := json.NewDecoder(strings.NewReader(out))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	rebuilt, err := FromGo(decoded)
	if err != nil {
		t.Fatalf("FromGo failed: %v", err)
	}
	// FromGo sorts map keys, so compare against the sorted rendering.
	if got, want := DumpString(rebuilt, nil), DumpString(v, &Options{SortKeys: true}); got != want {
		t.Fatalf("round trip drifted\nexpected: %s\nactual:   %s", want, got)
	}
}

func TestDumpASCIIOutputHasNoHighBytes(t *testing.T) {
	v := Object().Set("grüße", Array(String("héllo"), String("世界")))
	out := DumpString(v, &Options{ASCII: true})
	for i := 0; i < len(out); i++ {
		if out[i] >= 0x80 {
			t.Fatalf("ascii dump contains byte 0x%02x at %d: %q", out[i], i, out)
		}
	}
}

func TestDumpTruncMarksTruncation(t *testing.T) {
	v := String(strings.Repeat("a", 18)) // dumps as 20 characters
	buf := make([]byte, 6)
	got := DumpTrunc(v, buf)
	if len(got) != 5 {
		t.Fatalf("expected 5 characters, got %d (%q)", len(got), got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ... marker, got %q", got)
	}
	if buf[5] != 0 {
		t.Fatalf("expected NUL terminator, got 0x%02x", buf[5])
	}
}

func TestDumpTruncFits(t *testing.T) {
	buf := make([]byte, 64)
	got := DumpTrunc(sampleValue(), buf)
	if want := `{"b":1,"a":[1,2]}`; got != want {
		t.Fatalf("expected %s, got %q", want, got)
	}
	if buf[len(got)] != 0 {
		t.Fatalf("expected NUL terminator after text")
	}
}

func TestDumpTruncTinyBufferTruncatesSilently(t *testing.T) {
	got := DumpTrunc(Null(), make([]byte, 3))
	if got != "nu" {
		t.Fatalf("expected silent truncation to %q, got %q", "nu", got)
	}
	if got := DumpTrunc(Null(), nil); got != "" {
		t.Fatalf("expected empty result for empty buffer, got %q", got)
	}
}

func TestShowWritesDiagnosticsToStderr(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stderr
	os.Stderr = w
	Show(InvalidMsg("boom"), nil)
	os.Stderr = orig
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(out), `<invalid:"boom">`) {
		t.Fatalf("expected rendered invalid value, got %q", out)
	}
}

func TestShowDefaultsArePrettyAndColored(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stderr
	os.Stderr = w
	Show(sampleValue(), nil)
	os.Stderr = orig
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(out), "\n  ") {
		t.Fatalf("expected two-space pretty output, got %q", out)
	}
	if !strings.ContainsRune(string(out), '\x1b') {
		t.Fatalf("expected colored output, got %q", out)
	}
}
