package jvx

import (
	"io"
	"testing"
)

func benchValue() Value {
	users := Array()
	for i := 0; i < 32; i++ {
		users.Append(Object().
			Set("id", Number(float64(i))).
			Set("name", String("user-name-with-some-length")).
			Set("bio", String("héllo — UTF-8 heavy descriptions\nwith \"escapes\"")).
			Set("active", Bool(i%2 == 0)).
			Set("score", Number(0.0625*float64(i))))
	}
	return Object().
		Set("users", users).
		Set("total", Number(32)).
		Set("cursor", Null())
}

func BenchmarkDumpStringCompact(b *testing.B) {
	v := benchValue()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = DumpString(v, nil)
	}
}

func BenchmarkDumpStringPretty(b *testing.B) {
	v := benchValue()
	opts := &Options{Pretty: true, Indent: 2}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = DumpString(v, opts)
	}
}

func BenchmarkDumpStreamColor(b *testing.B) {
	v := benchValue()
	opts := &Options{Pretty: true, Indent: 2, Color: true}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Dump(io.Discard, v, opts)
	}
}
