package jvx

import (
	"bytes"
	"encoding/json"
	"testing"
)

const fuzzMaxInput = 1 << 20

func FuzzDumpString(f *testing.F) {
	seeds := [][]byte{
		[]byte("null"),
		[]byte("true"),
		[]byte("123"),
		[]byte("\"hello\""),
		[]byte("[1,2,3]"),
		[]byte("{\"a\":1,\"b\":[true,false],\"c\":null}"),
		[]byte("{\"nested\":{\"deep\":[{},[]]}}"),
		[]byte("\"h\\u00e9llo \\ud83d\\ude00\""),
		[]byte("[1e-7,1e21,0.5,-0.25]"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > fuzzMaxInput || !json.Valid(data) {
			return
		}
		var decoded any
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&decoded); err != nil {
			return
		}
		v, err := FromGo(decoded)
		if err != nil {
			t.Fatalf("FromGo failed for %q: %v", data, err)
		}

		out := DumpString(v, nil)
		if !json.Valid([]byte(out)) {
			t.Fatalf("dump produced invalid JSON\ninput:  %q\noutput: %q", data, out)
		}

		// Idempotence: dumping the re-decoded output reproduces it exactly.
		var redecoded any
		dec = json.NewDecoder(bytes.NewReader([]byte(out)))
		dec.UseNumber()
		if err := dec.Decode(&redecoded); err != nil {
			t.Fatalf("output failed to decode: %v\noutput: %q", err, out)
		}
		v2, err := FromGo(redecoded)
		if err != nil {
			t.Fatalf("FromGo failed on redecode: %v", err)
		}
		if again := DumpString(v2, nil); again != out {
			t.Fatalf("dump is not idempotent\nfirst:  %q\nsecond: %q", out, again)
		}

		ascii := DumpString(v, &Options{ASCII: true})
		for i := 0; i < len(ascii); i++ {
			if ascii[i] >= 0x80 {
				t.Fatalf("ascii dump contains byte 0x%02x: %q", ascii[i], ascii)
			}
		}
	})
}
