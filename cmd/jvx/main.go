// Command jvx pretty-prints JSON documents as jq would: coloured, indented
// output on terminals, compact or sorted on request. Each input may hold a
// stream of documents; every document is dumped on its own line group.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"
	"pkt.systems/jvx"
)

func main() {
	compact := flag.BoolP("compact-output", "c", false, "compact instead of pretty-printed output")
	tab := flag.Bool("tab", false, "use tabs for indentation")
	indent := flag.Int("indent", 2, "use the given number of spaces for indentation (0..7)")
	ascii := flag.BoolP("ascii-output", "a", false, "output strings with non-ASCII characters escaped")
	sortKeys := flag.BoolP("sort-keys", "S", false, "sort object keys in lexicographic order")
	colorOut := flag.BoolP("color-output", "C", false, "colorize JSON even when not writing to a terminal")
	mono := flag.BoolP("monochrome-output", "M", false, "disable colored output")
	palette := flag.String("palette", "jq", "color palette name; --palette help lists the choices")
	showRefs := flag.Bool("show-refs", false, "annotate values with internal share counts (diagnostic)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *palette == "help" {
		for _, name := range jvx.PaletteNames() {
			fmt.Println(name)
		}
		return
	}
	if _, err := jvx.LookupPalette(*palette); err != nil {
		fmt.Fprintf(os.Stderr, "jvx: %v\n", err)
		os.Exit(2)
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	opts := jvx.Options{
		Pretty:   !*compact,
		Tab:      *tab,
		Indent:   *indent,
		ASCII:    *ascii,
		SortKeys: *sortKeys,
		Color:    (tty || *colorOut) && !*mono,
		Palette:  *palette,
		ShowRefs: *showRefs,
		IsTTY:    tty,
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	status := 0
	for _, path := range paths {
		if err := dumpFile(os.Stdout, path, &opts); err != nil {
			fmt.Fprintf(os.Stderr, "jvx: %s: %v\n", path, err)
			status = 1
		}
	}
	os.Exit(status)
}

func dumpFile(w io.Writer, path string, opts *jvx.Options) error {
	r, closer, err := openInput(path)
	if err != nil {
		return err
	}
	defer closer()

	dec := json.NewDecoder(r)
	dec.UseNumber()
	for {
		v, err := decodeValue(dec)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		jvx.Dump(w, v, opts)
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// decodeValue builds a jvx.Value from the decoder's token stream. Going
// token by token keeps object keys in document order, which a detour through
// map[string]any would scramble.
func decodeValue(dec *json.Decoder) (jvx.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return jvx.Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (jvx.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := jvx.Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return jvx.Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return jvx.Value{}, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return jvx.Value{}, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return jvx.Value{}, err
			}
			return obj, nil
		case '[':
			arr := jvx.Array()
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return jvx.Value{}, err
				}
				arr.Append(elem)
			}
			if _, err := dec.Token(); err != nil {
				return jvx.Value{}, err
			}
			return arr, nil
		default:
			return jvx.Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return jvx.String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return jvx.Value{}, fmt.Errorf("bad number %q: %w", t.String(), err)
		}
		return jvx.Number(f), nil
	case bool:
		return jvx.Bool(t), nil
	case nil:
		return jvx.Null(), nil
	default:
		return jvx.Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}
