package jvx

// Options controls how a Value is rendered. The zero value means compact,
// monochrome, insertion-ordered, raw-UTF-8 output — the same text any
// conforming JSON encoder would produce.
type Options struct {
	// Pretty selects multi-line, indented output instead of a single line.
	Pretty bool
	// Tab indents with one tab per nesting level. Overrides Indent.
	Tab bool
	// Indent is the number of spaces per nesting level when Tab is false.
	// Values are clamped to 0..7; 0 keeps the newlines of pretty mode with
	// no visible indentation. Default 2.
	Indent int
	// ASCII escapes every non-ASCII codepoint as \uXXXX so the output
	// contains only bytes below 0x80.
	ASCII bool
	// SortKeys emits object keys in lexicographic order instead of
	// insertion order.
	SortKeys bool
	// Color wraps values in ANSI SGR sequences.
	Color bool
	// Palette names the colour palette used when Color is set. Empty or
	// "jq" selects jq's table; "none" disables colouring outright. See
	// PaletteNames for the registered presets.
	Palette string
	// ShowRefs appends an implementation-defined " (N)" share-count
	// diagnostic after string, array and object values.
	ShowRefs bool
	// RenderInvalid renders invalid values as <invalid> or <invalid:"msg">
	// instead of panicking. Invalid values reaching the dumper without this
	// flag are a caller bug.
	RenderInvalid bool
	// IsTTY marks the destination as an interactive terminal. It only
	// switches the stream sink to unbuffered writes; the bytes produced are
	// identical either way. Dump also detects *os.File terminals itself.
	IsTTY bool
}

// DefaultOptions holds the fallback configuration: compact output, two-space
// indentation if Pretty is enabled by a copy.
var DefaultOptions = &Options{Indent: 2}

// normalized returns a value copy with out-of-range fields clamped.
func (o *Options) normalized() Options {
	if o == nil {
		o = DefaultOptions
	}
	opts := *o
	if opts.Indent < 0 {
		opts.Indent = 0
	}
	// The indent width occupies three bits in jq's flag word.
	if opts.Indent > 7 {
		opts.Indent = 7
	}
	return opts
}
