// Package ansi provides ANSI escape sequences and palette presets for the
// value dumper. The default palette reproduces jq's colour table exactly.
package ansi

// Base ANSI escape codes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Palette maps each printable value kind to an SGR sequence, plus one extra
// sequence for object field names. An empty string means "no colour" for that
// slot.
type Palette struct {
	Null   string
	False  string
	True   string
	Number string
	String string
	Array  string
	Object string
	Field  string
}

// PaletteJQ is jq's colour table: 1;30:null, 0;39:false, 0;39:true,
// 0;39:numbers, 0;32:strings, 1;39:arrays, 1;39:objects, 34;1:field names.
var PaletteJQ = Palette{
	Null:   "\x1b[1;30m",
	False:  "\x1b[0;39m",
	True:   "\x1b[0;39m",
	Number: "\x1b[0;39m",
	String: "\x1b[0;32m",
	Array:  "\x1b[1;39m",
	Object: "\x1b[1;39m",
	Field:  "\x1b[34;1m",
}

// PaletteDefault16 is a 16-colour friendly alternative.
var PaletteDefault16 = Palette{
	Null:   Faint,
	False:  Yellow,
	True:   Yellow,
	Number: Magenta,
	String: BrightBlue,
	Array:  Faint,
	Object: Faint,
	Field:  Cyan,
}

// PaletteTokyoNight draws on Tokyo Night's neon blues, violets, and warm highlights.
var PaletteTokyoNight = Palette{
	Null:   "\x1b[38;5;244m",
	False:  "\x1b[38;5;117m",
	True:   "\x1b[38;5;117m",
	Number: "\x1b[38;5;176m",
	String: "\x1b[38;5;110m",
	Array:  "\x1b[38;5;74m",
	Object: "\x1b[38;5;74m",
	Field:  "\x1b[38;5;69m",
}

// PaletteDoomGruvbox echoes doom-gruvbox colours with earthy reds and ambers.
var PaletteDoomGruvbox = Palette{
	Null:   "\x1b[38;5;101m",
	False:  "\x1b[38;5;142m",
	True:   "\x1b[38;5;142m",
	Number: "\x1b[38;5;108m",
	String: "\x1b[38;5;178m",
	Array:  "\x1b[38;5;172m",
	Object: "\x1b[38;5;172m",
	Field:  "\x1b[38;5;214m",
}

// PaletteMonokaiVibrant supplies a Monokai-inspired mix of neon yellows and minty greens.
var PaletteMonokaiVibrant = Palette{
	Null:   "\x1b[38;5;59m",
	False:  "\x1b[38;5;118m",
	True:   "\x1b[38;5;118m",
	Number: "\x1b[38;5;198m",
	String: "\x1b[38;5;121m",
	Array:  "\x1b[38;5;141m",
	Object: "\x1b[38;5;141m",
	Field:  "\x1b[38;5;229m",
}
