package jvx

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/jvx/internal/ansi"
)

const (
	paletteDefaultName = "jq"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteJQ,
	"default":          ansi.PaletteJQ,
	"default-16":       ansi.PaletteDefault16,
	"classic":          ansi.PaletteDefault16,
	"doom-gruvbox":     ansi.PaletteDoomGruvbox,
	"monokai-vibrant":  ansi.PaletteMonokaiVibrant,
	"tokyo-night":      ansi.PaletteTokyoNight,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// LookupPalette resolves a palette name, treating the empty string as the
// default. It errors on unknown names so callers (the CLI) can reject them up
// front; the dump path itself falls back to the default instead.
func LookupPalette(name string) (ansi.Palette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = paletteDefaultName
	}
	if name == paletteNoneName {
		return ansi.Palette{}, nil
	}
	p, ok := paletteRegistry[name]
	if !ok {
		return ansi.Palette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	return p, nil
}

// resolvePalette maps Options to the palette the printer uses. Colour off, or
// palette "none", yields the zero palette whose empty sequences suppress all
// styling.
func resolvePalette(opts *Options) ansi.Palette {
	if opts == nil || !opts.Color {
		return ansi.Palette{}
	}
	p, err := LookupPalette(opts.Palette)
	if err != nil {
		return ansi.PaletteJQ
	}
	return p
}
