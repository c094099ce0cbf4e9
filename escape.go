package jvx

import (
	"fmt"
	"unicode/utf8"
)

// appendEscaped appends s as a JSON string literal, quotes included. With
// asciiOnly every codepoint above 0x7E becomes a \uXXXX escape (a surrogate
// pair above U+FFFF); otherwise valid UTF-8 passes through untouched.
//
// s must be well-formed UTF-8 — string values guarantee that, so a decode
// failure here means a broken invariant upstream and panics.
func appendEscaped(dst []byte, s []byte, asciiOnly bool) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		c, size := utf8.DecodeRune(s[i:])
		if c == utf8.RuneError && size <= 1 {
			panic(fmt.Sprintf("jvx: string value holds invalid UTF-8 at byte %d", i))
		}
		switch {
		case c >= 0x20 && c <= 0x7E:
			// printable ASCII
			if c == '"' || c == '\\' {
				dst = append(dst, '\\')
			}
			dst = append(dst, byte(c))
		case c < 0x20 || c == 0x7F:
			// ASCII control character
			switch c {
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\t':
				dst = append(dst, '\\', 't')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\f':
				dst = append(dst, '\\', 'f')
			default:
				dst = appendUnicodeEscape(dst, c)
			}
		default:
			if asciiOnly {
				dst = appendUnicodeEscape(dst, c)
			} else {
				dst = append(dst, s[i:i+size]...)
			}
		}
		i += size
	}
	return append(dst, '"')
}

// appendUnicodeEscape appends \uXXXX for c, splitting codepoints above U+FFFF
// into a UTF-16 surrogate pair.
func appendUnicodeEscape(dst []byte, c rune) []byte {
	if c <= 0xFFFF {
		return appendHex4(dst, uint32(c))
	}
	c -= 0x10000
	dst = appendHex4(dst, 0xD800|(uint32(c)>>10))
	return appendHex4(dst, 0xDC00|(uint32(c)&0x3FF))
}

func appendHex4(dst []byte, v uint32) []byte {
	return append(dst, '\\', 'u',
		hexDigit(byte(v>>12&0xF)),
		hexDigit(byte(v>>8&0xF)),
		hexDigit(byte(v>>4&0xF)),
		hexDigit(byte(v&0xF)))
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'a' + (v - 10)
}
