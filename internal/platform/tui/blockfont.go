package tui

import "strings"

// Block font typeface using Unicode full and half block glyphs.
// Each character is four rows of runes built from `█`, `▀`, `▄`, and
// space. Covers digits plus the letters the overlays need.

// fontHeight is the number of rows per glyph.
const fontHeight = 4

var blockGlyphs = map[rune][fontHeight]string{
	'0': {"█▀▀█", "█  █", "█  █", "▀▀▀▀"},
	'1': {"▄█ ", " █ ", " █ ", "▀▀▀"},
	'2': {"▀▀▀█", " ▄▄▀", "█▀  ", "▀▀▀▀"},
	'3': {"▀▀▀█", " ▄▄█", "   █", "▀▀▀▀"},
	'4': {"█  █", "█▄▄█", "   █", "   ▀"},
	'5': {"█▀▀▀", "▀▀▀█", "▄  █", "▀▀▀▀"},
	'6': {"█▀▀▀", "█▀▀█", "█  █", "▀▀▀▀"},
	'7': {"▀▀▀█", "  ▄▀", " █  ", " ▀  "},
	'8': {"█▀▀█", "█▄▄█", "█  █", "▀▀▀▀"},
	'9': {"█▀▀█", "▀▄▄█", "   █", "▀▀▀▀"},
	'a': {"█▀▀█", "█▄▄█", "█  █", "▀  ▀"},
	'd': {"█▀▀▄", "█  █", "█  █", "▀▀▀ "},
	'e': {"█▀▀▀", "█▀▀ ", "█   ", "▀▀▀▀"},
	'g': {"█▀▀▀", "█ ▄▄", "█  █", "▀▀▀▀"},
	'k': {"█ ▄▀", "█▀▄ ", "█  █", "▀  ▀"},
	'm': {"█▄▄█", "█▀▀█", "█  █", "▀  ▀"},
	'n': {"█▄ █", "█ ▀█", "█  █", "▀  ▀"},
	'o': {"█▀▀█", "█  █", "█  █", "▀▀▀▀"},
	'p': {"█▀▀█", "█▄▄█", "█   ", "▀   "},
	'r': {"█▀▀█", "█▄▄▀", "█  █", "▀  ▀"},
	's': {"▄▀▀▀", "▀▀▀▄", "▄  █", " ▀▀ "},
	'u': {"█  █", "█  █", "█  █", "▀▀▀▀"},
	'v': {"█  █", "█  █", "▀▄▄▀", " ▀▀ "},
	'w': {"█  █", "█  █", "█▄▄█", "▀▀▀▀"},
	'y': {"█  █", "▀▄▄█", "▄  █", "▀▀▀▀"},
	' ': {"  ", "  ", "  ", "  "},
}

// blockGlyph returns the glyph for a character, case-insensitively.
func blockGlyph(ch rune) ([fontHeight]string, bool) {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	g, ok := blockGlyphs[ch]
	return g, ok
}

// renderBlockText renders text in the block font as fontHeight lines.
// Unsupported characters are skipped.
func renderBlockText(text string) []string {
	rows := make([]strings.Builder, fontHeight)

	first := true
	for _, ch := range text {
		g, ok := blockGlyph(ch)
		if !ok {
			continue
		}
		for i := range rows {
			if !first {
				rows[i].WriteRune(' ')
			}
			rows[i].WriteString(g[i])
		}
		first = false
	}

	lines := make([]string, fontHeight)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return lines
}
