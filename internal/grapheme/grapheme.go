package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// FirstRunes returns the rune length of the first cluster in text.
func FirstRunes(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	if !g.Next() {
		return 0
	}
	return len(g.Runes())
}

// LastRunes returns the rune length of the last cluster in text.
func LastRunes(text string) int {
	n := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		n = len(g.Runes())
	}
	return n
}
