// Package textwidth measures the terminal display width of text.
//
// The layout engine budgets lines in display cells, not runes, so that
// East Asian wide characters and emoji count the way a terminal renders
// them. All measurement goes through go-runewidth.
package textwidth

import "github.com/mattn/go-runewidth"

// String returns the number of display cells s occupies.
func String(s string) int {
	return runewidth.StringWidth(s)
}

// Rune returns the number of display cells r occupies.
func Rune(r rune) int {
	return runewidth.RuneWidth(r)
}
