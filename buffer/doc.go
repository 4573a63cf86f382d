// Package buffer implements the flat text value behind a linear editing
// surface.
//
// Offsets are 0-based rune offsets into the whole value, newlines included.
// The selection is a half-open span [SelectionStart, SelectionEnd); when both
// are equal the selection is a collapsed cursor.
package buffer
