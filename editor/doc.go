// Package editor provides a Bubble Tea text area backed by the buffer
// package, with smart pairing and wrapping of typed characters.
//
// Every single-character key press is offered to a smartkeys.Dispatcher
// first. When no behavior matches, the character is inserted as usual.
package editor
