// Package smartkeys implements "smart key" editing for text surfaces: typing
// a configured character either inserts its closing partner (pairing) or
// encloses the current selection (wrapping).
//
// A Dispatcher classifies each key press with a fixed set of predicates and
// runs at most one mutation handler. Two surface kinds are supported:
//
//   - Linear surfaces expose the selection as rune offsets into a flat value
//     (see the buffer package).
//   - Range surfaces expose a DOM range over an HTML node tree (see the
//     richtext package). Their ranges do not survive mutation, so handlers tag
//     inserted markup with a one-off anchor id and re-derive the selection
//     from it.
//
// Unhandled events are left untouched so the host's default handling applies.
package smartkeys
