// Package richtext implements a content-editable region over an HTML node
// tree, with a single-range selection and an insert-markup primitive.
//
// Boundary points follow DOM rules: inside a text node the offset counts
// runes of its data; inside an element it counts children. Every mutation
// bumps the document generation, which invalidates ranges read before it.
package richtext

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoSelection is returned by operations that need an active range.
var ErrNoSelection = errors.New("richtext: no selection")

// Boundary is a (node, offset) point in the tree.
type Boundary struct {
	Node   *html.Node
	Offset int
}

// Range is a snapshot of the selection at one document generation.
type Range struct {
	Start Boundary
	End   Boundary

	gen uint64
}

// Collapsed reports whether the range has identical boundaries.
func (r Range) Collapsed() bool {
	return r.Start == r.End
}

// Document is an editable region rooted at a contenteditable element.
type Document struct {
	root *html.Node
	sel  *Range
	gen  uint64
}

// Parse builds a Document whose editable root contains markup.
func Parse(markup string) (*Document, error) {
	nodes, err := parseFragment(markup)
	if err != nil {
		return nil, err
	}
	root := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "contenteditable", Val: "true"}},
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Document{root: root}, nil
}

func parseFragment(markup string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	return html.ParseFragment(strings.NewReader(markup), ctx)
}

// Root returns the editable root element.
func (d *Document) Root() *html.Node { return d.root }

// Generation returns the mutation counter.
func (d *Document) Generation() uint64 { return d.gen }

// HTML renders the contents of the editable root.
func (d *Document) HTML() string {
	var sb strings.Builder
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&sb, c)
	}
	return sb.String()
}

// Text returns the plain text of the region, with <br> as a newline.
func (d *Document) Text() string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case isBreak(n):
			sb.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return sb.String()
}

// Valid reports whether r was read at the current generation.
func (d *Document) Valid(r Range) bool {
	return d.sel != nil && r.gen == d.gen
}

// Range returns the current selection range, if any.
func (d *Document) Range() (Range, bool) {
	if d.sel == nil {
		return Range{}, false
	}
	return *d.sel, true
}

func (d *Document) RangeCount() int {
	if d.sel == nil {
		return 0
	}
	return 1
}

// Collapsed reports whether the active range is a caret. It is false when
// there is no range.
func (d *Document) Collapsed() bool {
	return d.sel != nil && d.sel.Collapsed()
}

// SetSelection replaces the selection with a single range. Offsets are
// clamped into their nodes; an end before start collapses onto end. Nodes
// outside the region clear the selection.
func (d *Document) SetSelection(startNode *html.Node, startOffset int, endNode *html.Node, endOffset int) {
	if !d.contains(startNode) || !d.contains(endNode) {
		d.sel = nil
		return
	}
	start := Boundary{Node: startNode, Offset: clampInt(startOffset, 0, nodeLength(startNode))}
	end := Boundary{Node: endNode, Offset: clampInt(endOffset, 0, nodeLength(endNode))}

	idx := indexTree(d.root)
	if idx.compare(end, start) < 0 {
		start = end
	}
	d.sel = &Range{Start: start, End: end, gen: d.gen}
}

// Collapse places a caret at (n, offset).
func (d *Document) Collapse(n *html.Node, offset int) {
	d.SetSelection(n, offset, n, offset)
}

// ClearSelection removes all ranges.
func (d *Document) ClearSelection() {
	d.sel = nil
}

func (d *Document) contains(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == d.root {
			return true
		}
	}
	return false
}

func (d *Document) touch() {
	d.gen++
	d.sel = nil
}

func nodeLength(n *html.Node) int {
	if n.Type == html.TextNode {
		return utf8.RuneCountInString(n.Data)
	}
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

func childAt(n *html.Node, i int) *html.Node {
	c := n.FirstChild
	for ; c != nil && i > 0; i-- {
		c = c.NextSibling
	}
	return c
}

func indexOf(n *html.Node) int {
	i := 0
	for c := n.Parent.FirstChild; c != nil && c != n; c = c.NextSibling {
		i++
	}
	return i
}

func isBreak(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.Br
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// TextNodes returns the text nodes under n in document order.
func TextNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			out = append(out, c)
			return
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}
