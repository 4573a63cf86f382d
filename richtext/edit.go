package richtext

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InsertHTML replaces the selected contents with the nodes parsed from
// markup and collapses the selection right after them. Ranges read before the
// call are no longer valid afterwards.
func (d *Document) InsertHTML(markup string) error {
	if d.sel == nil {
		return ErrNoSelection
	}
	nodes, err := parseFragment(markup)
	if err != nil {
		return fmt.Errorf("richtext: parse markup: %w", err)
	}

	parent, ref := d.deleteContents(*d.sel)
	for _, n := range nodes {
		parent.InsertBefore(n, ref)
	}

	offset := nodeLength(parent)
	if ref != nil {
		offset = indexOf(ref)
	}
	d.touch()
	at := Boundary{Node: parent, Offset: offset}
	d.sel = &Range{Start: at, End: at, gen: d.gen}
	return nil
}

// InsertText inserts s as literal text, replacing the selected contents.
func (d *Document) InsertText(s string) error {
	return d.InsertHTML(html.EscapeString(s))
}

// DeleteContents removes the selected contents and collapses the selection
// where they were.
func (d *Document) DeleteContents() error {
	return d.InsertHTML("")
}

// SelectedText returns the selected characters, with <br> and block starts
// as newlines.
func (d *Document) SelectedText() string {
	if d.sel == nil || d.sel.Collapsed() {
		return ""
	}
	idx := indexTree(d.root)
	s, e := idx.key(d.sel.Start), idx.key(d.sel.End)

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		at := key{tick: idx.enter[n]}
		switch {
		case n.Type == html.TextNode:
			rs := []rune(n.Data)
			lo, hi := 0, len(rs)
			switch {
			case s.tick > at.tick:
				return
			case s.tick == at.tick:
				lo = s.sub
			}
			switch {
			case e.tick < at.tick:
				return
			case e.tick == at.tick:
				hi = e.sub
			}
			if lo < hi {
				sb.WriteString(string(rs[lo:hi]))
			}
			return
		case isBreak(n):
			if compareKeys(s, at) <= 0 && compareKeys(e, at) > 0 {
				sb.WriteByte('\n')
			}
			return
		case n != d.root && isBlock(n):
			if sb.Len() > 0 && compareKeys(s, at) <= 0 && compareKeys(e, at) > 0 {
				sb.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return sb.String()
}

// ElementByID finds the element in the region whose id attribute equals id.
func (d *Document) ElementByID(id string) (*html.Node, bool) {
	found := goquery.NewDocumentFromNode(d.root).
		Find("[id]").
		FilterFunction(func(_ int, s *goquery.Selection) bool {
			v, _ := s.Attr("id")
			return v == id
		}).
		First()
	if found.Length() == 0 {
		return nil, false
	}
	return found.Get(0), true
}

// deleteContents removes everything between the range boundaries and returns
// the insertion point as (parent, node to insert before).
func (d *Document) deleteContents(r Range) (*html.Node, *html.Node) {
	if r.Start.Node == r.End.Node && r.Start.Node.Type == html.TextNode {
		t := r.Start.Node
		rs := []rune(t.Data)
		t.Data = string(rs[:r.Start.Offset]) + string(rs[r.End.Offset:])
		if t.Data == "" {
			parent, next := t.Parent, t.NextSibling
			parent.RemoveChild(t)
			return parent, next
		}
		return splitAt(Boundary{Node: t, Offset: r.Start.Offset})
	}

	endParent, endRef := splitAt(r.End)
	startParent, startRef := splitAt(r.Start)
	if r.Collapsed() {
		return startParent, startRef
	}

	prev := startParent.LastChild
	if startRef != nil {
		prev = startRef.PrevSibling
	}

	idx := indexTree(d.root)
	from := tickBefore(idx, startParent, startRef)
	to := tickBefore(idx, endParent, endRef)

	var doomed []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if idx.enter[c] >= from && idx.exit[c] < to {
				doomed = append(doomed, c)
				continue
			}
			walk(c)
		}
	}
	walk(d.root)
	for _, n := range doomed {
		n.Parent.RemoveChild(n)
	}

	if prev != nil {
		return startParent, prev.NextSibling
	}
	return startParent, startParent.FirstChild
}

// splitAt turns b into an element boundary, splitting a text node in two when
// b falls strictly inside it.
func splitAt(b Boundary) (*html.Node, *html.Node) {
	n := b.Node
	if n.Type != html.TextNode {
		return n, childAt(n, b.Offset)
	}
	rs := []rune(n.Data)
	switch {
	case b.Offset <= 0:
		return n.Parent, n
	case b.Offset >= len(rs):
		return n.Parent, n.NextSibling
	}
	right := &html.Node{Type: html.TextNode, Data: string(rs[b.Offset:])}
	n.Data = string(rs[:b.Offset])
	n.Parent.InsertBefore(right, n.NextSibling)
	return n.Parent, right
}

func tickBefore(idx treeIndex, parent, ref *html.Node) int {
	if ref != nil {
		return idx.enter[ref]
	}
	return idx.exit[parent]
}

func isBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Div, atom.P, atom.Li, atom.Blockquote, atom.Pre, atom.H1, atom.H2, atom.H3:
		return true
	default:
		return false
	}
}
