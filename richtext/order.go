package richtext

import "golang.org/x/net/html"

// treeIndex numbers every node on entry and exit of a depth-first walk, so
// boundary points can be compared in document order.
type treeIndex struct {
	enter map[*html.Node]int
	exit  map[*html.Node]int
}

// key orders boundaries: tick locates the node, sub is the rune offset inside
// a text node (0 for element boundaries).
type key struct {
	tick int
	sub  int
}

func indexTree(root *html.Node) treeIndex {
	idx := treeIndex{enter: map[*html.Node]int{}, exit: map[*html.Node]int{}}
	tick := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		idx.enter[n] = tick
		tick++
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		idx.exit[n] = tick
		tick++
	}
	walk(root)
	return idx
}

func (idx treeIndex) key(b Boundary) key {
	if b.Node.Type == html.TextNode {
		return key{tick: idx.enter[b.Node], sub: b.Offset}
	}
	if c := childAt(b.Node, b.Offset); c != nil {
		return key{tick: idx.enter[c]}
	}
	return key{tick: idx.exit[b.Node]}
}

func (idx treeIndex) compare(a, b Boundary) int {
	return compareKeys(idx.key(a), idx.key(b))
}

func compareKeys(a, b key) int {
	switch {
	case a.tick < b.tick:
		return -1
	case a.tick > b.tick:
		return 1
	case a.sub < b.sub:
		return -1
	case a.sub > b.sub:
		return 1
	default:
		return 0
	}
}
