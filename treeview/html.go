package treeview

import (
	"io"
	"strings"

	"github.com/npillmayer/isotree"
	"github.com/npillmayer/isotree/rbtree"
	"github.com/npillmayer/isotree/tree234"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RedBlackHTML creates a nested HTML list for a red-black tree. Every node is
// a list item with CSS class "red" or "black"; absent children of a node with
// one child are represented by an empty item of class "nil".
//
// The result is a <ul> element of class "rbtree", or nil for an empty tree.
func RedBlackHTML[T any](tree *rbtree.Tree[T]) *html.Node {
	if tree.IsEmpty() {
		return nil
	}
	ul := element(atom.Ul, "rbtree")
	var walk func(n *rbtree.Node[T]) *html.Node
	walk = func(n *rbtree.Node[T]) *html.Node {
		if n == nil {
			return element(atom.Li, "nil")
		}
		li := element(atom.Li, n.Color().String())
		li.AppendChild(&html.Node{Type: html.TextNode, Data: label(n.Item())})
		if n.Left() != nil || n.Right() != nil {
			sub := element(atom.Ul, "")
			sub.AppendChild(walk(n.Left()))
			sub.AppendChild(walk(n.Right()))
			li.AppendChild(sub)
		}
		return li
	}
	ul.AppendChild(walk(tree.Root()))
	return ul
}

// Tree234HTML creates a nested HTML list for a 2-3-4 tree. Every node is a list
// item of class "node" holding one <span> per item.
//
// The result is a <ul> element of class "tree234", or nil for an empty tree.
func Tree234HTML[T any](tree *tree234.Tree[T]) *html.Node {
	if tree.IsEmpty() {
		return nil
	}
	ul := element(atom.Ul, "tree234")
	var walk func(n *tree234.Node[T]) *html.Node
	walk = func(n *tree234.Node[T]) *html.Node {
		li := element(atom.Li, "node")
		for i := 0; i < n.ItemCount(); i++ {
			span := element(atom.Span, "item")
			span.AppendChild(&html.Node{Type: html.TextNode, Data: label(n.ItemAt(i))})
			li.AppendChild(span)
		}
		if n.ChildCount() > 0 {
			sub := element(atom.Ul, "")
			for i := 0; i < n.ChildCount(); i++ {
				sub.AppendChild(walk(n.ChildAt(i)))
			}
			li.AppendChild(sub)
		}
		return li
	}
	ul.AppendChild(walk(tree.Root()))
	return ul
}

// RenderHTML writes an HTML node created by RedBlackHTML or Tree234HTML to w.
func RenderHTML(n *html.Node, w io.Writer) error {
	if w == nil {
		return isotree.ErrIllegalArguments
	}
	if n == nil {
		return nil
	}
	return html.Render(w, n)
}

// TextFromHTML collects the item labels of a rendered tree in document order.
// It is the inverse of rendering for trees whose labels do not contain
// whitespace.
func TextFromHTML(input io.Reader) ([]string, error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	var labels []string
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				labels = append(labels, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	for _, n := range nodes {
		collect(n)
	}
	return labels, nil
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
