package treeview

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/isotree"
	"github.com/npillmayer/isotree/rbtree"
	"github.com/npillmayer/isotree/tree234"
)

type nodeids[N comparable] struct {
	idTable map[N]int
	max     int
}

func newtable[N comparable]() *nodeids[N] {
	return &nodeids[N]{
		idTable: make(map[N]int),
		max:     1,
	}
}

func (ids *nodeids[N]) alloc(node N) int {
	if id, ok := ids.idTable[node]; ok {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

func (ids *nodeids[N]) next() int {
	ids.max++
	return ids.max - 1
}

// RedBlackToDot outputs a red-black tree in Graphviz DOT format.
// Absent children are drawn as small black boxes.
func RedBlackToDot[T any](tree *rbtree.Tree[T], w io.Writer) error {
	if w == nil {
		return isotree.ErrIllegalArguments
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12,style=filled,fontcolor=white];\n")
	ids := newtable[*rbtree.Node[T]]()
	var nodelist, edgelist strings.Builder
	var walk func(n *rbtree.Node[T]) int
	walk = func(n *rbtree.Node[T]) int {
		if n == nil {
			id := ids.next()
			fmt.Fprintf(&nodelist, "\t\"%d\" %s;\n", id, nilNode())
			return id
		}
		id := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=%q,fillcolor=%s];\n", id, label(n.Item()), n.Color())
		l, r := walk(n.Left()), walk(n.Right())
		fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", id, l)
		fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", id, r)
		return id
	}
	if !tree.IsEmpty() {
		walk(tree.Root())
	}
	bw.WriteString(nodelist.String())
	bw.WriteString(edgelist.String())
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("red-black DOT: %s", err.Error())
		return err
	}
	return nil
}

// Tree234ToDot outputs a 2-3-4 tree in Graphviz DOT format, using record
// shapes with one field per item.
func Tree234ToDot[T any](tree *tree234.Tree[T], w io.Writer) error {
	if w == nil {
		return isotree.ErrIllegalArguments
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	ids := newtable[*tree234.Node[T]]()
	var nodelist, edgelist strings.Builder
	var walk func(n *tree234.Node[T]) int
	walk = func(n *tree234.Node[T]) int {
		id := ids.alloc(n)
		fields := make([]string, n.ItemCount())
		for i := range fields {
			fields[i] = recordEscape(label(n.ItemAt(i)))
		}
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"];\n", id, strings.Join(fields, "|"))
		for i := 0; i < n.ChildCount(); i++ {
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", id, walk(n.ChildAt(i)))
		}
		return id
	}
	if !tree.IsEmpty() {
		walk(tree.Root())
	}
	bw.WriteString(nodelist.String())
	bw.WriteString(edgelist.String())
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("2-3-4 DOT: %s", err.Error())
		return err
	}
	return nil
}

func nilNode() string {
	return "[label=\"\",fillcolor=black,shape=box,fixedsize=true,width=.2,height=.2]"
}

var recordReplacer = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`,
)

func recordEscape(s string) string {
	return recordReplacer.Replace(s)
}
