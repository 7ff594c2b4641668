package rbtree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/isotree/tree234"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// fakeNode is a source node without any consistency guarantees.
type fakeNode struct {
	items []int
	kids  []*fakeNode
}

func (f *fakeNode) ItemCount() int          { return len(f.items) }
func (f *fakeNode) ItemAt(i int) int        { return f.items[i] }
func (f *fakeNode) ChildCount() int         { return len(f.kids) }
func (f *fakeNode) ChildAt(i int) *fakeNode { return f.kids[i] }

func leaf(items ...int) *fakeNode {
	return &fakeNode{items: items}
}

func expectNode(t *testing.T, n *Node[int], item int, color Color) {
	t.Helper()
	if n == nil {
		t.Fatalf("expected node %d(%s), is absent", item, color)
	}
	if n.Item() != item || n.Color() != color {
		t.Fatalf("expected node %d(%s), have %v", item, color, n)
	}
}

func TestBuildAbsentSource(t *testing.T) {
	defer traceToTest(t)()
	root, err := Build[int]((*tree234.Node[int])(nil))
	if err != nil || root != nil {
		t.Fatalf("expected absent result for absent source, have %v, %v", root, err)
	}
}

func TestBuildSingleItem(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	root, err := Build[int](tree234.Leaf(5))
	if err != nil {
		t.Fatal(err)
	}
	expectNode(t, root, 5, Black)
	if root.Left() != nil || root.Right() != nil {
		t.Fatalf("expected single node without children")
	}
}

func TestBuildThreeItemLeaf(t *testing.T) {
	defer traceToTest(t)()
	root, err := Build[int](tree234.Leaf(2, 5, 8))
	if err != nil {
		t.Fatal(err)
	}
	expectNode(t, root, 5, Black)
	expectNode(t, root.Left(), 2, Red)
	expectNode(t, root.Right(), 8, Red)
	for _, n := range []*Node[int]{root.Left(), root.Right()} {
		if n.Left() != nil || n.Right() != nil {
			t.Errorf("expected grandchild slots of %v to be absent", n)
		}
	}
}

func TestBuildTwoItemInner(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	src := tree234.Inner([]int{3, 7}, tree234.Leaf(1), tree234.Leaf(5), tree234.Leaf(9))
	root, err := Build[int](src)
	if err != nil {
		t.Fatal(err)
	}
	expectNode(t, root, 3, Black)
	expectNode(t, root.Left(), 1, Black)
	expectNode(t, root.Right(), 7, Red)
	expectNode(t, root.Right().Left(), 5, Black)
	expectNode(t, root.Right().Right(), 9, Black)
	tree := &Tree[int]{root: root}
	if got := slices.Collect(tree.Items()); !slices.Equal(got, []int{1, 3, 5, 7, 9}) {
		t.Fatalf("expected in-order 1,3,5,7,9, have %v", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.BlackHeight() != 1 {
		t.Errorf("expected black-height 1, have %d", tree.BlackHeight())
	}
}

func TestBuildThreeItemInner(t *testing.T) {
	defer traceToTest(t)()
	src := tree234.Inner([]int{20, 40, 60},
		tree234.Leaf(10), tree234.Leaf(30), tree234.Leaf(50), tree234.Leaf(70, 80))
	root, err := Build[int](src)
	if err != nil {
		t.Fatal(err)
	}
	expectNode(t, root, 40, Black)
	expectNode(t, root.Left(), 20, Red)
	expectNode(t, root.Right(), 60, Red)
	expectNode(t, root.Left().Left(), 10, Black)
	expectNode(t, root.Left().Right(), 30, Black)
	expectNode(t, root.Right().Left(), 50, Black)
	expectNode(t, root.Right().Right(), 70, Black)
	expectNode(t, root.Right().Right().Right(), 80, Red)
	if err := (&Tree[int]{root: root}).Check(); err != nil {
		t.Fatal(err)
	}
}

func TestBuildRejectsMalformedNodes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	cases := map[string]*fakeNode{
		"no items":          leaf(),
		"four items":        leaf(1, 2, 3, 4),
		"too few children":  {items: []int{3, 7}, kids: []*fakeNode{leaf(1), leaf(5)}},
		"too many children": {items: []int{3}, kids: []*fakeNode{leaf(1), leaf(5), leaf(9)}},
		"absent child":      {items: []int{3}, kids: []*fakeNode{leaf(1), nil}},
		"malformed grandchild": {items: []int{3}, kids: []*fakeNode{
			leaf(1),
			{items: []int{5}, kids: []*fakeNode{leaf(4)}},
		}},
	}
	for name, src := range cases {
		root, err := Build[int](src)
		if !errors.Is(err, ErrMalformedSourceNode) {
			t.Errorf("%s: expected ErrMalformedSourceNode, have %v", name, err)
		}
		if root != nil {
			t.Errorf("%s: expected no result for malformed source", name)
		}
	}
}

func TestFromSourceWithForeignNodes(t *testing.T) {
	defer traceToTest(t)()
	src := &fakeNode{items: []int{4}, kids: []*fakeNode{leaf(1, 2, 3), leaf(5, 6)}}
	tree, err := FromSource[int](src)
	if err != nil {
		t.Fatal(err)
	}
	if got := slices.Collect(tree.Items()); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("unexpected in-order sequence %v", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestFromTreeEmpty(t *testing.T) {
	defer traceToTest(t)()
	for _, src := range []*tree234.Tree[int]{nil, tree234.New[int]()} {
		tree, err := FromTree(src)
		if err != nil {
			t.Fatal(err)
		}
		if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 || tree.BlackHeight() != 0 {
			t.Fatalf("expected empty tree")
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if !New[int]().IsEmpty() {
		t.Fatalf("expected new tree to be empty")
	}
}

func TestFromTreeDoesNotModifySource(t *testing.T) {
	defer traceToTest(t)()
	src := tree234.New[int]()
	for i := range 100 {
		src.Insert(i * 3)
	}
	before := slices.Collect(src.Items())
	if _, err := FromTree(src); err != nil {
		t.Fatal(err)
	}
	if err := src.Check(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, slices.Collect(src.Items())) {
		t.Fatalf("source tree changed during conversion")
	}
}

// countSourceNodes returns the number of nodes and items below n.
func countSourceNodes(n *tree234.Node[int]) (nodes, items int) {
	if n == nil {
		return 0, 0
	}
	nodes, items = 1, n.ItemCount()
	for i := 0; i < n.ChildCount(); i++ {
		cn, ci := countSourceNodes(n.ChildAt(i))
		nodes += cn
		items += ci
	}
	return nodes, items
}

func TestFromTreeRandomProperties(t *testing.T) {
	defer traceToTest(t)()
	r := rand.New(rand.NewSource(42))
	for round := range 20 {
		src := tree234.New[int]()
		size := 1 + r.Intn(3000)
		for range size {
			src.Insert(r.Intn(10000))
		}
		tree, err := FromTree(src)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if err := tree.CheckOrder(func(a, b int) int { return a - b }); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if !slices.Equal(slices.Collect(tree.Items()), slices.Collect(src.Items())) {
			t.Fatalf("round %d: in-order sequences differ", round)
		}
		_, items := countSourceNodes(src.Root())
		if tree.Len() != items || tree.Len() != src.Len() {
			t.Fatalf("round %d: node count %d, source items %d", round, tree.Len(), items)
		}
		if tree.Root().Color() != Black {
			t.Fatalf("round %d: root is red", round)
		}
		if tree.BlackHeight() != src.Height()-1 {
			t.Fatalf("round %d: black-height %d for source height %d",
				round, tree.BlackHeight(), src.Height())
		}
		if tree.Height() > 2*src.Height() {
			t.Fatalf("round %d: height %d exceeds twice the source height", round, tree.Height())
		}
	}
}

func TestCheckOrderDetectsDisorder(t *testing.T) {
	defer traceToTest(t)()
	tree := &Tree[int]{root: &Node[int]{item: 1, left: &Node[int]{item: 2}}}
	if err := tree.CheckOrder(func(a, b int) int { return a - b }); !errors.Is(err, ErrInvalidTree) {
		t.Fatalf("expected ErrInvalidTree, have %v", err)
	}
	if err := tree.CheckOrder(nil); !errors.Is(err, ErrInvalidTree) {
		t.Fatalf("expected ErrInvalidTree for missing comparison, have %v", err)
	}
}

func TestCheckDetectsViolations(t *testing.T) {
	defer traceToTest(t)()
	redRoot := &Tree[int]{root: newNode(Red, 1)}
	if err := redRoot.Check(); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected red root to be rejected, have %v", err)
	}
	redRed := &Tree[int]{root: newNode(Black, 2)}
	redRed.root.left = newNode(Red, 1)
	redRed.root.left.left = newNode(Red, 0)
	if err := redRed.Check(); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected red-red violation to be rejected, have %v", err)
	}
	uneven := &Tree[int]{root: newNode(Black, 2)}
	uneven.root.left = newNode(Black, 1)
	if err := uneven.Check(); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected black-height violation to be rejected, have %v", err)
	}
}

func traceToTest(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}
