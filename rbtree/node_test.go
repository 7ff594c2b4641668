package rbtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/isotree/tree234"
)

func TestIsRed(t *testing.T) {
	defer traceToTest(t)()
	if IsRed[int](nil) {
		t.Errorf("absent node must be black")
	}
	if IsRed(newNode(Black, 1)) || !IsRed(newNode(Red, 1)) {
		t.Errorf("IsRed does not reflect node color")
	}
	var absent *Node[int]
	if absent.Color() != Black || !absent.IsBlack() || absent.Left() != nil || absent.Right() != nil {
		t.Errorf("absent node must behave as black leaf")
	}
}

func TestFlipColors(t *testing.T) {
	defer traceToTest(t)()
	root, err := Build[int](tree234.Leaf(2, 5, 8))
	if err != nil {
		t.Fatal(err)
	}
	if err := FlipColors(root); err != nil {
		t.Fatal(err)
	}
	if !IsRed(root) || IsRed(root.Left()) || IsRed(root.Right()) {
		t.Fatalf("expected red parent with black children after flip, have %v %v %v",
			root, root.Left(), root.Right())
	}
	if err := FlipColors(root); err != nil {
		t.Fatal(err)
	}
	if IsRed(root) || !IsRed(root.Left()) || !IsRed(root.Right()) {
		t.Fatalf("expected flipping twice to restore colors")
	}
}

func TestFlipColorsMixedColors(t *testing.T) {
	defer traceToTest(t)()
	src := tree234.Inner([]int{3, 7}, tree234.Leaf(1), tree234.Leaf(5), tree234.Leaf(9))
	root, err := Build[int](src)
	if err != nil {
		t.Fatal(err)
	}
	// root is black with a black left and a red right child
	if err := FlipColors(root); err != nil {
		t.Fatal(err)
	}
	if root.Color() != Red || root.Left().Color() != Red || root.Right().Color() != Black {
		t.Fatalf("expected every color inverted, have %v %v %v", root, root.Left(), root.Right())
	}
}

func TestFlipColorsRequiresChildren(t *testing.T) {
	defer traceToTest(t)()
	if err := FlipColors[int](nil); !errors.Is(err, ErrPreconditionViolated) {
		t.Errorf("expected ErrPreconditionViolated for absent node, have %v", err)
	}
	root, err := Build[int](tree234.Leaf(3, 7))
	if err != nil {
		t.Fatal(err)
	}
	if err := FlipColors(root); !errors.Is(err, ErrPreconditionViolated) {
		t.Errorf("expected ErrPreconditionViolated for missing left child, have %v", err)
	}
	if root.Color() != Black || root.Right().Color() != Red {
		t.Errorf("failed flip must not change colors")
	}
}

func TestColorString(t *testing.T) {
	defer traceToTest(t)()
	if Red.String() != "red" || Black.String() != "black" {
		t.Errorf("unexpected color names %q, %q", Red, Black)
	}
	if s := newNode(Red, 4).String(); s != "4(red)" {
		t.Errorf("unexpected node string %q", s)
	}
}
