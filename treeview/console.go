package treeview

import (
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/isotree"
	"github.com/npillmayer/isotree/rbtree"
	"github.com/npillmayer/isotree/tree234"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleConfig configures console output of trees.
type ConsoleConfig struct {
	// LineWidth is the number of fixed-width positions available per line.
	LineWidth int
	// Context determines the display width of item labels.
	Context *uax11.Context
	// Red and Black are the colors used for red and black nodes.
	Red, Black *color.Color
	// Annotate appends a color mark to every red-black node, for consoles
	// without color support.
	Annotate bool
}

const (
	defaultLineWidth = 65
	minLineWidth     = 10
)

func (cfg ConsoleConfig) normalized() ConsoleConfig {
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = defaultLineWidth
	} else if cfg.LineWidth < minLineWidth {
		cfg.LineWidth = minLineWidth
	}
	if cfg.Context == nil {
		cfg.Context = uax11.ContextFromEnvironment()
	}
	if cfg.Red == nil {
		cfg.Red = color.New(color.FgRed, color.Bold)
	}
	if cfg.Black == nil {
		cfg.Black = color.New(color.Bold)
	}
	return cfg
}

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the LineWidth parameter accordingly.
func ConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{LineWidth: defaultLineWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			if w > defaultLineWidth {
				config.LineWidth = w - 10
			} else if w > minLineWidth {
				config.LineWidth = w
			} else {
				config.LineWidth = minLineWidth
			}
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// Console prints trees sideways to fixed-width consoles: the root is at the
// left margin, right subtrees above and left subtrees below their parent.
type Console struct {
	cfg ConsoleConfig
}

var setupGraphemes sync.Once

// NewConsole creates a console printer. If config is nil, defaults are used.
func NewConsole(config *ConsoleConfig) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	var cfg ConsoleConfig
	if config != nil {
		cfg = *config
	}
	return &Console{cfg: cfg.normalized()}
}

// width returns the display width of s in fixed-width positions.
//
// uax11 classifies every rune with the Emoji property as wide, including the
// keycap bases 0-9, '#' and '*'. Single ASCII graphemes are therefore counted
// as narrow without consulting uax11.
func (c *Console) width(s string) int {
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 && g[0] < utf8.RuneSelf {
			w++
			continue
		}
		w += uax11.Width([]byte(g), c.cfg.Context)
	}
	return w
}

// indentStep returns the indentation per tree level, given the widest label
// and the tree height. Deep trees get compressed to fit the line width.
func (c *Console) indentStep(maxLabel, height int) int {
	step := maxLabel + 2
	if height > 1 && (height-1)*step+maxLabel > c.cfg.LineWidth {
		step = max(1, (c.cfg.LineWidth-maxLabel)/(height-1))
	}
	return step
}

type consoleLine struct {
	depth int
	text  string
	paint *color.Color
}

func (c *Console) output(lines []consoleLine, step int, w io.Writer) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, strings.Repeat(" ", l.depth*step)); err != nil {
			return err
		}
		var err error
		if l.paint != nil {
			_, err = l.paint.Fprint(w, l.text)
		} else {
			_, err = io.WriteString(w, l.text)
		}
		if err != nil {
			return err
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// PrintRedBlack outputs a red-black tree to w.
func PrintRedBlack[T any](c *Console, tree *rbtree.Tree[T], w io.Writer) error {
	if c == nil || w == nil {
		return isotree.ErrIllegalArguments
	}
	var lines []consoleLine
	maxLabel := 0
	var walk func(n *rbtree.Node[T], depth int)
	walk = func(n *rbtree.Node[T], depth int) {
		if n == nil {
			return
		}
		walk(n.Right(), depth+1)
		text, paint := label(n.Item()), c.cfg.Black
		if rbtree.IsRed(n) {
			paint = c.cfg.Red
		}
		if c.cfg.Annotate {
			text += "/" + n.Color().String()[:1]
		}
		maxLabel = max(maxLabel, c.width(text))
		lines = append(lines, consoleLine{depth: depth, text: text, paint: paint})
		walk(n.Left(), depth+1)
	}
	walk(tree.Root(), 0)
	return c.output(lines, c.indentStep(maxLabel, tree.Height()), w)
}

// PrintTree234 outputs a 2-3-4 tree to w, with the items of a node
// separated by bars.
func PrintTree234[T any](c *Console, tree *tree234.Tree[T], w io.Writer) error {
	if c == nil || w == nil {
		return isotree.ErrIllegalArguments
	}
	var lines []consoleLine
	maxLabel := 0
	var walk func(n *tree234.Node[T], depth int)
	walk = func(n *tree234.Node[T], depth int) {
		items := make([]string, n.ItemCount())
		for i := range items {
			items[i] = label(n.ItemAt(i))
		}
		text := "[" + strings.Join(items, "|") + "]"
		maxLabel = max(maxLabel, c.width(text))
		half := n.ChildCount() / 2
		for i := n.ChildCount() - 1; i >= half; i-- {
			walk(n.ChildAt(i), depth+1)
		}
		lines = append(lines, consoleLine{depth: depth, text: text})
		for i := half - 1; i >= 0; i-- {
			walk(n.ChildAt(i), depth+1)
		}
	}
	if !tree.IsEmpty() {
		walk(tree.Root(), 0)
	}
	return c.output(lines, c.indentStep(maxLabel, tree.Height()), w)
}
