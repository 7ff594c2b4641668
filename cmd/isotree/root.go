package main

import (
	"cmp"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/isotree"
	"github.com/npillmayer/isotree/loader"
	"github.com/npillmayer/isotree/rbtree"
	"github.com/npillmayer/isotree/tree234"
	"github.com/npillmayer/isotree/treeview"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

type options struct {
	numeric bool
	format  string
	show    string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "isotree FILE",
		Short:        "Convert a 2-3-4 tree of keys to an isometric red-black tree",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
			}
			if opts.numeric {
				src, err := loader.Load(args[0], strconv.Atoi, cmp.Compare[int])
				if err != nil {
					return err
				}
				return render(src, opts, cmd.OutOrStdout())
			}
			src, err := loader.Load(args[0], func(s string) (string, error) { return s, nil },
				cmp.Compare[string])
			if err != nil {
				return err
			}
			return render(src, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&opts.numeric, "numeric", "n", false, "interpret keys as decimal integers")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "output format: console, dot or html")
	cmd.Flags().StringVarP(&opts.show, "show", "s", "rb", "trees to output: rb, 234 or both")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace conversion statistics")
	return cmd
}

func render[T any](src *tree234.Tree[T], opts *options, w io.Writer) error {
	if src.IsEmpty() {
		return fmt.Errorf("no keys found: %w", isotree.ErrVoidTree)
	}
	rb, err := rbtree.FromTree(src)
	if err != nil {
		return err
	}
	if err = rb.Check(); err != nil {
		return err
	}
	show234 := opts.show == "234" || opts.show == "both"
	showRB := opts.show == "rb" || opts.show == "both"
	if !show234 && !showRB {
		return fmt.Errorf("unknown tree selection %q: %w", opts.show, isotree.ErrIllegalArguments)
	}
	switch opts.format {
	case "console":
		console := treeview.NewConsole(treeview.ConfigFromTerminal())
		if show234 {
			if err = treeview.PrintTree234(console, src, w); err != nil {
				return err
			}
		}
		if showRB {
			err = treeview.PrintRedBlack(console, rb, w)
		}
	case "dot":
		if show234 {
			if err = treeview.Tree234ToDot(src, w); err != nil {
				return err
			}
		}
		if showRB {
			err = treeview.RedBlackToDot(rb, w)
		}
	case "html":
		if show234 {
			if err = treeview.RenderHTML(treeview.Tree234HTML(src), w); err != nil {
				return err
			}
		}
		if showRB {
			err = treeview.RenderHTML(treeview.RedBlackHTML(rb), w)
		}
	default:
		return fmt.Errorf("unknown output format %q: %w", opts.format, isotree.ErrIllegalArguments)
	}
	return err
}
