// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/specnav/internal/navigator"
	"github.com/pdiddy/specnav/internal/outline"
	"github.com/pdiddy/specnav/internal/toc"
	"github.com/pdiddy/specnav/internal/watch"
)

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active section of a recorded layout",
	Long: `Active reads a layout snapshot (element tags, ids and vertical extents
in document coordinates), scrolls it to --scroll and prints the active
section path and the table of contents with that path revealed.

With --watch the layout file is re-read whenever it changes.`,
	RunE: runActive,
}

// layoutFromFlags loads the --layout file and applies --viewport.
func layoutFromFlags(cmd *cobra.Command) (*outline.Layout, error) {
	path, _ := cmd.Flags().GetString("layout")
	if path == "" {
		return nil, fmt.Errorf("--layout is required")
	}
	l, err := outline.LoadLayout(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("viewport") {
		l.Viewport, _ = cmd.Flags().GetFloat64("viewport")
	}
	return l, nil
}

// scrollFromFlags returns --scroll, or the offset recorded in the layout.
func scrollFromFlags(cmd *cobra.Command, l *outline.Layout) float64 {
	if cmd.Flags().Changed("scroll") {
		s, _ := cmd.Flags().GetFloat64("scroll")
		return s
	}
	return l.Scroll
}

func runActive(cmd *cobra.Command, args []string) error {
	watching, _ := cmd.Flags().GetBool("watch")

	doc, err := loadDocument(cmd)
	if err != nil {
		return err
	}

	show := func() error {
		l, err := layoutFromFlags(cmd)
		if err != nil {
			return err
		}
		n, err := newNavigator(cmd, doc, l)
		if err != nil {
			return err
		}
		ids, err := n.UpdateActive(l.Root.At(scrollFromFlags(cmd, l)))
		if err != nil {
			return err
		}
		printActive(os.Stdout, n, ids)
		return nil
	}

	if err := show(); err != nil {
		return err
	}
	if !watching {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, _ := cmd.Flags().GetString("layout")
	log := logFor(cmd)
	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl-C to stop)\n", path)
	return watch.File(ctx, path, cfg.Tracker.Debounce, func() {
		if err := show(); err != nil {
			log.Warn("reloading layout", zap.Error(err))
		}
	}, log)
}

func printActive(w io.Writer, n *navigator.Navigator, ids []string) {
	if len(ids) == 0 {
		fmt.Fprintln(w, "Active: (none)")
	} else {
		fmt.Fprintf(w, "Active: %s\n", strings.Join(ids, " > "))
	}

	menu := n.Menu()
	if menu == nil {
		return
	}
	revealed := menu.Revealed()
	fmt.Fprintln(w)
	menu.Walk(func(path []int, it *toc.Item) {
		marker := " "
		if isPrefix(path, revealed.Path) {
			marker = ">"
			if revealed.Leaf == it {
				marker = "*"
			}
		}
		fmt.Fprintf(w, "%s %s%s  %s\n", marker, strings.Repeat("  ", len(path)-1), it.Label(), n.Link(it.ID))
	})
}

// isPrefix reports whether p is a non-empty prefix of full.
func isPrefix(p, full []int) bool {
	if len(p) == 0 || len(p) > len(full) {
		return false
	}
	for i := range p {
		if p[i] != full[i] {
			return false
		}
	}
	return true
}

func init() {
	activeCmd.Flags().String("layout", "", "layout snapshot (YAML)")
	activeCmd.Flags().Float64("scroll", 0, "scroll offset (default: the offset recorded in the layout)")
	activeCmd.Flags().Float64("viewport", 0, "viewport height (default: layout, then config)")
	activeCmd.Flags().Bool("watch", false, "re-run when the layout file changes")

	rootCmd.AddCommand(activeCmd)
}
