// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/specnav/internal/refpane"
	"github.com/pdiddy/specnav/internal/search"
	"github.com/pdiddy/specnav/pkg/types"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Save, restore, and export session snapshots",
	Long: `State records the presentation state of a reading session (search box,
expanded table of contents items, reference pane) so it can be restored once
after a navigation. A restored snapshot is removed from the store.`,
}

var stateSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a snapshot for the session",
	Args:  cobra.NoArgs,
	RunE:  runStateSave,
}

func runStateSave(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("search")
	menuVisible, _ := cmd.Flags().GetBool("menu")
	expand, _ := cmd.Flags().GetStringSlice("expand")
	tocScroll, _ := cmd.Flags().GetInt("toc-scroll")
	refsFor, _ := cmd.Flags().GetString("refs")
	sdoFor, _ := cmd.Flags().GetString("sdo")

	doc, err := loadDocument(cmd)
	if err != nil {
		return err
	}
	nav, _, err := navigatorFromFlags(cmd, doc)
	if err != nil {
		return err
	}

	nav.Search(query)
	nav.SetTOCScroll(tocScroll)
	if menu := nav.Menu(); menu != nil {
		if menuVisible {
			menu.Show()
		}
		for _, e := range expand {
			path, err := parsePath(e)
			if err != nil {
				return err
			}
			if _, err := menu.ToggleItem(path); err != nil {
				return err
			}
		}
	} else if len(expand) > 0 || menuVisible {
		return fmt.Errorf("--menu and --expand need --layout")
	}

	switch {
	case refsFor != "" && sdoFor != "":
		return fmt.Errorf("--refs and --sdo are mutually exclusive")
	case refsFor != "":
		if _, err := nav.ShowReferences(refsFor); err != nil {
			return err
		}
	case sdoFor != "":
		nav.ShowSDOs(sdoFor)
	}

	store, err := openStore(cmd, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(cmd.Context(), nav.Snapshot(cfg.State.Session))
	if err != nil {
		return err
	}
	fmt.Printf("Saved snapshot %s (session %s)\n", id, cfg.State.Session)
	return nil
}

var stateRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore and consume the latest snapshot of the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}
		nav, _, err := navigatorFromFlags(cmd, doc)
		if err != nil {
			return err
		}

		store, err := openStore(cmd, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		snap, err := store.Take(cmd.Context(), cfg.State.Session)
		if err != nil {
			return err
		}
		out, err := nav.Restore(snap)
		if err != nil {
			return err
		}

		fmt.Printf("Restored snapshot %s from %s\n", snap.ID, snap.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Menu visible: %t  TOC scroll: %d\n", snap.MenuVisible, snap.TOCScroll)
		if menu := nav.Menu(); menu != nil {
			for _, p := range menu.ExpandedPaths() {
				it, err := menu.Lookup(p)
				if err != nil {
					continue
				}
				fmt.Printf("Expanded: %s\n", it.Label())
			}
		}
		if out.Query != "" {
			fmt.Printf("\nSearch: %q\n", out.Query)
			search.FormatTable(out, doc.linker, os.Stdout)
		}
		if snap.Pane != nil {
			fmt.Println()
			switch snap.Pane.Type {
			case types.PaneReferences:
				rows, err := nav.ShowReferences(snap.Pane.ID)
				if err == nil {
					refpane.FormatReferences(snap.Pane.ID, rows, os.Stdout)
				}
			case types.PaneSDOs:
				refpane.FormatSDOs(snap.Pane.ID, nav.ShowSDOs(snap.Pane.ID), os.Stdout)
			}
		}
		return nil
	},
}

var stateExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the pins and pending snapshots to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		store, err := openStore(cmd, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		switch format {
		case "yaml", "":
			return store.ExportYAML(cmd.Context(), os.Stdout)
		case "json":
			return store.ExportJSON(cmd.Context(), os.Stdout)
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
	},
}

// parsePath parses a dotted child-index path such as "1.0.2".
func parsePath(s string) ([]int, error) {
	parts := strings.Split(s, ".")
	path := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("toc path %q: %w", s, err)
		}
		path[i] = n
	}
	return path, nil
}

func init() {
	stateCmd.PersistentFlags().String("layout", "", "layout snapshot providing the table of contents")
	stateCmd.PersistentFlags().Float64("viewport", 0, "viewport height (default: layout, then config)")

	stateSaveCmd.Flags().String("search", "", "search box value")
	stateSaveCmd.Flags().Bool("menu", false, "menu is open")
	stateSaveCmd.Flags().StringSlice("expand", nil, "expanded toc items as dotted child-index paths, e.g. 1,1.2")
	stateSaveCmd.Flags().Int("toc-scroll", 0, "toc panel scroll offset")
	stateSaveCmd.Flags().String("refs", "", "reference pane showing references to this id")
	stateSaveCmd.Flags().String("sdo", "", "reference pane showing operations over this alternative id")

	stateExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	stateCmd.AddCommand(stateSaveCmd)
	stateCmd.AddCommand(stateRestoreCmd)
	stateCmd.AddCommand(stateExportCmd)

	rootCmd.AddCommand(stateCmd)
}
