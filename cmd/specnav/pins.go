// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/specnav/internal/navigator"
)

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "Manage pinned entries (list, add, remove, toggle, select)",
	Long: `Pins keeps an ordered list of bibliography entries for quick access. The
list is stored in the state database and survives between runs. Pins whose
ids no longer exist in the bibliography are dropped when loaded.`,
}

// withPins loads the document and the stored pins, runs fn, and saves the
// pin list back when fn reports a change.
func withPins(cmd *cobra.Command, fn func(n *navigator.Navigator) (bool, error)) error {
	doc, err := loadDocument(cmd)
	if err != nil {
		return err
	}

	n, l, err := navigatorFromFlags(cmd, doc)
	if err != nil {
		return err
	}
	if l != nil {
		if _, err := n.UpdateActive(l.Root.At(scrollFromFlags(cmd, l))); err != nil {
			return err
		}
	}

	store, err := openStore(cmd, n)
	if err != nil {
		return err
	}
	defer store.Close()

	changed, err := fn(n)
	if err != nil {
		return err
	}
	if changed {
		return store.SavePins(cmd.Context(), n.Pins().IDs())
	}
	return nil
}

var pinsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pinned entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPins(cmd, func(n *navigator.Navigator) (bool, error) {
			set := n.Pins()
			if set.Len() == 0 {
				fmt.Println("No pins.")
				return false, nil
			}
			for i, label := range set.Labels() {
				link, _ := set.Select(i)
				fmt.Fprintf(os.Stdout, "%2d  %-60s  %s\n", i, label, link)
			}
			return false, nil
		})
	},
}

var pinsAddCmd = &cobra.Command{
	Use:   "add <id>...",
	Short: "Pin entries",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPins(cmd, func(n *navigator.Navigator) (bool, error) {
			changed := false
			for _, id := range args {
				if n.Pins().Add(id) {
					fmt.Printf("pinned   %s\n", id)
					changed = true
					continue
				}
				if n.Pins().Has(id) {
					fmt.Printf("already  %s\n", id)
					continue
				}
				fmt.Printf("unknown  %s\n", id)
			}
			return changed, nil
		})
	},
}

var pinsRemoveCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Unpin entries",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPins(cmd, func(n *navigator.Navigator) (bool, error) {
			changed := false
			for _, id := range args {
				if n.Pins().Remove(id) {
					fmt.Printf("unpinned %s\n", id)
					changed = true
				}
			}
			return changed, nil
		})
	},
}

var pinsToggleCmd = &cobra.Command{
	Use:   "toggle [id]",
	Short: "Pin or unpin an entry (default: the active section of --layout)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id string
		if len(args) == 1 {
			id = args[0]
		}
		return withPins(cmd, func(n *navigator.Navigator) (bool, error) {
			acted, pinned, err := n.TogglePin(id)
			if err != nil {
				return false, err
			}
			if pinned {
				fmt.Printf("pinned   %s\n", acted)
			} else {
				fmt.Printf("unpinned %s\n", acted)
			}
			return true, nil
		})
	},
}

var pinsSelectCmd = &cobra.Command{
	Use:   "select <n>",
	Short: "Print the link to the n-th pin, counting from zero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("pin number %q: %w", args[0], err)
		}
		return withPins(cmd, func(n *navigator.Navigator) (bool, error) {
			link, err := n.Pins().Select(num)
			if err != nil {
				return false, err
			}
			fmt.Println(link)
			return false, nil
		})
	},
}

func init() {
	pinsToggleCmd.Flags().String("layout", "", "layout snapshot used to find the active section")
	pinsToggleCmd.Flags().Float64("scroll", 0, "scroll offset (default: the offset recorded in the layout)")
	pinsToggleCmd.Flags().Float64("viewport", 0, "viewport height (default: layout, then config)")

	pinsCmd.AddCommand(pinsListCmd)
	pinsCmd.AddCommand(pinsAddCmd)
	pinsCmd.AddCommand(pinsRemoveCmd)
	pinsCmd.AddCommand(pinsToggleCmd)
	pinsCmd.AddCommand(pinsSelectCmd)

	rootCmd.AddCommand(pinsCmd)
}
