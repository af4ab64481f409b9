// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/pdiddy/specnav/internal/biblio"
	"github.com/pdiddy/specnav/internal/navigator"
	"github.com/pdiddy/specnav/internal/refpane"
	"github.com/pdiddy/specnav/internal/search"
	"github.com/pdiddy/specnav/pkg/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse [query]",
	Short: "Search interactively and act on a result",
	Long: `Browse prompts for a query, lets you pick a result, and then shows its
references, pins or unpins it, or prints its link. Pins are saved to the
state database.`,
	RunE: runBrowse,
}

const (
	actionReferences = "Show references"
	actionPin        = "Pin / unpin"
	actionLink       = "Print link"
	actionSearch     = "New search"
	actionQuit       = "Quit"
)

func runBrowse(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(cmd)
	if err != nil {
		return err
	}
	n, err := newNavigator(cmd, doc, nil)
	if err != nil {
		return err
	}
	store, err := openStore(cmd, n)
	if err != nil {
		return err
	}
	defer store.Close()

	query := strings.Join(args, " ")
	for {
		if query == "" {
			prompt := promptui.Prompt{
				Label: "Search",
				Validate: func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("enter a query")
					}
					return nil
				},
			}
			query, err = prompt.Run()
			if err != nil {
				return quietInterrupt(err)
			}
		}

		out := n.Search(query)
		if len(out.Results) == 0 {
			fmt.Printf("No results for %q.\n", query)
			query = ""
			continue
		}

		labels := make([]string, len(out.Results))
		for i, r := range out.Results {
			labels[i] = fmt.Sprintf("%-10s %s", r.Entry.Type, search.Label(r))
		}
		pick := promptui.Select{
			Label: fmt.Sprintf("Results for %q", query),
			Items: labels,
			Size:  12,
		}
		idx, _, err := pick.Run()
		if err != nil {
			return quietInterrupt(err)
		}
		entry := out.Results[idx].Entry

		again, err := browseEntry(n, entry)
		if saveErr := store.SavePins(cmd.Context(), n.Pins().IDs()); saveErr != nil && err == nil {
			err = saveErr
		}
		if err != nil || !again {
			return err
		}
		query = ""
	}
}

// browseEntry offers actions on entry until the user starts a new search
// (true) or quits (false).
func browseEntry(n *navigator.Navigator, entry types.Entry) (bool, error) {
	id := entry.LinkID()
	for {
		actions := promptui.Select{
			Label: fmt.Sprintf("%s (%d references)", id, len(entry.ReferencingIDs)),
			Items: []string{actionReferences, actionPin, actionLink, actionSearch, actionQuit},
		}
		_, action, err := actions.Run()
		if err != nil {
			return false, quietInterrupt(err)
		}

		switch action {
		case actionReferences:
			rows, err := n.ShowReferences(entry.ID)
			if errors.Is(err, biblio.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "%s has no references of its own\n", id)
				continue
			}
			if err != nil {
				return false, err
			}
			refpane.FormatReferences(id, rows, os.Stdout)
		case actionPin:
			acted, pinned, err := n.TogglePin(entry.ID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "cannot pin %s: %v\n", id, err)
				continue
			}
			if pinned {
				fmt.Printf("pinned   %s\n", acted)
			} else {
				fmt.Printf("unpinned %s\n", acted)
			}
		case actionLink:
			fmt.Println(n.Link(id))
		case actionSearch:
			return true, nil
		case actionQuit:
			return false, nil
		}
	}
}

// quietInterrupt turns Ctrl-C and Ctrl-D at a prompt into a clean exit.
func quietInterrupt(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}
	return err
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
