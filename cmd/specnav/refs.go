// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/specnav/internal/refpane"
)

var refsCmd = &cobra.Command{
	Use:   "refs <id>",
	Short: "List the clauses that reference an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}
		n, err := newNavigator(cmd, doc, nil)
		if err != nil {
			return err
		}

		rows, err := n.ShowReferences(args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			if rows == nil {
				rows = []refpane.Row{}
			}
			return refpane.FormatJSON(rows, os.Stdout)
		}
		refpane.FormatReferences(args[0], rows, os.Stdout)
		return nil
	},
}

var sdoCmd = &cobra.Command{
	Use:   "sdo <alternative-id>",
	Short: "List the syntax-directed operations defined over a grammar alternative",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}
		n, err := newNavigator(cmd, doc, nil)
		if err != nil {
			return err
		}

		rows := n.ShowSDOs(args[0])
		if jsonOutput {
			return refpane.FormatJSON(rows, os.Stdout)
		}
		refpane.FormatSDOs(args[0], rows, os.Stdout)
		return nil
	},
}

func init() {
	refsCmd.Flags().Bool("json", false, "output rows as JSON")
	sdoCmd.Flags().Bool("json", false, "output rows as JSON")

	rootCmd.AddCommand(refsCmd)
	rootCmd.AddCommand(sdoCmd)
}
