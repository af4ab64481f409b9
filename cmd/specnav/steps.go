// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/specnav/internal/steps"
)

var stepsCmd = &cobra.Command{
	Use:   "steps <outline.yaml>",
	Short: "Number the nested steps of an algorithm outline",
	Long: `Steps reads an algorithm as a YAML list of steps, where each step is a
string or a mapping with text and steps, and prints it with the bullets the
rendered document uses: 1, a, i at successive depths, repeating once.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm, err := steps.Load(args[0])
		if err != nil {
			return err
		}
		return steps.Write(os.Stdout, steps.Number(algorithm))
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}
