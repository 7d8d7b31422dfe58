package main

import (
	"github.com/aretw0/graphname/internal/cli"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a snapshot of the cell and its view",
	Long: `Prints the cell value, the view value and subscriber counts.
An optional argument is selected first. Formats: yaml, json, markdown, mermaid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")

		opts := cli.ShowOptions{
			Options: commonOptions(cmd),
			Format:  format,
		}
		if len(args) > 0 {
			opts.Select = args[0]
		}
		return cli.Show(opts)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("output", "o", cli.FormatYAML, "Output format: yaml, json, markdown, mermaid")
}
