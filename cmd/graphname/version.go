package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/graphname"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of graphname",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "graphname version %s\n", strings.TrimSpace(graphname.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
