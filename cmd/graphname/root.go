package main

import (
	"fmt"
	"os"

	"github.com/aretw0/graphname/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graphname",
	Short: "graphname holds the selected graph name as a reactive cell",
	Long: `graphname keeps the currently selected graph name in an observable cell
and mirrors it through a read-only view. Use "watch" to drive it from stdin.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("initial", "", "Initial graph name (default \"blank\")")
	rootCmd.PersistentFlags().Bool("skip-unchanged", false, "Do not notify when the same name is selected again")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// commonOptions reads the persistent flags into cli.Options.
func commonOptions(cmd *cobra.Command) cli.Options {
	initial, _ := cmd.Flags().GetString("initial")
	skip, _ := cmd.Flags().GetBool("skip-unchanged")
	level, _ := cmd.Flags().GetString("log-level")

	return cli.Options{
		InitialName:   initial,
		SkipUnchanged: skip,
		LogLevel:      level,
		Stdin:         cmd.InOrStdin(),
		Stdout:        cmd.OutOrStdout(),
		Stderr:        cmd.ErrOrStderr(),
	}
}
