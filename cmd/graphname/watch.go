package main

import (
	"os/signal"
	"syscall"

	"github.com/aretw0/graphname/internal/cli"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Select graph names from stdin and print the view",
	Long: `Reads one graph name per line from stdin, writes each to the cell and prints
every update of the derived view. Stops on EOF, "quit" or Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		headless, _ := cmd.Flags().GetBool("headless")
		metrics, _ := cmd.Flags().GetBool("metrics")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return cli.RunWatch(ctx, cli.WatchOptions{
			Options:  commonOptions(cmd),
			Headless: headless,
			Metrics:  metrics,
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Bool("headless", false, "Plain output: no banner, prompt or colour")
	watchCmd.Flags().Bool("metrics", false, "Print Prometheus metrics to stderr on exit")
}
