package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbusb/makeusb/internal/cli"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <device>",
	Short: "Show a non-destructive report of a device",
	Long: `Report size, removable flag, partitions and mount state of a block
device without modifying it. Useful to double-check the target before a
destructive run.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewMakeContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	return cli.RunInspect(ctx, args[0])
}
