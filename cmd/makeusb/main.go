package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbusb/makeusb/internal/cli"
)

var (
	labelFlag     string
	assumeYesFlag bool
	traceFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "makeusb [flags] <device>",
	Short: "Prepare a multiboot USB drive",
	Long: `makeusb prepares a removable USB drive to boot multiple OS installer
ISO images through a GRUB boot menu.

The device is repartitioned, formatted FAT32 and fitted with GRUB for both
UEFI and BIOS firmware. The menu configuration (mbusb.cfg, mbusb.d/,
grub.cfg.example) is staged from the working directory and the syslinux
memdisk helper is fetched from the upstream release archive.

ALL DATA ON THE TARGET DEVICE IS DESTROYED. Two confirmation prompts guard
the destructive stages unless --assume-yes is given.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runMake,
}

func init() {
	rootCmd.Flags().StringVar(&labelFlag, "label", "", "FAT volume label (default MULTIBOOT)")
	rootCmd.Flags().BoolVarP(&assumeYesFlag, "assume-yes", "y", false, "Skip confirmation prompts")
	rootCmd.Flags().BoolVar(&traceFlag, "trace", false, "Trace every executed command from the start")
}

func runMake(cmd *cobra.Command, args []string) error {
	// Bare invocation is a request for help, not an error.
	if len(args) == 0 {
		return cmd.Help()
	}
	if len(args) > 1 {
		return &cli.ExitError{
			Code: cli.ExitUsage,
			Err:  fmt.Errorf("expected exactly one device argument, got %d", len(args)),
		}
	}

	ctx, err := cli.NewMakeContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	return cli.RunMake(ctx, cli.MakeOptions{
		Device:     args[0],
		Label:      labelFlag,
		AssumeYes:  assumeYesFlag,
		Trace:      traceFlag,
		StagingDir: ".",
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !cli.IsSilent(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.CodeOf(err))
	}
}
