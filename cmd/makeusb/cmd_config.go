package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbusb/makeusb/internal/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change persistent settings",
	Long: `Read and write the makeusb configuration file. Values set here
override the built-in defaults on every run; command-line flags still
override both.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewMakeContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	value, err := cli.ConfigValue(ctx, args[0])
	if err != nil {
		return err
	}
	// Value on stdout so the command composes in scripts
	fmt.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewMakeContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	return cli.SetConfigValue(ctx, args[0], args[1])
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewMakeContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	fmt.Println(ctx.Config.FilePath())
	return nil
}
