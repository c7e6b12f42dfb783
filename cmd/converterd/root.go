package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cosmossdk.io/log"

	"github.com/manifest-network/manifest-contracts/x/converter"
)

const (
	flagConfig = "config"
	flagOutput = "output"
	flagFrom   = "from"

	outputJSON = "json"
	outputYAML = "yaml"
)

// NewRootCmd creates the operator command. Every subcommand works offline,
// nothing here talks to a node.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:          "converterd",
		Short:        "converter operator tooling",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString(flagConfig)
			if err != nil {
				return err
			}
			if path == "" {
				return nil
			}
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "converter config file (toml, yaml or json)")

	rootCmd.AddCommand(
		denomCommand(),
		rateCommand(),
		configCommand(v),
		convertCommand(v),
	)

	return rootCmd
}

// nodeConfig returns the [converter] node section of the loaded file, or the
// defaults when no file was given.
func nodeConfig(v *viper.Viper) converter.Config {
	return converter.NewConfigFromOptions(v)
}

func cmdLogger(cmd *cobra.Command) log.Logger {
	return log.NewLogger(cmd.ErrOrStderr()).With("module", "converterd")
}
