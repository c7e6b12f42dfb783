package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"cosmossdk.io/core/address"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

// keys of the converter config file, named after the instantiate message
const (
	keyAdmin       = "admin"
	keyPoaAdmin    = "poa_admin"
	keyRate        = "rate"
	keySourceDenom = "source_denom"
	keyTargetDenom = "target_denom"
	keyPaused      = "paused"
)

// fileConfig is the normalized content of a converter config file.
type fileConfig struct {
	Admin string `json:"admin"`
	types.Config
}

func configCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect a converter config file",
	}
	cmd.AddCommand(
		configValidateCommand(v),
		configShowCommand(v),
	)
	return cmd
}

func configValidateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Run the instantiate checks against the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fc, err := loadFileConfig(cmd, v)
			if err != nil {
				return err
			}
			cmdLogger(cmd).Info("config is valid", "admin", fc.Admin, "rate", fc.Rate.String(),
				"source_denom", fc.SourceDenom.String(), "target_denom", fc.TargetDenom.String())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}
}

func configShowCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the normalized config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fc, err := loadFileConfig(cmd, v)
			if err != nil {
				return err
			}
			output, err := cmd.Flags().GetString(flagOutput)
			if err != nil {
				return err
			}

			bz, err := json.MarshalIndent(fc, "", "  ")
			if err != nil {
				return err
			}
			switch output {
			case outputJSON:
			case outputYAML:
				if bz, err = yaml.JSONToYAML(bz); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown output format %q, expected %s or %s", output, outputJSON, outputYAML)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}
	cmd.Flags().StringP(flagOutput, "o", outputJSON, "output format (json|yaml)")
	return cmd
}

// loadFileConfig reads the instantiate fields of the config file and runs
// the same validation the keeper runs on instantiate, minus the store.
func loadFileConfig(cmd *cobra.Command, v *viper.Viper) (fileConfig, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return fileConfig{}, err
	}
	if path == "" {
		return fileConfig{}, fmt.Errorf("--%s is required", flagConfig)
	}

	msg := types.MsgInstantiate{
		Sender:      v.GetString(keyAdmin),
		Admin:       v.GetString(keyAdmin),
		PoaAdmin:    v.GetString(keyPoaAdmin),
		Rate:        v.GetString(keyRate),
		SourceDenom: v.GetString(keySourceDenom),
		TargetDenom: v.GetString(keyTargetDenom),
		Paused:      v.GetBool(keyPaused),
	}
	return validateInstantiate(nodeConfig(v).AddressCodec(), msg)
}

func validateInstantiate(ac address.Codec, msg types.MsgInstantiate) (fileConfig, error) {
	if err := msg.ValidateBasic(); err != nil {
		return fileConfig{}, err
	}
	if err := types.ValidateAddress(ac, msg.Admin); err != nil {
		return fileConfig{}, err
	}
	cfg, err := types.NewConfig(ac, msg.PoaAdmin, msg.Rate, msg.SourceDenom, msg.TargetDenom, msg.Paused)
	if err != nil {
		return fileConfig{}, err
	}
	return fileConfig{Admin: msg.Admin, Config: cfg}, nil
}
