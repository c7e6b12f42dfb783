package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

func convertCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Conversion utilities",
	}
	cmd.AddCommand(convertSimulateCommand(v))
	return cmd
}

func convertSimulateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "simulate [coins]",
		Short:   "Print the settlement messages a conversion of coins would produce",
		Example: "converterd convert simulate 1000umfx --config converter.toml --from manifest1...",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadFileConfig(cmd, v)
			if err != nil {
				return err
			}

			funds, err := sdk.ParseCoinsNormalized(args[0])
			if err != nil {
				return err
			}

			ac := nodeConfig(v).AddressCodec()
			caller, err := cmd.Flags().GetString(flagFrom)
			if err != nil {
				return err
			}
			if caller == "" {
				caller = fc.Admin
			}
			if err := types.ValidateAddress(ac, caller); err != nil {
				return err
			}
			grantee, err := ac.BytesToString(authtypes.NewModuleAddress(types.ModuleName))
			if err != nil {
				return err
			}

			settlement, err := types.BuildConversion(fc.Config, grantee, caller, funds)
			if err != nil {
				return err
			}

			bz, err := types.MarshalSettlementJSON(types.NewSettlementCodec(), settlement)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}
	cmd.Flags().String(flagFrom, "", "converting account, defaults to the config admin")
	return cmd
}
