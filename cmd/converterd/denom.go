package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

func denomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "denom",
		Short: "Denom utilities",
	}
	cmd.AddCommand(denomValidateCommand())
	return cmd
}

func denomValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate [denom]",
		Short:   "Check a denom against the native, ibc and factory grammars",
		Example: "converterd denom validate factory/manifest1.../upwr",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := types.ValidateDenom(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), kind)
			return err
		},
	}
}
