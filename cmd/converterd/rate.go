package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

func rateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate utilities",
	}
	cmd.AddCommand(rateApplyCommand())
	return cmd
}

func rateApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "apply [rate] [amount]",
		Short:   "Print floor(amount * rate)",
		Example: "converterd rate apply 0.379 1000",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := types.ParseRate(args[0])
			if err != nil {
				return err
			}
			amount, err := types.ParseAmount(args[1])
			if err != nil {
				return err
			}
			out, err := rate.ApplyTo(amount)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return err
		},
	}
}
