package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/njchilds90/gainsym/derive"
)

func ratiosCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ratios",
		Short: "Print the simplified gain ratios e1..e4",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return derive.WriteRatios(cmd.OutOrStdout(), deriveRatios(), opts.out)
		},
	}
}

func deriveRatios() *derive.Ratios {
	log.Printf("deriving ratios")
	r := derive.DeriveRatios(derive.Symbolic())
	for i, e := range r.E {
		log.Printf("e%d = %s", i+1, e)
	}
	return r
}
