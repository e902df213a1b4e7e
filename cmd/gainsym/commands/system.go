package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/njchilds90/gainsym/derive"
)

func systemCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "Invert the a,b,c,d system and print T3 transposed and x1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := solveSystem()
			if err != nil {
				return err
			}
			return derive.WriteSystem(cmd.OutOrStdout(), s, opts.out)
		},
	}
}

func solveSystem() (*derive.System, error) {
	log.Printf("building linear system")
	s, err := derive.SolveSystem(derive.Symbolic())
	if err != nil {
		return nil, err
	}
	log.Printf("inverted %dx%d matrix", s.T2.Rows(), s.T2.Cols())
	return s, nil
}
