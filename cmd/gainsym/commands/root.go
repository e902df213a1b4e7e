package commands

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/njchilds90/gainsym/derive"
)

type options struct {
	format  string
	verbose bool

	out derive.Format
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "gainsym",
		Short:        "Derive gain-network ratios and the a,b,c,d to A,B,C,D change of variables",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetPrefix("gainsym: ")
			log.SetFlags(0)
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
			f, err := derive.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			opts.out = f
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := deriveRatios()
			s, err := solveSystem()
			if err != nil {
				return err
			}
			return derive.WriteReport(cmd.OutOrStdout(), r, s, opts.out)
		},
	}

	root.PersistentFlags().StringVar(&opts.format, "format", string(derive.FormatText), "output format: text, latex or json")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace derivation steps on stderr")

	root.AddCommand(ratiosCmd(opts), systemCmd(opts), checkCmd())
	return root
}
