package command

import (
	"fmt"

	"github.com/AlexNa-Holdings/hwparams/hdpath"
	"github.com/AlexNa-Holdings/hwparams/params"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewPathCommand() *cobra.Command {
	var minLength int

	cmd := &cobra.Command{
		Use:   "path COIN PATH",
		Short: "Check that a derivation path belongs to a coin",
		Example: `  hwparams path btc "m/44'/0'/0'/0/0"
  hwparams path ltc "m/49'/2'/0'"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}

			info := r.Get(args[0])
			if info == nil {
				return fmt.Errorf("unknown coin: %s", args[0])
			}

			p, err := hdpath.Parse(args[1])
			if err != nil {
				return err
			}
			if err := hdpath.Validate(p, minLength); err != nil {
				return err
			}

			if err := params.ValidateCoinPath(info, p); err != nil {
				log.Debug().Msgf("path %s does not match %s (slip44 %d)", p, info.Name, info.Slip44)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s ok\n", info.Name, p)
			return nil
		},
	}

	cmd.Flags().IntVar(&minLength, "min-length", 3, "Minimum number of path segments")
	return cmd
}
