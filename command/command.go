package command

import (
	"github.com/AlexNa-Holdings/hwparams/cmn"
	"github.com/AlexNa-Holdings/hwparams/coin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "hwparams",
		Short: "Check hardware wallet request parameters",
		Long: `hwparams validates request parameters the way a hardware wallet client
does before talking to the device: field shapes, derivation path vs coin,
and the minimum firmware a set of coins needs.`,
		Version:       cmn.VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cmn.InitConfig(cmd.ErrOrStderr(), configPath)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.yaml (default: $"+cmn.CONFIG_ENV+" or the data folder)")

	root.AddCommand(
		NewCoinsCommand(),
		NewPathCommand(),
		NewFirmwareCommand(),
		NewValidateCommand(),
	)

	return root
}

// registry returns the predefined coins merged with the configured coins file.
func registry() (*coin.Registry, error) {
	if cmn.Config.CoinsFile == "" {
		return coin.NewRegistry(), nil
	}
	r, err := coin.LoadFile(cmn.Config.CoinsFile)
	if err != nil {
		log.Error().Err(err).Msgf("Error loading coins file: %s", cmn.Config.CoinsFile)
		return nil, err
	}
	return r, nil
}
