package command

import (
	"fmt"

	"github.com/AlexNa-Holdings/hwparams/coin"
	"github.com/AlexNa-Holdings/hwparams/firmware"
	"github.com/AlexNa-Holdings/hwparams/hw"
	"github.com/spf13/cobra"
)

func NewFirmwareCommand() *cobra.Command {
	var (
		model   string
		version string
	)

	cmd := &cobra.Command{
		Use:   "firmware COIN...",
		Short: "Show the minimum firmware required by a set of coins",
		Long: `Folds the declared firmware support of every coin into one requirement
per device generation. "0" means no requirement. With --model and --version
the command fails when the device firmware is too old.`,
		Example: `  hwparams firmware btc zec
  hwparams firmware btc --model t1 --version 1.6.0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}

			coins := make([]*coin.Info, 0, len(args))
			for _, name := range args {
				info := r.Get(name)
				if info == nil {
					return fmt.Errorf("unknown coin: %s", name)
				}
				coins = append(coins, info)
			}

			required := firmware.Fold(coins...)
			fmt.Fprintf(cmd.OutOrStdout(), "trezor1: %s\ntrezor2: %s\n", required[0], required[1])

			if model == "" && version == "" {
				return nil
			}

			m := hw.ParseModel(model)
			if m == hw.Unknown {
				return fmt.Errorf("unknown device model: %q", model)
			}
			if !firmware.Valid(version) {
				return fmt.Errorf("invalid firmware version: %q", version)
			}
			if !firmware.Satisfies(m, version, required) {
				return fmt.Errorf("%s firmware %s is older than required %s", m, version, required.Get(m))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s ok\n", m, version)
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Device model to check (t1, t2)")
	cmd.Flags().StringVar(&version, "version", "", "Device firmware version to check")
	return cmd
}
