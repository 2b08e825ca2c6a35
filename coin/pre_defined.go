package coin

var PredefinedCoins []Info = []Info{
	{
		Name:     "Bitcoin",
		Shortcut: "BTC",
		Slip44:   0,
		Support:  &Support{Trezor1: "1.5.2", Trezor2: "2.0.5"},
	},
	{
		Name:     "Testnet",
		Shortcut: "TEST",
		Label:    "Bitcoin Testnet",
		Slip44:   1,
		Support:  &Support{Trezor1: "1.5.2", Trezor2: "2.0.5"},
	},
	{
		Name:     "Litecoin",
		Shortcut: "LTC",
		Slip44:   2,
		Support:  &Support{Trezor1: "1.5.2", Trezor2: "2.0.5"},
	},
	{
		Name:     "Dogecoin",
		Shortcut: "DOGE",
		Slip44:   3,
		Support:  &Support{Trezor1: "1.5.2", Trezor2: "2.0.5"},
	},
	{
		Name:     "Dash",
		Shortcut: "DASH",
		Slip44:   5,
		Support:  &Support{Trezor1: "1.5.2", Trezor2: "2.0.5"},
	},
	{
		Name:     "Ethereum",
		Shortcut: "ETH",
		Slip44:   60,
		Support:  &Support{Trezor1: "1.6.2", Trezor2: "2.0.7"},
	},
	{
		Name:     "Zcash",
		Shortcut: "ZEC",
		Slip44:   133,
		Support:  &Support{Trezor1: "1.6.2", Trezor2: "2.0.7"},
	},
	{
		Name:     "Bcash",
		Shortcut: "BCH",
		Label:    "Bitcoin Cash",
		Slip44:   145,
		Support:  &Support{Trezor1: "1.6.2", Trezor2: "2.0.7"},
	},
	{
		Name:     "Bgold",
		Shortcut: "BTG",
		Label:    "Bitcoin Gold",
		Slip44:   156,
		Support:  &Support{Trezor1: "1.6.2", Trezor2: "2.0.7"},
	},

	// trezor2 only
	{
		Name:     "Cardano",
		Shortcut: "ADA",
		Slip44:   1815,
		Support:  &Support{Trezor2: "2.0.8"},
	},
}
