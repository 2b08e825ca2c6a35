package coin_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexNa-Holdings/hwparams/coin"
	"github.com/AlexNa-Holdings/hwparams/hdpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGet(t *testing.T) {
	r := coin.NewRegistry()

	tests := []struct {
		name   string
		slip44 uint32
	}{
		{"Bitcoin", 0},
		{"btc", 0},
		{"Bitcoin Cash", 145},
		{"bch", 145},
		{" ETH ", 60},
		{"testnet", 1},
	}
	for _, tt := range tests {
		c := r.Get(tt.name)
		require.NotNil(t, c, tt.name)
		assert.Equal(t, tt.slip44, c.Slip44, tt.name)
	}

	assert.Nil(t, r.Get(""))
	assert.Nil(t, r.Get("nocoin"))
}

func TestRegistryReturnsCopies(t *testing.T) {
	r := coin.NewRegistry()

	c := r.Get("btc")
	c.Support.Trezor1 = "9.9.9"
	c.Slip44 = 99

	again := r.Get("btc")
	assert.Equal(t, "1.5.2", again.Support.Trezor1)
	assert.Equal(t, uint32(0), again.Slip44)
}

func TestRegistryFromPath(t *testing.T) {
	r := coin.NewRegistry()

	c := r.FromPath(hdpath.MustParse("m/44'/2'/0'/0/0"))
	require.NotNil(t, c)
	assert.Equal(t, "Litecoin", c.Name)

	assert.Nil(t, r.FromPath(hdpath.Path{0x8000002c}))
	assert.Nil(t, r.FromPath(hdpath.MustParse("m/44'/999999'/0'")))
}

func TestNewRegistryOverrides(t *testing.T) {
	r := coin.NewRegistry(
		coin.Info{Name: "bitcoin", Shortcut: "BTC", Slip44: 0, Support: &coin.Support{Trezor1: "1.8.0"}},
		coin.Info{Name: "Namecoin", Shortcut: "NMC", Slip44: 7},
	)

	btc := r.Get("BTC")
	require.NotNil(t, btc)
	assert.Equal(t, "1.8.0", btc.Support.Trezor1)
	assert.Empty(t, btc.Support.Trezor2)

	nmc := r.Get("nmc")
	require.NotNil(t, nmc)
	assert.Nil(t, nmc.Support)

	assert.Len(t, r.All(), len(coin.PredefinedCoins)+1)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "coins.yaml")
		data := `
coins:
  - name: Groestlcoin
    shortcut: GRS
    slip44: 17
    support:
      trezor1: "1.6.0"
      trezor2: "2.0.8"
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		r, err := coin.LoadFile(path)
		require.NoError(t, err)

		grs := r.Get("grs")
		require.NotNil(t, grs)
		assert.Equal(t, uint32(17), grs.Slip44)
		assert.Equal(t, "2.0.8", grs.Support.Trezor2)
		assert.NotNil(t, r.Get("btc"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := coin.LoadFile(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("unnamed coin", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("coins:\n  - slip44: 3\n"), 0644))

		_, err := coin.LoadFile(path)
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("coins: [\n"), 0644))

		_, err := coin.LoadFile(path)
		require.Error(t, err)
	})
}
