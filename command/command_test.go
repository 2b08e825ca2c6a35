package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexNa-Holdings/hwparams/cmn"
	"github.com/AlexNa-Holdings/hwparams/params"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { cmn.Config = cmn.DefaultConfig() })

	dir := t.TempDir()
	cmn.Config = cmn.DefaultConfig()

	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", filepath.Join(dir, "config.yaml")}, args...))

	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestCoinsCommand(t *testing.T) {
	out, err := run(t, "coins")
	require.NoError(t, err)
	require.Contains(t, out, "Bitcoin")
	require.Contains(t, out, "Cardano")
}

func TestPathCommand(t *testing.T) {
	out, err := run(t, "path", "btc", "m/44'/0'/0'/0/0")
	require.NoError(t, err)
	require.Contains(t, out, "Bitcoin m/44'/0'/0'/0/0 ok")

	_, err = run(t, "path", "btc", "m/44'/2'/0'")
	require.ErrorIs(t, err, params.ErrInvalidParameter)

	_, err = run(t, "path", "nocoin", "m/44'/0'/0'")
	require.EqualError(t, err, "unknown coin: nocoin")

	_, err = run(t, "path", "btc", "m/44'/0'")
	require.Error(t, err)

	_, err = run(t, "path", "btc", "m/44'/0'", "--min-length", "2")
	require.NoError(t, err)
}

func TestFirmwareCommand(t *testing.T) {
	out, err := run(t, "firmware", "btc", "zec")
	require.NoError(t, err)
	require.Equal(t, "trezor1: 1.6.2\ntrezor2: 2.0.7\n", out)

	out, err = run(t, "firmware", "ada")
	require.NoError(t, err)
	require.Equal(t, "trezor1: 0\ntrezor2: 2.0.8\n", out)

	_, err = run(t, "firmware", "btc", "--model", "t1", "--version", "1.5.1")
	require.Error(t, err)

	out, err = run(t, "firmware", "btc", "--model", "t2", "--version", "2.1.0")
	require.NoError(t, err)
	require.Contains(t, out, "trezor2 2.1.0 ok")

	_, err = run(t, "firmware", "btc", "--model", "ledger", "--version", "1.0.0")
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	fields := writeFile(t, "fields.yaml", `
fields:
  - name: coin
    type: string
    obligatory: true
  - name: outputs
    type: array
    obligatory: true
  - name: amount
    type: amount
  - name: account
    type: number
`)

	good := writeFile(t, "good.json", `{"coin": "btc", "outputs": [{"address": "x"}], "amount": "1000", "account": 0}`)
	out, err := run(t, "validate", fields, good)
	require.NoError(t, err)
	require.Equal(t, "4 fields ok\n", out)

	tests := []struct {
		request string
		err     string
	}{
		{`{"outputs": [1]}`, `Parameter "coin" is missing.`},
		{`{"coin": "btc", "outputs": []}`, `Parameter "outputs" is empty.`},
		{`{"coin": "btc", "outputs": [1], "amount": "01"}`, `Parameter "amount" has invalid value "01". Integer representation expected.`},
		{`{"coin": "btc", "outputs": [1], "amount": 1}`, `Parameter "amount" has invalid type. "string" expected.`},
		{`{"coin": "btc", "outputs": [1], "account": "0"}`, `Parameter "account" has invalid type. "number" expected.`},
	}
	for _, tt := range tests {
		_, err := run(t, "validate", fields, writeFile(t, "req.json", tt.request))
		require.EqualError(t, err, tt.err)
	}

	_, err = run(t, "validate", fields, writeFile(t, "req.json", `[1, 2]`))
	require.Error(t, err)
}

func TestCoinsFileFromConfig(t *testing.T) {
	t.Cleanup(func() { cmn.Config = cmn.DefaultConfig() })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coins.yaml"), []byte(`
coins:
  - name: Groestlcoin
    shortcut: GRS
    slip44: 17
`), 0644))
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("coins_file: coins.yaml\n"), 0644))

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", config, "path", "grs", "m/44'/17'/0'"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "Groestlcoin m/44'/17'/0' ok")
}
