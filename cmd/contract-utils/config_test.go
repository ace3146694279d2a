package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exchangerAddress = "0x8f0FB159380176D324542b3a7933F0C2Fd0c2bbf"

func TestConfigValidate(t *testing.T) {
	c := Config{}
	assert.Error(t, c.Validate())
	c.Contract = "Exchanger"
	assert.Error(t, c.Validate())
	c.NetworkName = "rinkeby"
	c.EthUrl = "ws://localhost:8546"
	assert.NoError(t, c.Validate())

	c.Contract = "Synthetix"
	assert.Error(t, c.Validate(), "only the Exchanger ABI is built in")
	c.ABIFile = "./Synthetix.abi"
	assert.NoError(t, c.Validate())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
network: kovan
ethurl: http://localhost:8545
addresses:
  Exchanger: "`+exchangerAddress+`"
  Synthetix: "0x0000000000000000000000000000000000000001"
`), 0o600))

	root := newRootCmd()
	require.NoError(t, root.PersistentFlags().Set("config", path))
	a := &app{v: newViper()}
	require.NoError(t, a.v.BindPFlags(root.PersistentFlags()))

	cfg, err := loadConfig(a.v)
	require.NoError(t, err)
	assert.Equal(t, "kovan", cfg.NetworkName)
	assert.Equal(t, "http://localhost:8545", cfg.EthUrl)
	assert.Equal(t, "Exchanger", cfg.Contract)
	assert.Equal(t, exchangerAddress, cfg.Addresses["Exchanger"])
	assert.NoError(t, cfg.Validate())

	book, err := cfg.AddressBook()
	require.NoError(t, err)
	_, ok := book.Lookup("Exchanger")
	assert.True(t, ok)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("CONTRACT_UTILS_NETWORK", "goerli")
	t.Setenv("CONTRACT_UTILS_ADDRESS", exchangerAddress)
	t.Setenv("CONTRACT_UTILS_ETHER", "true")

	root := newRootCmd()
	a := &app{v: newViper()}
	require.NoError(t, a.v.BindPFlags(root.PersistentFlags()))

	cfg, err := loadConfig(a.v)
	require.NoError(t, err)
	assert.Equal(t, "goerli", cfg.NetworkName)
	assert.Equal(t, "ws://localhost:8546", cfg.EthUrl)
	assert.Equal(t, exchangerAddress, cfg.Addresses["Exchanger"])
	assert.True(t, cfg.Ether)

	// explicit flags win over the environment
	require.NoError(t, root.PersistentFlags().Set("network", "sepolia"))
	cfg, err = loadConfig(a.v)
	require.NoError(t, err)
	assert.Equal(t, "sepolia", cfg.NetworkName)
}

func TestLoadConfigMissingFile(t *testing.T) {
	v := newViper()
	v.Set("config", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := loadConfig(v)
	assert.Error(t, err)
}

func TestConfigInterface(t *testing.T) {
	c := Config{Contract: "Exchanger"}
	iface, err := c.Interface()
	require.NoError(t, err)
	assert.Equal(t, "Exchanger", iface.Name())

	path := filepath.Join(t.TempDir(), "Token.abi")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}]`), 0o600))
	c = Config{Contract: "Token", ABIFile: path}
	iface, err = c.Interface()
	require.NoError(t, err)
	assert.Equal(t, "Token", iface.Name())
	assert.Len(t, iface.Calls(), 1)

	c = Config{Contract: "Token"}
	_, err = c.Interface()
	assert.Error(t, err)
}
