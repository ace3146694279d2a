package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/threefoldfoundation/tft/evmbindings/contract"
	"github.com/threefoldfoundation/tft/evmbindings/contracts/exchanger"
	"github.com/threefoldfoundation/tft/evmbindings/eth"
)

// EnvPrefix is the prefix of the environment variables that override flags,
// CONTRACT_UTILS_ETHURL for --ethurl for example.
const EnvPrefix = "CONTRACT_UTILS"

// Config is the merged configuration of flags, environment and config file.
type Config struct {
	eth.Config
	Contract string // name of the contract, the key in the address book
	ABIFile  string // JSON ABI of the contract, the built in Exchanger is used if empty
	Ether    bool   // parse and print amounts in ether instead of wei
	Debug    bool
}

// Validate checks the config without connecting to the network.
func (c *Config) Validate() error {
	if c.Contract == "" {
		return errors.New("no contract name defined")
	}
	if c.ABIFile == "" && c.Contract != exchanger.ExchangerInterface().Name() {
		return errors.Errorf("no ABI for contract %s, use --abi", c.Contract)
	}
	return c.Config.Validate()
}

// Interface loads the description of the configured contract.
func (c *Config) Interface() (*contract.Interface, error) {
	if c.ABIFile == "" {
		if c.Contract != exchanger.ExchangerInterface().Name() {
			return nil, errors.Errorf("no ABI for contract %s, use --abi", c.Contract)
		}
		return exchanger.ExchangerInterface(), nil
	}
	f, err := os.Open(c.ABIFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return contract.ParseABI(c.Contract, f)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file, if one is set, and builds the Config
// from the values bound in v.
func loadConfig(v *viper.Viper) (*Config, error) {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}
	cfg := &Config{
		Config: eth.Config{
			NetworkName: v.GetString("network"),
			EthUrl:      v.GetString("ethurl"),
			PrivateKey:  v.GetString("key"),
			AccountJSON: v.GetString("account"),
			AccountPass: v.GetString("password"),
			Addresses:   make(map[string]string),
		},
		Contract: v.GetString("contract"),
		ABIFile:  v.GetString("abi"),
		Ether:    v.GetBool("ether"),
		Debug:    v.GetBool("debug"),
	}
	// viper lowercases map keys, restore the contract names
	for name, address := range v.GetStringMapString("addresses") {
		if strings.EqualFold(name, cfg.Contract) {
			name = cfg.Contract
		}
		cfg.Addresses[name] = address
	}
	if address := v.GetString("address"); address != "" {
		cfg.Addresses[cfg.Contract] = address
	}
	return cfg, nil
}
