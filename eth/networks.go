package eth

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// NetworkConfiguration defines the network specific configuration needed to bind contracts
type NetworkConfiguration struct {
	NetworkID   uint64
	NetworkName string
	// Addresses holds the known deployments on this network, keyed by contract name
	Addresses map[string]common.Address
}

var ethNetworkConfigurations = map[string]NetworkConfiguration{
	"mainnet": {
		NetworkID:   1,
		NetworkName: "mainnet",
	},
	"ropsten": {
		NetworkID:   3,
		NetworkName: "ropsten",
	},
	"rinkeby": {
		NetworkID:   4,
		NetworkName: "rinkeby",
	},
	"goerli": {
		NetworkID:   5,
		NetworkName: "goerli",
	},
	"kovan": {
		NetworkID:   42,
		NetworkName: "kovan",
	},
	"sepolia": {
		NetworkID:   11155111,
		NetworkName: "sepolia",
	},
	// ethers names mainnet homestead
	"homestead": {
		NetworkID:   1,
		NetworkName: "mainnet",
	},
	"hardhat": {
		NetworkID:   31337,
		NetworkName: "hardhat",
	},
}

// GetEthNetworkConfiguration returns the NetworkConfiguration for a specific network.
// The returned Addresses map is a copy and can be modified by the caller.
func GetEthNetworkConfiguration(networkname string) (networkconfig NetworkConfiguration, err error) {
	networkconfig, found := ethNetworkConfigurations[networkname]
	if !found {
		err = fmt.Errorf("network %s not supported", networkname)
		return
	}
	addresses := make(map[string]common.Address, len(networkconfig.Addresses))
	for name, address := range networkconfig.Addresses {
		addresses[name] = address
	}
	networkconfig.Addresses = addresses
	return
}

// SupportedNetworks returns the names of the known networks, sorted.
func SupportedNetworks() []string {
	names := make([]string, 0, len(ethNetworkConfigurations))
	for name := range ethNetworkConfigurations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
