package eth

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/threefoldfoundation/tft/evmbindings/contract"
)

// Config describes how to reach a network and which account to use.
type Config struct {
	NetworkName string
	EthUrl      string
	PrivateKey  string // hex encoded private key, optional
	AccountJSON string // keystore file, optional
	AccountPass string
	// Addresses of deployed contracts, keyed by contract name. They override
	// the addresses known for the network.
	Addresses map[string]string
}

// Validate checks the config without connecting to the network.
func (c *Config) Validate() error {
	if _, err := GetEthNetworkConfiguration(c.NetworkName); err != nil {
		return err
	}
	if c.EthUrl == "" {
		return errors.New("no ethereum node url defined")
	}
	if c.PrivateKey != "" && c.AccountJSON != "" {
		return errors.New("only one of a private key or an account file can be used")
	}
	for name, address := range c.Addresses {
		if !common.IsHexAddress(address) {
			return errors.Errorf("invalid address %q for contract %s", address, name)
		}
	}
	return nil
}

// AddressBook merges the network deployments with the configured addresses.
func (c *Config) AddressBook() (contract.AddressBook, error) {
	networkConfig, err := GetEthNetworkConfiguration(c.NetworkName)
	if err != nil {
		return nil, err
	}
	book := contract.AddressBook(networkConfig.Addresses)
	for name, address := range c.Addresses {
		if !common.IsHexAddress(address) {
			return nil, errors.Errorf("invalid address %q for contract %s", address, name)
		}
		book[name] = common.HexToAddress(address)
	}
	return book, nil
}

// Connect dials the node and returns a connection for contract bindings.
// With an account configured the connection carries a signer, otherwise a
// read-only provider. The caller has to close the returned client.
func Connect(ctx context.Context, cfg Config) (*contract.Connection, *EthClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	book, err := cfg.AddressBook()
	if err != nil {
		return nil, nil, err
	}
	networkConfig, err := GetEthNetworkConfiguration(cfg.NetworkName)
	if err != nil {
		return nil, nil, err
	}
	client, err := NewEthClient(ctx, ClientConfig{
		NetworkName:   networkConfig.NetworkName,
		EthUrl:        cfg.EthUrl,
		NetworkID:     networkConfig.NetworkID,
		EthPrivateKey: cfg.PrivateKey,
		AccountJSON:   cfg.AccountJSON,
		AccountPass:   cfg.AccountPass,
	})
	if err != nil {
		return nil, nil, err
	}
	conn := &contract.Connection{Addresses: book}
	if client.HasAccount() {
		signer, err := client.Signer()
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		conn.Signer = signer
	} else {
		conn.Provider = client.Provider()
	}
	log.Info("Connected to ethereum node", "network", cfg.NetworkName, "url", cfg.EthUrl, "readonly", conn.Signer == nil)
	return conn, client, nil
}

// Defaults provides the default connection of bindings for a fixed Config.
// The config and the address book are resolved when a binding asks for the
// connection, the node is only dialled on the first query or transaction.
// All bindings share the dialled client.
type Defaults struct {
	cfg Config

	prepare sync.Once
	conn    *contract.Connection
	err     error

	dial    sync.Once
	backend contract.Querier
	client  *EthClient
	dialErr error
}

// NewDefaults creates a default connection provider for cfg.
func NewDefaults(cfg Config) *Defaults {
	return &Defaults{cfg: cfg}
}

// DefaultConnection implements contract.DefaultProvider. It does not touch
// the network, so a contract missing from the address book is reported by
// Bind before any node is dialled.
func (d *Defaults) DefaultConnection() (*contract.Connection, error) {
	d.prepare.Do(func() {
		if err := d.cfg.Validate(); err != nil {
			d.err = err
			return
		}
		book, err := d.cfg.AddressBook()
		if err != nil {
			d.err = err
			return
		}
		d.conn = &contract.Connection{Addresses: book}
		backend := &lazyBackend{defaults: d}
		if d.cfg.PrivateKey != "" || d.cfg.AccountJSON != "" {
			d.conn.Signer = backend
		} else {
			d.conn.Provider = backend
		}
	})
	return d.conn, d.err
}

func (d *Defaults) connect() (contract.Querier, error) {
	d.dial.Do(func() {
		conn, client, err := Connect(context.Background(), d.cfg)
		if err != nil {
			d.dialErr = err
			return
		}
		d.client = client
		if conn.Signer != nil {
			d.backend = conn.Signer
		} else {
			d.backend = conn.Provider
		}
	})
	return d.backend, d.dialErr
}

// Close closes the client if it was dialled.
func (d *Defaults) Close() {
	// run the onces so nothing is prepared or dialled after Close
	closed := errors.New("default connection is closed")
	d.prepare.Do(func() { d.err = closed })
	d.dial.Do(func() { d.dialErr = closed })
	if d.client != nil {
		d.client.Close()
	}
}

// lazyBackend dials the node of its Defaults on first use.
type lazyBackend struct {
	defaults *Defaults
}

func (b *lazyBackend) Query(ctx context.Context, address common.Address, iface *contract.Interface, method string, args []interface{}) ([]interface{}, error) {
	backend, err := b.defaults.connect()
	if err != nil {
		return nil, err
	}
	return backend.Query(ctx, address, iface, method, args)
}

func (b *lazyBackend) Submit(ctx context.Context, address common.Address, iface *contract.Interface, method string, args []interface{}, opts contract.TxOptions) (*types.Transaction, error) {
	backend, err := b.defaults.connect()
	if err != nil {
		return nil, err
	}
	submitter, ok := backend.(contract.Submitter)
	if !ok {
		return nil, contract.ErrReadOnly
	}
	return submitter.Submit(ctx, address, iface, method, args, opts)
}
