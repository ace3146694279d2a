package eth

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
)

// EthClient is a connection to an ethereum node, optionally with an account
// to sign transactions with.
type EthClient struct {
	*ethclient.Client // Client connection to the Ethereum chain
	chainID           *big.Int
	privateKey        *ecdsa.PrivateKey
	address           common.Address
}

// ClientConfig combines all configuration required for creating an EthClient.
type ClientConfig struct {
	NetworkName   string
	EthUrl        string
	NetworkID     uint64
	EthPrivateKey string // hex encoded private key
	AccountJSON   string // path to a keystore file, used if no private key is given
	AccountPass   string
}

var (
	// ErrNoAccountLoaded is returned for all methods that require an account
	// when the client was created without one.
	ErrNoAccountLoaded = errors.New("no account was loaded into the client")
	// ErrChainIDMismatch is returned when the node serves another chain than configured.
	ErrChainIDMismatch = errors.New("the node serves a different chain")
)

func (cfg *ClientConfig) validate() error {
	if cfg.NetworkName == "" {
		return errors.New("invalid ClientConfig: no network name defined")
	}
	if cfg.EthUrl == "" {
		return errors.New("invalid ClientConfig: no network url defined")
	}
	if cfg.NetworkID == 0 {
		return errors.New("invalid ClientConfig: no network ID defined")
	}
	if cfg.EthPrivateKey != "" && cfg.AccountJSON != "" {
		return errors.New("invalid ClientConfig: both a private key and an account file are defined")
	}
	return nil
}

// NewEthClient dials the node and loads the account if one is configured.
func NewEthClient(ctx context.Context, cfg ClientConfig) (*EthClient, error) {
	// validate the cfg, as to provide better error reporting for obvious errors
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var (
		privateKey *ecdsa.PrivateKey
		err        error
	)
	switch {
	case cfg.EthPrivateKey != "":
		privateKey, err = ParsePrivateKey(cfg.EthPrivateKey)
	case cfg.AccountJSON != "":
		privateKey, err = LoadKeystoreKey(cfg.AccountJSON, cfg.AccountPass)
	}
	if err != nil {
		return nil, err
	}

	cl, err := ethclient.DialContext(ctx, cfg.EthUrl)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", cfg.EthUrl)
	}
	chainID, err := cl.ChainID(ctx)
	if err != nil {
		cl.Close()
		return nil, errors.Wrap(err, "failed to get the chain id")
	}
	if chainID.Uint64() != cfg.NetworkID {
		cl.Close()
		return nil, errors.Wrapf(ErrChainIDMismatch, "%s has chain id %d, %s needs %d", cfg.EthUrl, chainID, cfg.NetworkName, cfg.NetworkID)
	}

	c := &EthClient{
		Client:     cl,
		chainID:    chainID,
		privateKey: privateKey,
	}
	if privateKey != nil {
		c.address = crypto.PubkeyToAddress(privateKey.PublicKey)
		log.Debug("eth client loaded with address", "addr", c.address.String())
	}
	return c, nil
}

// ParsePrivateKey parses a hex encoded private key, with or without 0x prefix.
func ParsePrivateKey(hexkey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexkey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return key, nil
}

// LoadKeystoreKey decrypts the private key from an encrypted keystore file.
func LoadKeystoreKey(path string, password string) (*ecdsa.PrivateKey, error) {
	keyjson, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := keystore.DecryptKey(keyjson, password)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decrypt account %s", path)
	}
	return key.PrivateKey, nil
}

// NetworkID returns the chain id of the connected chain.
func (c *EthClient) NetworkID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// HasAccount is true if a private key was loaded.
func (c *EthClient) HasAccount() bool {
	return c.privateKey != nil
}

// AccountAddress returns the address of the loaded account,
// returning an error only if no account was loaded.
func (c *EthClient) AccountAddress() (common.Address, error) {
	if c.privateKey == nil {
		return common.Address{}, ErrNoAccountLoaded
	}
	return c.address, nil
}

// AccountBalanceAt returns the balance for the account at the given block height.
func (c *EthClient) AccountBalanceAt(ctx context.Context, blockNumber *big.Int) (*big.Int, error) {
	if c.privateKey == nil {
		return nil, ErrNoAccountLoaded
	}
	return c.BalanceAt(ctx, c.address, blockNumber)
}

// Signer returns a signing handle for the loaded account.
func (c *EthClient) Signer() (*Signer, error) {
	if c.privateKey == nil {
		return nil, ErrNoAccountLoaded
	}
	return NewSigner(c.Client, c.privateKey, c.chainID), nil
}

// Provider returns a read-only handle.
func (c *EthClient) Provider() *Provider {
	return NewProvider(c.Client)
}
