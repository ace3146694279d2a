package eth

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/threefoldfoundation/tft/evmbindings/contract"
)

// Provider executes read-only contract calls through a node.
type Provider struct {
	caller bind.ContractCaller
}

// NewProvider creates a read-only handle on top of caller, usually an *ethclient.Client.
func NewProvider(caller bind.ContractCaller) *Provider {
	return &Provider{caller: caller}
}

// Query packs the arguments, executes the call and returns the unpacked outputs.
func (p *Provider) Query(ctx context.Context, address common.Address, iface *contract.Interface, method string, args []interface{}) ([]interface{}, error) {
	bound := bind.NewBoundContract(address, iface.ABI(), p.caller, nil, nil)
	var out []interface{}
	err := bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...)
	return out, err
}

// Signer executes calls and signs and sends transactions with a single account.
type Signer struct {
	Provider

	transactor bind.ContractTransactor
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    *big.Int
}

// NewSigner creates a signing handle for the account of privateKey on the chain with chainID.
func NewSigner(backend bind.ContractBackend, privateKey *ecdsa.PrivateKey, chainID *big.Int) *Signer {
	return &Signer{
		Provider:   Provider{caller: backend},
		transactor: backend,
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		chainID:    new(big.Int).Set(chainID),
	}
}

// Address of the signing account.
func (s *Signer) Address() common.Address {
	return s.address
}

// Submit signs the method call and sends it to the network. Unset options are
// filled in by go-ethereum: pending nonce, suggested fees and estimated gas.
func (s *Signer) Submit(ctx context.Context, address common.Address, iface *contract.Interface, method string, args []interface{}, opts contract.TxOptions) (*types.Transaction, error) {
	transactOpts := &bind.TransactOpts{
		Context:   ctx,
		From:      s.address,
		Signer:    s.getSignerFunc(),
		Value:     opts.Value,
		Nonce:     opts.Nonce,
		GasPrice:  opts.GasPrice,
		GasFeeCap: opts.GasFeeCap,
		GasTipCap: opts.GasTipCap,
		GasLimit:  opts.GasLimit,
		NoSend:    opts.NoSend,
	}
	bound := bind.NewBoundContract(address, iface.ABI(), s.caller, s.transactor, nil)
	return bound.Transact(transactOpts, method, args...)
}

func (s *Signer) getSignerFunc() bind.SignerFn {
	signer := types.LatestSignerForChainID(s.chainID)
	return func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
		if address != s.address {
			return nil, errors.New("not authorized to sign this account")
		}
		return types.SignTx(tx, signer, s.privateKey)
	}
}
