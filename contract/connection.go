package contract

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// AddressBook maps contract names to their deployed address.
type AddressBook map[string]common.Address

// Lookup returns the address of the named contract.
func (b AddressBook) Lookup(name string) (common.Address, bool) {
	address, ok := b[name]
	return address, ok
}

// Connection holds everything a binding needs to reach the network. It is
// only read by bindings, so one Connection can be shared by many of them.
//
// When both Signer and Provider are set the Signer is used.
type Connection struct {
	Addresses AddressBook
	Signer    Chain   // signing credential, can send transactions
	Provider  Querier // read-only network handle
}

// DefaultProvider creates the connection used when a binding is created without one.
type DefaultProvider interface {
	DefaultConnection() (*Connection, error)
}

// DefaultProviderFunc adapts a function to a DefaultProvider.
type DefaultProviderFunc func() (*Connection, error)

// DefaultConnection calls f.
func (f DefaultProviderFunc) DefaultConnection() (*Connection, error) {
	return f()
}

// handle pairs the address with the interface and the active credential or
// network handle. It does not change after the binding is created.
type handle struct {
	address   common.Address
	iface     *Interface
	querier   Querier
	submitter Submitter
	readOnly  bool
}

func newHandle(iface *Interface, conn *Connection) (*handle, error) {
	address, ok := conn.Addresses.Lookup(iface.Name())
	if !ok {
		return nil, &ConfigurationError{Contract: iface.Name(), Err: ErrAddressNotFound}
	}
	h := &handle{address: address, iface: iface}
	switch {
	case conn.Signer != nil:
		h.querier, h.submitter = conn.Signer, conn.Signer
	case conn.Provider != nil:
		h.querier, h.submitter, h.readOnly = conn.Provider, readOnlySubmitter{}, true
	default:
		return nil, &ConfigurationError{Contract: iface.Name(), Err: ErrNoHandle}
	}
	return h, nil
}

type readOnlySubmitter struct{}

func (readOnlySubmitter) Submit(_ context.Context, _ common.Address, _ *Interface, _ string, _ []interface{}, _ TxOptions) (*types.Transaction, error) {
	return nil, ErrReadOnly
}
