package contract

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
)

// Binding exposes the methods of a deployed contract. Every call is forwarded
// as is to the query or submit primitive of the connection: results and
// errors are returned unchanged, nothing is retried, cached or awaited.
//
// A Binding holds no mutable state and is safe for concurrent use.
type Binding struct {
	handle *handle
}

// Bind creates a binding for the contract described by iface.
// If conn is nil, the connection is requested from defaults.
func Bind(iface *Interface, conn *Connection, defaults DefaultProvider) (*Binding, error) {
	if iface == nil {
		return nil, errors.New("no contract interface given")
	}
	if conn == nil {
		if defaults == nil {
			return nil, &ConfigurationError{Contract: iface.Name(), Err: ErrNoDefaults}
		}
		var err error
		conn, err = defaults.DefaultConnection()
		if err != nil {
			return nil, &ConfigurationError{Contract: iface.Name(), Err: err}
		}
		if conn == nil {
			return nil, &ConfigurationError{Contract: iface.Name(), Err: ErrNoDefaults}
		}
	}
	h, err := newHandle(iface, conn)
	if err != nil {
		return nil, err
	}
	log.Debug("Bound contract", "contract", iface.Name(), "address", h.address, "readonly", h.readOnly)
	return &Binding{handle: h}, nil
}

// Address returns the address the binding talks to.
func (b *Binding) Address() common.Address {
	return b.handle.address
}

// Interface returns the description of the bound contract.
func (b *Binding) Interface() *Interface {
	return b.handle.iface
}

// ReadOnly is true if the binding has no signer and can not send transactions.
func (b *Binding) ReadOnly() bool {
	return b.handle.readOnly
}

// Call invokes a read-only method and returns its decoded outputs, one value
// per declared output.
func (b *Binding) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	d, err := b.descriptor(method, Call, len(args))
	if err != nil {
		return nil, err
	}
	log.Debug("Calling contract", "contract", b.handle.iface.Name(), "method", method)
	out, err := b.handle.querier.Query(ctx, b.handle.address, b.handle.iface, method, args)
	if err != nil {
		return out, err
	}
	if len(out) != len(d.Outputs) {
		return nil, errors.Wrapf(ErrOutputCount, "%s returned %d values, expected %d", d.Signature(), len(out), len(d.Outputs))
	}
	return out, nil
}

// Transact submits a state changing method. A nil opts is the same as empty options.
func (b *Binding) Transact(ctx context.Context, method string, args []interface{}, opts *TxOptions) (*types.Transaction, error) {
	if _, err := b.descriptor(method, Transaction, len(args)); err != nil {
		return nil, err
	}
	log.Debug("Submitting transaction to contract", "contract", b.handle.iface.Name(), "method", method)
	return b.handle.submitter.Submit(ctx, b.handle.address, b.handle.iface, method, args, opts.OrDefault())
}

func (b *Binding) descriptor(method string, mutability Mutability, argc int) (CallDescriptor, error) {
	d, ok := b.handle.iface.Method(method)
	if !ok {
		return d, errors.Wrapf(ErrUnknownMethod, "%s.%s", b.handle.iface.Name(), method)
	}
	if d.Mutability != mutability {
		if mutability == Call {
			return d, errors.Wrapf(ErrNotCall, "%s.%s", b.handle.iface.Name(), method)
		}
		return d, errors.Wrapf(ErrNotTransaction, "%s.%s", b.handle.iface.Name(), method)
	}
	if len(d.Inputs) != argc {
		return d, errors.Wrapf(ErrArgumentCount, "%s expects %d, got %d", d.Signature(), len(d.Inputs), argc)
	}
	return d, nil
}
