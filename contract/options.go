package contract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TxOptions are the optional parameters of a transaction. The zero value
// leaves every decision (nonce, gas, fees) to the signer.
type TxOptions struct {
	Value     *big.Int // Funds to send along with the transaction (nil = 0)
	Nonce     *big.Int // Nonce override (nil = pending state)
	GasPrice  *big.Int // Legacy gas price (nil = gas price oracle)
	GasFeeCap *big.Int // EIP-1559 fee cap (nil = derived from the head)
	GasTipCap *big.Int // EIP-1559 tip cap (nil = gas price oracle)
	GasLimit  uint64   // Gas limit (0 = estimate)
	NoSend    bool     // Sign the transaction but do not broadcast it
}

// OrDefault returns the options, or the empty options when o is nil.
func (o *TxOptions) OrDefault() TxOptions {
	if o == nil {
		return TxOptions{}
	}
	return *o
}

// Querier executes read-only contract calls and returns the decoded results.
// A Querier returns exactly one value per output of the method, otherwise
// Binding.Call fails with ErrOutputCount.
type Querier interface {
	Query(ctx context.Context, address common.Address, iface *Interface, method string, args []interface{}) ([]interface{}, error)
}

// Submitter signs and sends state changing contract calls.
type Submitter interface {
	Submit(ctx context.Context, address common.Address, iface *Interface, method string, args []interface{}, opts TxOptions) (*types.Transaction, error)
}

// Chain can both query and submit, it is what a signing credential provides.
type Chain interface {
	Querier
	Submitter
}
