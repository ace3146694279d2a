package contract

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrAddressNotFound is returned when the address book has no entry for the contract.
	ErrAddressNotFound = errors.New("no address configured for contract")
	// ErrNoHandle is returned when a connection has neither a signer nor a provider.
	ErrNoHandle = errors.New("neither a signer nor a read-only provider is configured")
	// ErrNoDefaults is returned when no connection and no default provider are given.
	ErrNoDefaults = errors.New("no connection and no default connection provider")

	// ErrReadOnly is returned by a provider-only binding when a transaction is submitted.
	ErrReadOnly = errors.New("sending a transaction requires a signer")

	// ErrUnknownMethod is returned for a method the interface does not declare.
	ErrUnknownMethod = errors.New("unknown contract method")
	// ErrNotCall is returned when Call is used for a state changing method.
	ErrNotCall = errors.New("method is a transaction, not a call")
	// ErrNotTransaction is returned when Transact is used for a read-only method.
	ErrNotTransaction = errors.New("method is a call, not a transaction")
	// ErrArgumentCount is returned when the arguments do not match the method inputs.
	ErrArgumentCount = errors.New("wrong number of arguments")
	// ErrOutputCount is returned when a Querier returns a different number of
	// values than the method declares outputs.
	ErrOutputCount = errors.New("wrong number of outputs")
)

// ConfigurationError is returned when a binding cannot be constructed from the
// supplied connection.
type ConfigurationError struct {
	Contract string
	Err      error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for contract %s: %v", e.Contract, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is, or wraps, a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cerr *ConfigurationError
	return errors.As(err, &cerr)
}
