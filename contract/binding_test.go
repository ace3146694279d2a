package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testAddress = common.HexToAddress("0xABC0000000000000000000000000000000000001")

type mockChain struct {
	mock.Mock
}

func (m *mockChain) Query(ctx context.Context, address common.Address, iface *Interface, method string, args []interface{}) ([]interface{}, error) {
	ret := m.Called(ctx, address, iface, method, args)
	out, _ := ret.Get(0).([]interface{})
	return out, ret.Error(1)
}

func (m *mockChain) Submit(ctx context.Context, address common.Address, iface *Interface, method string, args []interface{}, opts TxOptions) (*types.Transaction, error) {
	ret := m.Called(ctx, address, iface, method, args, opts)
	tx, _ := ret.Get(0).(*types.Transaction)
	return tx, ret.Error(1)
}

func testInterface(t *testing.T) *Interface {
	iface, err := NewInterface("Exchanger",
		CallDescriptor{
			Name:       "waitingPeriodSecs",
			Outputs:    []Param{{Type: TypeUint256}},
			Mutability: Call,
		},
		CallDescriptor{
			Name: "feeRateForExchange",
			Inputs: []Param{
				{Name: "sourceCurrencyKey", Type: TypeBytes32},
				{Name: "destinationCurrencyKey", Type: TypeBytes32},
			},
			Outputs:    []Param{{Type: TypeUint256}},
			Mutability: Call,
		},
		CallDescriptor{
			Name: "exchange",
			Inputs: []Param{
				{Name: "from", Type: TypeAddress},
				{Name: "sourceCurrencyKey", Type: TypeBytes32},
				{Name: "sourceAmount", Type: TypeUint256},
				{Name: "destinationCurrencyKey", Type: TypeBytes32},
				{Name: "destinationAddress", Type: TypeAddress},
			},
			Outputs:    []Param{{Name: "amountReceived", Type: TypeUint256}},
			Mutability: Transaction,
		},
	)
	require.NoError(t, err)
	return iface
}

func emptyArgs(args []interface{}) bool {
	return len(args) == 0
}

func TestCallForwardsToQuery(t *testing.T) {
	iface := testInterface(t)
	chain := new(mockChain)
	result := []interface{}{big.NewInt(180)}
	chain.On("Query", mock.Anything, testAddress, iface, "waitingPeriodSecs", mock.MatchedBy(emptyArgs)).Return(result, nil).Once()

	b, err := Bind(iface, &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Provider: chain}, nil)
	require.NoError(t, err)

	out, err := b.Call(context.Background(), "waitingPeriodSecs")
	require.NoError(t, err)
	assert.Equal(t, result, out)
	chain.AssertExpectations(t)
	chain.AssertNumberOfCalls(t, "Query", 1)
}

func TestCallForwardsArguments(t *testing.T) {
	iface := testInterface(t)
	chain := new(mockChain)
	src, dst := [32]byte{'s', 'U', 'S', 'D'}, [32]byte{'s', 'E', 'T', 'H'}
	chain.On("Query", mock.Anything, testAddress, iface, "feeRateForExchange", []interface{}{src, dst}).Return([]interface{}{big.NewInt(3)}, nil)

	b, err := Bind(iface, &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Signer: chain}, nil)
	require.NoError(t, err)

	out, err := b.Call(context.Background(), "feeRateForExchange", src, dst)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{big.NewInt(3)}, out)
	chain.AssertExpectations(t)
}

func TestCallReturnsRemoteErrorUnchanged(t *testing.T) {
	iface := testInterface(t)
	chain := new(mockChain)
	remote := errors.New("execution reverted")
	chain.On("Query", mock.Anything, testAddress, iface, "waitingPeriodSecs", mock.Anything).Return(nil, remote)

	b, err := Bind(iface, &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Provider: chain}, nil)
	require.NoError(t, err)

	_, err = b.Call(context.Background(), "waitingPeriodSecs")
	assert.Same(t, remote, err)
	chain.AssertNumberOfCalls(t, "Query", 1)
}

func TestCallRejectsWrongOutputCount(t *testing.T) {
	iface := testInterface(t)
	chain := new(mockChain)
	chain.On("Query", mock.Anything, testAddress, iface, "waitingPeriodSecs", mock.Anything).Return([]interface{}{}, nil).Once()
	chain.On("Query", mock.Anything, testAddress, iface, "waitingPeriodSecs", mock.Anything).Return([]interface{}{big.NewInt(1), big.NewInt(2)}, nil).Once()

	b, err := Bind(iface, &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Provider: chain}, nil)
	require.NoError(t, err)

	out, err := b.Call(context.Background(), "waitingPeriodSecs")
	assert.ErrorIs(t, err, ErrOutputCount)
	assert.Nil(t, out)
	_, err = b.Call(context.Background(), "waitingPeriodSecs")
	assert.ErrorIs(t, err, ErrOutputCount)
	chain.AssertExpectations(t)
}

func TestTransactDefaultsOptions(t *testing.T) {
	iface := testInterface(t)
	chain := new(mockChain)
	from, to := common.HexToAddress("0x01"), common.HexToAddress("0x02")
	src, dst := [32]byte{'s', 'U', 'S', 'D'}, [32]byte{'s', 'B', 'T', 'C'}
	args := []interface{}{from, src, big.NewInt(100), dst, to}
	tx := types.NewTx(&types.LegacyTx{Nonce: 1})
	chain.On("Submit", mock.Anything, testAddress, iface, "exchange", args, TxOptions{}).Return(tx, nil).Once()

	b, err := Bind(iface, &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Signer: chain}, nil)
	require.NoError(t, err)

	got, err := b.Transact(context.Background(), "exchange", args, nil)
	require.NoError(t, err)
	assert.Same(t, tx, got)
	chain.AssertExpectations(t)
}

func TestTransactForwardsExplicitOptions(t *testing.T) {
	iface := testInterface(t)
	chain := new(mockChain)
	args := []interface{}{common.Address{}, [32]byte{}, big.NewInt(1), [32]byte{}, common.Address{}}
	opts := TxOptions{GasLimit: 500000, Value: big.NewInt(0), Nonce: big.NewInt(7)}
	tx := types.NewTx(&types.LegacyTx{Nonce: 7})
	chain.On("Submit", mock.Anything, testAddress, iface, "exchange", args, opts).Return(tx, nil).Once()

	b, err := Bind(iface, &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Signer: chain}, nil)
	require.NoError(t, err)

	_, err = b.Transact(context.Background(), "exchange", args, &opts)
	require.NoError(t, err)
	chain.AssertExpectations(t)
}

func TestSignerIsPreferredOverProvider(t *testing.T) {
	iface := testInterface(t)
	signer, provider := new(mockChain), new(mockChain)
	signer.On("Query", mock.Anything, testAddress, iface, "waitingPeriodSecs", mock.Anything).Return([]interface{}{big.NewInt(1)}, nil)

	b, err := Bind(iface, &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Signer: signer, Provider: provider}, nil)
	require.NoError(t, err)
	assert.False(t, b.ReadOnly())

	_, err = b.Call(context.Background(), "waitingPeriodSecs")
	require.NoError(t, err)
	signer.AssertExpectations(t)
	provider.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadOnlyBindingRejectsTransactions(t *testing.T) {
	iface := testInterface(t)
	provider := new(mockChain)

	b, err := Bind(iface, &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Provider: provider}, nil)
	require.NoError(t, err)
	assert.True(t, b.ReadOnly())

	args := []interface{}{common.Address{}, [32]byte{}, big.NewInt(1), [32]byte{}, common.Address{}}
	_, err = b.Transact(context.Background(), "exchange", args, nil)
	assert.ErrorIs(t, err, ErrReadOnly)
	provider.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBindMissingAddress(t *testing.T) {
	chain := new(mockChain)
	_, err := Bind(testInterface(t), &Connection{Addresses: AddressBook{"Synthetix": testAddress}, Signer: chain}, nil)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.ErrorIs(t, err, ErrAddressNotFound)
	assert.Empty(t, chain.Calls)
}

func TestBindWithoutHandle(t *testing.T) {
	_, err := Bind(testInterface(t), &Connection{Addresses: AddressBook{"Exchanger": testAddress}}, nil)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.ErrorIs(t, err, ErrNoHandle)
}

func TestBindUsesDefaults(t *testing.T) {
	chain := new(mockChain)
	requested := 0
	defaults := DefaultProviderFunc(func() (*Connection, error) {
		requested++
		return &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Provider: chain}, nil
	})

	b, err := Bind(testInterface(t), nil, defaults)
	require.NoError(t, err)
	assert.Equal(t, 1, requested)
	assert.Equal(t, testAddress, b.Address())

	_, err = Bind(testInterface(t), &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Provider: chain}, defaults)
	require.NoError(t, err)
	assert.Equal(t, 1, requested, "an explicit connection must not consult the defaults")
}

func TestBindWithoutConnectionOrDefaults(t *testing.T) {
	_, err := Bind(testInterface(t), nil, nil)
	assert.ErrorIs(t, err, ErrNoDefaults)

	failing := DefaultProviderFunc(func() (*Connection, error) {
		return nil, errors.New("no config file")
	})
	_, err = Bind(testInterface(t), nil, failing)
	assert.True(t, IsConfigurationError(err))
}

func TestDispatchValidation(t *testing.T) {
	chain := new(mockChain)
	b, err := Bind(testInterface(t), &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Signer: chain}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = b.Call(ctx, "settle")
	assert.ErrorIs(t, err, ErrUnknownMethod)
	_, err = b.Call(ctx, "exchange")
	assert.ErrorIs(t, err, ErrNotCall)
	_, err = b.Transact(ctx, "waitingPeriodSecs", nil, nil)
	assert.ErrorIs(t, err, ErrNotTransaction)
	_, err = b.Call(ctx, "feeRateForExchange", [32]byte{})
	assert.ErrorIs(t, err, ErrArgumentCount)

	assert.Empty(t, chain.Calls)
}

// echoQuerier answers every query with its first argument.
type echoQuerier struct {
	lock  sync.Mutex
	calls map[string]int
}

func (q *echoQuerier) Query(_ context.Context, _ common.Address, _ *Interface, method string, args []interface{}) ([]interface{}, error) {
	q.lock.Lock()
	q.calls[method]++
	q.lock.Unlock()
	if len(args) == 0 {
		return []interface{}{method}, nil
	}
	return []interface{}{args[0]}, nil
}

func TestConcurrentCalls(t *testing.T) {
	const n = 50
	q := &echoQuerier{calls: make(map[string]int)}
	b, err := Bind(testInterface(t), &Connection{Addresses: AddressBook{"Exchanger": testAddress}, Provider: q}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	failures := make(chan string, 2*n)
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			out, err := b.Call(context.Background(), "waitingPeriodSecs")
			if err != nil || out[0] != "waitingPeriodSecs" {
				failures <- fmt.Sprintf("waitingPeriodSecs: %v %v", out, err)
			}
		}()
		go func(i int) {
			defer wg.Done()
			key := [32]byte{byte(i)}
			out, err := b.Call(context.Background(), "feeRateForExchange", key, [32]byte{})
			if err != nil || out[0] != key {
				failures <- fmt.Sprintf("feeRateForExchange: %v %v", out, err)
			}
		}(i)
	}
	wg.Wait()
	close(failures)
	for f := range failures {
		t.Error(f)
	}
	assert.Equal(t, n, q.calls["waitingPeriodSecs"])
	assert.Equal(t, n, q.calls["feeRateForExchange"])
}
