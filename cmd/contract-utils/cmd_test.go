package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threefoldfoundation/tft/evmbindings/contract"
	"github.com/threefoldfoundation/tft/evmbindings/contracts/exchanger"
)

func execute(t *testing.T, args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMethodsCommand(t *testing.T) {
	out, err := execute(t, "methods")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 19)
	assert.Equal(t, "resolver() [call] returns (address)", lines[0])
	assert.Contains(t, out, "exchange(address,bytes32,uint256,bytes32,address) [transaction] returns (uint256 amountReceived)\n")
	assert.Contains(t, out, "acceptOwnership() [transaction]\n")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestCallCommandChecksArgumentsBeforeDialling(t *testing.T) {
	// none of these reach the network, the url points nowhere
	_, err := execute(t, "call", "doesNotExist", "--ethurl", "ws://127.0.0.1:1")
	assert.ErrorIs(t, err, contract.ErrUnknownMethod)

	_, err = execute(t, "call", "exchange", "--ethurl", "ws://127.0.0.1:1")
	assert.ErrorIs(t, err, contract.ErrNotCall)

	_, err = execute(t, "send", "owner", "--ethurl", "ws://127.0.0.1:1")
	assert.ErrorIs(t, err, contract.ErrNotTransaction)

	_, err = execute(t, "call", "feeRateForExchange", "sUSD", "--ethurl", "ws://127.0.0.1:1")
	assert.ErrorIs(t, err, contract.ErrArgumentCount)

	_, err = execute(t, "call", "isResolverCached", "not-an-address", "--ethurl", "ws://127.0.0.1:1")
	assert.ErrorIs(t, err, contract.ErrInvalidArgument)

	_, err = execute(t, "send", "setWaitingPeriodSecs", "360", "--value", "1", "--ethurl", "ws://127.0.0.1:1")
	assert.Error(t, err, "setWaitingPeriodSecs is not payable")
}

func TestInspectable(t *testing.T) {
	calls := inspectable(exchanger.ExchangerInterface())
	names := make([]string, len(calls))
	for i, d := range calls {
		names[i] = d.Name
	}
	assert.Equal(t, []string{
		"resolver",
		"nominatedOwner",
		"waitingPeriodSecs",
		"owner",
		"getResolverAddressesRequired",
		"MAX_ADDRESSES_FROM_RESOLVER",
	}, names)
}

func TestPrintOutputs(t *testing.T) {
	iface := exchanger.ExchangerInterface()
	var out bytes.Buffer

	d, _ := iface.Method("waitingPeriodSecs")
	printOutputs(&out, d, []interface{}{bigInt(t, "180")}, false)
	assert.Equal(t, "180\n", out.String())

	out.Reset()
	d, _ = iface.Method("settlementOwing")
	printOutputs(&out, d, []interface{}{bigInt(t, "1000000000000000000"), bigInt(t, "0")}, true)
	assert.Equal(t, "reclaimAmount: 1\nrebateAmount: 0\n", out.String())
}

// slowQuerier answers a query with the method name. Queries take longer the
// earlier the method is listed, except for the failing method which returns
// right away and makes the others wait for cancellation.
type slowQuerier struct {
	order []string
	fail  string
	err   error

	lock      sync.Mutex
	cancelled []string
}

func (q *slowQuerier) Query(ctx context.Context, _ common.Address, _ *contract.Interface, method string, _ []interface{}) ([]interface{}, error) {
	if q.fail != "" {
		if method == q.fail {
			return nil, q.err
		}
		<-ctx.Done()
		q.lock.Lock()
		q.cancelled = append(q.cancelled, method)
		q.lock.Unlock()
		return nil, ctx.Err()
	}
	for i, name := range q.order {
		if name == method {
			time.Sleep(time.Duration(len(q.order)-i) * 5 * time.Millisecond)
		}
	}
	return []interface{}{method}, nil
}

func bindExchanger(t *testing.T, q contract.Querier) *contract.Binding {
	binding, err := contract.Bind(exchanger.ExchangerInterface(), &contract.Connection{
		Addresses: contract.AddressBook{"Exchanger": common.HexToAddress("0x8f0FB159380176D324542b3a7933F0C2Fd0c2bbf")},
		Provider:  q,
	}, nil)
	require.NoError(t, err)
	return binding
}

func TestCallAllKeepsOrder(t *testing.T) {
	calls := inspectable(exchanger.ExchangerInterface())
	require.NotEmpty(t, calls)
	q := &slowQuerier{}
	for _, d := range calls {
		q.order = append(q.order, d.Name)
	}

	results, err := callAll(context.Background(), bindExchanger(t, q), calls)
	require.NoError(t, err)
	require.Len(t, results, len(calls))
	for i, d := range calls {
		assert.Equal(t, []interface{}{d.Name}, results[i])
	}
}

func TestCallAllCancelsOnFirstError(t *testing.T) {
	calls := inspectable(exchanger.ExchangerInterface())
	require.True(t, len(calls) > 1)
	remote := errors.New("execution reverted")
	q := &slowQuerier{fail: "waitingPeriodSecs", err: remote}

	_, err := callAll(context.Background(), bindExchanger(t, q), calls)
	require.Error(t, err)
	assert.ErrorIs(t, err, remote)
	assert.Contains(t, err.Error(), "call waitingPeriodSecs")
	assert.Len(t, q.cancelled, len(calls)-1)
	assert.NotContains(t, q.cancelled, "waitingPeriodSecs")
}
