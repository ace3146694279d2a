package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/threefoldfoundation/tft/evmbindings/contract"
	"github.com/threefoldfoundation/tft/evmbindings/eth"
)

// maxConcurrentCalls limits the calls inspect runs at the same time.
const maxConcurrentCalls = 8

type app struct {
	v   *viper.Viper
	cfg *Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	rootCmd := &cobra.Command{
		Use:          "contract-utils",
		Short:        "Inspect and interact with deployed contracts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			setLogLevel(cfg.Debug)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (json, yaml or toml)")
	flags.String("network", "mainnet", "ethereum network name")
	flags.String("ethurl", "ws://localhost:8546", "ethereum rpc url")
	flags.String("key", "", "hex encoded private key of the account that signs transactions")
	flags.String("account", "", "keystore file of the account that signs transactions")
	flags.String("password", "", "password of the keystore file")
	flags.String("contract", "Exchanger", "name of the contract")
	flags.String("address", "", "contract address, overrides the address of the network or config file")
	flags.String("abi", "", "JSON ABI of the contract")
	flags.Bool("ether", false, "amounts are in ether instead of wei")
	flags.Bool("debug", false, "sets debug level log output")
	if err := a.v.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(a.methodsCmd(), a.callCmd(), a.sendCmd(), a.inspectCmd(), a.accountCmd(), versionCmd())
	return rootCmd
}

func setLogLevel(debug bool) {
	logLevel := log.LvlInfo
	if debug {
		logLevel = log.LvlDebug
	}
	log.Root().SetHandler(log.LvlFilterHandler(logLevel, log.StreamHandler(os.Stderr, log.TerminalFormat(true))))
}

func (a *app) methodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "list the methods of the contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			iface, err := a.cfg.Interface()
			if err != nil {
				return err
			}
			printMethods(cmd.OutOrStdout(), iface)
			return nil
		},
	}
}

func printMethods(w io.Writer, iface *contract.Interface) {
	for _, d := range iface.Methods() {
		kind := d.Mutability.String()
		if d.Payable {
			kind += ", payable"
		}
		outputs := make([]string, len(d.Outputs))
		for i, o := range d.Outputs {
			outputs[i] = o.Type
			if o.Name != "" {
				outputs[i] += " " + o.Name
			}
		}
		fmt.Fprintf(w, "%s [%s]", d.Signature(), kind)
		if len(outputs) > 0 {
			fmt.Fprintf(w, " returns (%s)", strings.Join(outputs, ", "))
		}
		fmt.Fprintln(w)
	}
}

func (a *app) callCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "call <method> [args]",
		Short:   "execute a read-only method",
		Example: "call feeRateForExchange sUSD sETH",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, callArgs, err := a.prepare(args, contract.Call)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			binding, client, err := a.bind(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			out, err := binding.Call(ctx, d.Name, callArgs...)
			if err != nil {
				return err
			}
			printOutputs(cmd.OutOrStdout(), d, out, a.cfg.Ether)
			return nil
		},
	}
}

type sendFlags struct {
	value     string
	gasPrice  string
	gasFeeCap string
	gasTipCap string
	nonce     string
	gasLimit  uint64
	noSend    bool
	wait      bool
}

// txOptions converts the flags, only the value is affected by ether.
func (f *sendFlags) txOptions(ether bool) (contract.TxOptions, error) {
	var (
		opts contract.TxOptions
		err  error
	)
	if opts.Value, err = parseAmount(f.value, ether); err != nil {
		return opts, errors.Wrap(err, "--value")
	}
	if opts.GasPrice, err = parseAmount(f.gasPrice, false); err != nil {
		return opts, errors.Wrap(err, "--gas-price")
	}
	if opts.GasFeeCap, err = parseAmount(f.gasFeeCap, false); err != nil {
		return opts, errors.Wrap(err, "--max-fee")
	}
	if opts.GasTipCap, err = parseAmount(f.gasTipCap, false); err != nil {
		return opts, errors.Wrap(err, "--tip")
	}
	if opts.Nonce, err = parseAmount(f.nonce, false); err != nil {
		return opts, errors.Wrap(err, "--nonce")
	}
	if opts.GasPrice != nil && (opts.GasFeeCap != nil || opts.GasTipCap != nil) {
		return opts, errors.New("--gas-price can not be combined with --max-fee or --tip")
	}
	opts.GasLimit = f.gasLimit
	opts.NoSend = f.noSend
	return opts, nil
}

func (a *app) sendCmd() *cobra.Command {
	var f sendFlags
	sendCmd := &cobra.Command{
		Use:     "send <method> [args]",
		Short:   "sign and send a transaction",
		Long:    "sign a state changing method with the configured account and send it to the network",
		Example: "send exchange 0x5b38Da6a701c568545dCfcB03FcB875f56beddC4 sUSD 1000000000000000000 sETH 0x5b38Da6a701c568545dCfcB03FcB875f56beddC4",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, callArgs, err := a.prepare(args, contract.Transaction)
			if err != nil {
				return err
			}
			opts, err := f.txOptions(a.cfg.Ether)
			if err != nil {
				return err
			}
			if opts.Value != nil && opts.Value.Sign() > 0 && !d.Payable {
				return errors.Errorf("%s is not payable", d.Signature())
			}
			ctx := cmd.Context()
			binding, client, err := a.bind(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			tx, err := binding.Transact(ctx, d.Name, callArgs, &opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "transaction: %s\n", tx.Hash().Hex())
			if opts.NoSend {
				raw, err := tx.MarshalBinary()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "signed: %s\n", hexutil.Encode(raw))
				return nil
			}
			if !f.wait {
				return nil
			}
			log.Info("Waiting for the transaction to be mined", "tx", tx.Hash().Hex())
			receipt, err := bind.WaitMined(ctx, client, tx)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "block: %d\ngas used: %d\n", receipt.BlockNumber, receipt.GasUsed)
			if receipt.Status != types.ReceiptStatusSuccessful {
				return errors.Errorf("transaction %s failed", tx.Hash().Hex())
			}
			return nil
		},
	}
	flags := sendCmd.Flags()
	flags.StringVar(&f.value, "value", "", "amount to send along with the transaction")
	flags.StringVar(&f.gasPrice, "gas-price", "", "legacy gas price in wei")
	flags.StringVar(&f.gasFeeCap, "max-fee", "", "maximum fee per gas in wei")
	flags.StringVar(&f.gasTipCap, "tip", "", "priority fee per gas in wei")
	flags.StringVar(&f.nonce, "nonce", "", "nonce of the transaction, the pending nonce if not set")
	flags.Uint64Var(&f.gasLimit, "gas-limit", 0, "gas limit, estimated if not set")
	flags.BoolVar(&f.noSend, "no-send", false, "only sign the transaction and print it")
	flags.BoolVar(&f.wait, "wait", false, "wait until the transaction is mined")
	return sendCmd
}

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "execute all read-only methods without arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			binding, client, err := a.bind(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			calls := inspectable(binding.Interface())
			results, err := callAll(ctx, binding, calls)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s at %s\n", binding.Interface().Name(), binding.Address().Hex())
			for i, d := range calls {
				fmt.Fprintf(w, "\n%s:\n", d.Name)
				printOutputs(w, d, results[i], a.cfg.Ether)
			}
			return nil
		},
	}
}

// inspectable returns the calls that do not take arguments.
func inspectable(iface *contract.Interface) []contract.CallDescriptor {
	var calls []contract.CallDescriptor
	for _, d := range iface.Calls() {
		if len(d.Inputs) == 0 {
			calls = append(calls, d)
		}
	}
	return calls
}

// callAll executes the calls concurrently, the results keep the order of calls.
func callAll(ctx context.Context, binding *contract.Binding, calls []contract.CallDescriptor) ([][]interface{}, error) {
	results := make([][]interface{}, len(calls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCalls)
	for i, d := range calls {
		i, d := i, d
		g.Go(func() error {
			out, err := binding.Call(ctx, d.Name)
			if err != nil {
				return errors.Wrapf(err, "call %s", d.Name)
			}
			results[i] = out
			return nil
		})
	}
	return results, g.Wait()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

// prepare looks up the method and parses its arguments before anything is dialled.
func (a *app) prepare(args []string, mutability contract.Mutability) (contract.CallDescriptor, []interface{}, error) {
	iface, err := a.cfg.Interface()
	if err != nil {
		return contract.CallDescriptor{}, nil, err
	}
	d, ok := iface.Method(args[0])
	if !ok {
		return d, nil, errors.Wrapf(contract.ErrUnknownMethod, "%s.%s", iface.Name(), args[0])
	}
	if d.Mutability != mutability {
		if mutability == contract.Call {
			return d, nil, errors.Wrapf(contract.ErrNotCall, "%s, use send", d.Signature())
		}
		return d, nil, errors.Wrapf(contract.ErrNotTransaction, "%s, use call", d.Signature())
	}
	callArgs, err := contract.ParseArgs(d, args[1:])
	if err != nil {
		return d, nil, err
	}
	return d, callArgs, nil
}

func (a *app) bind(ctx context.Context) (*contract.Binding, *eth.EthClient, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	iface, err := a.cfg.Interface()
	if err != nil {
		return nil, nil, err
	}
	conn, client, err := eth.Connect(ctx, a.cfg.Config)
	if err != nil {
		return nil, nil, err
	}
	binding, err := contract.Bind(iface, conn, nil)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return binding, client, nil
}

func printOutputs(w io.Writer, d contract.CallDescriptor, out []interface{}, ether bool) {
	if len(out) == 1 && len(d.Outputs) == 1 && d.Outputs[0].Name == "" {
		fmt.Fprintln(w, formatValue(out[0], ether))
		return
	}
	for i, value := range out {
		name := fmt.Sprintf("out%d", i)
		if i < len(d.Outputs) && d.Outputs[i].Name != "" {
			name = d.Outputs[i].Name
		}
		fmt.Fprintf(w, "%s: %s\n", name, formatValue(value, ether))
	}
}
