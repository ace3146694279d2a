package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/threefoldfoundation/tft/evmbindings/eth"
)

func (a *app) accountCmd() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "manage the account that signs transactions",
	}

	var keystoreDir string
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "generate a new account",
		Long:  "generate a new account, stored encrypted with --password in the --keystore directory or printed if no directory is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if keystoreDir != "" {
				if a.cfg.AccountPass == "" {
					return errors.New("a keystore account needs a --password")
				}
				account, err := keystore.StoreKey(keystoreDir, a.cfg.AccountPass, keystore.StandardScryptN, keystore.StandardScryptP)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "Address:", account.Address.Hex())
				fmt.Fprintln(w, "Account file:", account.URL.Path)
				return nil
			}
			key, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "Address:", crypto.PubkeyToAddress(key.PublicKey).Hex())
			fmt.Fprintln(w, "Private key:", hex.EncodeToString(crypto.FromECDSA(key)))
			return nil
		},
	}
	newCmd.Flags().StringVar(&keystoreDir, "keystore", "", "directory to store the encrypted account in")

	exposeCmd := &cobra.Command{
		Use:   "expose [accountfile]",
		Short: "print the private key of an encrypted account file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountFile := a.cfg.AccountJSON
			if len(args) == 1 {
				accountFile = args[0]
			}
			if accountFile == "" {
				return errors.New("no account file given")
			}
			key, err := eth.LoadKeystoreKey(accountFile, a.cfg.AccountPass)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(crypto.FromECDSA(key)))
			return nil
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "print the balance of the configured account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Config.Validate(); err != nil {
				return err
			}
			ctx := cmd.Context()
			_, client, err := eth.Connect(ctx, a.cfg.Config)
			if err != nil {
				return err
			}
			defer client.Close()
			address, err := client.AccountAddress()
			if err != nil {
				return err
			}
			balance, err := client.AccountBalanceAt(ctx, nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", address.Hex(), formatValue(balance, a.cfg.Ether))
			return nil
		},
	}

	accountCmd.AddCommand(newCmd, exposeCmd, balanceCmd)
	return accountCmd
}
