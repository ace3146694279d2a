package main

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// weiDecimals is the number of decimals of an ether amount expressed in wei.
const weiDecimals = 18

// formatValue renders a decoded contract output. Integers are printed in
// ether instead of wei when ether is set.
func formatValue(value interface{}, ether bool) string {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return "0"
		}
		if ether {
			return decimal.NewFromBigInt(v, -weiDecimals).String()
		}
		return v.String()
	case common.Address:
		return v.Hex()
	case []byte:
		return hexutil.Encode(v)
	case string:
		return v
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			raw := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(raw), rv)
			return formatFixedBytes(raw)
		}
		fallthrough
	case reflect.Slice:
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = formatValue(rv.Index(i).Interface(), ether)
		}
		return "[" + strings.Join(items, ", ") + "]"
	}
	return fmt.Sprint(value)
}

// formatFixedBytes prints fixed size byte arrays as hex, followed by the text
// they hold if they are a padded ascii string such as a currency key.
func formatFixedBytes(raw []byte) string {
	encoded := hexutil.Encode(raw)
	text := strings.TrimRight(string(raw), "\x00")
	if text == "" {
		return encoded
	}
	for _, c := range []byte(text) {
		if c < 0x20 || c > 0x7e {
			return encoded
		}
	}
	return fmt.Sprintf("%s (%s)", encoded, text)
}

// parseAmount parses an integer amount in wei, or a decimal amount in ether
// when ether is set. An empty string is a nil amount.
func parseAmount(value string, ether bool) (*big.Int, error) {
	if value == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount %q", value)
	}
	if ether {
		amount = amount.Shift(weiDecimals)
	}
	if !amount.IsInteger() {
		return nil, errors.Errorf("amount %q has more decimals than wei allow", value)
	}
	if amount.IsNegative() {
		return nil, errors.Errorf("amount %q is negative", value)
	}
	return amount.BigInt(), nil
}
