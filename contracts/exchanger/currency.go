package exchanger

import (
	"bytes"

	"github.com/pkg/errors"
)

// ErrCurrencyKeyTooLong is returned for currency codes that do not fit in a bytes32.
var ErrCurrencyKeyTooLong = errors.New("currency key is longer than 32 bytes")

// CurrencyKey encodes a currency code such as "sUSD" as the right padded
// bytes32 the Exchanger uses to identify synths.
func CurrencyKey(code string) ([32]byte, error) {
	var key [32]byte
	if len(code) > len(key) {
		return key, errors.Wrapf(ErrCurrencyKeyTooLong, "%q", code)
	}
	copy(key[:], code)
	return key, nil
}

// MustCurrencyKey is like CurrencyKey but panics if the code is too long.
func MustCurrencyKey(code string) [32]byte {
	key, err := CurrencyKey(code)
	if err != nil {
		panic(err)
	}
	return key
}

// CurrencyCode decodes a currency key back to its code.
func CurrencyCode(key [32]byte) string {
	return string(bytes.TrimRight(key[:], "\x00"))
}
