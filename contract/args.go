package contract

import (
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned when a textual argument does not match its solidity type.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseArgs converts textual arguments, as given on a command line, to the Go
// values expected by the ABI encoder for the inputs of d.
//
// Fixed size byte strings accept 0x prefixed hex of the exact size, or a short
// ASCII key that is right padded with zeros (currency keys like "sUSD").
func ParseArgs(d CallDescriptor, raw []string) ([]interface{}, error) {
	if len(raw) != len(d.Inputs) {
		return nil, errors.Wrapf(ErrArgumentCount, "%s expects %d, got %d", d.Signature(), len(d.Inputs), len(raw))
	}
	args := make([]interface{}, len(raw))
	for i, input := range d.Inputs {
		typ, err := abi.NewType(input.Type, "", nil)
		if err != nil {
			return nil, err
		}
		args[i], err = parseArg(typ, raw[i])
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d (%s %s)", i, input.Type, input.Name)
		}
	}
	return args, nil
}

func parseArg(typ abi.Type, value string) (interface{}, error) {
	switch typ.T {
	case abi.AddressTy:
		if !common.IsHexAddress(value) {
			return nil, errors.Wrapf(ErrInvalidArgument, "%q is not an address", value)
		}
		return common.HexToAddress(value), nil
	case abi.BoolTy:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		return b, nil
	case abi.StringTy:
		return value, nil
	case abi.BytesTy:
		b, err := hexutil.Decode(value)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		return b, nil
	case abi.FixedBytesTy:
		return parseFixedBytes(typ, value)
	case abi.IntTy, abi.UintTy:
		return parseInteger(typ, value)
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "type %s can not be parsed from text", typ.String())
	}
}

func parseFixedBytes(typ abi.Type, value string) (interface{}, error) {
	var b []byte
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		decoded, err := hexutil.Decode(value)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		if len(decoded) != typ.Size {
			return nil, errors.Wrapf(ErrInvalidArgument, "expected %d bytes, got %d", typ.Size, len(decoded))
		}
		b = decoded
	} else {
		if len(value) > typ.Size {
			return nil, errors.Wrapf(ErrInvalidArgument, "%q is longer than %d bytes", value, typ.Size)
		}
		b = []byte(value)
	}
	array := reflect.New(typ.GetType()).Elem()
	reflect.Copy(array, reflect.ValueOf(b))
	return array.Interface(), nil
}

func parseInteger(typ abi.Type, value string) (interface{}, error) {
	n, ok := new(big.Int).SetString(value, 0)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "%q is not an integer", value)
	}
	if typ.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "%s can not be negative", typ.String())
		}
		if n.BitLen() > typ.Size {
			return nil, errors.Wrapf(ErrInvalidArgument, "%s overflows %s", value, typ.String())
		}
	} else if n.BitLen() > typ.Size-1 && !isMinInt(n, typ.Size) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s overflows %s", value, typ.String())
	}
	goType := typ.GetType()
	if goType.Kind() == reflect.Ptr {
		return n, nil
	}
	if typ.T == abi.UintTy {
		return reflect.ValueOf(n.Uint64()).Convert(goType).Interface(), nil
	}
	return reflect.ValueOf(n.Int64()).Convert(goType).Interface(), nil
}

// isMinInt reports whether n is -2^(size-1), the only value of that bit length an intN can hold.
func isMinInt(n *big.Int, size int) bool {
	lowest := new(big.Int).Lsh(big.NewInt(1), uint(size-1))
	return n.Cmp(lowest.Neg(lowest)) == 0
}
