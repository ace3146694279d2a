package contract

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// Mutability tells whether a contract method only reads state or changes it.
type Mutability int

const (
	// Call is a read-only method, executed locally by the node.
	Call Mutability = iota
	// Transaction is a state changing method that has to be signed and mined.
	Transaction
)

func (m Mutability) String() string {
	switch m {
	case Call:
		return "call"
	case Transaction:
		return "transaction"
	default:
		return "unknown"
	}
}

// Common solidity types used in descriptors.
const (
	TypeAddress = "address"
	TypeBool    = "bool"
	TypeBytes32 = "bytes32"
	TypeUint256 = "uint256"
	TypeInt256  = "int256"
	TypeString  = "string"
)

// Param is a single named and typed method argument or return value.
// Type is the solidity type, for example "address", "bytes32" or "uint256".
type Param struct {
	Name string
	Type string
}

// CallDescriptor describes a single callable method of a contract.
type CallDescriptor struct {
	Name       string
	Inputs     []Param
	Outputs    []Param
	Mutability Mutability
	Payable    bool
}

// IsCall returns true if the method does not change contract state.
func (d CallDescriptor) IsCall() bool {
	return d.Mutability == Call
}

// Signature returns the canonical solidity signature, e.g. "owner()".
func (d CallDescriptor) Signature() string {
	types := make([]string, len(d.Inputs))
	for i, in := range d.Inputs {
		types[i] = in.Type
	}
	return d.Name + "(" + strings.Join(types, ",") + ")"
}

// Interface is the static description of a deployed contract: its name and
// the methods that can be invoked on it. It is immutable once created and can
// be shared between bindings.
type Interface struct {
	name    string
	methods []CallDescriptor
	index   map[string]int
	abi     abi.ABI
}

// NewInterface validates the descriptors and compiles them to an ABI.
func NewInterface(name string, descriptors ...CallDescriptor) (*Interface, error) {
	if name == "" {
		return nil, errors.New("contract interface needs a name")
	}
	iface := &Interface{
		name:    name,
		methods: make([]CallDescriptor, 0, len(descriptors)),
		index:   make(map[string]int, len(descriptors)),
		abi:     abi.ABI{Methods: make(map[string]abi.Method, len(descriptors))},
	}
	for _, d := range descriptors {
		if d.Name == "" {
			return nil, errors.Errorf("contract %s: method without a name", name)
		}
		if _, exists := iface.index[d.Name]; exists {
			return nil, errors.Errorf("contract %s: duplicate method %s", name, d.Name)
		}
		method, err := compileMethod(d)
		if err != nil {
			return nil, errors.Wrapf(err, "contract %s", name)
		}
		d.Inputs = append([]Param(nil), d.Inputs...)
		d.Outputs = append([]Param(nil), d.Outputs...)
		iface.index[d.Name] = len(iface.methods)
		iface.methods = append(iface.methods, d)
		iface.abi.Methods[d.Name] = method
	}
	return iface, nil
}

func compileMethod(d CallDescriptor) (abi.Method, error) {
	inputs, err := compileArguments(d.Inputs)
	if err != nil {
		return abi.Method{}, errors.Wrapf(err, "inputs of %s", d.Name)
	}
	outputs, err := compileArguments(d.Outputs)
	if err != nil {
		return abi.Method{}, errors.Wrapf(err, "outputs of %s", d.Name)
	}
	mutability := "view"
	if d.Mutability == Transaction {
		mutability = "nonpayable"
		if d.Payable {
			mutability = "payable"
		}
	} else if d.Payable {
		return abi.Method{}, errors.Errorf("call %s can not be payable", d.Name)
	}
	return abi.NewMethod(d.Name, d.Name, abi.Function, mutability, d.Mutability == Call, d.Payable, inputs, outputs), nil
}

func compileArguments(params []Param) (abi.Arguments, error) {
	args := make(abi.Arguments, 0, len(params))
	for _, p := range params {
		typ, err := abi.NewType(p.Type, "", nil)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %q", p.Name)
		}
		if typ.T == abi.TupleTy {
			return nil, errors.Errorf("parameter %q: tuple types are not supported", p.Name)
		}
		args = append(args, abi.Argument{Name: p.Name, Type: typ})
	}
	return args, nil
}

// MustNewInterface is like NewInterface but panics on invalid descriptors.
func MustNewInterface(name string, descriptors ...CallDescriptor) *Interface {
	iface, err := NewInterface(name, descriptors...)
	if err != nil {
		panic(err)
	}
	return iface
}

// ParseABI builds an Interface from a JSON ABI as produced by solc.
// Only functions are kept, in the order they appear in the document.
func ParseABI(name string, r io.Reader) (*Interface, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse the ABI of %s", name)
	}
	var entries []struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}
	if err = json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrapf(err, "failed to parse the ABI of %s", name)
	}

	descriptors := make([]CallDescriptor, 0, len(parsed.Methods))
	for _, entry := range entries {
		// the type defaults to function when omitted
		if entry.Type != "" && entry.Type != "function" {
			continue
		}
		method, ok := parsed.Methods[entry.Name]
		if !ok || method.Name != method.RawName {
			return nil, errors.Errorf("contract %s: overloaded method %s is not supported", name, entry.Name)
		}
		d := CallDescriptor{
			Name:       method.RawName,
			Inputs:     paramsFromArguments(method.Inputs),
			Outputs:    paramsFromArguments(method.Outputs),
			Mutability: Transaction,
			Payable:    method.IsPayable(),
		}
		if method.IsConstant() {
			d.Mutability = Call
		}
		descriptors = append(descriptors, d)
	}
	return NewInterface(name, descriptors...)
}

// MustParseABI is like ParseABI but panics if the ABI can not be parsed.
// It simplifies the initialization of generated bindings.
func MustParseABI(name string, definition string) *Interface {
	iface, err := ParseABI(name, strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return iface
}

func paramsFromArguments(args abi.Arguments) []Param {
	params := make([]Param, len(args))
	for i, arg := range args {
		params[i] = Param{Name: arg.Name, Type: arg.Type.String()}
	}
	return params
}

// Name of the contract, also the key in the address book.
func (i *Interface) Name() string {
	return i.name
}

// Method returns the descriptor of the named method.
func (i *Interface) Method(name string) (CallDescriptor, bool) {
	idx, ok := i.index[name]
	if !ok {
		return CallDescriptor{}, false
	}
	return i.methods[idx], true
}

// Methods returns all descriptors in declaration order.
func (i *Interface) Methods() []CallDescriptor {
	return append([]CallDescriptor(nil), i.methods...)
}

// Calls returns the read-only methods.
func (i *Interface) Calls() []CallDescriptor {
	return i.filter(Call)
}

// Transactions returns the state changing methods.
func (i *Interface) Transactions() []CallDescriptor {
	return i.filter(Transaction)
}

func (i *Interface) filter(m Mutability) []CallDescriptor {
	var result []CallDescriptor
	for _, d := range i.methods {
		if d.Mutability == m {
			result = append(result, d)
		}
	}
	return result
}

// ABI returns a copy of the compiled ABI used to encode calls and decode results.
// The methods map is copied, the argument slices of each method are shared and
// must not be modified.
func (i *Interface) ABI() abi.ABI {
	compiled := i.abi
	compiled.Methods = make(map[string]abi.Method, len(i.abi.Methods))
	for name, method := range i.abi.Methods {
		compiled.Methods[name] = method
	}
	return compiled
}
