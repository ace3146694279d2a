// Package bindgen generates typed Go bindings on top of contract.Binding
// from a JSON contract ABI.
package bindgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"strings"
	"text/template"
	"unicode"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"

	"github.com/threefoldfoundation/tft/evmbindings/contract"
)

// Options configure the generation of a single binding.
type Options struct {
	Package string // package name of the generated file
	Type    string // go type of the binding and name of the contract
	ABI     string // JSON ABI of the contract
}

// Validate checks the options before anything is generated.
func (o *Options) Validate() error {
	if !token.IsIdentifier(o.Package) {
		return errors.Errorf("invalid package name %q", o.Package)
	}
	if !token.IsIdentifier(o.Type) || !token.IsExported(o.Type) {
		return errors.Errorf("invalid type name %q, it must be an exported identifier", o.Type)
	}
	if strings.TrimSpace(o.ABI) == "" {
		return errors.New("no ABI given")
	}
	return nil
}

// names the generated type already has through the embedded contract.Binding
var promoted = map[string]bool{
	"Binding":   true,
	"Address":   true,
	"Interface": true,
	"ReadOnly":  true,
	"Call":      true,
	"Transact":  true,
}

// Generate renders the binding source for the contract described by opts.
// The result is formatted go source.
func Generate(opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	iface, err := contract.ParseABI(opts.Type, strings.NewReader(opts.ABI))
	if err != nil {
		return nil, err
	}
	var compact bytes.Buffer
	if err = json.Compact(&compact, []byte(opts.ABI)); err != nil {
		return nil, errors.Wrap(err, "failed to compact the ABI")
	}

	data := &tmplData{
		Package:  opts.Package,
		Type:     opts.Type,
		InputABI: compact.String(),
	}
	compiled := iface.ABI()
	names := make(map[string]string)
	for _, d := range iface.Methods() {
		original := compiled.Methods[d.Name]
		name := abi.ToCamelCase(d.Name)
		if promoted[name] {
			return nil, errors.Errorf("method %s of %s clashes with Binding.%s", d.Name, opts.Type, name)
		}
		if other, exists := names[name]; exists {
			return nil, errors.Errorf("methods %s and %s of %s both bind to %s", other, d.Name, opts.Type, name)
		}
		names[name] = d.Name

		method := &tmplMethod{
			Name:       name,
			RawName:    d.Name,
			ID:         original.ID,
			Solidity:   original.String(),
			Inputs:     make([]tmplField, len(original.Inputs)),
			Outputs:    make([]tmplField, len(original.Outputs)),
			Structured: len(original.Outputs) > 1,
		}
		inputNames := make([]string, len(original.Inputs))
		for i, input := range original.Inputs {
			inputNames[i] = input.Name
		}
		inputNames = uniqueNames(inputNames, "arg%d", reservedNames(opts.Type))
		for i, input := range original.Inputs {
			method.Inputs[i] = tmplField{Name: inputNames[i], Type: bindType(input.Type)}
		}
		fieldNames := make([]string, len(original.Outputs))
		for i, output := range original.Outputs {
			fieldNames[i] = abi.ToCamelCase(output.Name)
		}
		fieldNames = uniqueNames(fieldNames, "Out%d", nil)
		for i, output := range original.Outputs {
			method.Outputs[i] = tmplField{Name: fieldNames[i], Type: bindType(output.Type)}
		}
		if d.IsCall() {
			data.Calls = append(data.Calls, method)
		} else {
			data.Transacts = append(data.Transacts, method)
		}
	}

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"decapitalise": decapitalise,
	}).Parse(tmplSource))
	var buffer bytes.Buffer
	if err = tmpl.Execute(&buffer, data); err != nil {
		return nil, errors.Wrap(err, "failed to render the binding")
	}
	code, err := format.Source(buffer.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "generated invalid go code\n%s", buffer.String())
	}
	return code, nil
}

// reservedNames are the identifiers a parameter of a generated method can not
// shadow: the locals and the receiver of the method, the imported packages and
// everything predeclared.
func reservedNames(typeName string) map[string]bool {
	reserved := map[string]bool{
		"_":            true,
		"_" + typeName: true,
		"ctx":          true,
		"opts":         true,
		"out":          true,
		"err":          true,
		"outstruct":    true,
		"context":      true,
		"big":          true,
		"abi":          true,
		"common":       true,
		"types":        true,
		"contract":     true,
	}
	for _, name := range types.Universe.Names() {
		reserved[name] = true
	}
	return reserved
}

// uniqueNames keeps the valid names that do not clash and replaces the others
// with fallback, formatted with the position and suffixed with "_" until it
// is unique. Kept names are claimed first so a generated name never takes
// an explicit one.
func uniqueNames(names []string, fallback string, reserved map[string]bool) []string {
	result := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" || name == "_" || token.IsKeyword(name) || !token.IsIdentifier(name) || reserved[name] || used[name] {
			continue
		}
		result[i] = name
		used[name] = true
	}
	for i := range result {
		if result[i] != "" {
			continue
		}
		name := fmt.Sprintf(fallback, i)
		for used[name] || reserved[name] {
			name += "_"
		}
		result[i] = name
		used[name] = true
	}
	return result
}

// bindType maps a solidity type to the go type the abi package decodes it to.
func bindType(t abi.Type) string {
	switch t.T {
	case abi.AddressTy:
		return "common.Address"
	case abi.BoolTy:
		return "bool"
	case abi.StringTy:
		return "string"
	case abi.BytesTy:
		return "[]byte"
	case abi.FixedBytesTy:
		return fmt.Sprintf("[%d]byte", t.Size)
	case abi.FunctionTy:
		return "[24]byte"
	case abi.IntTy, abi.UintTy:
		switch t.Size {
		case 8, 16, 32, 64:
			if t.T == abi.UintTy {
				return fmt.Sprintf("uint%d", t.Size)
			}
			return fmt.Sprintf("int%d", t.Size)
		}
		return "*big.Int"
	case abi.SliceTy:
		return "[]" + bindType(*t.Elem)
	case abi.ArrayTy:
		return fmt.Sprintf("[%d]", t.Size) + bindType(*t.Elem)
	}
	// tuples are rejected when the ABI is parsed
	return "interface{}"
}

func decapitalise(input string) string {
	if input == "" {
		return input
	}
	runes := []rune(input)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
