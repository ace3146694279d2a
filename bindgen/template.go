package bindgen

// tmplData is the data structure required to fill the binding template.
type tmplData struct {
	Package   string        // Name of the package to place the generated file in
	Type      string        // Type name of the binding, also the contract name in the address book
	InputABI  string        // Compacted JSON ABI the binding is generated from
	Calls     []*tmplMethod // Methods that only read state data
	Transacts []*tmplMethod // Methods that change state data
}

// tmplMethod contains the preprocessed data of a single contract method.
type tmplMethod struct {
	Name       string      // Go method name
	RawName    string      // Contract method name
	ID         []byte      // 4 byte selector
	Solidity   string      // Human readable solidity signature
	Inputs     []tmplField // Inputs with names that are valid go identifiers
	Outputs    []tmplField // Outputs, field names only matter if Structured
	Structured bool        // Whether the outputs are accumulated into a result struct
}

// tmplField is a single named argument or return value with its go type.
type tmplField struct {
	Name string
	Type string
}

const tmplSource = `// Code generated by bindgen - DO NOT EDIT.
// This file is a generated binding and any manual changes will be lost.

package {{.Package}}

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/threefoldfoundation/tft/evmbindings/contract"
)

// Reference imports to suppress errors if they are not otherwise used.
var (
	_ = context.Background
	_ = big.NewInt
	_ = common.Big1
	_ = types.BloomLookup
	_ = abi.ConvertType
)

// {{.Type}}ABI is the input ABI used to generate the binding from.
const {{.Type}}ABI = {{printf "%q" .InputABI}}

var {{decapitalise .Type}}Interface = contract.MustParseABI("{{.Type}}", {{.Type}}ABI)

// {{.Type}}Interface returns the description of the {{.Type}} contract.
func {{.Type}}Interface() *contract.Interface {
	return {{decapitalise .Type}}Interface
}

// {{.Type}} is a generated Go binding around the {{.Type}} contract.
type {{.Type}} struct {
	*contract.Binding
}

// New{{.Type}} binds the {{.Type}} contract at the address registered for
// "{{.Type}}" in the connection. With a nil conn the connection is requested
// from defaults.
func New{{.Type}}(conn *contract.Connection, defaults contract.DefaultProvider) (*{{.Type}}, error) {
	binding, err := contract.Bind({{decapitalise .Type}}Interface, conn, defaults)
	if err != nil {
		return nil, err
	}
	return &{{.Type}}{Binding: binding}, nil
}
{{$contract := .Type}}
{{range .Calls}}
{{if .Structured}}
// {{$contract}}{{.Name}}Result is the output of {{$contract}}.{{.Name}}.
type {{$contract}}{{.Name}}Result struct {
{{range .Outputs}}	{{.Name}} {{.Type}}
{{end}}}
{{end}}
// {{.Name}} is a free data retrieval call binding the contract method 0x{{printf "%x" .ID}}.
//
// Solidity: {{.Solidity}}
{{if .Structured -}}
func (_{{$contract}} *{{$contract}}) {{.Name}}(ctx context.Context{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}) ({{$contract}}{{.Name}}Result, error) {
	out, err := _{{$contract}}.Call(ctx, "{{.RawName}}"{{range .Inputs}}, {{.Name}}{{end}})
	outstruct := new({{$contract}}{{.Name}}Result)
	if err != nil {
		return *outstruct, err
	}
{{range $i, $o := .Outputs}}
	outstruct.{{.Name}} = *abi.ConvertType(out[{{$i}}], new({{.Type}})).(*{{.Type}}){{end}}

	return *outstruct, err
}
{{- else if .Outputs -}}
func (_{{$contract}} *{{$contract}}) {{.Name}}(ctx context.Context{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}) ({{(index .Outputs 0).Type}}, error) {
	out, err := _{{$contract}}.Call(ctx, "{{.RawName}}"{{range .Inputs}}, {{.Name}}{{end}})
	if err != nil {
		return *new({{(index .Outputs 0).Type}}), err
	}

	out0 := *abi.ConvertType(out[0], new({{(index .Outputs 0).Type}})).(*{{(index .Outputs 0).Type}})

	return out0, err
}
{{- else -}}
func (_{{$contract}} *{{$contract}}) {{.Name}}(ctx context.Context{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}) error {
	_, err := _{{$contract}}.Call(ctx, "{{.RawName}}"{{range .Inputs}}, {{.Name}}{{end}})
	return err
}
{{- end}}
{{end}}
{{range .Transacts}}
// {{.Name}} is a paid mutator transaction binding the contract method 0x{{printf "%x" .ID}}.
//
// Solidity: {{.Solidity}}
func (_{{$contract}} *{{$contract}}) {{.Name}}(ctx context.Context{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}, opts *contract.TxOptions) (*types.Transaction, error) {
	return _{{$contract}}.Transact(ctx, "{{.RawName}}", []interface{}{ {{- range $i, $in := .Inputs}}{{if $i}}, {{end}}{{.Name}}{{end -}} }, opts)
}
{{end}}
`
