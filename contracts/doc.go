/*
Package contracts contains the generated contract bindings.
Each subpackage has a `generate.go` file to create the go bindings from the contract abi using `go generate`.
*/
package contracts
