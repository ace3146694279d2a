package exchanger

//go:generate go run ../../cmd/bindgen --abi Exchanger.abi --pkg exchanger --type Exchanger --out exchanger.go
