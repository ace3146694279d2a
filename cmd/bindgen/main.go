package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	flag "github.com/spf13/pflag"

	"github.com/threefoldfoundation/tft/evmbindings/bindgen"
)

var Version = "development"

func main() {
	var opts bindgen.Options
	var abiFile, outFile string

	flag.StringVar(&abiFile, "abi", "", "path to the contract ABI JSON, - for stdin")
	flag.StringVar(&opts.Package, "pkg", "", "package name of the generated binding")
	flag.StringVar(&opts.Type, "type", "", "go type of the binding, defaults to the ABI file name")
	flag.StringVar(&outFile, "out", "", "output file, stdout if not set")
	version := flag.Bool("version", false, "Print the version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s (version %s):\n", os.Args[0], Version)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Println(Version)
		os.Exit(0)
	}

	log.Root().SetHandler(log.LvlFilterHandler(log.LvlInfo, log.StreamHandler(os.Stderr, log.TerminalFormat(true))))

	if abiFile == "" {
		log.Crit("No ABI file given, use --abi")
	}
	var (
		definition []byte
		err        error
	)
	if abiFile == "-" {
		definition, err = io.ReadAll(os.Stdin)
	} else {
		definition, err = os.ReadFile(abiFile)
	}
	if err != nil {
		log.Crit("Failed to read the ABI", "file", abiFile, "err", err)
	}
	opts.ABI = string(definition)
	if opts.Type == "" && abiFile != "-" {
		opts.Type = strings.TrimSuffix(filepath.Base(abiFile), filepath.Ext(abiFile))
	}
	if opts.Package == "" {
		opts.Package = strings.ToLower(opts.Type)
	}

	code, err := bindgen.Generate(opts)
	if err != nil {
		log.Crit("Failed to generate the binding", "err", err)
	}
	if outFile == "" {
		fmt.Print(string(code))
		return
	}
	if err = os.WriteFile(outFile, code, 0o644); err != nil {
		log.Crit("Failed to write the binding", "file", outFile, "err", err)
	}
	log.Info("Generated binding", "type", opts.Type, "file", outFile)
}
