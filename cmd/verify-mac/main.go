package main

import (
	"errors"
	"flag"
	"os"

	"github.com/louisbranch/fairdice/internal/platform/config"
	"github.com/louisbranch/fairdice/internal/tools/verifymac"
)

func main() {
	cfg, err := verifymac.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := verifymac.Run(cfg, os.Stdout); err != nil {
		if errors.Is(err, verifymac.ErrMismatch) {
			os.Exit(config.ExitError)
		}
		config.Exitf("verify mac: %v", err)
	}
}
