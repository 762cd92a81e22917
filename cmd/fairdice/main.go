package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	fairdicecmd "github.com/louisbranch/fairdice/internal/cmd/fairdice"
	"github.com/louisbranch/fairdice/internal/platform/config"
)

func main() {
	cfg, err := fairdicecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[FAIRDICE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = fairdicecmd.Run(ctx, cfg, os.Stdin, os.Stdout)
	switch {
	case err == nil, fairdicecmd.IsQuit(err):
		return
	case fairdicecmd.IsUsageError(err):
		msg, usage := fairdicecmd.ErrorMessage(cfg, err)
		stop()
		config.ExitUsagef(usage, "%s", msg)
	default:
		stop()
		log.Fatalf("game: %v", err)
	}
}
