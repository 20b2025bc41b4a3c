// Package main checks that every catalogued sprite exists in storage.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/crewportrait/internal/cmd/spriteaudit"
	"github.com/louisbranch/crewportrait/internal/platform/config"
)

func main() {
	cfg, err := spriteaudit.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SPRITE-AUDIT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := spriteaudit.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("sprite audit: %v", err)
	}
}
