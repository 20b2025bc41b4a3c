// Package main drafts a crew from a description and prints it as JSON.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/crewportrait/internal/cmd/crew"
	"github.com/louisbranch/crewportrait/internal/platform/config"
)

func main() {
	cfg, err := crew.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[CREW] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := crew.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("crew: %v", err)
	}
}
