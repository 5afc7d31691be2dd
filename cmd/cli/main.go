package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/internal/console"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	log "github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// logs go to stderr so they never interleave with the tables on stdout
	deps, err := initializer.InitializeDependencies(cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	c := console.New(app.New(deps, cfg), os.Stdin, os.Stdout,
		console.WithBankName(cfg.CLI.BankName),
		console.WithStyle(interactive),
	)
	return c.Run(context.Background())
}
