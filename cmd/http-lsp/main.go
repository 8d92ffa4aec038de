// Command http-lsp is a language server for plain-text .http request
// files. It tracks the requests in open documents, publishes send
// affordances as code lenses and code actions, and on command executes
// a request and appends the exchange to a transcript file next to the
// document.
//
// The server speaks LSP over stdio. Configuration is read from
// $XDG_CONFIG_HOME/http-lsp/config.toml and reloaded live while the
// server runs.
package main

import (
	"fmt"
	"os"

	configfile "github.com/cramhead/http-client/internal/adapters/driven/config/file"
	"github.com/cramhead/http-client/internal/adapters/driven/executor/nethttp"
	"github.com/cramhead/http-client/internal/adapters/driven/storage/memory"
	transcriptfile "github.com/cramhead/http-client/internal/adapters/driven/transcript/file"
	"github.com/cramhead/http-client/internal/adapters/driving/lsp"
	"github.com/cramhead/http-client/internal/core/services"
	"github.com/cramhead/http-client/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := configStore.Watch(); err != nil {
		return fmt.Errorf("watching configuration: %w", err)
	}
	defer configStore.Close()

	settingsService := services.NewSettingsService(configStore)

	// Logging is configured once at startup; only stderr or the
	// configured file are used, stdout carries protocol frames.
	logSettings := settingsService.Get().Log
	if err := logging.Configure(logSettings.Verbosity, logSettings.File); err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}

	docStore := memory.NewDocumentStore()
	executor := nethttp.NewExecutor()
	sink := transcriptfile.NewSink(nil, func() string {
		return settingsService.Get().Transcript.Filename
	})

	server, err := lsp.NewServer(&lsp.Ports{
		Documents:   services.NewDocumentSyncService(docStore),
		Affordances: services.NewAffordanceService(docStore),
		Invocations: services.NewInvocationService(docStore, executor, sink, settingsService),
		Settings:    settingsService,
	})
	if err != nil {
		return err
	}

	return server.Run()
}
