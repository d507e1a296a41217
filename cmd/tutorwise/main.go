// Command tutorwise is the CLI client for the Tutorwise backend.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/tutorwise/tutorwise-cli/internal/adapters/driven/api"
	transcripts "github.com/tutorwise/tutorwise-cli/internal/adapters/driven/chat"
	fileconfig "github.com/tutorwise/tutorwise-cli/internal/adapters/driven/config/file"
	"github.com/tutorwise/tutorwise-cli/internal/adapters/driven/session"
	filestate "github.com/tutorwise/tutorwise-cli/internal/adapters/driven/state/file"
	"github.com/tutorwise/tutorwise-cli/internal/adapters/driven/storage/sqlite"
	"github.com/tutorwise/tutorwise-cli/internal/adapters/driven/watch"
	"github.com/tutorwise/tutorwise-cli/internal/adapters/driving/cli"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driving"
	"github.com/tutorwise/tutorwise-cli/internal/core/services"
	"github.com/tutorwise/tutorwise-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// defaultBaseURL is used when the config file has no api.base_url.
const defaultBaseURL = "http://localhost:8000"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := fileconfig.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	state, err := filestate.NewStateStore("")
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}

	sessionStore, err := session.NewStore(state)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	sessionStore.SetResetHook(func() {
		logger.Info("session ended, local credentials cleared")
	})

	baseURL := cfg.GetString(fileconfig.KeyBaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := api.DefaultTimeout
	if secs := cfg.GetInt(fileconfig.KeyTimeoutSeconds); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	gateway, err := api.NewGateway(api.GatewayConfig{
		BaseURL: baseURL,
		Timeout: timeout,
	}, sessionStore)
	if err != nil {
		return fmt.Errorf("configure API gateway: %w", err)
	}
	backend := api.NewClient(gateway)

	transcriptStore, err := transcripts.NewTranscriptStore(state)
	if err != nil {
		return fmt.Errorf("restore transcripts: %w", err)
	}

	contentService := services.NewContentService(backend, sessionStore)

	cli.SetServices(cli.Services{
		Account: services.NewAccountService(backend, sessionStore),
		Space:   services.NewSpaceService(backend, sessionStore),
		Content: contentService,
		Chat:    services.NewChatService(backend, sessionStore, transcriptStore),
		Watch:   buildWatchService(cfg, contentService),
	})
	cli.SetVersion(version)

	return cli.Execute()
}

// buildWatchService wires the directory watcher. A failure here only
// disables the watch command, everything else still works.
func buildWatchService(cfg *fileconfig.ConfigStore, contents *services.ContentService) driving.WatchService {
	watcher, err := watch.NewWatcher()
	if err != nil {
		logger.Warn("directory watching unavailable: %v", err)
		return nil
	}

	ledger, err := sqlite.NewLedger("")
	if err != nil {
		logger.Warn("upload ledger unavailable: %v", err)
		return nil
	}

	return services.NewWatchService(contents, watcher, ledger, services.WatchConfig{
		Extensions:       cfg.GetStringSlice(fileconfig.KeyWatchExts),
		UploadsPerMinute: cfg.GetInt(fileconfig.KeyWatchPerMinute),
	})
}
