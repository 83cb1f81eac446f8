package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/dyluth/shelf/internal/circulation"
	"github.com/dyluth/shelf/internal/config"
	"github.com/dyluth/shelf/internal/logging"
	"github.com/dyluth/shelf/internal/printer"
	"github.com/dyluth/shelf/internal/storage"
	"github.com/dyluth/shelf/pkg/catalog"
	"github.com/sirupsen/logrus"
)

// app is everything a command needs once configuration has been resolved.
type app struct {
	cfg   *config.ShelfConfig
	log   *logging.Logger
	store storage.Store
	inv   *catalog.Inventory
	svc   *circulation.Service
}

// openApp loads configuration, opens the log and the store, and restores the
// inventory. Errors are already printed when it returns. interactive is set
// when the shell will own the terminal.
func openApp(ctx context.Context, interactive bool) (*app, error) {
	path := resolveConfigPath()

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, printer.ErrorWithContext(
			"invalid configuration",
			err.Error(),
			map[string]string{"Config": path},
			[]string{
				"Fix the reported field in the file",
				"Regenerate a default configuration:\n     shelf init --force",
			},
		)
	}

	if err := applyOverrides(cfg); err != nil {
		return nil, printer.Error("invalid flags", err.Error(), []string{
			"--data only applies to the file backend",
		})
	}

	log := openLogger(cfg.Log, interactive)

	store, err := storage.Open(cfg)
	if err != nil {
		log.Close()
		return nil, printer.Error("failed to open storage", err.Error(), nil)
	}

	if rs, ok := store.(*storage.RedisStore); ok {
		if err := rs.Ping(ctx); err != nil {
			store.Close()
			log.Close()
			return nil, printer.ErrorWithContext(
				"Redis is unreachable",
				err.Error(),
				map[string]string{"URL": cfg.Storage.RedisURL},
				[]string{
					"Start Redis and try again",
					"Use the local file instead:\n     shelf --backend file",
				},
			)
		}
	}

	mode, err := catalog.ParseSearchMode(cfg.Search.Mode)
	if err != nil {
		mode = catalog.SearchLiteral
	}

	state := storage.Restore(ctx, store, log)
	inv := catalog.NewInventory(state, store)

	log.WithFields(logrus.Fields{
		"backend": cfg.Storage.Backend,
		"books":   inv.Count(),
	}).Info("inventory restored")

	return &app{
		cfg:   cfg,
		log:   log,
		store: store,
		inv:   inv,
		svc:   circulation.New(inv, mode, log),
	}, nil
}

// openLogger opens the session log. If the file is unavailable one-shot
// commands log to stderr, while the shell drops log lines so they cannot
// draw over the menu.
func openLogger(cfg *config.LogConfig, interactive bool) *logging.Logger {
	log, err := logging.New(cfg)
	if err == nil {
		return log
	}

	if interactive {
		log.Close()
		printer.Warning("logging disabled: %v\n", err)
		return logging.Discard()
	}
	printer.Warning("logging to stderr: %v\n", err)
	return log
}

// applyOverrides folds --backend and --data into cfg and re-validates it.
func applyOverrides(cfg *config.ShelfConfig) error {
	if backendFlag != "" {
		cfg.Storage.Backend = backendFlag
	}
	if dataPath != "" {
		if backendFlag != "" && backendFlag != config.BackendFile {
			return fmt.Errorf("--data cannot be combined with --backend %s", backendFlag)
		}
		cfg.Storage.Backend = config.BackendFile
		cfg.Storage.Path = dataPath
	}
	return cfg.Validate()
}

// Close releases the store and the log file.
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.WithError(err).Warn("failed to close store")
	}
	a.log.Close()
}

// location describes where the inventory lives, for error output.
func (a *app) location() string {
	switch a.cfg.Storage.Backend {
	case config.BackendFile:
		return a.cfg.Storage.Path
	case config.BackendRedis:
		return storage.InventoryKey(a.cfg.Library)
	default:
		return "memory"
	}
}

// fail prints err the way the operator should see it and returns an error for
// Cobra. Conflicts and misses are warnings but still fail the command.
func (a *app) fail(err error) error {
	var (
		validation *catalog.ValidationError
		notFound   *catalog.NotFoundError
		conflict   *circulation.StateConflictError
		persist    *catalog.PersistError
	)

	switch {
	case err == nil:
		return nil
	case errors.As(err, &validation):
		return printer.Error("invalid input", err.Error(), suggestionsFor(validation.Field))
	case errors.As(err, &notFound):
		printer.Warning("%s\n", err)
		return err
	case errors.As(err, &conflict):
		printer.Warning("%s\n", err)
		return err
	case errors.As(err, &persist):
		return printer.ErrorWithContext(
			"change applied but not saved",
			err.Error(),
			map[string]string{
				"Backend":  a.cfg.Storage.Backend,
				"Location": a.location(),
			},
			[]string{"Check that the location is writable and retry the command"},
		)
	default:
		return printer.Error("command failed", err.Error(), nil)
	}
}

func suggestionsFor(field string) []string {
	switch field {
	case "prefix":
		return []string{"The prefix is exactly two hex characters, e.g. 'ab' or '0f'"}
	case "number":
		return []string{"The number is a non-negative integer, e.g. 0 or 42"}
	case "id":
		return []string{"Book ids are a hex prefix, a dash and a number, e.g. 'ab-12'"}
	case "title", "author":
		return []string{"Title and author cannot be empty; quote values with spaces"}
	case "term":
		return []string{
			"Pass a non-empty search term",
			"With --pattern the term must be a valid regular expression",
		}
	default:
		return nil
	}
}
