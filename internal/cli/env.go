package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/salidas/internal/config"
	"github.com/faizmokh/salidas/internal/files"
	"github.com/faizmokh/salidas/internal/logging"
	"github.com/faizmokh/salidas/internal/outing"
	"github.com/faizmokh/salidas/internal/store"
)

// Env bundles the collaborators every command works against. Commands read it
// at run time, so the root command can populate it after flags are parsed.
type Env struct {
	Log     *outing.Log
	Adapter *outing.Adapter
	Sink    outing.Sink
	Logger  *zap.Logger

	// Now supplies the defaults for --date and --departure.
	Now func() time.Time
	// Confirm asks a yes/no question before destructive actions.
	Confirm func(title string) (bool, error)
	// Form collects an outing interactively for add --form.
	Form func(in *addInput) error

	store store.Store
	// restoreErr holds why stored outings could not be accounted for. Only
	// commands annotated with recoversAnnotation run while it is set.
	restoreErr error
}

// recoversAnnotation marks commands that can run over a stored log that
// failed to restore.
const recoversAnnotation = "salidas/recovers"

// open loads config, the logger and the store from the data directory and
// restores the outing log.
func (e *Env) open(ctx context.Context, manager *files.Manager, storeFlag string, verbose bool) error {
	if err := manager.EnsureBase(); err != nil {
		return err
	}

	cfg, err := config.Load(manager.ConfigPath())
	if err != nil {
		return err
	}
	if storeFlag != "" {
		cfg.Store = storeFlag
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(manager.LogPath(), cfg.LogLevel, verbose)
	if err != nil {
		return err
	}

	kv, err := store.Open(cfg.Store, manager)
	if err != nil {
		_ = logger.Sync()
		return err
	}
	logger.Debug("store opened", zap.String("backend", cfg.Store), zap.String("base", manager.BasePath()))

	adapter := outing.NewAdapter(kv, cfg.StorageKey, logger)
	log, err := outing.Open(ctx, adapter)
	if errors.Is(err, outing.ErrParse) {
		logger.Warn("stored outings cannot be accounted for", zap.Error(err))
		e.restoreErr = fmt.Errorf("open outings: %w (run `salidas clear` to reset)", err)
	} else if err != nil {
		kv.Close()
		_ = logger.Sync()
		return fmt.Errorf("open outings: %w", err)
	}

	e.store = kv
	e.Logger = logger
	e.Adapter = adapter
	e.Log = log
	e.fillDefaults()
	return nil
}

// checkRestored fails unless the log was restored or cmd can recover from a
// log that was not.
func (e *Env) checkRestored(cmd *cobra.Command) error {
	if e.restoreErr == nil || cmd.Annotations[recoversAnnotation] == "true" {
		return nil
	}
	return e.restoreErr
}

func (e *Env) fillDefaults() {
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	if e.Sink == nil {
		e.Sink = outing.ClipboardSink{}
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Confirm == nil {
		e.Confirm = confirmWithForm
	}
	if e.Form == nil {
		e.Form = runAddForm
	}
}

// Close releases the store and flushes the logger.
func (e *Env) Close() error {
	var err error
	if e.store != nil {
		err = e.store.Close()
		e.store = nil
	}
	if e.Logger != nil {
		_ = e.Logger.Sync()
	}
	return err
}
