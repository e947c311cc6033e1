package outing

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/faizmokh/salidas/internal/store"
)

// StorageKey is the single key the record list is kept under.
const StorageKey = "salidasParticulares"

// KV is the string-keyed durable store the adapter writes to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Adapter loads and saves the record list under one fixed key and delivers
// text exports. It satisfies Persister.
type Adapter struct {
	kv     KV
	key    string
	logger *zap.Logger
}

// NewAdapter wires an adapter over kv. An empty key falls back to StorageKey
// and a nil logger to a no-op logger.
func NewAdapter(kv KV, key string, logger *zap.Logger) *Adapter {
	if key == "" {
		key = StorageKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{kv: kv, key: key, logger: logger}
}

// Key returns the storage key in use.
func (a *Adapter) Key() string { return a.key }

// Load reads the stored records. A missing key yields an empty list; a value
// that cannot be decoded fails with ErrDeserialize.
func (a *Adapter) Load(ctx context.Context) ([]Record, error) {
	value, ok, err := a.kv.Get(ctx, a.key)
	if errors.Is(err, store.ErrCorrupt) {
		return nil, fmt.Errorf("%w: read %s: %v", ErrDeserialize, a.key, err)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.key, err)
	}
	if !ok {
		return nil, nil
	}
	return Decode(value)
}

// Save overwrites the stored value with the full record list.
func (a *Adapter) Save(ctx context.Context, records []Record) error {
	value, err := Encode(records)
	if err != nil {
		return err
	}
	if err := a.kv.Set(ctx, a.key, value); err != nil {
		return fmt.Errorf("write %s: %w", a.key, err)
	}
	a.logger.Debug("outings saved", zap.String("key", a.key), zap.Int("records", len(records)))
	return nil
}

// Remove deletes the stored value.
func (a *Adapter) Remove(ctx context.Context) error {
	if err := a.kv.Delete(ctx, a.key); err != nil {
		return fmt.Errorf("delete %s: %w", a.key, err)
	}
	a.logger.Debug("outings removed", zap.String("key", a.key))
	return nil
}

// Export renders records with ExportText and hands the report to sink.
func (a *Adapter) Export(ctx context.Context, records []Record, sink Sink) error {
	if sink == nil {
		return fmt.Errorf("%w: no sink configured", ErrSinkUnavailable)
	}
	if err := sink.WriteText(ExportText(records)); err != nil {
		a.logger.Warn("export failed", zap.Int("records", len(records)), zap.Error(err))
		if errors.Is(err, ErrSinkUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	a.logger.Info("export delivered", zap.Int("records", len(records)))
	return nil
}

// Open restores a Log from the adapter. Corrupt stored data is logged and
// replaced by an empty log; other failures are returned.
func Open(ctx context.Context, a *Adapter) (*Log, error) {
	records, err := a.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrDeserialize) {
			return nil, err
		}
		a.logger.Warn("stored outings unreadable, starting empty", zap.String("key", a.key), zap.Error(err))
		records = nil
	}

	log, err := NewLog(a, records)
	if err != nil {
		return nil, fmt.Errorf("restore outings: %w", err)
	}
	a.logger.Debug("outings restored", zap.Int("records", log.Len()), zap.Int("used_minutes", log.UsedMinutes()))
	return log, nil
}
