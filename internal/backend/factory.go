package backend

import (
	"fmt"
	"log/slog"

	"saldo/internal/kv"
)

// Factory creates slots based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateSlot builds the configured slot implementation.
func (f *Factory) CreateSlot(cfg Config) (*Result, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case Memory:
		f.logger.Info("Initialized memory backend")
		return &Result{Slot: kv.NewMemory()}, nil

	case File:
		dir := cfg.DataDirectory
		if dir == "" {
			dir = "data"
		}
		slot, err := kv.NewFile(dir)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		f.logger.Info("Initialized file backend", "data_directory", dir)
		return &Result{Slot: slot}, nil

	case SQLite:
		slot, err := kv.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		f.logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Slot: slot, Cleanup: slot.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
