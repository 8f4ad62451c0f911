package app

import (
	"fmt"
	"io"

	"taskpad/internal/config"
	"taskpad/internal/storage"
	"taskpad/internal/tasks"
)

var (
	globalSlot  storage.Slot
	globalStore *tasks.Store
)

func MustOpenStorage() {
	cfg := config.Global().Storage

	switch cfg.Backend {
	case config.StorageBackendFile:
		globalSlot = storage.NewFileSlot(cfg.Path)
	case config.StorageBackendSQLite:
		slot, err := storage.OpenSQLiteSlot(cfg.Path, cfg.Key)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("failed to open sqlite slot")
			panic(err)
		}
		globalSlot = slot
	default:
		globalLogger.Error().
			Str("backend", cfg.Backend).
			Msg("unknown storage backend")
		panic(fmt.Errorf("unknown storage backend: %s", cfg.Backend))
	}

	bridge := storage.NewBridge(globalLogger, globalSlot)
	globalStore = tasks.NewStore(globalLogger, bridge)

	globalLogger.Info().
		Str("backend", cfg.Backend).
		Str("path", cfg.Path).
		Msg("opened storage")
}

func CloseStorage() {
	if closer, ok := globalSlot.(io.Closer); ok {
		err := closer.Close()
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("failed to close storage")
			return
		}
	}
	globalLogger.Info().Msg("closed storage")
}
