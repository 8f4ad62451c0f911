package app

import (
	"fmt"

	"taskpad/internal/config"
	"taskpad/internal/ui"
)

// MustRun starts the configured front-end over the shared task store.
func MustRun() {
	cfg := config.Global()

	switch cfg.UIMode {
	case config.UIModeHTTP:
		MustListenAndServeHTTP()
	case config.UIModeTUI:
		err := ui.Run(globalStore)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("failed to run terminal ui")
			panic(err)
		}
	default:
		globalLogger.Error().
			Str("ui_mode", cfg.UIMode).
			Msg("unknown ui mode")
		panic(fmt.Errorf("unknown ui mode: %s", cfg.UIMode))
	}
}
