package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	UIModeHTTP = "http"
	UIModeTUI  = "tui"
)

const (
	StorageBackendFile   = "file"
	StorageBackendSQLite = "sqlite"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env     string `env:"ENV" env-required:"true"`
	UIMode  string `env:"UI_MODE" env-default:"http"`
	LogFile string `env:"LOG_FILE"`
	HTTP    HTTPConfig
	Storage StorageConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"127.0.0.1"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND" env-default:"file"`
	Path    string `env:"STORAGE_PATH" env-default:"taskpad.json"`
	Key     string `env:"STORAGE_KEY" env-default:"tasks"`
}
