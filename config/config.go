package config

import (
	"os"
)

// ServiceConfig is a structure containing all loaded variables from environment
type ServiceConfig struct {
	Host string // server host
	Port string // server port

	// FrontendURL is the only Origin accepted for WebSocket upgrades.
	// Empty allows any origin (local development).
	FrontendURL string

	LogLevel string // debug/info/warn/error, defaults to info
}

// config stores once parsed env variables
var config *ServiceConfig

// LoadConfig is a singleton function, that returns parsed config.
// If the function have not been called, then it parses data from environment
// and stores in `config` variable. Otherwise, just returns already parsed
// config.
func LoadConfig() *ServiceConfig {
	if config != nil {
		return config
	}

	cfg := &ServiceConfig{
		Host:        os.Getenv("POLL_SERVICE_HOST"),
		Port:        os.Getenv("POLL_SERVICE_PORT"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}
	if cfg.Port == "" {
		cfg.Port = "3600"
	}

	config = cfg

	return cfg
}
