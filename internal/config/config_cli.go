package config

import (
	"fmt"
)

// CLIConfig holds everything the conf CLI needs to locate and authenticate
// against a running conf server.
type CLIConfig struct {
	// RuntimeDir is the base directory the token and port files are
	// resolved against.
	RuntimeDir string `env:"XDG_RUNTIME_DIR"`
	// TokenFile is the token file path relative to RuntimeDir.
	TokenFile string `env:"CONF_TOKEN_FILE" envDefault:"conf-keeper/token"`
	// PortFile is the port file path relative to RuntimeDir.
	PortFile string `env:"CONF_PORT_FILE" envDefault:"conf-keeper/port"`
	// Host is the server host; the scheme is always http.
	Host string `env:"CONF_HOST" envDefault:"127.0.0.1"`
	// APIPrefix is the URL path prefix of the conf endpoints.
	APIPrefix string `env:"CONF_API_PREFIX"`
}

// GetCLIConfig loads the CLI configuration from environment variables.
// Missing values are not an error here; the CLI reports them when a command
// actually needs them.
func GetCLIConfig() (*CLIConfig, error) {
	cfg := &CLIConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get cli config: %w", err)
	}

	return cfg, nil
}

// TokenPath returns the token file location, or "" without a runtime dir.
func (cfg CLIConfig) TokenPath() string {
	return runtimePath(cfg.RuntimeDir, cfg.TokenFile)
}

// PortPath returns the port file location, or "" without a runtime dir.
func (cfg CLIConfig) PortPath() string {
	return runtimePath(cfg.RuntimeDir, cfg.PortFile)
}
