package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServeEnv holds SSH server settings read from the environment.
// Command-line flags override these values.
type ServeEnv struct {
	Addr        string        `env:"LEXICON_SSH_ADDR"         envDefault:":2222"`
	HostKeyPath string        `env:"LEXICON_SSH_HOST_KEY"     envDefault:"~/.lexicon/ssh_host_ed25519"`
	IdleTimeout time.Duration `env:"LEXICON_SSH_IDLE_TIMEOUT" envDefault:"10m"`
	MaxTimeout  time.Duration `env:"LEXICON_SSH_MAX_TIMEOUT"  envDefault:"2h"`
	DBPath      string        `env:"LEXICON_DB"`
}

// LoadServeEnv reads ServeEnv, loading a .env file from the working
// directory first when one exists.
func LoadServeEnv() (ServeEnv, error) {
	_ = godotenv.Load()

	var cfg ServeEnv
	if err := env.Parse(&cfg); err != nil {
		return ServeEnv{}, fmt.Errorf("config: cannot parse environment: %w", err)
	}
	return cfg, nil
}
