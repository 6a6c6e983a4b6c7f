package config

import (
	env "github.com/Netflix/go-env"
)

// Config holds the sync server configuration, read from the environment.
type Config struct {
	ListenAddress string `env:"LISTEN_ADDRESS,default=0.0.0.0:8080"`
	SQLitePath    string `env:"SQLITE_PATH,default=certprep-sync.db"`
	MaxPageSize   int    `env:"MAX_PAGE_SIZE,default=200"`
}

// NewConfig reads the configuration from the environment.
func NewConfig() (*Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
