package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type ServerConfig struct {
	RunAddr         string `env:"SERVER_ADDRESS"`
	RedirectBaseURL string `env:"BASE_URL"`
	FileStoragePath string `env:"FILE_STORAGE_PATH"`
	BlacklistPath   string `env:"BLACKLIST_PATH"`
	DatabaseDSN     string `env:"DATABASE_DSN"`
	TLSCertPath     string `env:"TLS_CERT_PATH"`
	TLSKeyPath      string `env:"TLS_KEY_PATH"`
	EnableHTTPS     bool   `env:"ENABLE_HTTPS"`
	ProfileMode     bool   `env:"PROFILE_MODE"`
}

var config ServerConfig

// ParseFlags fills the config from command-line flags first,
// then lets environment variables override them.
func ParseFlags() (*ServerConfig, error) {
	flag.StringVar(&config.RunAddr, "a", ":8080", "address and port to run server")
	flag.StringVar(&config.RedirectBaseURL, "b", "http://localhost:8080", "base URL prefix for generated short links")
	flag.StringVar(&config.FileStoragePath, "f", "urls.json", "file storage path")
	flag.StringVar(&config.BlacklistPath, "bl", "blacklist.txt", "blacklisted terms file path")
	flag.StringVar(&config.DatabaseDSN, "d", "", "Data Source Name (DSN)")
	flag.StringVar(&config.TLSCertPath, "cert", "./certs/cert.pem", "TLS certificate path")
	flag.StringVar(&config.TLSKeyPath, "key", "./certs/private.pem", "TLS private key path")
	flag.BoolVar(&config.EnableHTTPS, "s", false, "enable HTTPS")
	flag.BoolVar(&config.ProfileMode, "p", false, "enable pprof endpoints")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("error parsing env variables: %w", err)
	}

	return &config, nil
}
