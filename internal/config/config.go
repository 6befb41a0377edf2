// Package config owns TOML configuration loading for the vbanctl
// binaries.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// StreamConfig describes one outbound stream in physical units; the
// wire indices are resolved by StreamBuilder.
type StreamConfig struct {
	Protocol   string `toml:"protocol"`
	SampleRate uint32 `toml:"sample_rate"`
	BitRate    uint32 `toml:"bit_rate"`
	Samples    int    `toml:"samples"`
	Channels   int    `toml:"channels"`
	Format     string `toml:"format"`
	Codec      string `toml:"codec"`
	StreamName string `toml:"stream_name"`
}

// ServerConfig configures the HTTP inspector service.
type ServerConfig struct {
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
}

func LoadStreamConfig(path string) (StreamConfig, error) {
	var cfg StreamConfig
	if err := loadToml(path, &cfg); err != nil {
		return StreamConfig{}, err
	}
	if cfg.Protocol == "" {
		cfg.Protocol = "audio"
	}
	if err := ValidateStreamConfig(cfg); err != nil {
		return StreamConfig{}, err
	}
	return cfg, nil
}

func LoadServerConfig(path string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := loadToml(path, &cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = "vban-inspect"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":9040"
	}
	if err := ValidateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateStreamConfig(cfg StreamConfig) error {
	if strings.TrimSpace(cfg.Protocol) == "" {
		return fmt.Errorf("stream config missing protocol")
	}
	if cfg.SampleRate != 0 && cfg.BitRate != 0 {
		return fmt.Errorf("stream config sets both sample_rate and bit_rate")
	}
	if cfg.Samples < 0 || cfg.Samples > 256 {
		return fmt.Errorf("stream config samples out of range: %d", cfg.Samples)
	}
	if cfg.Channels < 0 || cfg.Channels > 256 {
		return fmt.Errorf("stream config channels out of range: %d", cfg.Channels)
	}
	return nil
}

func ValidateServerConfig(cfg ServerConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("server config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	return nil
}
