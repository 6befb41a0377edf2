package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/vbanctl/internal/config"
)

type fileConfig struct {
	Protocol    string   `toml:"protocol"`
	SampleRate  uint32   `toml:"sample_rate"`
	BitRate     uint32   `toml:"bit_rate"`
	Samples     int      `toml:"samples"`
	Channels    int      `toml:"channels"`
	Format      string   `toml:"format"`
	Codec       string   `toml:"codec"`
	StreamName  string   `toml:"stream_name"`
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
}

type serviceConfig struct {
	Stream config.StreamConfig
	Server config.ServerConfig
}

func defaultServiceConfig() serviceConfig {
	return serviceConfig{
		Stream: config.StreamConfig{Protocol: "audio"},
		Server: config.ServerConfig{Name: "vban-inspect", Addr: ":9040"},
	}
}

func loadServiceConfig(path string) (serviceConfig, error) {
	cfg := defaultServiceConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return serviceConfig{}, fmt.Errorf("load vbanctl config: %w", err)
	}

	if meta.IsDefined("protocol") {
		p := strings.TrimSpace(raw.Protocol)
		if p != "" {
			cfg.Stream.Protocol = p
		}
	}
	if meta.IsDefined("sample_rate") {
		cfg.Stream.SampleRate = raw.SampleRate
	}
	if meta.IsDefined("bit_rate") {
		cfg.Stream.BitRate = raw.BitRate
	}
	if meta.IsDefined("samples") {
		cfg.Stream.Samples = raw.Samples
	}
	if meta.IsDefined("channels") {
		cfg.Stream.Channels = raw.Channels
	}
	if meta.IsDefined("format") {
		cfg.Stream.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("codec") {
		cfg.Stream.Codec = strings.TrimSpace(raw.Codec)
	}
	if meta.IsDefined("stream_name") {
		cfg.Stream.StreamName = raw.StreamName
	}

	if meta.IsDefined("name") {
		cfg.Server.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.Server.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}

	if err := config.ValidateStreamConfig(cfg.Stream); err != nil {
		return serviceConfig{}, err
	}
	if err := config.ValidateServerConfig(cfg.Server); err != nil {
		return serviceConfig{}, err
	}
	return cfg, nil
}

func normalizeOrigins(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
