package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/vbanctl/internal/protocol"
)

func TestLoadServiceConfigDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
protocol = "serial"
bit_rate = 115200
stream_name = "MIDI-A"
name = "rig-inspect"
addr = ":9100"
cors_origins = ["http://localhost:5173", " "]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Stream.Protocol != "serial" || cfg.Stream.BitRate != 115200 {
		t.Fatalf("unexpected stream: %+v", cfg.Stream)
	}
	if cfg.Stream.StreamName != "MIDI-A" {
		t.Fatalf("unexpected stream name: %q", cfg.Stream.StreamName)
	}
	// Unset keys keep defaults.
	if cfg.Stream.Samples != 0 || cfg.Stream.Format != "" {
		t.Fatalf("expected unset overrides to stay zero: %+v", cfg.Stream)
	}
	if cfg.Server.Name != "rig-inspect" || cfg.Server.Addr != ":9100" {
		t.Fatalf("unexpected server: %+v", cfg.Server)
	}
	if len(cfg.Server.CorsOrigins) != 1 || cfg.Server.CorsOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected origins: %+v", cfg.Server.CorsOrigins)
	}
}

func TestLoadServiceConfigEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := loadServiceConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Stream.Protocol != "audio" {
		t.Fatalf("unexpected protocol: %q", cfg.Stream.Protocol)
	}
	if cfg.Server.Addr != ":9040" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
}

func TestLoadServiceConfigRejectsConflictingRates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
sample_rate = 48000
bit_rate = 256000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadServiceConfig(path); err == nil {
		t.Fatalf("expected rejection of conflicting rates")
	}
}

func TestRunEncodeThenDecode(t *testing.T) {
	cfg := defaultServiceConfig()
	cfg.Stream.StreamName = "Loop1"

	var encoded bytes.Buffer
	if err := runEncode(cfg, 3, strings.NewReader("\x01\x02\x03"), &encoded); err != nil {
		t.Fatalf("encode: %v", err)
	}
	lines := strings.Fields(encoded.String())
	if len(lines) != 3 {
		t.Fatalf("expected 3 packets, got %d", len(lines))
	}

	for i, line := range lines {
		wire, err := hex.DecodeString(line)
		if err != nil {
			t.Fatalf("packet %d not hex: %v", i, err)
		}
		head, err := protocol.DecodeHeader(wire[:protocol.HeadSize])
		if err != nil {
			t.Fatalf("packet %d head: %v", i, err)
		}
		if head.Frame != uint32(i) {
			t.Fatalf("packet %d frame=%d", i, head.Frame)
		}
		if head.StreamName != "Loop1" {
			t.Fatalf("packet %d name=%q", i, head.StreamName)
		}
	}

	var report bytes.Buffer
	if err := runDecode(strings.NewReader(lines[2]), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(report.Bytes(), &fields); err != nil {
		t.Fatalf("report: %v", err)
	}
	if fields["protocol"] != "audio" || fields["frame"] != float64(2) {
		t.Fatalf("unexpected report: %v", fields)
	}
	if fields["payload_len"] != float64(3) {
		t.Fatalf("unexpected payload length: %v", fields["payload_len"])
	}
}

func TestRunDecodeRejectsGarbage(t *testing.T) {
	if err := runDecode(strings.NewReader("zz"), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected hex rejection")
	}
	short := hex.EncodeToString([]byte("VBAN"))
	if err := runDecode(strings.NewReader(short), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected short packet rejection")
	}
}
