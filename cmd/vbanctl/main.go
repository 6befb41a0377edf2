package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danmuck/vbanctl/internal/config"
	"github.com/danmuck/vbanctl/internal/logging"
	"github.com/danmuck/vbanctl/internal/observability"
	"github.com/danmuck/vbanctl/internal/protocol/packet"
	"github.com/danmuck/vbanctl/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to vbanctl config.toml")
	mode := flag.String("mode", "serve", "mode: serve|encode|decode")
	count := flag.Int("count", 1, "packets to emit in encode mode")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg, err := loadServiceConfig(*configPath)
	if err != nil {
		fatal(err)
	}

	switch *mode {
	case "serve":
		observability.InitLogger(cfg.Server.Name)
		if err := server.New(cfg.Server).Run(); err != nil {
			fatal(err)
		}
	case "encode":
		if err := runEncode(cfg, *count, os.Stdin, os.Stdout); err != nil {
			fatal(err)
		}
	case "decode":
		if err := runDecode(os.Stdin, os.Stdout); err != nil {
			fatal(err)
		}
	default:
		fatal(fmt.Errorf("unknown mode: %s", *mode))
	}
}

// runEncode reads one payload from in and emits count packets to out,
// one hex line each, frames advancing per packet.
func runEncode(cfg serviceConfig, count int, in io.Reader, out io.Writer) error {
	payload, err := io.ReadAll(io.LimitReader(in, packet.MaxPayload+1))
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	b, err := config.StreamBuilder(cfg.Stream)
	if err != nil {
		return err
	}
	factory, err := b.Build()
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		p, err := factory.CreatePacket()
		if err != nil {
			return err
		}
		if err := p.AttachData(payload); err != nil {
			return err
		}
		observability.RecordHeadEncoded(p.Header().Protocol.String())
		if _, err := fmt.Fprintln(out, hex.EncodeToString(p.Bytes())); err != nil {
			return err
		}
	}
	return nil
}

// runDecode reads one hex packet dump from in and writes the decoded
// fields as JSON to out.
func runDecode(in io.Reader, out io.Writer) error {
	dump, err := io.ReadAll(io.LimitReader(in, packet.MaxSize*2+1))
	if err != nil {
		return fmt.Errorf("read packet: %w", err)
	}
	wire, err := hex.DecodeString(strings.TrimSpace(string(dump)))
	if err != nil {
		return fmt.Errorf("input is not valid hex: %w", err)
	}

	p, err := packet.Decode(wire)
	if err != nil {
		return err
	}
	observability.RecordPacketDecoded(p.Header().Protocol.String(), len(p.Payload()))

	head := p.Header()
	report := map[string]any{
		"protocol":    head.Protocol.String(),
		"data_rate":   head.DataRate.String(),
		"rate_value":  head.DataRate.Value(),
		"samples":     head.Samples,
		"channels":    head.Channels,
		"format":      head.Format.String(),
		"codec":       head.Codec.String(),
		"stream_name": head.StreamName,
		"frame":       head.Frame,
		"payload_len": len(p.Payload()),
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "vbanctl: %v\n", err)
	os.Exit(1)
}
