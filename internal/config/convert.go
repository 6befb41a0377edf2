package config

import (
	"fmt"

	"github.com/danmuck/vbanctl/internal/protocol"
	"github.com/danmuck/vbanctl/internal/protocol/stream"
)

// StreamBuilder resolves cfg's physical units to wire indices and
// returns a seeded builder. Unset fields keep the protocol defaults.
func StreamBuilder(cfg StreamConfig) (*stream.Builder, error) {
	proto, ok := protocol.ParseProtocol(cfg.Protocol)
	if !ok {
		return nil, fmt.Errorf("unknown protocol: %q", cfg.Protocol)
	}

	b, err := stream.NewBuilder(proto)
	if err != nil {
		return nil, err
	}

	// The two rate keys resolve against different tables, so each is
	// only meaningful under its own protocol family; a cross-bound
	// index would be valid in the wrong table and silently change
	// meaning.
	if cfg.SampleRate != 0 {
		if proto != protocol.ProtocolAudio {
			return nil, fmt.Errorf("sample_rate set for %s stream; use bit_rate", proto)
		}
		idx, ok := protocol.SampleRateByHz(cfg.SampleRate)
		if !ok {
			return nil, fmt.Errorf("unknown sample rate: %d hz", cfg.SampleRate)
		}
		b.SetDataRate(protocol.DataRate{Protocol: proto, Index: uint8(idx)})
	}
	if cfg.BitRate != 0 {
		if proto == protocol.ProtocolAudio {
			return nil, fmt.Errorf("bit_rate set for audio stream; use sample_rate")
		}
		idx, ok := protocol.BitRateByBps(cfg.BitRate)
		if !ok {
			return nil, fmt.Errorf("unknown bit rate: %d bps", cfg.BitRate)
		}
		b.SetDataRate(protocol.DataRate{Protocol: proto, Index: uint8(idx)})
	}
	if cfg.Samples != 0 {
		b.SetSamples(cfg.Samples)
	}
	if cfg.Channels != 0 {
		b.SetChannels(cfg.Channels)
	}
	if cfg.Format != "" {
		format, ok := protocol.ParseFormat(proto, cfg.Format)
		if !ok {
			return nil, fmt.Errorf("unknown %s format: %q", proto, cfg.Format)
		}
		b.SetFormat(format)
	}
	if cfg.Codec != "" {
		codec, ok := protocol.ParseCodec(cfg.Codec)
		if !ok {
			return nil, fmt.Errorf("unknown codec: %q", cfg.Codec)
		}
		b.SetCodec(codec)
	}
	if cfg.StreamName != "" {
		b.SetStreamName(cfg.StreamName)
	}
	return b, nil
}
