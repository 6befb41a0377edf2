package stream

import (
	"errors"
	"fmt"

	"github.com/danmuck/vbanctl/internal/protocol"
)

var ErrMissingProtocol = errors.New("stream: no protocol defined")

// Builder assembles a stream Config starting from the fixed default
// policy of its protocol. All defaults are overridable before Build.
type Builder struct {
	protocolSet bool
	cfg         Config
}

// NewBuilder seeds a Builder with the defaults for p:
//
//	audio   48000hz, 256 samples, 2 channels, int16, "Stream1"
//	serial  256000bps, 1 sample, 1 channel, byte8, "MIDI1"
//	text    256000bps, 1 sample, 1 channel, ascii, "Command1"
//
// Codec defaults to pcm everywhere. Service has no defaults and is
// rejected outright.
func NewBuilder(p protocol.Protocol) (*Builder, error) {
	cfg := Config{Protocol: p, Codec: protocol.CodecPCM}
	switch p {
	case protocol.ProtocolAudio:
		cfg.DataRate = protocol.DataRate{Protocol: p, Index: uint8(protocol.SampleRate48000)}
		cfg.Samples = 256
		cfg.Channels = 2
		cfg.Format = protocol.Format{Protocol: p, Index: uint8(protocol.AudioInt16)}
		cfg.StreamName = "Stream1"
	case protocol.ProtocolSerial:
		cfg.DataRate = protocol.DataRate{Protocol: p, Index: uint8(protocol.BitRate256000)}
		cfg.Samples = 1
		cfg.Channels = 1
		cfg.Format = protocol.Format{Protocol: p, Index: uint8(protocol.SerialByte8)}
		cfg.StreamName = "MIDI1"
	case protocol.ProtocolText:
		cfg.DataRate = protocol.DataRate{Protocol: p, Index: uint8(protocol.BitRate256000)}
		cfg.Samples = 1
		cfg.Channels = 1
		cfg.Format = protocol.Format{Protocol: p, Index: uint8(protocol.TextASCII)}
		cfg.StreamName = "Command1"
	case protocol.ProtocolService:
		return nil, protocol.ErrUnsupportedProtocol
	default:
		return nil, fmt.Errorf("%w: unknown protocol 0x%02x", protocol.ErrInvalidConfiguration, uint8(p))
	}
	return &Builder{protocolSet: true, cfg: cfg}, nil
}

func (b *Builder) SetDataRate(d protocol.DataRate) *Builder {
	b.cfg.DataRate = d
	return b
}

func (b *Builder) SetSamples(samples int) *Builder {
	b.cfg.Samples = samples
	return b
}

func (b *Builder) SetChannels(channels int) *Builder {
	b.cfg.Channels = channels
	return b
}

func (b *Builder) SetFormat(f protocol.Format) *Builder {
	b.cfg.Format = f
	return b
}

func (b *Builder) SetCodec(c protocol.Codec) *Builder {
	b.cfg.Codec = c
	return b
}

func (b *Builder) SetStreamName(name string) *Builder {
	b.cfg.StreamName = name
	return b
}

// Build validates the assembled configuration and returns a factory
// with its counter at zero. A zero-value Builder fails: the protocol
// is the one required field and only NewBuilder supplies it.
func (b *Builder) Build() (*HeadFactory, error) {
	if !b.protocolSet {
		return nil, ErrMissingProtocol
	}
	// Encoding the head runs every configuration gate; a config that
	// encodes once encodes forever.
	probe := protocol.Header{
		Protocol:   b.cfg.Protocol,
		DataRate:   b.cfg.DataRate,
		Samples:    b.cfg.Samples,
		Channels:   b.cfg.Channels,
		Format:     b.cfg.Format,
		Codec:      b.cfg.Codec,
		StreamName: b.cfg.StreamName,
	}
	if _, err := protocol.EncodeHeader(probe); err != nil {
		return nil, err
	}
	return &HeadFactory{cfg: b.cfg}, nil
}
