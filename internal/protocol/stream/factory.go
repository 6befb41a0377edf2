package stream

import (
	"sync/atomic"

	"github.com/danmuck/vbanctl/internal/protocol"
	"github.com/danmuck/vbanctl/internal/protocol/packet"
)

// Config is the immutable per-stream head configuration. Build one
// through the Builder; a Config that never passed Build carries no
// validity guarantee.
type Config struct {
	Protocol   protocol.Protocol
	DataRate   protocol.DataRate
	Samples    int
	Channels   int
	Format     protocol.Format
	Codec      protocol.Codec
	StreamName string
}

// HeadFactory stamps heads from one immutable Config. The frame
// counter is the only mutable state and is owned by this instance;
// concurrent Create calls never emit the same frame value.
type HeadFactory struct {
	cfg     Config
	counter atomic.Uint32
}

// Create produces the next head for this stream and advances the
// counter. The emitted frame sequence is strictly increasing modulo
// 2^32 under any interleaving.
func (f *HeadFactory) Create() protocol.Header {
	frame := f.counter.Add(1) - 1
	return protocol.Header{
		Protocol:   f.cfg.Protocol,
		DataRate:   f.cfg.DataRate,
		Samples:    f.cfg.Samples,
		Channels:   f.cfg.Channels,
		Format:     f.cfg.Format,
		Codec:      f.cfg.Codec,
		StreamName: f.cfg.StreamName,
		Frame:      frame,
	}
}

// CreatePacket produces a fresh envelope around the next head, ready
// for payload attachment.
func (f *HeadFactory) CreatePacket() (*packet.Packet, error) {
	return packet.New(f.Create())
}

// Counter reads the current frame counter without advancing it.
func (f *HeadFactory) Counter() uint32 {
	return f.counter.Load()
}

// Config returns the factory's immutable configuration.
func (f *HeadFactory) Config() Config {
	return f.cfg
}
