// Package packet owns the VBAN packet envelope: one encoded head plus
// an optional payload, bounded by the UDP-safe packet ceiling.
package packet

import (
	"errors"
	"fmt"

	"github.com/danmuck/vbanctl/internal/protocol"
)

const (
	// MaxSize is the total packet ceiling, head included.
	MaxSize = 1436
	// MaxPayload is what remains for payload after the 28-byte head.
	MaxPayload = MaxSize - protocol.HeadSize
)

var (
	ErrAlreadyHasData  = errors.New("packet: payload already attached")
	ErrPayloadTooLarge = errors.New("packet: payload too large")
)

// Packet is one VBAN packet envelope. Payload may be attached at most
// once; the envelope is read-only afterwards.
type Packet struct {
	header  protocol.Header
	head    []byte
	payload []byte
	hasData bool
}

// New starts an envelope around h with no payload attached.
func New(h protocol.Header) (*Packet, error) {
	head, err := protocol.EncodeHeader(h)
	if err != nil {
		return nil, err
	}
	return &Packet{header: h, head: head}, nil
}

// AttachData attaches the payload. It fails on a second attach and
// when the total packet would pass the size ceiling. Attaching an
// empty payload still finalizes the envelope.
func (p *Packet) AttachData(data []byte) error {
	if p.hasData {
		return ErrAlreadyHasData
	}
	if len(data) > MaxPayload {
		return fmt.Errorf("%w: %d bytes over %d", ErrPayloadTooLarge, len(data), MaxPayload)
	}
	p.payload = append([]byte(nil), data...)
	p.hasData = true
	return nil
}

// Header returns the typed head this envelope was built from.
func (p *Packet) Header() protocol.Header { return p.header }

// Bytes returns head followed by payload. Valid at any time; the
// payload section is empty while nothing is attached.
func (p *Packet) Bytes() []byte {
	out := make([]byte, 0, len(p.head)+len(p.payload))
	out = append(out, p.head...)
	return append(out, p.payload...)
}

// Payload returns only the payload portion.
func (p *Packet) Payload() []byte {
	return append([]byte(nil), p.payload...)
}

// Decode splits buf into head and payload, decoding the first 28
// bytes and treating the remainder as payload. Head codec failures
// propagate unchanged.
func Decode(buf []byte) (*Packet, error) {
	if len(buf) < protocol.HeadSize {
		return nil, fmt.Errorf("%w: %d bytes", protocol.ErrInvalidHeaderLen, len(buf))
	}
	if len(buf) > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes over %d", ErrPayloadTooLarge, len(buf)-protocol.HeadSize, MaxPayload)
	}
	h, err := protocol.DecodeHeader(buf[:protocol.HeadSize])
	if err != nil {
		return nil, err
	}
	p := &Packet{
		header: h,
		head:   append([]byte(nil), buf[:protocol.HeadSize]...),
	}
	if err := p.AttachData(buf[protocol.HeadSize:]); err != nil {
		return nil, err
	}
	return p, nil
}
