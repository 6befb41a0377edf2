package protocol

import (
	"encoding/binary"
	"fmt"
)

// EncodeHeader packs h into its exact 28-byte wire form.
//
// Byte 4 carries protocol|data-rate, byte 7 carries format|codec, the
// samples and channels bytes hold value-1, the stream name is mapped
// to ASCII then zero padded or truncated to 16 bytes, and the frame
// counter is big-endian.
func EncodeHeader(h Header) ([]byte, error) {
	if h.Protocol == ProtocolService {
		return nil, ErrUnsupportedProtocol
	}
	if _, ok := ProtocolFromTag(byte(h.Protocol)); !ok {
		return nil, fmt.Errorf("%w: unknown protocol 0x%02x", ErrInvalidConfiguration, uint8(h.Protocol))
	}
	if h.Samples < MinSamples || h.Samples > MaxSamples {
		return nil, fmt.Errorf("%w: samples out of range: %d", ErrInvalidConfiguration, h.Samples)
	}
	if h.Channels < MinChannels || h.Channels > MaxChannels {
		return nil, fmt.Errorf("%w: channels out of range: %d", ErrInvalidConfiguration, h.Channels)
	}

	rate, err := DataRateFor(h.Protocol, h.DataRate.Index)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if h.DataRate.Protocol != h.Protocol {
		return nil, fmt.Errorf("%w: data rate %s bound to %s head", ErrInvalidConfiguration, rate, h.Protocol)
	}
	format, err := FormatFor(h.Protocol, h.Format.Index)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if h.Format.Protocol != h.Protocol {
		return nil, fmt.Errorf("%w: format %s bound to %s head", ErrInvalidConfiguration, format, h.Protocol)
	}
	if _, ok := CodecFromNibble(byte(h.Codec)); !ok {
		return nil, fmt.Errorf("%w: unknown codec 0x%02x", ErrInvalidConfiguration, uint8(h.Codec))
	}

	buf := make([]byte, HeadSize)
	copy(buf[0:4], magic[:])
	buf[4] = byte(h.Protocol) | (h.DataRate.Index & DataRateMask)
	buf[5] = byte(h.Samples - 1)
	buf[6] = byte(h.Channels - 1)
	buf[7] = (h.Format.Index & FormatMask) | (byte(h.Codec) & CodecMask)
	copy(buf[8:8+StreamNameLen], asciiName(h.StreamName))
	binary.BigEndian.PutUint32(buf[24:28], h.Frame)
	return buf, nil
}

// asciiName maps the stream name onto the ASCII wire alphabet,
// replacing any rune outside it with '?'. Truncating raw UTF-8 bytes
// at the 16-byte boundary could split a rune mid-sequence; after the
// replacement every rune is one byte, so truncation always lands on a
// rune boundary.
func asciiName(s string) []byte {
	out := make([]byte, 0, StreamNameLen)
	for _, r := range s {
		if len(out) == StreamNameLen {
			break
		}
		if r > '' {
			out = append(out, '?')
		} else {
			out = append(out, byte(r))
		}
	}
	return out
}
