package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// DecodeHeader parses exactly 28 head bytes into a Header. It is a
// pure function: every gate either passes or returns a typed failure,
// and no global state is touched.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) != HeadSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrInvalidHeaderLen, len(buf))
	}
	if !bytes.Equal(buf[0:4], magic[:]) {
		return Header{}, fmt.Errorf("%w: %q", ErrBadMagic, buf[0:4])
	}

	proto, ok := ProtocolFromTag(buf[4])
	if !ok {
		return Header{}, AttributeError{Attribute: "protocol", Raw: buf[4] & ProtocolMask}
	}
	if proto == ProtocolService {
		return Header{}, ErrUnsupportedProtocol
	}

	rate, err := DataRateFor(proto, buf[4]&DataRateMask)
	if err != nil {
		return Header{}, err
	}

	// Wire holds value-1, so the byte range already bounds the result
	// to [1,256].
	samples := int(buf[5]) + 1
	channels := int(buf[6]) + 1

	format, err := FormatFor(proto, buf[7]&FormatMask)
	if err != nil {
		return Header{}, err
	}
	codec, ok := CodecFromNibble(buf[7])
	if !ok {
		return Header{}, AttributeError{Attribute: "codec", Raw: buf[7] & CodecMask}
	}

	name := string(bytes.TrimRight(buf[8:8+StreamNameLen], "\x00"))

	return Header{
		Protocol:   proto,
		DataRate:   rate,
		Samples:    samples,
		Channels:   channels,
		Format:     format,
		Codec:      codec,
		StreamName: name,
		Frame:      binary.BigEndian.Uint32(buf[24:28]),
	}, nil
}
