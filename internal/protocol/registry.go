package protocol

import "fmt"

// Bit layout of the shared head bytes. Protocol and data-rate share
// byte 4; format and codec share byte 7. FormatMask and CodecMask
// overlap at bit 4 — that overlap is on the wire today, so it is
// preserved here. See the mask-overlap test before touching either.
const (
	ProtocolMask byte = 0xE0
	DataRateMask byte = 0x1F
	FormatMask   byte = 0x1F
	CodecMask    byte = 0xF0
)

// Protocol selects the sub-protocol carried in the top three bits of
// head byte 4. Service is a recognized tag but is not supported by
// this codec: encoding or decoding it is a hard error.
type Protocol uint8

const (
	ProtocolAudio   Protocol = 0x00
	ProtocolSerial  Protocol = 0x20
	ProtocolText    Protocol = 0x40
	ProtocolService Protocol = 0x60
)

// ProtocolFromTag maps the masked protocol bits of byte 4 to a known
// Protocol. Unknown tags report false.
func ProtocolFromTag(tag byte) (Protocol, bool) {
	switch Protocol(tag & ProtocolMask) {
	case ProtocolAudio, ProtocolSerial, ProtocolText, ProtocolService:
		return Protocol(tag & ProtocolMask), true
	}
	return 0, false
}

func (p Protocol) String() string {
	switch p {
	case ProtocolAudio:
		return "audio"
	case ProtocolSerial:
		return "serial"
	case ProtocolText:
		return "text"
	case ProtocolService:
		return "service"
	}
	return fmt.Sprintf("protocol(0x%02x)", uint8(p))
}

// ParseProtocol resolves a configuration name to a Protocol.
func ParseProtocol(name string) (Protocol, bool) {
	switch name {
	case "audio":
		return ProtocolAudio, true
	case "serial":
		return ProtocolSerial, true
	case "text":
		return ProtocolText, true
	case "service":
		return ProtocolService, true
	}
	return 0, false
}

// SampleRate indexes the audio sample-rate table. The table order is
// fixed by the wire format; the index is what travels in the low five
// bits of byte 4 under the audio protocol.
type SampleRate uint8

const (
	SampleRate6000 SampleRate = iota
	SampleRate12000
	SampleRate24000
	SampleRate48000
	SampleRate96000
	SampleRate192000
	SampleRate384000
	SampleRate8000
	SampleRate16000
	SampleRate32000
	SampleRate64000
	SampleRate128000
	SampleRate256000
	SampleRate512000
	SampleRate11025
	SampleRate22050
	SampleRate44100
	SampleRate88200
	SampleRate176400
	SampleRate352800
	SampleRate705600
)

var sampleRateHz = [...]uint32{
	6000, 12000, 24000, 48000, 96000, 192000, 384000,
	8000, 16000, 32000, 64000, 128000, 256000, 512000,
	11025, 22050, 44100, 88200, 176400, 352800, 705600,
}

func (r SampleRate) Valid() bool { return int(r) < len(sampleRateHz) }

// Hz reports the physical sample rate. Zero for an invalid index.
func (r SampleRate) Hz() uint32 {
	if !r.Valid() {
		return 0
	}
	return sampleRateHz[r]
}

func (r SampleRate) String() string {
	if !r.Valid() {
		return fmt.Sprintf("sample_rate(0x%02x)", uint8(r))
	}
	return fmt.Sprintf("%dhz", sampleRateHz[r])
}

// SampleRateByHz resolves a physical rate in Hz to its wire index.
func SampleRateByHz(hz uint32) (SampleRate, bool) {
	for i, v := range sampleRateHz {
		if v == hz {
			return SampleRate(i), true
		}
	}
	return 0, false
}

// BitRate indexes the serial/text bits-per-second table, the low five
// bits of byte 4 under the serial and text protocols.
type BitRate uint8

const (
	BitRate0 BitRate = iota
	BitRate110
	BitRate150
	BitRate300
	BitRate600
	BitRate1200
	BitRate2400
	BitRate4800
	BitRate9600
	BitRate14400
	BitRate19200
	BitRate31250
	BitRate38400
	BitRate57600
	BitRate115200
	BitRate128000
	BitRate230400
	BitRate250000
	BitRate256000
	BitRate460800
	BitRate921600
	BitRate1000000
	BitRate1500000
	BitRate2000000
	BitRate3000000
)

var bitRateBps = [...]uint32{
	0, 110, 150, 300, 600, 1200, 2400, 4800, 9600, 14400,
	19200, 31250, 38400, 57600, 115200, 128000, 230400, 250000,
	256000, 460800, 921600, 1000000, 1500000, 2000000, 3000000,
}

func (r BitRate) Valid() bool { return int(r) < len(bitRateBps) }

// Bps reports the physical rate in bits per second. Zero for an
// invalid index.
func (r BitRate) Bps() uint32 {
	if !r.Valid() {
		return 0
	}
	return bitRateBps[r]
}

func (r BitRate) String() string {
	if !r.Valid() {
		return fmt.Sprintf("bit_rate(0x%02x)", uint8(r))
	}
	return fmt.Sprintf("%dbps", bitRateBps[r])
}

// BitRateByBps resolves a physical rate in bits per second to its
// wire index.
func BitRateByBps(bps uint32) (BitRate, bool) {
	for i, v := range bitRateBps {
		if v == bps {
			return BitRate(i), true
		}
	}
	return 0, false
}

// DataRate is the protocol-dependent reading of the 5-bit rate index:
// a sample rate under audio, bits per second under serial and text.
type DataRate struct {
	Protocol Protocol
	Index    uint8
}

// DataRateFor validates index against the table selected by p.
func DataRateFor(p Protocol, index uint8) (DataRate, error) {
	switch p {
	case ProtocolAudio:
		if !SampleRate(index).Valid() {
			return DataRate{}, AttributeError{Attribute: "data_rate", Raw: index}
		}
	case ProtocolSerial, ProtocolText:
		if !BitRate(index).Valid() {
			return DataRate{}, AttributeError{Attribute: "data_rate", Raw: index}
		}
	default:
		return DataRate{}, ErrUnsupportedProtocol
	}
	return DataRate{Protocol: p, Index: index}, nil
}

// Value reports the physical rate: Hz under audio, bps under
// serial/text.
func (d DataRate) Value() uint32 {
	switch d.Protocol {
	case ProtocolAudio:
		return SampleRate(d.Index).Hz()
	case ProtocolSerial, ProtocolText:
		return BitRate(d.Index).Bps()
	}
	return 0
}

func (d DataRate) String() string {
	switch d.Protocol {
	case ProtocolAudio:
		return SampleRate(d.Index).String()
	case ProtocolSerial, ProtocolText:
		return BitRate(d.Index).String()
	}
	return fmt.Sprintf("data_rate(0x%02x)", d.Index)
}

// AudioFormat is the 5-bit sample format under the audio protocol.
type AudioFormat uint8

const (
	AudioByte8   AudioFormat = 0x00
	AudioInt16   AudioFormat = 0x01
	AudioInt24   AudioFormat = 0x02
	AudioInt32   AudioFormat = 0x03
	AudioFloat32 AudioFormat = 0x04
	AudioFloat64 AudioFormat = 0x05
	AudioBits12  AudioFormat = 0x06
	AudioBits10  AudioFormat = 0x07
)

func (f AudioFormat) Valid() bool { return f <= AudioBits10 }

func (f AudioFormat) String() string {
	switch f {
	case AudioByte8:
		return "byte8"
	case AudioInt16:
		return "int16"
	case AudioInt24:
		return "int24"
	case AudioInt32:
		return "int32"
	case AudioFloat32:
		return "float32"
	case AudioFloat64:
		return "float64"
	case AudioBits12:
		return "bits12"
	case AudioBits10:
		return "bits10"
	}
	return fmt.Sprintf("audio_format(0x%02x)", uint8(f))
}

// SerialFormat is the 5-bit data format under the serial protocol.
type SerialFormat uint8

const SerialByte8 SerialFormat = 0x00

func (f SerialFormat) Valid() bool { return f == SerialByte8 }

func (f SerialFormat) String() string {
	if f == SerialByte8 {
		return "byte8"
	}
	return fmt.Sprintf("serial_format(0x%02x)", uint8(f))
}

// TextFormat is the 5-bit command format under the text protocol.
type TextFormat uint8

const (
	TextASCII TextFormat = 0x00
	TextUTF8  TextFormat = 0x10
)

func (f TextFormat) Valid() bool { return f == TextASCII || f == TextUTF8 }

func (f TextFormat) String() string {
	switch f {
	case TextASCII:
		return "ascii"
	case TextUTF8:
		return "utf8"
	}
	return fmt.Sprintf("text_format(0x%02x)", uint8(f))
}

// Format is the protocol-dependent reading of the 5-bit format index
// in the low bits of byte 7.
type Format struct {
	Protocol Protocol
	Index    uint8
}

// FormatFor validates index against the format table selected by p.
func FormatFor(p Protocol, index uint8) (Format, error) {
	switch p {
	case ProtocolAudio:
		if !AudioFormat(index).Valid() {
			return Format{}, AttributeError{Attribute: "format", Raw: index}
		}
	case ProtocolSerial:
		if !SerialFormat(index).Valid() {
			return Format{}, AttributeError{Attribute: "format", Raw: index}
		}
	case ProtocolText:
		if !TextFormat(index).Valid() {
			return Format{}, AttributeError{Attribute: "format", Raw: index}
		}
	default:
		return Format{}, ErrUnsupportedProtocol
	}
	return Format{Protocol: p, Index: index}, nil
}

func (f Format) String() string {
	switch f.Protocol {
	case ProtocolAudio:
		return AudioFormat(f.Index).String()
	case ProtocolSerial:
		return SerialFormat(f.Index).String()
	case ProtocolText:
		return TextFormat(f.Index).String()
	}
	return fmt.Sprintf("format(0x%02x)", f.Index)
}

// ParseFormat resolves a configuration name to the format index for p.
func ParseFormat(p Protocol, name string) (Format, bool) {
	switch p {
	case ProtocolAudio:
		for idx := AudioByte8; idx <= AudioBits10; idx++ {
			if idx.String() == name {
				return Format{Protocol: p, Index: uint8(idx)}, true
			}
		}
	case ProtocolSerial:
		if name == "byte8" {
			return Format{Protocol: p, Index: uint8(SerialByte8)}, true
		}
	case ProtocolText:
		switch name {
		case "ascii":
			return Format{Protocol: p, Index: uint8(TextASCII)}, true
		case "utf8":
			return Format{Protocol: p, Index: uint8(TextUTF8)}, true
		}
	}
	return Format{}, false
}

// Codec is the payload codec tag in the high nibble of byte 7. The
// set is closed; any other nibble on the wire is rejected.
type Codec uint8

const (
	CodecPCM  Codec = 0x00
	CodecVBCA Codec = 0x10
	CodecVBCV Codec = 0x20
	CodecUser Codec = 0xF0
)

// CodecFromNibble maps the masked codec bits of byte 7 to a known
// Codec. Unassigned nibbles report false.
func CodecFromNibble(nibble byte) (Codec, bool) {
	switch Codec(nibble & CodecMask) {
	case CodecPCM, CodecVBCA, CodecVBCV, CodecUser:
		return Codec(nibble & CodecMask), true
	}
	return 0, false
}

func (c Codec) String() string {
	switch c {
	case CodecPCM:
		return "pcm"
	case CodecVBCA:
		return "vbca"
	case CodecVBCV:
		return "vbcv"
	case CodecUser:
		return "user"
	}
	return fmt.Sprintf("codec(0x%02x)", uint8(c))
}

// ParseCodec resolves a configuration name to a Codec.
func ParseCodec(name string) (Codec, bool) {
	switch name {
	case "pcm":
		return CodecPCM, true
	case "vbca":
		return CodecVBCA, true
	case "vbcv":
		return CodecVBCV, true
	case "user":
		return CodecUser, true
	}
	return 0, false
}
