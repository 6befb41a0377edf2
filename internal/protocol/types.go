package protocol

const (
	// HeadSize is the exact byte length of a VBAN packet head.
	HeadSize = 28
	// StreamNameLen is the fixed on-wire length of the stream name.
	StreamNameLen = 16

	// Samples and channels travel as value-1 in one byte each.
	MinSamples  = 1
	MaxSamples  = 256
	MinChannels = 1
	MaxChannels = 256
)

var magic = [4]byte{'V', 'B', 'A', 'N'}

// Header is the typed form of the 28-byte VBAN packet head. A Header
// is built once, by EncodeHeader's caller or by DecodeHeader, and is
// never mutated afterwards.
type Header struct {
	Protocol   Protocol
	DataRate   DataRate
	Samples    int
	Channels   int
	Format     Format
	Codec      Codec
	StreamName string
	Frame      uint32
}
