package protocol

import (
	"bytes"
	"testing"
)

// Golden wire vectors for the default stream configurations. These pin
// byte-for-byte output so encoder changes that would break peers on
// the wire fail loudly here.
func TestEncodeMatchesGoldenVectors(t *testing.T) {
	cases := []struct {
		name string
		head Header
		want []byte
	}{
		{
			name: "audio defaults frame 0",
			head: Header{
				Protocol:   ProtocolAudio,
				DataRate:   DataRate{Protocol: ProtocolAudio, Index: uint8(SampleRate48000)},
				Samples:    256,
				Channels:   2,
				Format:     Format{Protocol: ProtocolAudio, Index: uint8(AudioInt16)},
				Codec:      CodecPCM,
				StreamName: "Stream1",
				Frame:      0,
			},
			want: []byte{
				'V', 'B', 'A', 'N',
				0x03,       // audio | 48000hz
				0xFF, 0x01, // 256 samples, 2 channels
				0x01, // int16 | pcm
				'S', 't', 'r', 'e', 'a', 'm', '1', 0, 0, 0, 0, 0, 0, 0, 0, 0,
				0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "serial defaults frame 513",
			head: Header{
				Protocol:   ProtocolSerial,
				DataRate:   DataRate{Protocol: ProtocolSerial, Index: uint8(BitRate256000)},
				Samples:    1,
				Channels:   1,
				Format:     Format{Protocol: ProtocolSerial, Index: uint8(SerialByte8)},
				Codec:      CodecPCM,
				StreamName: "MIDI1",
				Frame:      513,
			},
			want: []byte{
				'V', 'B', 'A', 'N',
				0x32,       // serial | 256000bps
				0x00, 0x00, // 1 sample, 1 channel
				0x00, // byte8 | pcm
				'M', 'I', 'D', 'I', '1', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
				0x00, 0x00, 0x02, 0x01,
			},
		},
		{
			name: "text defaults frame 0",
			head: Header{
				Protocol:   ProtocolText,
				DataRate:   DataRate{Protocol: ProtocolText, Index: uint8(BitRate256000)},
				Samples:    1,
				Channels:   1,
				Format:     Format{Protocol: ProtocolText, Index: uint8(TextASCII)},
				Codec:      CodecPCM,
				StreamName: "Command1",
				Frame:      0,
			},
			want: []byte{
				'V', 'B', 'A', 'N',
				0x52,       // text | 256000bps
				0x00, 0x00, // 1 sample, 1 channel
				0x00, // ascii | pcm
				'C', 'o', 'm', 'm', 'a', 'n', 'd', '1', 0, 0, 0, 0, 0, 0, 0, 0,
				0x00, 0x00, 0x00, 0x00,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeHeader(tc.head)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("wire mismatch:\n got=% x\nwant=% x", got, tc.want)
			}
		})
	}
}
