package stream

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/danmuck/vbanctl/internal/protocol"
)

func TestBuilderDefaultsPerProtocol(t *testing.T) {
	cases := []struct {
		proto    protocol.Protocol
		rate     uint32
		samples  int
		channels int
		format   string
		name     string
	}{
		{protocol.ProtocolAudio, 48000, 256, 2, "int16", "Stream1"},
		{protocol.ProtocolSerial, 256000, 1, 1, "byte8", "MIDI1"},
		{protocol.ProtocolText, 256000, 1, 1, "ascii", "Command1"},
	}
	for _, tc := range cases {
		b, err := NewBuilder(tc.proto)
		if err != nil {
			t.Fatalf("builder %s: %v", tc.proto, err)
		}
		f, err := b.Build()
		if err != nil {
			t.Fatalf("build %s: %v", tc.proto, err)
		}
		cfg := f.Config()
		if cfg.DataRate.Value() != tc.rate {
			t.Errorf("%s rate=%d want %d", tc.proto, cfg.DataRate.Value(), tc.rate)
		}
		if cfg.Samples != tc.samples || cfg.Channels != tc.channels {
			t.Errorf("%s samples=%d channels=%d want %d/%d", tc.proto, cfg.Samples, cfg.Channels, tc.samples, tc.channels)
		}
		if cfg.Format.String() != tc.format {
			t.Errorf("%s format=%s want %s", tc.proto, cfg.Format, tc.format)
		}
		if cfg.StreamName != tc.name {
			t.Errorf("%s name=%q want %q", tc.proto, cfg.StreamName, tc.name)
		}
		if cfg.Codec != protocol.CodecPCM {
			t.Errorf("%s codec=%s want pcm", tc.proto, cfg.Codec)
		}
	}
}

func TestBuilderRejectsService(t *testing.T) {
	if _, err := NewBuilder(protocol.ProtocolService); !errors.Is(err, protocol.ErrUnsupportedProtocol) {
		t.Fatalf("expected ErrUnsupportedProtocol, got %v", err)
	}
}

func TestZeroValueBuilderFailsBuild(t *testing.T) {
	var b Builder
	if _, err := b.Build(); !errors.Is(err, ErrMissingProtocol) {
		t.Fatalf("expected ErrMissingProtocol, got %v", err)
	}
}

func TestBuilderOverrides(t *testing.T) {
	b, err := NewBuilder(protocol.ProtocolAudio)
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	f, err := b.
		SetDataRate(protocol.DataRate{Protocol: protocol.ProtocolAudio, Index: uint8(protocol.SampleRate96000)}).
		SetSamples(64).
		SetChannels(8).
		SetFormat(protocol.Format{Protocol: protocol.ProtocolAudio, Index: uint8(protocol.AudioFloat32)}).
		SetCodec(protocol.CodecVBCV).
		SetStreamName("Rig1").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	cfg := f.Config()
	if cfg.DataRate.Value() != 96000 || cfg.Samples != 64 || cfg.Channels != 8 {
		t.Fatalf("override lost: %+v", cfg)
	}
	if cfg.Format.String() != "float32" || cfg.Codec != protocol.CodecVBCV || cfg.StreamName != "Rig1" {
		t.Fatalf("override lost: %+v", cfg)
	}
}

func TestBuilderValidatesOnBuild(t *testing.T) {
	b, err := NewBuilder(protocol.ProtocolAudio)
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	if _, err := b.SetSamples(0).Build(); !errors.Is(err, protocol.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for samples=0, got %v", err)
	}

	b, err = NewBuilder(protocol.ProtocolSerial)
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	foreign := protocol.DataRate{Protocol: protocol.ProtocolAudio, Index: uint8(protocol.SampleRate48000)}
	if _, err := b.SetDataRate(foreign).Build(); !errors.Is(err, protocol.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for foreign rate, got %v", err)
	}
}

func TestFactoryCounterAdvancesPerCreate(t *testing.T) {
	f := mustFactory(t, protocol.ProtocolAudio)
	if f.Counter() != 0 {
		t.Fatalf("counter must start at zero, got %d", f.Counter())
	}
	for want := uint32(0); want < 5; want++ {
		h := f.Create()
		if h.Frame != want {
			t.Fatalf("frame=%d want %d", h.Frame, want)
		}
	}
	if f.Counter() != 5 {
		t.Fatalf("counter=%d want 5", f.Counter())
	}
	// Counter() itself must not advance.
	if f.Counter() != 5 {
		t.Fatalf("counter read mutated state")
	}
}

func TestFactoryCounterConcurrentCreates(t *testing.T) {
	const workers = 16
	const perWorker = 250

	f := mustFactory(t, protocol.ProtocolAudio)
	frames := make(chan uint32, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				frames <- f.Create().Frame
			}
		}()
	}
	wg.Wait()
	close(frames)

	seen := make(map[uint32]bool, workers*perWorker)
	for frame := range frames {
		if seen[frame] {
			t.Fatalf("duplicate frame %d", frame)
		}
		seen[frame] = true
	}
	for i := uint32(0); i < workers*perWorker; i++ {
		if !seen[i] {
			t.Fatalf("missing frame %d", i)
		}
	}
	if f.Counter() != workers*perWorker {
		t.Fatalf("counter=%d want %d", f.Counter(), workers*perWorker)
	}
}

func TestFactoryCounterWrapsAtMaxUint32(t *testing.T) {
	f := mustFactory(t, protocol.ProtocolText)
	f.counter.Store(math.MaxUint32)
	if h := f.Create(); h.Frame != math.MaxUint32 {
		t.Fatalf("frame=%d want max", h.Frame)
	}
	if h := f.Create(); h.Frame != 0 {
		t.Fatalf("frame=%d want wrap to 0", h.Frame)
	}
}

func TestFactoryCreatePacket(t *testing.T) {
	f := mustFactory(t, protocol.ProtocolSerial)
	p, err := f.CreatePacket()
	if err != nil {
		t.Fatalf("create packet: %v", err)
	}
	if err := p.AttachData([]byte{0x90, 0x3C, 0x40}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if p.Header().Frame != 0 || f.Counter() != 1 {
		t.Fatalf("packet frame=%d counter=%d", p.Header().Frame, f.Counter())
	}
}

func mustFactory(t *testing.T, p protocol.Protocol) *HeadFactory {
	t.Helper()
	b, err := NewBuilder(p)
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	f, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return f
}
