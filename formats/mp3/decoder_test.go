// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// pcmStream serves int16 samples as go-mp3 does, in chunks of at most
// maxRead bytes.
type pcmStream struct {
	rate    int
	data    []byte
	maxRead int
	err     error
}

func newPCMStream(rate int, samples ...int16) *pcmStream {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}

	return &pcmStream{rate: rate, data: data}
}

func (p *pcmStream) SampleRate() int { return p.rate }

func (p *pcmStream) Read(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	if len(p.data) == 0 {
		return 0, io.EOF
	}
	if p.maxRead > 0 && len(b) > p.maxRead {
		b = b[:p.maxRead]
	}
	n := copy(b, p.data)
	p.data = p.data[n:]

	return n, nil
}

func drain(t *testing.T, s *source, chunk int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, chunk)
	for {
		n, err := s.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chunk   int
		maxRead int
	}{
		{name: "one read", chunk: 64},
		{name: "small chunks", chunk: 2},
		{name: "odd chunk", chunk: 3},
		{name: "short decoder reads", chunk: 64, maxRead: 3},
	}

	want := []float32{0, 0.5, -0.5, -1, 0.25, -0.25}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stream := newPCMStream(44100, 0, 16384, -16384, -32768, 8192, -8192)
			stream.maxRead = tt.maxRead
			s := &source{dec: stream}

			got := drain(t, s, tt.chunk)
			if len(got) != len(want) {
				t.Fatalf("got %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := &source{dec: newPCMStream(22050)}

	if s.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if n, err := s.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("sub-frame dst = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	errBad := errors.New("bad frame")
	s := &source{dec: &pcmStream{rate: 8000, err: errBad}}

	if _, err := s.ReadSamples(make([]float32, 8)); !errors.Is(err, errBad) {
		t.Errorf("ReadSamples() error = %v, want %v", err, errBad)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not MP3 data at all")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotMP3File) {
			t.Errorf("Decode(%q) error = %v, want %v", data, err, ErrNotMP3File)
		}
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 4096)
	dst := make([]float32, 4096)
	stream := newPCMStream(44100, samples...)
	full := stream.data
	s := &source{dec: stream}

	b.ReportAllocs()

	for b.Loop() {
		stream.data = full
		_, _ = s.ReadSamples(dst)
	}
}
