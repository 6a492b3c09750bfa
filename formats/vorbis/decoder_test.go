// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// fakeOgg feeds a fixed float32 stream in the shape oggvorbis.Reader
// delivers it.
type fakeOgg struct {
	data     []float32
	rate     int
	channels int
}

func (f *fakeOgg) SampleRate() int { return f.rate }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if len(f.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, f.data)
	n -= n % f.channels
	f.data = f.data[n:]
	return n, nil
}

func TestSource_WidensToFloat64(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeOgg{data: []float32{0.5, -0.5, 1, -1}, rate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	dst := make([]float64, 8)
	n, err := s.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d values, want 4", n)
	}

	want := []float64{0.5, -0.5, 1, -1}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}

	if n, err := s.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_TruncatesToWholeFrames(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeOgg{data: []float32{0.1, 0.2}, rate: 44100, channels: 2},
		sampleRate: 44100,
		channels:   2,
	}

	// A destination shorter than one frame reads nothing.
	if n, err := s.ReadSamples(make([]float64, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(short) = %d, %v, want 0, nil", n, err)
	}

	if n, err := s.ReadSamples(make([]float64, 2)); n != 2 || err != nil {
		t.Errorf("ReadSamples() = %d, %v, want 2, nil", n, err)
	}
}

func TestDecoder_RejectsNonOgg(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg stream"))); err == nil {
		t.Fatal("Decode() on junk input succeeded, want error")
	}
}
