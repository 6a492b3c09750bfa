// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/easyaspi314/aften/internal/audiotest"
)

// fakePCM hands out a fixed 16-bit little-endian PCM stream the way
// go-mp3's decoder does.
type fakePCM struct {
	r    *bytes.Reader
	rate int
}

func (f *fakePCM) Read(p []byte) (int, error) { return f.r.Read(p) }
func (f *fakePCM) SampleRate() int            { return f.rate }

func TestSource_Normalizes16BitPCM(t *testing.T) {
	t.Parallel()

	pcm := audiotest.PCM16(1, 2, -1, -32768)
	s := &source{
		dec:        &fakePCM{r: bytes.NewReader(pcm), rate: 44100},
		sampleRate: 44100,
		channels:   2,
	}

	if s.SampleRate() != 44100 || s.Channels() != 2 {
		t.Fatalf("source = %d Hz, %d ch", s.SampleRate(), s.Channels())
	}

	dst := make([]float64, 8)
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d values, want 4", n)
	}

	want := []float64{1.0 / 32768, 2.0 / 32768, -1.0 / 32768, -1.0}
	for i, w := range want {
		if math.Abs(dst[i]-w) > 1e-12 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}

	if n, err := s.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestDecoder_RejectsNonMP3(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an mp3 stream"))); err == nil {
		t.Fatal("Decode() on junk input succeeded, want error")
	}
}
