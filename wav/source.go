// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/easyaspi314/aften/audio"
	"github.com/easyaspi314/aften/sample"
)

type fileSource struct {
	f   *File
	buf *sample.Buffer
}

// Source adapts the file to the toolchain's audio.Source interface. The
// read format is switched to Double, so samples arrive as float64 values in
// [-1, 1] regardless of the on-disk representation.
func (f *File) Source() (audio.Source, error) {
	if f.sourceFormat == sample.Unknown {
		return nil, ErrUnsupportedFormat
	}
	if err := f.SetReadFormat(sample.Double); err != nil {
		return nil, err
	}
	buf, err := sample.NewBuffer(sample.Double, 0)
	if err != nil {
		return nil, err
	}
	return &fileSource{f: f, buf: buf}, nil
}

func (s *fileSource) SampleRate() int { return s.f.SampleRate }
func (s *fileSource) Channels() int   { return s.f.Channels }
func (s *fileSource) Close() error    { return nil }

func (s *fileSource) ReadSamples(dst []float64) (int, error) {
	want := len(dst) - len(dst)%s.f.Channels
	if want == 0 {
		return 0, nil
	}
	s.buf.Resize(want)

	frames, err := s.f.ReadSamples(s.buf)
	if err != nil {
		return 0, err
	}

	n := frames * s.f.Channels
	copy(dst, s.buf.Float64()[:n])
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Decoder plugs the WAVE reader into an audio format registry.
type Decoder struct{}

// Decode parses the WAVE header from r and returns the stream as an
// audio.Source.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	f, err := Open(r)
	if err != nil {
		return nil, err
	}
	return f.Source()
}
