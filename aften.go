// SPDX-License-Identifier: EPL-2.0

package aften

import (
	"fmt"
	"io"

	"github.com/easyaspi314/aften/audio"
	"github.com/easyaspi314/aften/formats/mp3"
	"github.com/easyaspi314/aften/formats/vorbis"
	"github.com/easyaspi314/aften/wav"
)

// DefaultRegistry returns a registry with every built-in decoder registered
// under its usual file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

// Decode looks up the decoder for the given format key and opens r as a
// normalized sample stream.
func Decode(format string, r io.Reader) (audio.Source, error) {
	d, ok := DefaultRegistry().Get(format)
	if !ok {
		return nil, fmt.Errorf("no decoder registered for format %q", format)
	}
	return d.Decode(r)
}

// ReadAll drains src and returns every interleaved sample. Intended for
// small inputs and tests; streaming callers should use ReadSamples
// directly.
func ReadAll(src audio.Source) ([]float64, error) {
	var out []float64
	buf := make([]float64, 4096)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			return out, nil
		}
	}
}
