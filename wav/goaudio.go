// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	gaudio "github.com/go-audio/audio"

	"github.com/easyaspi314/aften/sample"
)

// pcmFormat describes the stream in go-audio terms.
func (f *File) pcmFormat() *gaudio.Format {
	return &gaudio.Format{
		NumChannels: f.Channels,
		SampleRate:  f.SampleRate,
	}
}

// FullPCMBuffer decodes every remaining frame into a go-audio IntBuffer so
// the stream can feed go-audio consumers. Integer sources keep their width;
// floating-point sources are re-encoded as S32.
func (f *File) FullPCMBuffer() (*gaudio.IntBuffer, error) {
	rf := f.sourceFormat
	switch rf {
	case sample.Float, sample.Double:
		rf = sample.S32
	case sample.Unknown:
		return nil, ErrUnsupportedFormat
	}
	if err := f.SetReadFormat(rf); err != nil {
		return nil, err
	}

	out := &gaudio.IntBuffer{
		Format:         f.pcmFormat(),
		SourceBitDepth: rf.BitWidth(),
		Data:           make([]int, 0, int(f.Samples)*f.Channels),
	}

	buf, err := sample.NewBuffer(rf, maxReadFrames*f.Channels)
	if err != nil {
		return nil, err
	}
	for {
		frames, err := f.ReadSamples(buf)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		n := frames * f.Channels
		switch rf {
		case sample.U8:
			for _, v := range buf.U8()[:n] {
				out.Data = append(out.Data, int(v))
			}
		case sample.S16:
			for _, v := range buf.S16()[:n] {
				out.Data = append(out.Data, int(v))
			}
		default:
			for _, v := range buf.Int32()[:n] {
				out.Data = append(out.Data, int(v))
			}
		}
	}
}

// FullFloatBuffer decodes every remaining frame into a go-audio FloatBuffer
// of float64 samples in [-1, 1].
func (f *File) FullFloatBuffer() (*gaudio.FloatBuffer, error) {
	if f.sourceFormat == sample.Unknown {
		return nil, ErrUnsupportedFormat
	}
	if err := f.SetReadFormat(sample.Double); err != nil {
		return nil, err
	}

	out := &gaudio.FloatBuffer{
		Format: f.pcmFormat(),
		Data:   make([]float64, 0, int(f.Samples)*f.Channels),
	}

	buf, err := sample.NewBuffer(sample.Double, maxReadFrames*f.Channels)
	if err != nil {
		return nil, err
	}
	for {
		frames, err := f.ReadSamples(buf)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out.Data = append(out.Data, buf.Float64()[:frames*f.Channels]...)
	}
}
