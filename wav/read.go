// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/easyaspi314/aften/sample"
)

// ReadSamples decodes up to len-of-dst/Channels sample frames into dst,
// which must hold the current read format. It returns the number of whole
// frames decoded; (0, io.EOF) signals the end of the data chunk. Fewer
// frames than requested is not an error.
func (f *File) ReadSamples(dst *sample.Buffer) (int, error) {
	if dst == nil {
		return 0, sample.ErrNilBuffer
	}
	if f.sourceFormat == sample.Unknown {
		return 0, fmt.Errorf("%w: %d-bit, format tag 0x%04X",
			ErrUnsupportedFormat, f.BitWidth, f.FormatTag)
	}
	if dst.Format() != f.readFormat {
		return 0, ErrReadFormat
	}
	if f.BlockAlign <= 0 {
		return 0, ErrBadBlockAlign
	}

	frames := dst.Len() / f.Channels
	frames = min(frames, maxReadFrames)

	// Never read past the end of the data chunk.
	end := f.DataStart + f.DataSize
	if f.pos >= end {
		return 0, io.EOF
	}
	if remaining := end - f.pos; uint64(frames)*uint64(f.BlockAlign) > remaining {
		frames = int(remaining / uint64(f.BlockAlign))
	}
	if frames <= 0 {
		return 0, io.EOF
	}

	need := frames * f.BlockAlign
	if cap(f.raw) < need {
		f.raw = make([]byte, need)
	}
	raw := f.raw[:need]

	nb, err := io.ReadFull(f.r, raw)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("wav: reading samples: %w", err)
	}
	// A short read is fine; only whole frames are used.
	frames = nb / f.BlockAlign
	if frames == 0 {
		return 0, io.EOF
	}
	f.pos += uint64(frames * f.BlockAlign)

	nsmp := frames * f.Channels
	if err := f.unpackSource(raw, nsmp); err != nil {
		return 0, err
	}

	if err := sample.Convert(dst, f.unpacked, nsmp); err != nil {
		return 0, err
	}

	return frames, nil
}

// unpackSource decodes nsmp raw little-endian samples into f.unpacked in the
// source representation. The 3-byte and 4-byte integer paths reconstruct
// values byte by byte with explicit sign handling, which also keeps them
// independent of the host byte order.
func (f *File) unpackSource(raw []byte, nsmp int) error {
	if f.unpacked == nil || f.unpacked.Format() != f.sourceFormat {
		b, err := sample.NewBuffer(f.sourceFormat, nsmp)
		if err != nil {
			return ErrUnsupportedFormat
		}
		f.unpacked = b
	} else if f.unpacked.Len() < nsmp {
		f.unpacked.Resize(nsmp)
	}

	bps := f.BlockAlign / f.Channels
	switch {
	case bps == 1:
		if f.sourceFormat != sample.U8 {
			return ErrUnsupportedFormat
		}
		copy(f.unpacked.U8()[:nsmp], raw)

	case bps == 2:
		if f.sourceFormat != sample.S16 {
			return ErrUnsupportedFormat
		}
		out := f.unpacked.S16()
		for i := 0; i < nsmp; i++ {
			out[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
		}

	case bps == 3:
		if f.sourceFormat != sample.S20 && f.sourceFormat != sample.S24 {
			return ErrUnsupportedFormat
		}
		out := f.unpacked.Int32()
		for i := 0; i < nsmp; i++ {
			b := raw[3*i:]
			v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
			switch f.BitWidth {
			case 20:
				if v >= 1<<19 {
					v -= 1 << 20
				}
			case 24:
				if v >= 1<<23 {
					v -= 1 << 24
				}
			default:
				return fmt.Errorf("%w: %d-bit in 3-byte frames",
					ErrUnsupportedFormat, f.BitWidth)
			}
			out[i] = v
		}

	case bps == 4 && f.FormatTag == FormatIEEEFloat:
		if f.sourceFormat != sample.Float {
			return ErrUnsupportedFormat
		}
		out := f.unpacked.Float32()
		for i := 0; i < nsmp; i++ {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
		}

	case bps == 4:
		if f.sourceFormat != sample.S32 {
			return ErrUnsupportedFormat
		}
		out := f.unpacked.Int32()
		for i := 0; i < nsmp; i++ {
			b := raw[4*i:]
			v := int64(b[0]) | int64(b[1])<<8 | int64(b[2])<<16 | int64(b[3])<<24
			if v >= 1<<31 {
				v -= 1 << 32
			}
			out[i] = int32(v)
		}

	case bps == 8 && f.FormatTag == FormatIEEEFloat:
		if f.sourceFormat != sample.Double {
			return ErrUnsupportedFormat
		}
		out := f.unpacked.Float64()
		for i := 0; i < nsmp; i++ {
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
		}

	default:
		return fmt.Errorf("%w: %d bytes per sample", ErrUnsupportedFormat, bps)
	}

	return nil
}
