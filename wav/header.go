// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/easyaspi314/aften/sample"
)

// Chunk ids as little-endian 32-bit words, the way they are compared after
// going through the byte reader.
const (
	riffID = 0x46464952 // "RIFF"
	waveID = 0x45564157 // "WAVE"
	fmtID  = 0x20746D66 // "fmt "
	dataID = 0x61746164 // "data"
)

// read2le reads one little-endian 16-bit word and advances the tracked
// position.
func (f *File) read2le() (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(f.r, b[:]); err != nil {
		return 0, err
	}
	f.pos += 2
	return binary.LittleEndian.Uint16(b[:]), nil
}

// read4le reads one little-endian 32-bit word and advances the tracked
// position.
func (f *File) read4le() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(f.r, b[:]); err != nil {
		return 0, err
	}
	f.pos += 4
	return binary.LittleEndian.Uint32(b[:]), nil
}

// parseHeader walks the container chunks until the data chunk is found,
// validating structure along the way. On return the stream cursor sits on
// the first sample byte.
func (f *File) parseHeader() error {
	id, err := f.read4le()
	if err != nil {
		return fmt.Errorf("wav: reading header: %w", err)
	}
	if id != riffID {
		return ErrNotWaveFile
	}
	// The declared RIFF size is not trusted; skip it.
	if _, err := f.read4le(); err != nil {
		return fmt.Errorf("wav: reading header: %w", err)
	}
	id, err = f.read4le()
	if err != nil {
		return fmt.Errorf("wav: reading header: %w", err)
	}
	if id != waveID {
		return ErrNotWaveFile
	}

	foundFmt := false
	for {
		id, err := f.read4le()
		if err != nil {
			return fmt.Errorf("wav: reading chunk id: %w", err)
		}
		size, err := f.read4le()
		if err != nil {
			return fmt.Errorf("wav: reading chunk size: %w", err)
		}
		// A zero id or size would loop forever on malformed input.
		if id == 0 || size == 0 {
			return ErrEmptyChunk
		}

		switch id {
		case fmtID:
			if size < 16 {
				return ErrBadFmtChunk
			}
			if err := f.parseFmtChunk(size); err != nil {
				return err
			}
			foundFmt = true

		case dataID:
			if !foundFmt {
				return ErrDataBeforeFmt
			}
			f.DataStart = f.pos
			f.DataSize = uint64(size)
			if f.seekable && f.fileSize > 0 {
				// The declared length may exceed what the file holds.
				if f.DataStart >= f.fileSize {
					f.DataSize = 0
				} else {
					f.DataSize = min(f.DataSize, f.fileSize-f.DataStart)
				}
			}
			if f.BlockAlign > 0 {
				f.Samples = f.DataSize / uint64(f.BlockAlign)
			}
			f.resolveSourceFormat()
			return nil

		default:
			if err := f.seekTo(f.pos + uint64(size)); err != nil {
				return err
			}
		}
	}
}

// parseFmtChunk consumes a fmt chunk of the given declared size. The first
// 16 bytes are required; an extensible extension block is consumed when
// present, and anything left over is skipped.
func (f *File) parseFmtChunk(size uint32) error {
	tag, err := f.read2le()
	if err != nil {
		return fmt.Errorf("wav: reading fmt chunk: %w", err)
	}
	f.FormatTag = tag

	channels, err := f.read2le()
	if err != nil {
		return fmt.Errorf("wav: reading fmt chunk: %w", err)
	}
	if channels == 0 {
		return ErrNoChannels
	}
	f.Channels = int(channels)

	rate, err := f.read4le()
	if err != nil {
		return fmt.Errorf("wav: reading fmt chunk: %w", err)
	}
	if rate == 0 {
		return ErrNoSampleRate
	}
	f.SampleRate = int(rate)

	// Byte rate from the header is ignored; it is recomputed below.
	if _, err := f.read4le(); err != nil {
		return fmt.Errorf("wav: reading fmt chunk: %w", err)
	}

	blockAlign, err := f.read2le()
	if err != nil {
		return fmt.Errorf("wav: reading fmt chunk: %w", err)
	}
	f.BlockAlign = int(blockAlign)

	bitWidth, err := f.read2le()
	if err != nil {
		return fmt.Errorf("wav: reading fmt chunk: %w", err)
	}
	if bitWidth == 0 {
		return ErrNoBitWidth
	}
	f.BitWidth = int(bitWidth)
	size -= 16

	f.ChannelMask = 0
	if f.FormatTag == FormatExtensible && size >= 10 {
		// Skip cbSize and the valid-bits-per-sample field.
		if _, err := f.read4le(); err != nil {
			return fmt.Errorf("wav: reading fmt extension: %w", err)
		}
		mask, err := f.read4le()
		if err != nil {
			return fmt.Errorf("wav: reading fmt extension: %w", err)
		}
		f.ChannelMask = mask
		subTag, err := f.read2le()
		if err != nil {
			return fmt.Errorf("wav: reading fmt extension: %w", err)
		}
		f.FormatTag = subTag
		size -= 10
	}

	if f.FormatTag == FormatPCM || f.FormatTag == FormatIEEEFloat {
		// The block alignment in the header can be inconsistent for
		// uncompressed data; recompute it from the bit width.
		f.BlockAlign = max(1, (f.BitWidth+7)/8*f.Channels)
	}
	f.ByteRate = f.SampleRate * f.BlockAlign

	if f.ChannelMask == 0 {
		f.ChannelMask = defaultChannelMask(f.Channels)
	}

	// Skip whatever is left of the chunk.
	if size > 0 {
		return f.seekTo(f.pos + uint64(size))
	}
	return nil
}

// defaultChannelMask picks a speaker layout for streams that do not declare
// one. No default layout is defined for more than 6 channels; the mask is
// left unspecified there.
func defaultChannelMask(channels int) uint32 {
	switch channels {
	case 1:
		return 0x04 // FC
	case 2:
		return 0x03 // FL, FR
	case 3:
		return 0x07 // FL, FR, FC
	case 4:
		return 0x107 // FL, FR, FC, BC
	case 5:
		return 0x37 // FL, FR, FC, BL, BR
	case 6:
		return 0x3F // FL, FR, FC, LFE, BL, BR
	}
	return 0
}

// resolveSourceFormat derives the on-disk sample representation from the
// format tag and bit width. Combinations outside the table leave the source
// format unknown, which fails the first sample read but keeps the metadata
// inspectable.
func (f *File) resolveSourceFormat() {
	f.sourceFormat = sample.Unknown
	if f.FormatTag == FormatPCM || f.FormatTag == FormatIEEEFloat {
		switch f.BitWidth {
		case 8:
			if f.FormatTag == FormatPCM {
				f.sourceFormat = sample.U8
			}
		case 16:
			if f.FormatTag == FormatPCM {
				f.sourceFormat = sample.S16
			}
		case 20:
			if f.FormatTag == FormatPCM {
				f.sourceFormat = sample.S20
			}
		case 24:
			if f.FormatTag == FormatPCM {
				f.sourceFormat = sample.S24
			}
		case 32:
			if f.FormatTag == FormatIEEEFloat {
				f.sourceFormat = sample.Float
			} else {
				f.sourceFormat = sample.S32
			}
		case 64:
			if f.FormatTag == FormatIEEEFloat {
				f.sourceFormat = sample.Double
			}
		}
	}
	f.readFormat = f.sourceFormat
}
