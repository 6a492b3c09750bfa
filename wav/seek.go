// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"
	"time"
)

// seekTo moves the logical read cursor to the absolute byte offset dest.
//
// On random-access transports a destination within the first 2 GiB is
// reached with a direct absolute seek. Beyond that a relative seek is issued
// when the distance from the tracked position fits a signed 32-bit range;
// a larger backward distance is an error, and a larger forward distance
// falls back to the emulated path. Transports without random access always
// use the emulated path, which can only discard bytes forward.
//
// The tracked position is updated only after the move succeeds.
func (f *File) seekTo(dest uint64) error {
	slow := !f.seekable

	if f.seekable {
		if dest <= math.MaxInt32 {
			if _, err := f.s.Seek(int64(dest), io.SeekStart); err != nil {
				return fmt.Errorf("wav: seeking: %w", err)
			}
		} else {
			offset := int64(dest) - int64(f.pos)
			switch {
			case offset >= math.MinInt32 && offset <= math.MaxInt32:
				if _, err := f.s.Seek(offset, io.SeekCurrent); err != nil {
					return fmt.Errorf("wav: seeking: %w", err)
				}
			case offset < 0:
				return ErrSeekRange
			default:
				f.logger.Warn("forward seeking more than 2 GiB will be slow",
					"offset", offset)
				slow = true
			}
		}
	}

	if slow {
		if dest < f.pos {
			return ErrSeekRange
		}
		// Emulated forward seek: discard bytes until the destination.
		// Running out of input here is tolerated; the next read reports it.
		if _, err := io.CopyN(io.Discard, f.r, int64(dest-f.pos)); err != nil &&
			err != io.EOF {
			return fmt.Errorf("wav: skipping input: %w", err)
		}
	}

	f.pos = dest
	return nil
}

// SeekSamples repositions the read cursor by a sample-frame offset.
// whence is io.SeekStart, io.SeekCurrent or io.SeekEnd. The destination is
// clamped to the data chunk, so seeking past either end stops at the
// boundary instead of failing.
func (f *File) SeekSamples(offset int64, whence int) error {
	if f.BlockAlign <= 0 {
		return ErrBadBlockAlign
	}
	if f.pos < f.DataStart {
		return ErrSeekRange
	}
	if f.DataSize == 0 {
		return nil
	}

	byteOffset := offset * int64(f.BlockAlign)
	fpos := int64(f.pos)
	start := int64(f.DataStart)
	size := int64(f.DataSize)

	var newpos int64
	switch whence {
	case io.SeekStart:
		newpos = start + clip64(byteOffset, 0, size)
	case io.SeekCurrent:
		// Backward movement is limited to the start of the data chunk.
		newpos = fpos - min(-byteOffset, fpos-start)
		newpos = min(newpos, start+size)
	case io.SeekEnd:
		newpos = start + size - clip64(byteOffset, 0, size)
	default:
		return ErrBadWhence
	}

	return f.seekTo(uint64(newpos))
}

// SeekTime repositions the read cursor by a time offset with millisecond
// granularity. whence works as in SeekSamples.
func (f *File) SeekTime(offset time.Duration, whence int) error {
	samples := offset.Milliseconds() * int64(f.SampleRate) / 1000
	return f.SeekSamples(samples, whence)
}

// Position returns the current read position as a sample-frame index into
// the data chunk.
func (f *File) Position() (uint64, error) {
	if f.BlockAlign <= 0 {
		return 0, ErrBadBlockAlign
	}
	if f.DataStart == 0 || f.DataSize == 0 {
		return 0, nil
	}
	return (f.pos - f.DataStart) / uint64(f.BlockAlign), nil
}

// PositionTime returns the current read position as a time offset with
// millisecond granularity.
func (f *File) PositionTime() (time.Duration, error) {
	pos, err := f.Position()
	if err != nil {
		return 0, err
	}
	ms := pos * 1000 / uint64(f.SampleRate)
	return time.Duration(ms) * time.Millisecond, nil
}

func clip64(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
