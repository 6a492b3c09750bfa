// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// Structural errors: the stream is not a usable RIFF/WAVE container.
	ErrNotWaveFile   = errors.New("not a RIFF/WAVE stream")
	ErrEmptyChunk    = errors.New("invalid or empty chunk in wav header")
	ErrBadFmtChunk   = errors.New("invalid fmt chunk in wav header")
	ErrDataBeforeFmt = errors.New("data chunk precedes fmt chunk")
	ErrNoChannels    = errors.New("invalid number of channels in wav header")
	ErrNoSampleRate  = errors.New("invalid sample rate in wav header")
	ErrNoBitWidth    = errors.New("invalid sample bit width in wav header")

	// ErrUnsupportedFormat marks a bit-width/format-tag combination with no
	// defined sample representation. It is reported when sample data is
	// requested, not at header-parse time.
	ErrUnsupportedFormat = errors.New("unsupported sample format")

	// ErrSeekRange marks a backward seek outside the supported window of the
	// transport. The tracked position is left untouched.
	ErrSeekRange = errors.New("backward seek outside the supported range")

	ErrNilReader     = errors.New("nil input reader")
	ErrBadBlockAlign = errors.New("invalid block alignment")
	ErrBadWhence     = errors.New("invalid seek whence")
	ErrReadFormat    = errors.New("buffer format does not match the read format")
)
