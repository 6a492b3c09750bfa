// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/easyaspi314/aften/sample"
)

// WAVE format tags this front-end understands. An extensible fmt chunk is
// resolved to one of the first two during header parsing.
const (
	FormatPCM        = 0x0001
	FormatIEEEFloat  = 0x0003
	FormatExtensible = 0xFFFE
)

// maxReadFrames bounds the scratch buffers allocated by a single
// ReadSamples call.
const maxReadFrames = 4096

// File reads sample data out of a RIFF/WAVE stream. The header fields are
// populated once by Open and must be treated as read-only afterwards.
//
// A File is not safe for concurrent use; reads and seeks mutate the stream
// cursor in place.
type File struct {
	r        io.Reader
	s        io.Seeker // non-nil only when the transport supports random access
	pos      uint64    // tracked byte offset, the single source of truth
	fileSize uint64    // 0 when the transport length is unknown
	seekable bool
	logger   *slog.Logger

	FormatTag   uint16
	Channels    int
	SampleRate  int
	BitWidth    int
	BlockAlign  int
	ByteRate    int
	ChannelMask uint32
	DataStart   uint64
	DataSize    uint64
	Samples     uint64

	sourceFormat sample.Format
	readFormat   sample.Format

	raw      []byte
	unpacked *sample.Buffer
}

// Option configures a File during Open.
type Option func(*File)

// WithLogger directs the file's diagnostics (currently only the slow-seek
// warning) to l instead of discarding them.
func WithLogger(l *slog.Logger) Option {
	return func(f *File) { f.logger = l }
}

// Open reads the WAVE header from r and leaves the stream cursor at the
// first sample byte. r must be positioned at the start of the container.
//
// When r also implements io.Seeker and the transport accepts an end-seek,
// the file size is captured and random-access seeking is used; otherwise
// forward-only emulated seeking applies.
func Open(r io.Reader, opts ...Option) (*File, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	f := &File{
		r:      r,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}

	if s, ok := r.(io.Seeker); ok {
		if end, err := s.Seek(0, io.SeekEnd); err == nil {
			f.seekable = true
			f.s = s
			f.fileSize = uint64(end)
			if _, err := s.Seek(0, io.SeekStart); err != nil {
				return nil, fmt.Errorf("wav: rewinding input: %w", err)
			}
		}
	}

	if err := f.parseHeader(); err != nil {
		return nil, err
	}

	return f, nil
}

// Seekable reports whether the transport supports random access.
func (f *File) Seekable() bool { return f.seekable }

// SourceFormat is the representation samples are stored in on disk.
// sample.Unknown means the header declared a combination with no defined
// representation; metadata stays readable but sample reads will fail.
func (f *File) SourceFormat() sample.Format { return f.sourceFormat }

// ReadFormat is the representation ReadSamples delivers. It starts out equal
// to the source format.
func (f *File) ReadFormat() sample.Format { return f.readFormat }

// SetReadFormat selects the representation for subsequently read samples.
func (f *File) SetReadFormat(rf sample.Format) error {
	switch rf {
	case sample.U8, sample.S16, sample.S20, sample.S24, sample.S32,
		sample.Float, sample.Double:
		f.readFormat = rf
		return nil
	}
	return sample.ErrUnknownFormat
}

// Duration is the total length of the stream's audio data.
func (f *File) Duration() time.Duration {
	if f.SampleRate == 0 {
		return 0
	}
	sec := float64(f.Samples) / float64(f.SampleRate)
	return time.Duration(sec * float64(time.Second))
}

// String renders a short human-readable description of the audio format,
// e.g. "Signed 16-bit 44100 Hz stereo".
func (f *File) String() string {
	var kind string
	switch {
	case f.FormatTag == FormatPCM && f.BitWidth > 8:
		kind = "Signed"
	case f.FormatTag == FormatPCM:
		kind = "Unsigned"
	case f.FormatTag == FormatIEEEFloat:
		kind = "Floating-point"
	default:
		kind = "[unsupported type]"
	}

	var layout string
	switch f.Channels {
	case 1:
		layout = "mono"
	case 2:
		layout = "stereo"
	case 3, 4, 5, 6:
		layout = fmt.Sprintf("%d-channel", f.Channels)
	default:
		layout = "multi-channel"
	}

	return fmt.Sprintf("%s %d-bit %d Hz %s", kind, f.BitWidth, f.SampleRate, layout)
}
