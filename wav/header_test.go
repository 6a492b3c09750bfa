// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"testing"

	"github.com/easyaspi314/aften/internal/audiotest"
	"github.com/easyaspi314/aften/sample"
)

func TestOpen_RejectsNonRIFF(t *testing.T) {
	t.Parallel()

	_, err := Open(bytes.NewReader([]byte("NOT A WAV FILE AT ALL")))
	if !errors.Is(err, ErrNotWaveFile) {
		t.Fatalf("Open() error = %v, want ErrNotWaveFile", err)
	}
}

func TestOpen_RejectsBadWAVETag(t *testing.T) {
	t.Parallel()

	data := []byte("RIFF\x24\x00\x00\x00NOPE")
	_, err := Open(bytes.NewReader(data))
	if !errors.Is(err, ErrNotWaveFile) {
		t.Fatalf("Open() error = %v, want ErrNotWaveFile", err)
	}
}

func TestOpen_RejectsNilReader(t *testing.T) {
	t.Parallel()

	_, err := Open(nil)
	if !errors.Is(err, ErrNilReader) {
		t.Fatalf("Open() error = %v, want ErrNilReader", err)
	}
}

func TestOpen_RejectsZeroSizeChunk(t *testing.T) {
	t.Parallel()

	data := audiotest.NewBuilder().
		RawChunk("JUNK", 0, nil).
		Bytes()

	_, err := Open(bytes.NewReader(data))
	if !errors.Is(err, ErrEmptyChunk) {
		t.Fatalf("Open() error = %v, want ErrEmptyChunk", err)
	}
}

func TestOpen_RejectsDataBeforeFmt(t *testing.T) {
	t.Parallel()

	data := audiotest.NewBuilder().
		Data(audiotest.PCM16(1, 2)).
		Fmt(FormatPCM, 1, 44100, 2, 16).
		Bytes()

	_, err := Open(bytes.NewReader(data))
	if !errors.Is(err, ErrDataBeforeFmt) {
		t.Fatalf("Open() error = %v, want ErrDataBeforeFmt", err)
	}
}

func TestOpen_RejectsShortFmtChunk(t *testing.T) {
	t.Parallel()

	data := audiotest.NewBuilder().
		Chunk("fmt ", make([]byte, 12)).
		Bytes()

	_, err := Open(bytes.NewReader(data))
	if !errors.Is(err, ErrBadFmtChunk) {
		t.Fatalf("Open() error = %v, want ErrBadFmtChunk", err)
	}
}

func TestOpen_ValidatesFmtFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		channels   uint16
		sampleRate uint32
		bitWidth   uint16
		want       error
	}{
		{"zero channels", 0, 44100, 16, ErrNoChannels},
		{"zero sample rate", 2, 0, 16, ErrNoSampleRate},
		{"zero bit width", 2, 44100, 0, ErrNoBitWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := audiotest.NewBuilder().
				Fmt(FormatPCM, tt.channels, tt.sampleRate, 4, tt.bitWidth).
				Data(audiotest.PCM16(0, 0)).
				Bytes()

			_, err := Open(bytes.NewReader(data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Open() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOpen_SkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	junk := bytes.Repeat([]byte{0xAB}, 37)
	data := audiotest.NewBuilder().
		Chunk("LIST", junk).
		Fmt(FormatPCM, 2, 44100, 4, 16).
		Chunk("fact", []byte{1, 2, 3, 4}).
		Data(audiotest.PCM16(1, 2, 3, 4)).
		Bytes()

	f, err := Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if f.Samples != 2 {
		t.Errorf("Samples = %d, want 2", f.Samples)
	}
	if f.Channels != 2 || f.SampleRate != 44100 || f.BitWidth != 16 {
		t.Errorf("parsed fmt = %d ch, %d Hz, %d bit", f.Channels, f.SampleRate, f.BitWidth)
	}
}

func TestOpen_SkipsUnknownChunksOnPipe(t *testing.T) {
	t.Parallel()

	// Chunk skipping on a non-seekable stream goes through the emulated
	// forward seek.
	data := audiotest.NewBuilder().
		Chunk("LIST", bytes.Repeat([]byte{0xCD}, 21)).
		Fmt(FormatPCM, 1, 8000, 2, 16).
		Data(audiotest.PCM16(7)).
		Bytes()

	f, err := Open(&audiotest.NoSeek{R: bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if f.Seekable() {
		t.Error("Seekable() = true for a pipe")
	}
	if f.Samples != 1 {
		t.Errorf("Samples = %d, want 1", f.Samples)
	}
}

func TestOpen_ResolvesExtensibleFormat(t *testing.T) {
	t.Parallel()

	data := audiotest.NewBuilder().
		FmtExtensible(2, 48000, 4, 16, 0x33, FormatPCM).
		Data(audiotest.PCM16(1, 2)).
		Bytes()

	f, err := Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if f.FormatTag != FormatPCM {
		t.Errorf("FormatTag = 0x%04X, want PCM", f.FormatTag)
	}
	if f.ChannelMask != 0x33 {
		t.Errorf("ChannelMask = 0x%X, want 0x33", f.ChannelMask)
	}
	if f.SourceFormat() != sample.S16 {
		t.Errorf("SourceFormat() = %v, want s16", f.SourceFormat())
	}
}

func TestOpen_DefaultChannelMasks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		channels uint16
		want     uint32
	}{
		{1, 0x04},
		{2, 0x03},
		{3, 0x07},
		{4, 0x107},
		{5, 0x37},
		{6, 0x3F},
		{7, 0x00}, // no default layout defined
	}

	for _, tt := range tests {
		blockAlign := 2 * tt.channels
		frame := make([]int16, tt.channels)
		data := audiotest.NewBuilder().
			Fmt(FormatPCM, tt.channels, 44100, blockAlign, 16).
			Data(audiotest.PCM16(frame...)).
			Bytes()

		f, err := Open(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Open() error = %v for %d channels", err, tt.channels)
		}
		if f.ChannelMask != tt.want {
			t.Errorf("ChannelMask = 0x%X for %d channels, want 0x%X",
				f.ChannelMask, tt.channels, tt.want)
		}
	}
}

func TestOpen_ClampsDataSizeToFileSize(t *testing.T) {
	t.Parallel()

	// The data chunk declares 100 bytes but the file only holds 8.
	data := audiotest.NewBuilder().
		Fmt(FormatPCM, 2, 44100, 4, 16).
		RawChunk("data", 100, audiotest.PCM16(1, 2, 3, 4)).
		Bytes()

	f, err := Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if f.DataSize != 8 {
		t.Errorf("DataSize = %d, want 8", f.DataSize)
	}
	if f.Samples != 2 {
		t.Errorf("Samples = %d, want 2", f.Samples)
	}
}

func TestOpen_OverridesInconsistentBlockAlign(t *testing.T) {
	t.Parallel()

	// Header claims a bogus block alignment for plain PCM; the parser
	// recomputes channels * ceil(bits/8).
	data := audiotest.NewBuilder().
		Fmt(FormatPCM, 2, 44100, 7, 16).
		Data(audiotest.PCM16(1, 2, 3, 4)).
		Bytes()

	f, err := Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if f.BlockAlign != 4 {
		t.Errorf("BlockAlign = %d, want 4", f.BlockAlign)
	}
	if f.ByteRate != 44100*4 {
		t.Errorf("ByteRate = %d, want %d", f.ByteRate, 44100*4)
	}
}

func TestOpen_SourceFormatTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag      uint16
		bitWidth uint16
		want     sample.Format
	}{
		{FormatPCM, 8, sample.U8},
		{FormatPCM, 16, sample.S16},
		{FormatPCM, 20, sample.S20},
		{FormatPCM, 24, sample.S24},
		{FormatPCM, 32, sample.S32},
		{FormatIEEEFloat, 32, sample.Float},
		{FormatIEEEFloat, 64, sample.Double},
		{FormatPCM, 12, sample.Unknown},
		{FormatIEEEFloat, 16, sample.Unknown},
		{FormatPCM, 64, sample.Unknown},
	}

	for _, tt := range tests {
		bps := (tt.bitWidth + 7) / 8
		data := audiotest.NewBuilder().
			Fmt(tt.tag, 1, 44100, bps, tt.bitWidth).
			Data(make([]byte, int(bps)*4)).
			Bytes()

		f, err := Open(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Open() error = %v for tag 0x%04X width %d", err, tt.tag, tt.bitWidth)
		}
		if f.SourceFormat() != tt.want {
			t.Errorf("SourceFormat() = %v for tag 0x%04X width %d, want %v",
				f.SourceFormat(), tt.tag, tt.bitWidth, tt.want)
		}
		if f.ReadFormat() != tt.want {
			t.Errorf("ReadFormat() = %v, want %v (initialized to source)",
				f.ReadFormat(), tt.want)
		}
	}
}

func TestFile_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag      uint16
		channels uint16
		bitWidth uint16
		want     string
	}{
		{FormatPCM, 2, 16, "Signed 16-bit 44100 Hz stereo"},
		{FormatPCM, 1, 8, "Unsigned 8-bit 44100 Hz mono"},
		{FormatIEEEFloat, 6, 32, "Floating-point 32-bit 44100 Hz 6-channel"},
		{FormatPCM, 8, 24, "Signed 24-bit 44100 Hz multi-channel"},
	}

	for _, tt := range tests {
		bps := (tt.bitWidth + 7) / 8
		data := audiotest.NewBuilder().
			Fmt(tt.tag, tt.channels, 44100, bps*tt.channels, tt.bitWidth).
			Data(make([]byte, int(bps)*int(tt.channels))).
			Bytes()

		f, err := Open(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if got := f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
