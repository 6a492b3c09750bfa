// SPDX-License-Identifier: EPL-2.0

// Package wav reads RIFF/WAVE containers and delivers channel-interleaved
// samples in any of the toolchain's numeric representations.
//
// # Opening a stream
//
// Open parses the container header and leaves the cursor on the first
// sample byte:
//
//	f, err := wav.Open(file)
//	if err != nil {
//	    // not a usable WAVE stream
//	}
//	fmt.Println(f) // e.g. "Signed 16-bit 44100 Hz stereo"
//
// Plain PCM, IEEE-float and WAVE_FORMAT_EXTENSIBLE containers are
// understood; unknown chunks between fmt and data are skipped by their
// declared length. The input only needs to be an io.Reader, so a pipe works.
// When it is also seekable, the file size is used to clamp an overlong
// declared data length, and seeks use random access instead of discarding
// bytes.
//
// # Reading samples
//
// Samples are read in the caller-selected representation, independent of
// how they are stored on disk:
//
//	f.SetReadFormat(sample.Float)
//	buf, _ := sample.NewBuffer(sample.Float, 4096*f.Channels)
//	for {
//	    frames, err := f.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// ReadSamples returns whole frames; a short count is the normal end-of-data
// signal, not an error.
//
// # Seeking
//
// SeekSamples and SeekTime reposition within the data chunk, clamped to its
// bounds. On non-seekable input only forward movement is possible; backward
// requests fail with ErrSeekRange. Absolute offsets beyond 2 GiB are reached
// with relative seeks, and forward distances beyond that fall back to
// discarding bytes.
package wav
