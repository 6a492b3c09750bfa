// SPDX-License-Identifier: EPL-2.0

// Package aften is the decoding front-end of an audio codec toolchain.
//
// The core lives in the wav subpackage: it parses RIFF/WAVE containers from
// files or non-seekable streams and delivers channel-interleaved samples in
// a caller-chosen representation, with sample-accurate seeking. The sample
// subpackage holds the representation types and the conversion matrix
// between them.
//
// # Quick start
//
//	f, err := wav.Open(file)
//	if err != nil {
//	    ...
//	}
//	f.SetReadFormat(sample.S16)
//	buf, _ := sample.NewBuffer(sample.S16, 4096*f.Channels)
//	frames, err := f.ReadSamples(buf)
//
// # Normalized streams
//
// Decoders for WAV, MP3 and Ogg Vorbis input all expose the audio.Source
// interface, which delivers interleaved float64 samples in [-1, 1]:
//
//	src, err := aften.Decode("wav", file)
//	samples, err := aften.ReadAll(src)
//
// The front-end only re-encodes numeric representations. It never
// resamples, remixes channel layouts or applies gain.
package aften
