// SPDX-License-Identifier: EPL-2.0

// Package sample defines the numeric sample representations the toolchain
// moves audio between, and the conversion matrix that re-encodes buffers
// from one representation to another.
//
// # Formats
//
// Seven representations are supported:
//   - U8: 8-bit unsigned, offset by 128
//   - S16, S20, S24, S32: signed two's complement (20 and 24-bit samples are
//     stored unpacked in int32 values)
//   - Float, Double: IEEE 754 in the nominal range [-1.0, 1.0)
//
// # Conversion
//
// Convert handles every (source, destination) pair explicitly:
//
//	src, _ := sample.NewBuffer(sample.S16, 1024)
//	dst, _ := sample.NewBuffer(sample.Float, 1024)
//	// ... fill src ...
//	err := sample.Convert(dst, src, 1024)
//
// Integer-to-integer conversion shifts by the bit-width difference. Integer
// to floating point divides by the source's full-scale magnitude, e.g. an
// S16 sample of -32768 becomes -1.0. Floating point to integer multiplies by
// the destination's full-scale magnitude and clips to the representable
// range, so +1.0 converted to S16 yields 32767 rather than wrapping.
//
// Conversion only re-encodes values. It never resamples, remixes channels or
// applies gain.
package sample
