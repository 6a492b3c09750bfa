// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides helpers for building WAV byte streams and
// constrained reader wrappers used across the package tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Builder assembles a RIFF/WAVE byte stream chunk by chunk, including
// deliberately malformed ones. The declared RIFF size is written as zero;
// the parser does not trust it anyway.
type Builder struct {
	buf bytes.Buffer
}

// NewBuilder starts a stream with the RIFF/WAVE preamble.
func NewBuilder() *Builder {
	b := &Builder{}
	b.buf.WriteString("RIFF")
	binary.Write(&b.buf, binary.LittleEndian, uint32(0))
	b.buf.WriteString("WAVE")
	return b
}

// Chunk appends a chunk with the given 4-byte id and payload.
func (b *Builder) Chunk(id string, payload []byte) *Builder {
	b.buf.WriteString(id)
	binary.Write(&b.buf, binary.LittleEndian, uint32(len(payload)))
	b.buf.Write(payload)
	return b
}

// RawChunk appends a chunk header with an arbitrary declared size followed
// by payload, which may be shorter than declared.
func (b *Builder) RawChunk(id string, declared uint32, payload []byte) *Builder {
	b.buf.WriteString(id)
	binary.Write(&b.buf, binary.LittleEndian, declared)
	b.buf.Write(payload)
	return b
}

// Fmt appends a 16-byte fmt chunk.
func (b *Builder) Fmt(formatTag, channels uint16, sampleRate uint32, blockAlign, bitWidth uint16) *Builder {
	payload := new(bytes.Buffer)
	binary.Write(payload, binary.LittleEndian, formatTag)
	binary.Write(payload, binary.LittleEndian, channels)
	binary.Write(payload, binary.LittleEndian, sampleRate)
	binary.Write(payload, binary.LittleEndian, sampleRate*uint32(blockAlign)) // byte rate
	binary.Write(payload, binary.LittleEndian, blockAlign)
	binary.Write(payload, binary.LittleEndian, bitWidth)
	return b.Chunk("fmt ", payload.Bytes())
}

// FmtExtensible appends a 40-byte WAVE_FORMAT_EXTENSIBLE fmt chunk that
// resolves to subTag with the given channel mask.
func (b *Builder) FmtExtensible(channels uint16, sampleRate uint32, blockAlign, bitWidth uint16, mask uint32, subTag uint16) *Builder {
	payload := new(bytes.Buffer)
	binary.Write(payload, binary.LittleEndian, uint16(0xFFFE))
	binary.Write(payload, binary.LittleEndian, channels)
	binary.Write(payload, binary.LittleEndian, sampleRate)
	binary.Write(payload, binary.LittleEndian, sampleRate*uint32(blockAlign))
	binary.Write(payload, binary.LittleEndian, blockAlign)
	binary.Write(payload, binary.LittleEndian, bitWidth)
	binary.Write(payload, binary.LittleEndian, uint16(22))     // cbSize
	binary.Write(payload, binary.LittleEndian, bitWidth)       // valid bits
	binary.Write(payload, binary.LittleEndian, mask)           // channel mask
	binary.Write(payload, binary.LittleEndian, subTag)         // sub-format tag
	binary.Write(payload, binary.LittleEndian, [14]byte{})     // GUID remainder
	return b.Chunk("fmt ", payload.Bytes())
}

// Data appends the data chunk.
func (b *Builder) Data(payload []byte) *Builder {
	return b.Chunk("data", payload)
}

// Bytes returns the assembled stream.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// PCM16 packs samples as little-endian 16-bit PCM.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// PCM24 packs samples as little-endian 3-byte PCM. Only the low 24 bits of
// each value are written.
func PCM24(samples ...int32) []byte {
	out := make([]byte, 3*len(samples))
	for i, s := range samples {
		out[3*i] = byte(s)
		out[3*i+1] = byte(s >> 8)
		out[3*i+2] = byte(s >> 16)
	}
	return out
}

// PCM32 packs samples as little-endian 4-byte PCM.
func PCM32(samples ...int32) []byte {
	out := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(s))
	}
	return out
}

// Float32LE packs samples as little-endian IEEE 754 single precision.
func Float32LE(samples ...float32) []byte {
	out := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(s))
	}
	return out
}

// Float64LE packs samples as little-endian IEEE 754 double precision.
func Float64LE(samples ...float64) []byte {
	out := make([]byte, 8*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(s))
	}
	return out
}
