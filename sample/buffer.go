// SPDX-License-Identifier: EPL-2.0

package sample

// Buffer holds interleaved samples in one of the supported representations.
// Exactly one backing slice is active, selected by the buffer's format; the
// S20, S24 and S32 formats share int32 storage.
type Buffer struct {
	format Format

	u8  []uint8
	s16 []int16
	s32 []int32
	f32 []float32
	f64 []float64
}

// NewBuffer allocates a buffer for n samples of format f.
func NewBuffer(f Format, n int) (*Buffer, error) {
	b := &Buffer{format: f}

	switch f {
	case U8:
		b.u8 = make([]uint8, n)
	case S16:
		b.s16 = make([]int16, n)
	case S20, S24, S32:
		b.s32 = make([]int32, n)
	case Float:
		b.f32 = make([]float32, n)
	case Double:
		b.f64 = make([]float64, n)
	default:
		return nil, ErrUnknownFormat
	}

	return b, nil
}

// Format reports the representation the buffer holds.
func (b *Buffer) Format() Format { return b.format }

// Len returns the number of samples the buffer can hold.
func (b *Buffer) Len() int {
	switch b.format {
	case U8:
		return len(b.u8)
	case S16:
		return len(b.s16)
	case S20, S24, S32:
		return len(b.s32)
	case Float:
		return len(b.f32)
	case Double:
		return len(b.f64)
	}
	return 0
}

// Resize grows or shrinks the buffer to hold exactly n samples. Existing
// contents are kept when growing in place is possible.
func (b *Buffer) Resize(n int) {
	switch b.format {
	case U8:
		b.u8 = resize(b.u8, n)
	case S16:
		b.s16 = resize(b.s16, n)
	case S20, S24, S32:
		b.s32 = resize(b.s32, n)
	case Float:
		b.f32 = resize(b.f32, n)
	case Double:
		b.f64 = resize(b.f64, n)
	}
}

func resize[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s[:n]
	}
	grown := make([]T, n)
	copy(grown, s)
	return grown
}

// U8 returns the backing slice of a U8 buffer, or nil for any other format.
func (b *Buffer) U8() []uint8 { return b.u8 }

// S16 returns the backing slice of an S16 buffer, or nil for any other format.
func (b *Buffer) S16() []int16 { return b.s16 }

// Int32 returns the shared backing slice of an S20, S24 or S32 buffer, or nil
// for any other format.
func (b *Buffer) Int32() []int32 { return b.s32 }

// Float32 returns the backing slice of a Float buffer, or nil for any other
// format.
func (b *Buffer) Float32() []float32 { return b.f32 }

// Float64 returns the backing slice of a Double buffer, or nil for any other
// format.
func (b *Buffer) Float64() []float64 { return b.f64 }
