// SPDX-License-Identifier: EPL-2.0

package sample

// Format identifies one of the numeric sample representations the toolchain
// can move audio between. The 20 and 24-bit formats are stored unpacked in
// int32 values; their Format still records the true bit width so scaling
// uses the right full-scale constant.
type Format int

const (
	// Unknown is the zero value. A stream whose header does not map to any
	// supported representation keeps Unknown and fails on the first read.
	Unknown Format = iota
	// U8 is 8-bit unsigned, offset by 128 (silence is 128).
	U8
	// S16 is 16-bit signed two's complement.
	S16
	// S20 is 20-bit signed, stored in the low bits of an int32.
	S20
	// S24 is 24-bit signed, stored in the low bits of an int32.
	S24
	// S32 is 32-bit signed two's complement.
	S32
	// Float is IEEE 754 single precision, nominal range [-1, 1).
	Float
	// Double is IEEE 754 double precision, nominal range [-1, 1).
	Double
)

func (f Format) String() string {
	switch f {
	case U8:
		return "u8"
	case S16:
		return "s16"
	case S20:
		return "s20"
	case S24:
		return "s24"
	case S32:
		return "s32"
	case Float:
		return "float"
	case Double:
		return "double"
	}
	return "unknown"
}

// BitWidth returns the number of significant bits per sample, or 0 for
// Unknown.
func (f Format) BitWidth() int {
	switch f {
	case U8:
		return 8
	case S16:
		return 16
	case S20:
		return 20
	case S24:
		return 24
	case S32, Float:
		return 32
	case Double:
		return 64
	}
	return 0
}

// FullScale returns the magnitude that maps the format's integer range onto
// the floating-point range [-1, 1). For the floating-point formats it is 1.
func (f Format) FullScale() float64 {
	switch f {
	case U8:
		return 128
	case S16:
		return 32768
	case S20:
		return 524288
	case S24:
		return 8388608
	case S32:
		return 2147483648
	case Float, Double:
		return 1
	}
	return 0
}
