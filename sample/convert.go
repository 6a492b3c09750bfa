// SPDX-License-Identifier: EPL-2.0

package sample

// Convert re-encodes the first n samples of src into dst using the scaling
// rule of the (source, destination) format pair. Integer narrowing truncates
// by arithmetic shift, integer widening zero-pads the low bits, and
// floating-point values are clipped to the destination's representable range
// before truncating. Identity pairs are a plain copy.
//
// Every pair carries its own full-scale constant and clip bounds, so the
// matrix is spelled out pair by pair rather than derived from a generic
// formula.
func Convert(dst, src *Buffer, n int) error {
	if dst == nil || src == nil {
		return ErrNilBuffer
	}
	if n < 0 || n > src.Len() || n > dst.Len() {
		return ErrShortBuffer
	}

	switch dst.format {
	case U8:
		return convertToU8(dst.u8, src, n)
	case S16:
		return convertToS16(dst.s16, src, n)
	case S20:
		return convertToS20(dst.s32, src, n)
	case S24:
		return convertToS24(dst.s32, src, n)
	case S32:
		return convertToS32(dst.s32, src, n)
	case Float:
		return convertToFloat(dst.f32, src, n)
	case Double:
		return convertToDouble(dst.f64, src, n)
	}
	return ErrUnknownFormat
}

// clip bounds x to [lo, hi]. Conversion to integer afterwards truncates
// toward zero.
func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func convertToU8(dst []uint8, src *Buffer, n int) error {
	switch src.format {
	case U8:
		copy(dst[:n], src.u8)
	case S16:
		for i := 0; i < n; i++ {
			dst[i] = uint8(src.s16[i]>>8 + 128)
		}
	case S20:
		for i := 0; i < n; i++ {
			dst[i] = uint8(src.s32[i]>>12 + 128)
		}
	case S24:
		for i := 0; i < n; i++ {
			dst[i] = uint8(src.s32[i]>>16 + 128)
		}
	case S32:
		for i := 0; i < n; i++ {
			dst[i] = uint8(src.s32[i]>>24 + 128)
		}
	case Float:
		for i := 0; i < n; i++ {
			dst[i] = uint8(clip(float64(src.f32[i])*128+128, 0, 255))
		}
	case Double:
		for i := 0; i < n; i++ {
			dst[i] = uint8(clip(src.f64[i]*128+128, 0, 255))
		}
	default:
		return ErrUnknownFormat
	}
	return nil
}

func convertToS16(dst []int16, src *Buffer, n int) error {
	switch src.format {
	case U8:
		for i := 0; i < n; i++ {
			dst[i] = (int16(src.u8[i]) - 128) << 8
		}
	case S16:
		copy(dst[:n], src.s16)
	case S20:
		for i := 0; i < n; i++ {
			dst[i] = int16(src.s32[i] >> 4)
		}
	case S24:
		for i := 0; i < n; i++ {
			dst[i] = int16(src.s32[i] >> 8)
		}
	case S32:
		for i := 0; i < n; i++ {
			dst[i] = int16(src.s32[i] >> 16)
		}
	case Float:
		for i := 0; i < n; i++ {
			dst[i] = int16(clip(float64(src.f32[i])*32768, -32768, 32767))
		}
	case Double:
		for i := 0; i < n; i++ {
			dst[i] = int16(clip(src.f64[i]*32768, -32768, 32767))
		}
	default:
		return ErrUnknownFormat
	}
	return nil
}

func convertToS20(dst []int32, src *Buffer, n int) error {
	switch src.format {
	case U8:
		for i := 0; i < n; i++ {
			dst[i] = (int32(src.u8[i]) - 128) << 12
		}
	case S16:
		for i := 0; i < n; i++ {
			dst[i] = int32(src.s16[i]) << 4
		}
	case S20:
		copy(dst[:n], src.s32)
	case S24:
		for i := 0; i < n; i++ {
			dst[i] = src.s32[i] >> 4
		}
	case S32:
		for i := 0; i < n; i++ {
			dst[i] = src.s32[i] >> 12
		}
	case Float:
		for i := 0; i < n; i++ {
			dst[i] = int32(clip(float64(src.f32[i])*524288, -524288, 524287))
		}
	case Double:
		for i := 0; i < n; i++ {
			dst[i] = int32(clip(src.f64[i]*524288, -524288, 524287))
		}
	default:
		return ErrUnknownFormat
	}
	return nil
}

func convertToS24(dst []int32, src *Buffer, n int) error {
	switch src.format {
	case U8:
		for i := 0; i < n; i++ {
			dst[i] = (int32(src.u8[i]) - 128) << 16
		}
	case S16:
		for i := 0; i < n; i++ {
			dst[i] = int32(src.s16[i]) << 8
		}
	case S20:
		for i := 0; i < n; i++ {
			dst[i] = src.s32[i] << 4
		}
	case S24:
		copy(dst[:n], src.s32)
	case S32:
		for i := 0; i < n; i++ {
			dst[i] = src.s32[i] >> 8
		}
	case Float:
		for i := 0; i < n; i++ {
			dst[i] = int32(clip(float64(src.f32[i])*8388608, -8388608, 8388607))
		}
	case Double:
		for i := 0; i < n; i++ {
			dst[i] = int32(clip(src.f64[i]*8388608, -8388608, 8388607))
		}
	default:
		return ErrUnknownFormat
	}
	return nil
}

func convertToS32(dst []int32, src *Buffer, n int) error {
	switch src.format {
	case U8:
		for i := 0; i < n; i++ {
			dst[i] = (int32(src.u8[i]) - 128) << 24
		}
	case S16:
		for i := 0; i < n; i++ {
			dst[i] = int32(src.s16[i]) << 16
		}
	case S20:
		for i := 0; i < n; i++ {
			dst[i] = src.s32[i] << 12
		}
	case S24:
		for i := 0; i < n; i++ {
			dst[i] = src.s32[i] << 8
		}
	case S32:
		copy(dst[:n], src.s32)
	case Float:
		for i := 0; i < n; i++ {
			dst[i] = int32(clip(float64(src.f32[i])*2147483648, -2147483648, 2147483647))
		}
	case Double:
		for i := 0; i < n; i++ {
			dst[i] = int32(clip(src.f64[i]*2147483648, -2147483648, 2147483647))
		}
	default:
		return ErrUnknownFormat
	}
	return nil
}

func convertToFloat(dst []float32, src *Buffer, n int) error {
	switch src.format {
	case U8:
		for i := 0; i < n; i++ {
			dst[i] = (float32(src.u8[i]) - 128.0) / 128.0
		}
	case S16:
		for i := 0; i < n; i++ {
			dst[i] = float32(src.s16[i]) / 32768.0
		}
	case S20:
		for i := 0; i < n; i++ {
			dst[i] = float32(src.s32[i]) / 524288.0
		}
	case S24:
		for i := 0; i < n; i++ {
			dst[i] = float32(src.s32[i]) / 8388608.0
		}
	case S32:
		for i := 0; i < n; i++ {
			dst[i] = float32(src.s32[i]) / 2147483648.0
		}
	case Float:
		copy(dst[:n], src.f32)
	case Double:
		for i := 0; i < n; i++ {
			dst[i] = float32(src.f64[i])
		}
	default:
		return ErrUnknownFormat
	}
	return nil
}

func convertToDouble(dst []float64, src *Buffer, n int) error {
	switch src.format {
	case U8:
		for i := 0; i < n; i++ {
			dst[i] = (float64(src.u8[i]) - 128.0) / 128.0
		}
	case S16:
		for i := 0; i < n; i++ {
			dst[i] = float64(src.s16[i]) / 32768.0
		}
	case S20:
		for i := 0; i < n; i++ {
			dst[i] = float64(src.s32[i]) / 524288.0
		}
	case S24:
		for i := 0; i < n; i++ {
			dst[i] = float64(src.s32[i]) / 8388608.0
		}
	case S32:
		for i := 0; i < n; i++ {
			dst[i] = float64(src.s32[i]) / 2147483648.0
		}
	case Float:
		for i := 0; i < n; i++ {
			dst[i] = float64(src.f32[i])
		}
	case Double:
		copy(dst[:n], src.f64)
	default:
		return ErrUnknownFormat
	}
	return nil
}
