// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"encoding/binary"

	"github.com/x448/float16"
)

// F16 is a 16-bit half-precision floating-point value,
// represented as raw bits (uint16).
type F16 uint16

// FromBytes reads a little-endian F16 from the first two bytes of b.
func FromBytes(b []byte) F16 {
	return F16(binary.LittleEndian.Uint16(b))
}

// Float32 converts the value to single precision. The conversion is exact.
func (f F16) Float32() float32 {
	return float16.Frombits(uint16(f)).Float32()
}

// FromFloat32 rounds a single-precision value to the nearest F16.
func FromFloat32(v float32) F16 {
	return F16(float16.Fromfloat32(v).Bits())
}
