// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF16_Float32(t *testing.T) {
	testCases := []struct {
		bits     uint16
		expected float32
	}{
		{0x0000, 0},
		{0x3c00, 1},
		{0xc000, -2},
		{0x3e00, 1.5},
		{0x7bff, 65504},
		{0x7c00, float32(math.Inf(1))},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, F16(tc.bits).Float32())
	}
}

func TestFromBytes(t *testing.T) {
	assert.Equal(t, F16(0x3c00), FromBytes([]byte{0x00, 0x3c}))
	assert.Equal(t, float32(-2), FromBytes([]byte{0x00, 0xc0, 0xff}).Float32())
}

func TestFromFloat32(t *testing.T) {
	assert.Equal(t, F16(0x3e00), FromFloat32(1.5))
	assert.Equal(t, float32(0.5), FromFloat32(0.5).Float32())
}
