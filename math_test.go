// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CheckedMul(t *testing.T) {
	const max = math.MaxUint64

	t.Run("no overflow", func(t *testing.T) {
		testCases := [][2]uint64{
			{0, 0},
			{0, 1},
			{1, 2},
			{max, 0},
			{max, 1},
			{max / 2, 2},
		}
		for _, tc := range testCases {
			for _, pair := range [][2]uint64{tc, {tc[1], tc[0]}} {
				c, err := checkedMul(pair[0], pair[1])
				assert.NoError(t, err)
				assert.Equal(t, pair[0]*pair[1], c)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		testCases := [][2]uint64{
			{max, 2},
			{max / 2, 3},
			{max, max},
		}
		for _, tc := range testCases {
			for _, pair := range [][2]uint64{tc, {tc[1], tc[0]}} {
				_, err := checkedMul(pair[0], pair[1])
				assert.Error(t, err, "%d * %d", pair[0], pair[1])
			}
		}
	})
}

func Test_ByteSize(t *testing.T) {
	n, err := byteSize([]int{2, 3}, 4)
	assert.NoError(t, err)
	assert.Equal(t, uint64(24), n)

	n, err = byteSize(nil, 2)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), n)

	n, err = byteSize([]int{5, 0}, 4)
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), n)

	_, err = byteSize([]int{-1}, 1)
	assert.EqualError(t, err, "negative dimension -1")

	_, err = byteSize([]int{math.MaxInt32, math.MaxInt32, math.MaxInt32}, 4)
	assert.Error(t, err)
}
