// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"testing"

	"github.com/nlpodyssey/enlight/dtype"
	"github.com/stretchr/testify/assert"
)

func TestTensorShape_String(t *testing.T) {
	testCases := []struct {
		dimensions []int
		expected   string
	}{
		{nil, ""},
		{[]int{}, ""},
		{[]int{3}, "[3]"},
		{[]int{1, 224, 224, 3}, "[1,224,224,3]"},
		{[]int{0, 2}, "[0,2]"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NewTensorShape(tc.dimensions).String())
	}
}

func TestTensorType_String(t *testing.T) {
	tt := &TensorType{dType: dtype.QuantisedAsymm8, shape: NewTensorShape([]int{4})}
	assert.Equal(t, "QuantisedAsymm8[4]", tt.String())
	assert.False(t, tt.IsQuantized())
	assert.Nil(t, tt.QuantizationScales())
}

func TestTensorType_Unknown(t *testing.T) {
	tt := newTensorType(nil)
	assert.Equal(t, "?", tt.DataType())
	assert.Equal(t, "?", tt.String())
	assert.Empty(t, tt.Shape().Dimensions())
}
