// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"strconv"
	"strings"

	"github.com/nlpodyssey/enlight/dtype"
	"github.com/nlpodyssey/enlight/schema"
)

// TensorShape is the list of dimensions of a tensor.
type TensorShape struct {
	dimensions []int
}

// NewTensorShape returns a TensorShape with the given dimensions.
func NewTensorShape(dimensions []int) *TensorShape {
	return &TensorShape{dimensions: dimensions}
}

// Dimensions returns the dimensions. An empty list denotes a scalar.
func (s *TensorShape) Dimensions() []int {
	return s.dimensions
}

// String renders the shape as "[d0,d1,...]", or "" for a scalar.
func (s *TensorShape) String() string {
	if len(s.dimensions) == 0 {
		return ""
	}
	parts := make([]string, len(s.dimensions))
	for i, d := range s.dimensions {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// TensorType provides the element type and shape of a tensor, together with
// its quantization scales when the tensor is quantized.
// Endianness is assumed to be little-endian. Ordering is assumed to be 'C'.
type TensorType struct {
	dType     dtype.DType
	shape     *TensorShape
	quantized bool
	scales    []float32
}

// newTensorType reads a TensorInfo. A nil info yields an unknown data type
// and a scalar shape.
func newTensorType(info *schema.TensorInfo) *TensorType {
	if info == nil {
		return &TensorType{dType: -1, shape: NewTensorShape(nil)}
	}
	tt := &TensorType{
		dType:     dtype.FromSchema(info.DataType()),
		quantized: info.QuantizationEnabled(),
	}
	if tt.quantized {
		tt.scales = make([]float32, info.QuantizationScaleLength())
		for i := range tt.scales {
			tt.scales[i] = info.QuantizationScale(i)
		}
	}
	dimensions := make([]int, info.DimensionsLength())
	for i := range dimensions {
		dimensions[i] = int(info.Dimensions(i))
	}
	tt.shape = NewTensorShape(dimensions)
	return tt
}

// DType returns the element type.
func (tt *TensorType) DType() dtype.DType {
	return tt.dType
}

// DataType returns the name of the element type, or "?" if it is unknown.
func (tt *TensorType) DataType() string {
	if tt.dType.Validate() != nil {
		return "?"
	}
	return tt.dType.String()
}

// The Shape of the tensor.
func (tt *TensorType) Shape() *TensorShape {
	return tt.shape
}

// IsQuantized reports whether the tensor carries quantization information.
func (tt *TensorType) IsQuantized() bool {
	return tt.quantized
}

// QuantizationScales returns the per-channel scales of a quantized tensor.
func (tt *TensorType) QuantizationScales() []float32 {
	return tt.scales
}

func (tt *TensorType) String() string {
	return tt.DataType() + tt.shape.String()
}
