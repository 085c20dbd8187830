// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"encoding/binary"
	"encoding/json"
	"math"

	"github.com/nlpodyssey/enlight/dtype"
	"github.com/nlpodyssey/enlight/float16"
	"github.com/nlpodyssey/enlight/schema"
)

// DisplayLimit is the number of scalars String decodes before truncating.
const DisplayLimit = 10000

// Ellipsis replaces the elements left out by a truncated display decode.
const Ellipsis = "..."

// A Tensor is a constant tensor stored in the model, with its data kept in
// the raw little-endian row-major ("C") format it has in the file.
//
// Data is decoded on request into nested []any slices, one level per
// dimension. The scalar Go types are:
//
//	DType           | Scalar type
//	----------------+------------
//	Float16         | float32
//	Float32         | float32
//	QuantisedAsymm8 | int8
//	QuantisedSymm16 | int16
//	Signed32        | int32
//	Signed64        | int32
//	Boolean         | int8
//	Signed8         | int8
type Tensor struct {
	name  string
	tType *TensorType
	data  []byte
}

// NewTensor returns a Tensor over raw little-endian data. The data is not
// copied.
func NewTensor(dType dtype.DType, shape []int, data []byte) *Tensor {
	return &Tensor{
		tType: &TensorType{dType: dType, shape: NewTensorShape(shape)},
		data:  nilIfEmpty(data),
	}
}

func newConstTensor(ct *schema.ConstTensor) *Tensor {
	t := &Tensor{tType: newTensorType(ct.Info(nil))}
	if data := ct.ScalarData(); data != nil && data.DataLength() > 0 {
		t.data = data.DataBytes()
	}
	return t
}

func nilIfEmpty(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	return data
}

// The Name of the tensor. Constant tensors of this format are unnamed.
func (t *Tensor) Name() string {
	return t.name
}

// Kind is always "ConstTensor".
func (t *Tensor) Kind() string {
	return "ConstTensor"
}

// Type returns the element type and shape of the tensor.
func (t *Tensor) Type() *TensorType {
	return t.tType
}

// Data returns the raw data of the tensor, or nil if it has none.
func (t *Tensor) Data() []byte {
	return t.data
}

// State returns an empty string if the tensor can be decoded, otherwise a
// message telling why it cannot.
func (t *Tensor) State() string {
	_, state := t.context(false)
	return state
}

// Value decodes all the data of the tensor. It returns nil if the tensor
// cannot be decoded (see State). A tensor with an empty shape decodes to a
// bare scalar.
func (t *Tensor) Value() any {
	c, state := t.context(false)
	if state != "" {
		return nil
	}
	c.limit = math.MaxInt
	return c.decode(0)
}

// String decodes up to DisplayLimit scalars and renders them as indented
// JSON. Elements beyond the limit are replaced by Ellipsis. It returns an
// empty string if the tensor cannot be decoded.
func (t *Tensor) String() string {
	c, state := t.context(true)
	if state != "" {
		return ""
	}
	c.limit = DisplayLimit
	b, err := json.MarshalIndent(c.decode(0), "", "    ")
	if err != nil {
		return ""
	}
	return string(b)
}

type decodeContext struct {
	dType dtype.DType
	shape []int
	data  []byte
	index int
	count int
	limit int
	// display replaces non-finite floats with nil, as JSON cannot
	// represent them.
	display bool
}

func (t *Tensor) context(display bool) (*decodeContext, string) {
	if t.data == nil {
		return nil, "Tensor data is empty."
	}
	dt := t.tType.DType()
	size := dt.Size()
	if size < 0 {
		return nil, "Tensor data type '" + t.tType.DataType() + "' is not supported."
	}
	n, err := byteSize(t.tType.Shape().Dimensions(), size)
	if err != nil || n > uint64(len(t.data)) {
		return nil, "Tensor data is too short."
	}
	return &decodeContext{
		dType:   dt,
		shape:   t.tType.Shape().Dimensions(),
		data:    t.data,
		display: display,
	}, ""
}

func (c *decodeContext) decode(dimension int) any {
	shape := c.shape
	if len(shape) == 0 {
		shape = []int{1}
	}
	size := shape[dimension]
	results := make([]any, 0, size)
	if dimension == len(shape)-1 {
		for i := 0; i < size; i++ {
			if c.count > c.limit {
				return append(results, Ellipsis)
			}
			results = append(results, c.read())
			c.count++
		}
	} else {
		for j := 0; j < size; j++ {
			if c.count > c.limit {
				return append(results, Ellipsis)
			}
			results = append(results, c.decode(dimension+1))
		}
	}
	if len(c.shape) == 0 {
		return results[0]
	}
	return results
}

// read decodes the scalar at the cursor and advances it.
func (c *decodeContext) read() any {
	b := c.data[c.index:]
	c.index += c.dType.Size()
	switch c.dType {
	case dtype.Float16:
		return c.float(float16.FromBytes(b).Float32())
	case dtype.Float32:
		return c.float(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case dtype.QuantisedAsymm8, dtype.Boolean, dtype.Signed8:
		return int8(b[0])
	case dtype.QuantisedSymm16:
		return int16(binary.LittleEndian.Uint16(b))
	case dtype.Signed32, dtype.Signed64:
		return int32(binary.LittleEndian.Uint32(b))
	}
	return nil
}

func (c *decodeContext) float(v float32) any {
	if c.display && (math.IsNaN(float64(v)) || math.IsInf(float64(v), 0)) {
		return nil
	}
	return v
}
