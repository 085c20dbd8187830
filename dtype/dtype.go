// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"fmt"

	"github.com/nlpodyssey/enlight/schema"
)

// DType represents the element type of an EnlightNN tensor.
type DType int8

const (
	// Float16 represents a 16-bit half-precision floating point data type.
	Float16 = DType(schema.DataTypeFloat16)
	// Float32 represents a 32-bit floating point data type.
	Float32 = DType(schema.DataTypeFloat32)
	// QuantisedAsymm8 represents an 8-bit asymmetrically quantized data type.
	// Values are read as signed bytes.
	QuantisedAsymm8 = DType(schema.DataTypeQuantisedAsymm8)
	// Signed32 represents a 32-bit signed integer data type.
	Signed32 = DType(schema.DataTypeSigned32)
	// Boolean represents an 8-bit boolean data type.
	Boolean = DType(schema.DataTypeBoolean)
	// QuantisedSymm16 represents a 16-bit symmetrically quantized data type.
	QuantisedSymm16 = DType(schema.DataTypeQuantisedSymm16)
	// Signed64 represents a 64-bit signed integer data type.
	// Its values are stored as IntData, so they are 32 bits wide on disk.
	Signed64 = DType(schema.DataTypeSigned64)
	// Signed8 represents an 8-bit signed integer data type.
	Signed8 = DType(schema.DataTypeSigned8)
)

var (
	dTypeToString = [...]string{
		Float16:         "Float16",
		Float32:         "Float32",
		QuantisedAsymm8: "QuantisedAsymm8",
		Signed32:        "Signed32",
		Boolean:         "Boolean",
		QuantisedSymm16: "QuantisedSymm16",
		Signed64:        "Signed64",
		Signed8:         "Signed8",
	}
	dTypeToSize = [...]int{
		Float16:         2,
		Float32:         4,
		QuantisedAsymm8: 1,
		Signed32:        4,
		Boolean:         1,
		QuantisedSymm16: 2,
		Signed64:        4,
		Signed8:         1,
	}
	stringToDType = map[string]DType{
		"Float16":         Float16,
		"Float32":         Float32,
		"QuantisedAsymm8": QuantisedAsymm8,
		"Signed32":        Signed32,
		"Boolean":         Boolean,
		"QuantisedSymm16": QuantisedSymm16,
		"Signed64":        Signed64,
		"Signed8":         Signed8,
	}
)

// FromSchema converts the data type tag of a TensorInfo.
func FromSchema(dt schema.DataType) DType {
	return DType(dt)
}

// Validate returns an error if the DType is not valid, otherwise nil.
func (dt DType) Validate() error {
	if dt < Float16 || dt > Signed8 {
		return fmt.Errorf("invalid DType(%d)", dt)
	}
	return nil
}

// String returns a string representation of a DType.
func (dt DType) String() string {
	if err := dt.Validate(); err != nil {
		return err.Error()
	}
	return dTypeToString[dt]
}

// Size returns the size in bytes of one stored element of this data type,
// or -1 if the DType value is invalid.
func (dt DType) Size() int {
	if err := dt.Validate(); err != nil {
		return -1
	}
	return dTypeToSize[dt]
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (dt DType) MarshalText() ([]byte, error) {
	if err := dt.Validate(); err != nil {
		return nil, err
	}
	return []byte(dTypeToString[dt]), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (dt *DType) UnmarshalText(text []byte) error {
	v, ok := stringToDType[string(text)]
	if !ok {
		return fmt.Errorf("failed to text-unmarshal DType from value %q", text)
	}
	*dt = v
	return nil
}
