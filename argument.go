// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"encoding/json"
	"fmt"

	"github.com/nlpodyssey/enlight/schema"
)

// A Parameter is a named edge between nodes. Producer and consumers of a
// value share the same *Parameter.
type Parameter struct {
	name      string
	arguments []*Argument
}

// The Name of the parameter.
func (p *Parameter) Name() string {
	return p.name
}

// Visible is always true.
func (p *Parameter) Visible() bool {
	return true
}

// Arguments always holds one Argument.
func (p *Parameter) Arguments() []*Argument {
	return p.arguments
}

// SlotStatistics is the calibration summary of an output slot.
type SlotStatistics struct {
	Min, Max, Mean, Std float32
}

// An Argument is a value flowing along a Parameter: either the output of a
// layer, a constant tensor, or a constant scalar.
type Argument struct {
	id           string
	tType        *TensorType
	initializer  *Tensor
	value        any
	quantization string
}

// newSlotArgument describes the value produced by an output slot. A zero
// threshold is not reported.
func newSlotArgument(id string, info *schema.TensorInfo, stats *SlotStatistics, threshold float32) *Argument {
	a := &Argument{id: id, tType: newTensorType(info)}
	if a.tType.IsQuantized() {
		a.quantization = scalesJSON(a.tType.QuantizationScales())
		return a
	}
	if stats != nil {
		a.quantization = fmt.Sprintf("min=%.2f , max=%.2f, mean=%.2f, std=%.2f",
			stats.Min, stats.Max, stats.Mean, stats.Std)
	}
	if threshold != 0 {
		a.quantization += fmt.Sprintf("\n\t\t\tthreshold=%.2f", threshold)
	}
	return a
}

// newInitializerArgument describes a constant tensor stored in the model.
func newInitializerArgument(ct *schema.ConstTensor) *Argument {
	t := newConstTensor(ct)
	a := &Argument{tType: t.Type(), initializer: t}
	if a.tType.IsQuantized() {
		a.quantization = scalesJSON(a.tType.QuantizationScales())
	}
	return a
}

// newConstantArgument describes a constant scalar. It has no type.
func newConstantArgument(value any) *Argument {
	return &Argument{value: value}
}

func scalesJSON(scales []float32) string {
	if scales == nil {
		scales = []float32{}
	}
	b, err := json.MarshalIndent(scales, "", "    ")
	if err != nil {
		return ""
	}
	return string(b)
}

// ID is the display name of a layer output, empty for constants.
func (a *Argument) ID() string {
	return a.id
}

// Type returns nil for constant scalars.
func (a *Argument) Type() *TensorType {
	return a.tType
}

// Initializer returns the constant tensor, or nil.
func (a *Argument) Initializer() *Tensor {
	return a.initializer
}

// Value returns the constant scalar, or nil.
func (a *Argument) Value() any {
	return a.value
}

// Quantization summarizes the quantization scales of a quantized value, or
// else its calibration statistics and threshold. It may be empty.
func (a *Argument) Quantization() string {
	return a.quantization
}
