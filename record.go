// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/nlpodyssey/enlight/schema"
)

type fieldKind uint8

const (
	scalarField fieldKind = iota
	repeatedField
	tensorField
)

// field is the value of one named field of a record.
type field struct {
	kind   fieldKind
	scalar any
	values []any
	tensor *schema.ConstTensor
}

func scalar(v any) field {
	return field{kind: scalarField, scalar: v}
}

func repeated[T any](n int, at func(int) T) field {
	values := make([]any, n)
	for i := range values {
		values[i] = at(i)
	}
	return field{kind: repeatedField, values: values}
}

func tensor(ct *schema.ConstTensor) field {
	return field{kind: tensorField, tensor: ct}
}

// A record exposes the named fields of a layer or descriptor table. Fields
// are named as in the metadata JSON.
type record map[string]func() field

func (r record) field(name string) (field, bool) {
	get, ok := r[name]
	if !ok {
		return field{}, false
	}
	return get(), true
}

// layerRecords returns the record of the concrete layer held by an AnyLayer
// and the record of its descriptor. Either is nil when absent.
func layerRecords(layer *schema.AnyLayer) (record, record) {
	var t flatbuffers.Table
	if !layer.Layer(&t) {
		return nil, nil
	}
	switch layer.LayerType() {
	case schema.LayerActivationLayer:
		l := new(schema.ActivationLayer)
		l.Init(t.Bytes, t.Pos)
		return record{}, activationDescriptorRecord(l.Descriptor(nil))
	case schema.LayerAdditionLayer:
		return record{}, nil
	case schema.LayerBatchNormalizationLayer:
		l := new(schema.BatchNormalizationLayer)
		l.Init(t.Bytes, t.Pos)
		return record{
			"mean":     func() field { return tensor(l.Mean(nil)) },
			"variance": func() field { return tensor(l.Variance(nil)) },
			"beta":     func() field { return tensor(l.Beta(nil)) },
			"gamma":    func() field { return tensor(l.Gamma(nil)) },
		}, batchNormalizationDescriptorRecord(l.Descriptor(nil))
	case schema.LayerConcatLayer:
		l := new(schema.ConcatLayer)
		l.Init(t.Bytes, t.Pos)
		return record{}, originsDescriptorRecord(l.Descriptor(nil))
	case schema.LayerConvolution2dLayer:
		l := new(schema.Convolution2dLayer)
		l.Init(t.Bytes, t.Pos)
		return weightsRecord(l.Weights, l.Biases), convolution2dDescriptorRecord(l.Descriptor(nil))
	case schema.LayerDepthwiseConvolution2dLayer:
		l := new(schema.DepthwiseConvolution2dLayer)
		l.Init(t.Bytes, t.Pos)
		return weightsRecord(l.Weights, l.Biases), convolution2dDescriptorRecord(l.Descriptor(nil))
	case schema.LayerFullyConnectedLayer:
		l := new(schema.FullyConnectedLayer)
		l.Init(t.Bytes, t.Pos)
		return weightsRecord(l.Weights, l.Biases), fullyConnectedDescriptorRecord(l.Descriptor(nil))
	case schema.LayerInputLayer, schema.LayerOutputLayer:
		l := new(schema.BindableLayer)
		l.Init(t.Bytes, t.Pos)
		return record{
			"layerBindingId": func() field { return scalar(l.LayerBindingId()) },
		}, nil
	case schema.LayerPooling2dLayer:
		l := new(schema.Pooling2dLayer)
		l.Init(t.Bytes, t.Pos)
		return record{}, pooling2dDescriptorRecord(l.Descriptor(nil))
	case schema.LayerReshapeLayer:
		l := new(schema.ReshapeLayer)
		l.Init(t.Bytes, t.Pos)
		return record{}, reshapeDescriptorRecord(l.Descriptor(nil))
	case schema.LayerSoftmaxLayer:
		l := new(schema.SoftmaxLayer)
		l.Init(t.Bytes, t.Pos)
		return record{}, softmaxDescriptorRecord(l.Descriptor(nil))
	}
	return nil, nil
}

func weightsRecord(weights, biases func(*schema.ConstTensor) *schema.ConstTensor) record {
	return record{
		"weights": func() field { return tensor(weights(nil)) },
		"biases":  func() field { return tensor(biases(nil)) },
	}
}

func activationDescriptorRecord(d *schema.ActivationDescriptor) record {
	if d == nil {
		return nil
	}
	return record{
		"activationFunction": func() field { return scalar(d.ActivationFunction()) },
		"a":                  func() field { return scalar(d.A()) },
		"b":                  func() field { return scalar(d.B()) },
	}
}

func batchNormalizationDescriptorRecord(d *schema.BatchNormalizationDescriptor) record {
	if d == nil {
		return nil
	}
	return record{
		"eps":        func() field { return scalar(d.Eps()) },
		"dataLayout": func() field { return scalar(d.DataLayout()) },
	}
}

func originsDescriptorRecord(d *schema.OriginsDescriptor) record {
	if d == nil {
		return nil
	}
	return record{
		"concatAxis":    func() field { return scalar(d.ConcatAxis()) },
		"numViews":      func() field { return scalar(d.NumViews()) },
		"numDimensions": func() field { return scalar(d.NumDimensions()) },
	}
}

func convolution2dDescriptorRecord(d *schema.Convolution2dDescriptor) record {
	if d == nil {
		return nil
	}
	return record{
		"padLeft":     func() field { return scalar(d.PadLeft()) },
		"padRight":    func() field { return scalar(d.PadRight()) },
		"padTop":      func() field { return scalar(d.PadTop()) },
		"padBottom":   func() field { return scalar(d.PadBottom()) },
		"strideX":     func() field { return scalar(d.StrideX()) },
		"strideY":     func() field { return scalar(d.StrideY()) },
		"dilationX":   func() field { return scalar(d.DilationX()) },
		"dilationY":   func() field { return scalar(d.DilationY()) },
		"biasEnabled": func() field { return scalar(d.BiasEnabled()) },
		"dataLayout":  func() field { return scalar(d.DataLayout()) },
	}
}

func fullyConnectedDescriptorRecord(d *schema.FullyConnectedDescriptor) record {
	if d == nil {
		return nil
	}
	return record{
		"biasEnabled":            func() field { return scalar(d.BiasEnabled()) },
		"transposeWeightsMatrix": func() field { return scalar(d.TransposeWeightsMatrix()) },
	}
}

func pooling2dDescriptorRecord(d *schema.Pooling2dDescriptor) record {
	if d == nil {
		return nil
	}
	return record{
		"poolType":            func() field { return scalar(d.PoolType()) },
		"padLeft":             func() field { return scalar(d.PadLeft()) },
		"padRight":            func() field { return scalar(d.PadRight()) },
		"padTop":              func() field { return scalar(d.PadTop()) },
		"padBottom":           func() field { return scalar(d.PadBottom()) },
		"poolWidth":           func() field { return scalar(d.PoolWidth()) },
		"poolHeight":          func() field { return scalar(d.PoolHeight()) },
		"strideX":             func() field { return scalar(d.StrideX()) },
		"strideY":             func() field { return scalar(d.StrideY()) },
		"outputShapeRounding": func() field { return scalar(d.OutputShapeRounding()) },
		"paddingMethod":       func() field { return scalar(d.PaddingMethod()) },
		"dataLayout":          func() field { return scalar(d.DataLayout()) },
	}
}

func reshapeDescriptorRecord(d *schema.ReshapeDescriptor) record {
	if d == nil {
		return nil
	}
	return record{
		"targetShape": func() field { return repeated(d.TargetShapeLength(), d.TargetShape) },
	}
}

func softmaxDescriptorRecord(d *schema.SoftmaxDescriptor) record {
	if d == nil {
		return nil
	}
	return record{
		"beta": func() field { return scalar(d.Beta()) },
	}
}
