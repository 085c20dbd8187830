// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlighttest

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/nlpodyssey/enlight/schema"
)

// Unknown is a body with the given tag and no table.
func Unknown(tag schema.Layer) Body {
	return Body{Type: tag}
}

func Activation(fn schema.ActivationFunction, a, b float32) Body {
	return Body{Type: schema.LayerActivationLayer, build: func(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
		schema.ActivationDescriptorStart(fb)
		schema.ActivationDescriptorAddActivationFunction(fb, fn)
		schema.ActivationDescriptorAddA(fb, a)
		schema.ActivationDescriptorAddB(fb, b)
		d := schema.ActivationDescriptorEnd(fb)
		schema.ActivationLayerStart(fb)
		schema.ActivationLayerAddDescriptor(fb, d)
		return schema.ActivationLayerEnd(fb)
	}}
}

func Addition() Body {
	return Body{Type: schema.LayerAdditionLayer, build: func(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
		schema.AdditionLayerStart(fb)
		return schema.AdditionLayerEnd(fb)
	}}
}

func BatchNormalization(eps float32, layout schema.DataLayout, mean, variance, beta, gamma *ConstTensor) Body {
	return Body{Type: schema.LayerBatchNormalizationLayer, build: func(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
		m, v, bt, g := mean.build(fb), variance.build(fb), beta.build(fb), gamma.build(fb)
		schema.BatchNormalizationDescriptorStart(fb)
		schema.BatchNormalizationDescriptorAddEps(fb, eps)
		schema.BatchNormalizationDescriptorAddDataLayout(fb, layout)
		d := schema.BatchNormalizationDescriptorEnd(fb)
		schema.BatchNormalizationLayerStart(fb)
		schema.BatchNormalizationLayerAddDescriptor(fb, d)
		addTensor(fb, schema.BatchNormalizationLayerAddMean, m)
		addTensor(fb, schema.BatchNormalizationLayerAddVariance, v)
		addTensor(fb, schema.BatchNormalizationLayerAddBeta, bt)
		addTensor(fb, schema.BatchNormalizationLayerAddGamma, g)
		return schema.BatchNormalizationLayerEnd(fb)
	}}
}

func Concat(axis, views, dimensions uint32) Body {
	return Body{Type: schema.LayerConcatLayer, build: func(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
		schema.OriginsDescriptorStart(fb)
		schema.OriginsDescriptorAddConcatAxis(fb, axis)
		schema.OriginsDescriptorAddNumViews(fb, views)
		schema.OriginsDescriptorAddNumDimensions(fb, dimensions)
		d := schema.OriginsDescriptorEnd(fb)
		schema.ConcatLayerStart(fb)
		schema.ConcatLayerAddDescriptor(fb, d)
		return schema.ConcatLayerEnd(fb)
	}}
}

// Convolution2dParams are the descriptor fields of a convolution. Zero
// dilations are left to their default of 1.
type Convolution2dParams struct {
	PadLeft, PadRight, PadTop, PadBottom uint32
	StrideX, StrideY                     uint32
	DilationX, DilationY                 uint32
	BiasEnabled                          bool
	DataLayout                           schema.DataLayout
}

func (p Convolution2dParams) build(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
	schema.Convolution2dDescriptorStart(fb)
	schema.Convolution2dDescriptorAddPadLeft(fb, p.PadLeft)
	schema.Convolution2dDescriptorAddPadRight(fb, p.PadRight)
	schema.Convolution2dDescriptorAddPadTop(fb, p.PadTop)
	schema.Convolution2dDescriptorAddPadBottom(fb, p.PadBottom)
	schema.Convolution2dDescriptorAddStrideX(fb, p.StrideX)
	schema.Convolution2dDescriptorAddStrideY(fb, p.StrideY)
	if p.DilationX != 0 {
		schema.Convolution2dDescriptorAddDilationX(fb, p.DilationX)
	}
	if p.DilationY != 0 {
		schema.Convolution2dDescriptorAddDilationY(fb, p.DilationY)
	}
	schema.Convolution2dDescriptorAddBiasEnabled(fb, p.BiasEnabled)
	schema.Convolution2dDescriptorAddDataLayout(fb, p.DataLayout)
	return schema.Convolution2dDescriptorEnd(fb)
}

func Convolution2d(p Convolution2dParams, weights, biases *ConstTensor) Body {
	return convolution(schema.LayerConvolution2dLayer, p, weights, biases)
}

// DepthwiseConvolution2d shares the table layout of Convolution2d.
func DepthwiseConvolution2d(p Convolution2dParams, weights, biases *ConstTensor) Body {
	return convolution(schema.LayerDepthwiseConvolution2dLayer, p, weights, biases)
}

func convolution(tag schema.Layer, p Convolution2dParams, weights, biases *ConstTensor) Body {
	return Body{Type: tag, build: func(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
		w, bs := weights.build(fb), biases.build(fb)
		d := p.build(fb)
		schema.Convolution2dLayerStart(fb)
		schema.Convolution2dLayerAddDescriptor(fb, d)
		addTensor(fb, schema.Convolution2dLayerAddWeights, w)
		addTensor(fb, schema.Convolution2dLayerAddBiases, bs)
		return schema.Convolution2dLayerEnd(fb)
	}}
}

func FullyConnected(biasEnabled, transpose bool, weights, biases *ConstTensor) Body {
	return Body{Type: schema.LayerFullyConnectedLayer, build: func(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
		w, bs := weights.build(fb), biases.build(fb)
		schema.FullyConnectedDescriptorStart(fb)
		schema.FullyConnectedDescriptorAddBiasEnabled(fb, biasEnabled)
		schema.FullyConnectedDescriptorAddTransposeWeightsMatrix(fb, transpose)
		d := schema.FullyConnectedDescriptorEnd(fb)
		schema.FullyConnectedLayerStart(fb)
		schema.FullyConnectedLayerAddDescriptor(fb, d)
		addTensor(fb, schema.FullyConnectedLayerAddWeights, w)
		addTensor(fb, schema.FullyConnectedLayerAddBiases, bs)
		return schema.FullyConnectedLayerEnd(fb)
	}}
}

func Input(bindingID int32) Body {
	return bindable(schema.LayerInputLayer, bindingID)
}

func Output(bindingID int32) Body {
	return bindable(schema.LayerOutputLayer, bindingID)
}

func bindable(tag schema.Layer, bindingID int32) Body {
	return Body{Type: tag, build: func(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
		schema.BindableLayerStart(fb)
		schema.BindableLayerAddLayerBindingId(fb, bindingID)
		return schema.BindableLayerEnd(fb)
	}}
}

// Pooling2dParams are the descriptor fields of a pooling.
type Pooling2dParams struct {
	PoolType                             schema.PoolingAlgorithm
	PadLeft, PadRight, PadTop, PadBottom uint32
	PoolWidth, PoolHeight                uint32
	StrideX, StrideY                     uint32
	OutputShapeRounding                  schema.OutputShapeRounding
	PaddingMethod                        schema.PaddingMethod
	DataLayout                           schema.DataLayout
}

func Pooling2d(p Pooling2dParams) Body {
	return Body{Type: schema.LayerPooling2dLayer, build: func(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
		schema.Pooling2dDescriptorStart(fb)
		schema.Pooling2dDescriptorAddPoolType(fb, p.PoolType)
		schema.Pooling2dDescriptorAddPadLeft(fb, p.PadLeft)
		schema.Pooling2dDescriptorAddPadRight(fb, p.PadRight)
		schema.Pooling2dDescriptorAddPadTop(fb, p.PadTop)
		schema.Pooling2dDescriptorAddPadBottom(fb, p.PadBottom)
		schema.Pooling2dDescriptorAddPoolWidth(fb, p.PoolWidth)
		schema.Pooling2dDescriptorAddPoolHeight(fb, p.PoolHeight)
		schema.Pooling2dDescriptorAddStrideX(fb, p.StrideX)
		schema.Pooling2dDescriptorAddStrideY(fb, p.StrideY)
		schema.Pooling2dDescriptorAddOutputShapeRounding(fb, p.OutputShapeRounding)
		schema.Pooling2dDescriptorAddPaddingMethod(fb, p.PaddingMethod)
		schema.Pooling2dDescriptorAddDataLayout(fb, p.DataLayout)
		d := schema.Pooling2dDescriptorEnd(fb)
		schema.Pooling2dLayerStart(fb)
		schema.Pooling2dLayerAddDescriptor(fb, d)
		return schema.Pooling2dLayerEnd(fb)
	}}
}

func Reshape(targetShape []uint32) Body {
	return Body{Type: schema.LayerReshapeLayer, build: func(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
		shape := schema.CreateTargetShapeVector(fb, targetShape)
		schema.ReshapeDescriptorStart(fb)
		schema.ReshapeDescriptorAddTargetShape(fb, shape)
		d := schema.ReshapeDescriptorEnd(fb)
		schema.ReshapeLayerStart(fb)
		schema.ReshapeLayerAddDescriptor(fb, d)
		return schema.ReshapeLayerEnd(fb)
	}}
}

func Softmax(beta float32) Body {
	return Body{Type: schema.LayerSoftmaxLayer, build: func(fb *flatbuffers.Builder) flatbuffers.UOffsetT {
		schema.SoftmaxDescriptorStart(fb)
		schema.SoftmaxDescriptorAddBeta(fb, beta)
		d := schema.SoftmaxDescriptorEnd(fb)
		schema.SoftmaxLayerStart(fb)
		schema.SoftmaxLayerAddDescriptor(fb, d)
		return schema.SoftmaxLayerEnd(fb)
	}}
}

func addTensor(fb *flatbuffers.Builder, add func(*flatbuffers.Builder, flatbuffers.UOffsetT), t flatbuffers.UOffsetT) {
	if t != 0 {
		add(fb, t)
	}
}
