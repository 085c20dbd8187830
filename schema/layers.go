// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

func constTensorField(t *flatbuffers.Table, field int, obj *ConstTensor) *ConstTensor {
	x, ok := subTable(t, field)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(ConstTensor)
	}
	obj.Init(t.Bytes, x)
	return obj
}

func descriptorField[T any, PT interface {
	*T
	Init([]byte, flatbuffers.UOffsetT)
}](t *flatbuffers.Table, obj PT) PT {
	x, ok := subTable(t, 0)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(T)
	}
	obj.Init(t.Bytes, x)
	return obj
}

type ActivationLayer struct {
	_tab flatbuffers.Table
}

func (rcv *ActivationLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ActivationLayer) Descriptor(obj *ActivationDescriptor) *ActivationDescriptor {
	return descriptorField(&rcv._tab, obj)
}

func ActivationLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func ActivationLayerAddDescriptor(builder *flatbuffers.Builder, descriptor flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, descriptor, 0)
}

func ActivationLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type AdditionLayer struct {
	_tab flatbuffers.Table
}

func (rcv *AdditionLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func AdditionLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(0)
}

func AdditionLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type BatchNormalizationLayer struct {
	_tab flatbuffers.Table
}

func (rcv *BatchNormalizationLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BatchNormalizationLayer) Descriptor(obj *BatchNormalizationDescriptor) *BatchNormalizationDescriptor {
	return descriptorField(&rcv._tab, obj)
}

func (rcv *BatchNormalizationLayer) Mean(obj *ConstTensor) *ConstTensor {
	return constTensorField(&rcv._tab, 1, obj)
}

func (rcv *BatchNormalizationLayer) Variance(obj *ConstTensor) *ConstTensor {
	return constTensorField(&rcv._tab, 2, obj)
}

func (rcv *BatchNormalizationLayer) Beta(obj *ConstTensor) *ConstTensor {
	return constTensorField(&rcv._tab, 3, obj)
}

func (rcv *BatchNormalizationLayer) Gamma(obj *ConstTensor) *ConstTensor {
	return constTensorField(&rcv._tab, 4, obj)
}

func BatchNormalizationLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(5)
}

func BatchNormalizationLayerAddDescriptor(builder *flatbuffers.Builder, descriptor flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, descriptor, 0)
}

func BatchNormalizationLayerAddMean(builder *flatbuffers.Builder, mean flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, mean, 0)
}

func BatchNormalizationLayerAddVariance(builder *flatbuffers.Builder, variance flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, variance, 0)
}

func BatchNormalizationLayerAddBeta(builder *flatbuffers.Builder, beta flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, beta, 0)
}

func BatchNormalizationLayerAddGamma(builder *flatbuffers.Builder, gamma flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, gamma, 0)
}

func BatchNormalizationLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type ConcatLayer struct {
	_tab flatbuffers.Table
}

func (rcv *ConcatLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ConcatLayer) Descriptor(obj *OriginsDescriptor) *OriginsDescriptor {
	return descriptorField(&rcv._tab, obj)
}

func ConcatLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func ConcatLayerAddDescriptor(builder *flatbuffers.Builder, descriptor flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, descriptor, 0)
}

func ConcatLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type Convolution2dLayer struct {
	_tab flatbuffers.Table
}

func (rcv *Convolution2dLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Convolution2dLayer) Descriptor(obj *Convolution2dDescriptor) *Convolution2dDescriptor {
	return descriptorField(&rcv._tab, obj)
}

func (rcv *Convolution2dLayer) Weights(obj *ConstTensor) *ConstTensor {
	return constTensorField(&rcv._tab, 1, obj)
}

func (rcv *Convolution2dLayer) Biases(obj *ConstTensor) *ConstTensor {
	return constTensorField(&rcv._tab, 2, obj)
}

func Convolution2dLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func Convolution2dLayerAddDescriptor(builder *flatbuffers.Builder, descriptor flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, descriptor, 0)
}

func Convolution2dLayerAddWeights(builder *flatbuffers.Builder, weights flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, weights, 0)
}

func Convolution2dLayerAddBiases(builder *flatbuffers.Builder, biases flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, biases, 0)
}

func Convolution2dLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// DepthwiseConvolution2dLayer shares the field layout of
// Convolution2dLayer.
type DepthwiseConvolution2dLayer struct {
	Convolution2dLayer
}

type FullyConnectedLayer struct {
	_tab flatbuffers.Table
}

func (rcv *FullyConnectedLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *FullyConnectedLayer) Descriptor(obj *FullyConnectedDescriptor) *FullyConnectedDescriptor {
	return descriptorField(&rcv._tab, obj)
}

func (rcv *FullyConnectedLayer) Weights(obj *ConstTensor) *ConstTensor {
	return constTensorField(&rcv._tab, 1, obj)
}

func (rcv *FullyConnectedLayer) Biases(obj *ConstTensor) *ConstTensor {
	return constTensorField(&rcv._tab, 2, obj)
}

func FullyConnectedLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func FullyConnectedLayerAddDescriptor(builder *flatbuffers.Builder, descriptor flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, descriptor, 0)
}

func FullyConnectedLayerAddWeights(builder *flatbuffers.Builder, weights flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, weights, 0)
}

func FullyConnectedLayerAddBiases(builder *flatbuffers.Builder, biases flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, biases, 0)
}

func FullyConnectedLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// BindableLayer is the layout of InputLayer and OutputLayer.
type BindableLayer struct {
	_tab flatbuffers.Table
}

type (
	InputLayer  = BindableLayer
	OutputLayer = BindableLayer
)

func (rcv *BindableLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BindableLayer) LayerBindingId() int32 {
	return rcv._tab.GetInt32Slot(slot(0), 0)
}

func BindableLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func BindableLayerAddLayerBindingId(builder *flatbuffers.Builder, layerBindingId int32) {
	builder.PrependInt32Slot(0, layerBindingId, 0)
}

func BindableLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type Pooling2dLayer struct {
	_tab flatbuffers.Table
}

func (rcv *Pooling2dLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Pooling2dLayer) Descriptor(obj *Pooling2dDescriptor) *Pooling2dDescriptor {
	return descriptorField(&rcv._tab, obj)
}

func Pooling2dLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func Pooling2dLayerAddDescriptor(builder *flatbuffers.Builder, descriptor flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, descriptor, 0)
}

func Pooling2dLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type ReshapeLayer struct {
	_tab flatbuffers.Table
}

func (rcv *ReshapeLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ReshapeLayer) Descriptor(obj *ReshapeDescriptor) *ReshapeDescriptor {
	return descriptorField(&rcv._tab, obj)
}

func ReshapeLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func ReshapeLayerAddDescriptor(builder *flatbuffers.Builder, descriptor flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, descriptor, 0)
}

func ReshapeLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type SoftmaxLayer struct {
	_tab flatbuffers.Table
}

func (rcv *SoftmaxLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *SoftmaxLayer) Descriptor(obj *SoftmaxDescriptor) *SoftmaxDescriptor {
	return descriptorField(&rcv._tab, obj)
}

func SoftmaxLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func SoftmaxLayerAddDescriptor(builder *flatbuffers.Builder, descriptor flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, descriptor, 0)
}

func SoftmaxLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
