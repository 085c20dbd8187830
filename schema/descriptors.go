// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type ActivationDescriptor struct {
	_tab flatbuffers.Table
}

func (rcv *ActivationDescriptor) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ActivationDescriptor) ActivationFunction() ActivationFunction {
	return ActivationFunction(rcv._tab.GetInt8Slot(slot(0), 0))
}

func (rcv *ActivationDescriptor) A() float32 {
	return rcv._tab.GetFloat32Slot(slot(1), 0)
}

func (rcv *ActivationDescriptor) B() float32 {
	return rcv._tab.GetFloat32Slot(slot(2), 0)
}

func ActivationDescriptorStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func ActivationDescriptorAddActivationFunction(builder *flatbuffers.Builder, activationFunction ActivationFunction) {
	builder.PrependInt8Slot(0, int8(activationFunction), 0)
}

func ActivationDescriptorAddA(builder *flatbuffers.Builder, a float32) {
	builder.PrependFloat32Slot(1, a, 0)
}

func ActivationDescriptorAddB(builder *flatbuffers.Builder, b float32) {
	builder.PrependFloat32Slot(2, b, 0)
}

func ActivationDescriptorEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type BatchNormalizationDescriptor struct {
	_tab flatbuffers.Table
}

func (rcv *BatchNormalizationDescriptor) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BatchNormalizationDescriptor) Eps() float32 {
	return rcv._tab.GetFloat32Slot(slot(0), 0)
}

func (rcv *BatchNormalizationDescriptor) DataLayout() DataLayout {
	return DataLayout(rcv._tab.GetInt8Slot(slot(1), int8(DataLayoutNCHW)))
}

func BatchNormalizationDescriptorStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func BatchNormalizationDescriptorAddEps(builder *flatbuffers.Builder, eps float32) {
	builder.PrependFloat32Slot(0, eps, 0)
}

func BatchNormalizationDescriptorAddDataLayout(builder *flatbuffers.Builder, dataLayout DataLayout) {
	builder.PrependInt8Slot(1, int8(dataLayout), int8(DataLayoutNCHW))
}

func BatchNormalizationDescriptorEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type OriginsDescriptor struct {
	_tab flatbuffers.Table
}

func (rcv *OriginsDescriptor) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *OriginsDescriptor) ConcatAxis() uint32 {
	return rcv._tab.GetUint32Slot(slot(0), 0)
}

func (rcv *OriginsDescriptor) NumViews() uint32 {
	return rcv._tab.GetUint32Slot(slot(1), 0)
}

func (rcv *OriginsDescriptor) NumDimensions() uint32 {
	return rcv._tab.GetUint32Slot(slot(2), 0)
}

func OriginsDescriptorStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func OriginsDescriptorAddConcatAxis(builder *flatbuffers.Builder, concatAxis uint32) {
	builder.PrependUint32Slot(0, concatAxis, 0)
}

func OriginsDescriptorAddNumViews(builder *flatbuffers.Builder, numViews uint32) {
	builder.PrependUint32Slot(1, numViews, 0)
}

func OriginsDescriptorAddNumDimensions(builder *flatbuffers.Builder, numDimensions uint32) {
	builder.PrependUint32Slot(2, numDimensions, 0)
}

func OriginsDescriptorEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// Convolution2dDescriptor is shared in layout by the regular and the
// depthwise convolution; DepthwiseConvolution2dDescriptor is an alias on
// the Go side.
type Convolution2dDescriptor struct {
	_tab flatbuffers.Table
}

type DepthwiseConvolution2dDescriptor = Convolution2dDescriptor

func (rcv *Convolution2dDescriptor) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Convolution2dDescriptor) PadLeft() uint32 {
	return rcv._tab.GetUint32Slot(slot(0), 0)
}

func (rcv *Convolution2dDescriptor) PadRight() uint32 {
	return rcv._tab.GetUint32Slot(slot(1), 0)
}

func (rcv *Convolution2dDescriptor) PadTop() uint32 {
	return rcv._tab.GetUint32Slot(slot(2), 0)
}

func (rcv *Convolution2dDescriptor) PadBottom() uint32 {
	return rcv._tab.GetUint32Slot(slot(3), 0)
}

func (rcv *Convolution2dDescriptor) StrideX() uint32 {
	return rcv._tab.GetUint32Slot(slot(4), 0)
}

func (rcv *Convolution2dDescriptor) StrideY() uint32 {
	return rcv._tab.GetUint32Slot(slot(5), 0)
}

func (rcv *Convolution2dDescriptor) DilationX() uint32 {
	return rcv._tab.GetUint32Slot(slot(6), 1)
}

func (rcv *Convolution2dDescriptor) DilationY() uint32 {
	return rcv._tab.GetUint32Slot(slot(7), 1)
}

func (rcv *Convolution2dDescriptor) BiasEnabled() bool {
	return rcv._tab.GetBoolSlot(slot(8), false)
}

func (rcv *Convolution2dDescriptor) DataLayout() DataLayout {
	return DataLayout(rcv._tab.GetInt8Slot(slot(9), int8(DataLayoutNCHW)))
}

func Convolution2dDescriptorStart(builder *flatbuffers.Builder) {
	builder.StartObject(10)
}

func Convolution2dDescriptorAddPadLeft(builder *flatbuffers.Builder, padLeft uint32) {
	builder.PrependUint32Slot(0, padLeft, 0)
}

func Convolution2dDescriptorAddPadRight(builder *flatbuffers.Builder, padRight uint32) {
	builder.PrependUint32Slot(1, padRight, 0)
}

func Convolution2dDescriptorAddPadTop(builder *flatbuffers.Builder, padTop uint32) {
	builder.PrependUint32Slot(2, padTop, 0)
}

func Convolution2dDescriptorAddPadBottom(builder *flatbuffers.Builder, padBottom uint32) {
	builder.PrependUint32Slot(3, padBottom, 0)
}

func Convolution2dDescriptorAddStrideX(builder *flatbuffers.Builder, strideX uint32) {
	builder.PrependUint32Slot(4, strideX, 0)
}

func Convolution2dDescriptorAddStrideY(builder *flatbuffers.Builder, strideY uint32) {
	builder.PrependUint32Slot(5, strideY, 0)
}

func Convolution2dDescriptorAddDilationX(builder *flatbuffers.Builder, dilationX uint32) {
	builder.PrependUint32Slot(6, dilationX, 1)
}

func Convolution2dDescriptorAddDilationY(builder *flatbuffers.Builder, dilationY uint32) {
	builder.PrependUint32Slot(7, dilationY, 1)
}

func Convolution2dDescriptorAddBiasEnabled(builder *flatbuffers.Builder, biasEnabled bool) {
	builder.PrependBoolSlot(8, biasEnabled, false)
}

func Convolution2dDescriptorAddDataLayout(builder *flatbuffers.Builder, dataLayout DataLayout) {
	builder.PrependInt8Slot(9, int8(dataLayout), int8(DataLayoutNCHW))
}

func Convolution2dDescriptorEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type FullyConnectedDescriptor struct {
	_tab flatbuffers.Table
}

func (rcv *FullyConnectedDescriptor) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *FullyConnectedDescriptor) BiasEnabled() bool {
	return rcv._tab.GetBoolSlot(slot(0), false)
}

func (rcv *FullyConnectedDescriptor) TransposeWeightsMatrix() bool {
	return rcv._tab.GetBoolSlot(slot(1), false)
}

func FullyConnectedDescriptorStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func FullyConnectedDescriptorAddBiasEnabled(builder *flatbuffers.Builder, biasEnabled bool) {
	builder.PrependBoolSlot(0, biasEnabled, false)
}

func FullyConnectedDescriptorAddTransposeWeightsMatrix(builder *flatbuffers.Builder, transposeWeightsMatrix bool) {
	builder.PrependBoolSlot(1, transposeWeightsMatrix, false)
}

func FullyConnectedDescriptorEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type Pooling2dDescriptor struct {
	_tab flatbuffers.Table
}

func (rcv *Pooling2dDescriptor) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Pooling2dDescriptor) PoolType() PoolingAlgorithm {
	return PoolingAlgorithm(rcv._tab.GetInt8Slot(slot(0), 0))
}

func (rcv *Pooling2dDescriptor) PadLeft() uint32 {
	return rcv._tab.GetUint32Slot(slot(1), 0)
}

func (rcv *Pooling2dDescriptor) PadRight() uint32 {
	return rcv._tab.GetUint32Slot(slot(2), 0)
}

func (rcv *Pooling2dDescriptor) PadTop() uint32 {
	return rcv._tab.GetUint32Slot(slot(3), 0)
}

func (rcv *Pooling2dDescriptor) PadBottom() uint32 {
	return rcv._tab.GetUint32Slot(slot(4), 0)
}

func (rcv *Pooling2dDescriptor) PoolWidth() uint32 {
	return rcv._tab.GetUint32Slot(slot(5), 0)
}

func (rcv *Pooling2dDescriptor) PoolHeight() uint32 {
	return rcv._tab.GetUint32Slot(slot(6), 0)
}

func (rcv *Pooling2dDescriptor) StrideX() uint32 {
	return rcv._tab.GetUint32Slot(slot(7), 0)
}

func (rcv *Pooling2dDescriptor) StrideY() uint32 {
	return rcv._tab.GetUint32Slot(slot(8), 0)
}

func (rcv *Pooling2dDescriptor) OutputShapeRounding() OutputShapeRounding {
	return OutputShapeRounding(rcv._tab.GetInt8Slot(slot(9), 0))
}

func (rcv *Pooling2dDescriptor) PaddingMethod() PaddingMethod {
	return PaddingMethod(rcv._tab.GetInt8Slot(slot(10), 0))
}

func (rcv *Pooling2dDescriptor) DataLayout() DataLayout {
	return DataLayout(rcv._tab.GetInt8Slot(slot(11), 0))
}

func Pooling2dDescriptorStart(builder *flatbuffers.Builder) {
	builder.StartObject(12)
}

func Pooling2dDescriptorAddPoolType(builder *flatbuffers.Builder, poolType PoolingAlgorithm) {
	builder.PrependInt8Slot(0, int8(poolType), 0)
}

func Pooling2dDescriptorAddPadLeft(builder *flatbuffers.Builder, padLeft uint32) {
	builder.PrependUint32Slot(1, padLeft, 0)
}

func Pooling2dDescriptorAddPadRight(builder *flatbuffers.Builder, padRight uint32) {
	builder.PrependUint32Slot(2, padRight, 0)
}

func Pooling2dDescriptorAddPadTop(builder *flatbuffers.Builder, padTop uint32) {
	builder.PrependUint32Slot(3, padTop, 0)
}

func Pooling2dDescriptorAddPadBottom(builder *flatbuffers.Builder, padBottom uint32) {
	builder.PrependUint32Slot(4, padBottom, 0)
}

func Pooling2dDescriptorAddPoolWidth(builder *flatbuffers.Builder, poolWidth uint32) {
	builder.PrependUint32Slot(5, poolWidth, 0)
}

func Pooling2dDescriptorAddPoolHeight(builder *flatbuffers.Builder, poolHeight uint32) {
	builder.PrependUint32Slot(6, poolHeight, 0)
}

func Pooling2dDescriptorAddStrideX(builder *flatbuffers.Builder, strideX uint32) {
	builder.PrependUint32Slot(7, strideX, 0)
}

func Pooling2dDescriptorAddStrideY(builder *flatbuffers.Builder, strideY uint32) {
	builder.PrependUint32Slot(8, strideY, 0)
}

func Pooling2dDescriptorAddOutputShapeRounding(builder *flatbuffers.Builder, outputShapeRounding OutputShapeRounding) {
	builder.PrependInt8Slot(9, int8(outputShapeRounding), 0)
}

func Pooling2dDescriptorAddPaddingMethod(builder *flatbuffers.Builder, paddingMethod PaddingMethod) {
	builder.PrependInt8Slot(10, int8(paddingMethod), 0)
}

func Pooling2dDescriptorAddDataLayout(builder *flatbuffers.Builder, dataLayout DataLayout) {
	builder.PrependInt8Slot(11, int8(dataLayout), 0)
}

func Pooling2dDescriptorEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type ReshapeDescriptor struct {
	_tab flatbuffers.Table
}

func (rcv *ReshapeDescriptor) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ReshapeDescriptor) TargetShape(j int) uint32 {
	if x, ok := vectorElem(&rcv._tab, 0, j, 4); ok {
		return rcv._tab.GetUint32(x)
	}
	return 0
}

func (rcv *ReshapeDescriptor) TargetShapeLength() int {
	return vectorLen(&rcv._tab, 0)
}

func ReshapeDescriptorStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func ReshapeDescriptorAddTargetShape(builder *flatbuffers.Builder, targetShape flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, targetShape, 0)
}

func ReshapeDescriptorEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

func CreateTargetShapeVector(builder *flatbuffers.Builder, targetShape []uint32) flatbuffers.UOffsetT {
	return createUint32Vector(builder, targetShape)
}

type SoftmaxDescriptor struct {
	_tab flatbuffers.Table
}

func (rcv *SoftmaxDescriptor) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *SoftmaxDescriptor) Beta() float32 {
	return rcv._tab.GetFloat32Slot(slot(0), 0)
}

func SoftmaxDescriptorStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func SoftmaxDescriptorAddBeta(builder *flatbuffers.Builder, beta float32) {
	builder.PrependFloat32Slot(0, beta, 0)
}

func SoftmaxDescriptorEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
