// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type InputSlot struct {
	_tab flatbuffers.Table
}

func (rcv *InputSlot) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *InputSlot) Index() uint32 {
	return rcv._tab.GetUint32Slot(slot(0), 0)
}

func (rcv *InputSlot) Connection(obj *Connection) *Connection {
	o := fieldOffset(&rcv._tab, 1)
	if o == 0 {
		return nil
	}
	if obj == nil {
		obj = new(Connection)
	}
	obj.Init(rcv._tab.Bytes, o+rcv._tab.Pos)
	return obj
}

func InputSlotStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func InputSlotAddIndex(builder *flatbuffers.Builder, index uint32) {
	builder.PrependUint32Slot(0, index, 0)
}

func InputSlotAddConnection(builder *flatbuffers.Builder, connection flatbuffers.UOffsetT) {
	builder.PrependStructSlot(1, connection, 0)
}

func InputSlotEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type OutputSlot struct {
	_tab flatbuffers.Table
}

func (rcv *OutputSlot) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *OutputSlot) Index() uint32 {
	return rcv._tab.GetUint32Slot(slot(0), 0)
}

func (rcv *OutputSlot) TensorInfo(obj *TensorInfo) *TensorInfo {
	x, ok := subTable(&rcv._tab, 1)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(TensorInfo)
	}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}

func (rcv *OutputSlot) StatisticsEnabled() bool {
	return rcv._tab.GetBoolSlot(slot(2), false)
}

func (rcv *OutputSlot) Min() float32 {
	return rcv._tab.GetFloat32Slot(slot(3), 0)
}

func (rcv *OutputSlot) Max() float32 {
	return rcv._tab.GetFloat32Slot(slot(4), 0)
}

func (rcv *OutputSlot) Mean() float32 {
	return rcv._tab.GetFloat32Slot(slot(5), 0)
}

func (rcv *OutputSlot) Std() float32 {
	return rcv._tab.GetFloat32Slot(slot(6), 0)
}

func (rcv *OutputSlot) ThresholdEnabled() bool {
	return rcv._tab.GetBoolSlot(slot(7), false)
}

func (rcv *OutputSlot) Threshold() float32 {
	return rcv._tab.GetFloat32Slot(slot(8), 0)
}

func OutputSlotStart(builder *flatbuffers.Builder) {
	builder.StartObject(9)
}

func OutputSlotAddIndex(builder *flatbuffers.Builder, index uint32) {
	builder.PrependUint32Slot(0, index, 0)
}

func OutputSlotAddTensorInfo(builder *flatbuffers.Builder, tensorInfo flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, tensorInfo, 0)
}

func OutputSlotAddStatisticsEnabled(builder *flatbuffers.Builder, statisticsEnabled bool) {
	builder.PrependBoolSlot(2, statisticsEnabled, false)
}

func OutputSlotAddMin(builder *flatbuffers.Builder, min float32) {
	builder.PrependFloat32Slot(3, min, 0)
}

func OutputSlotAddMax(builder *flatbuffers.Builder, max float32) {
	builder.PrependFloat32Slot(4, max, 0)
}

func OutputSlotAddMean(builder *flatbuffers.Builder, mean float32) {
	builder.PrependFloat32Slot(5, mean, 0)
}

func OutputSlotAddStd(builder *flatbuffers.Builder, std float32) {
	builder.PrependFloat32Slot(6, std, 0)
}

func OutputSlotAddThresholdEnabled(builder *flatbuffers.Builder, thresholdEnabled bool) {
	builder.PrependBoolSlot(7, thresholdEnabled, false)
}

func OutputSlotAddThreshold(builder *flatbuffers.Builder, threshold float32) {
	builder.PrependFloat32Slot(8, threshold, 0)
}

func OutputSlotEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type LayerBase struct {
	_tab flatbuffers.Table
}

func (rcv *LayerBase) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *LayerBase) Index() uint32 {
	return rcv._tab.GetUint32Slot(slot(0), 0)
}

func (rcv *LayerBase) LayerName() string {
	return stringField(&rcv._tab, 1)
}

func (rcv *LayerBase) InputSlots(obj *InputSlot, j int) bool {
	x, ok := vectorTable(&rcv._tab, 2, j)
	if !ok {
		return false
	}
	obj.Init(rcv._tab.Bytes, x)
	return true
}

func (rcv *LayerBase) InputSlotsLength() int {
	return vectorLen(&rcv._tab, 2)
}

func (rcv *LayerBase) OutputSlots(obj *OutputSlot, j int) bool {
	x, ok := vectorTable(&rcv._tab, 3, j)
	if !ok {
		return false
	}
	obj.Init(rcv._tab.Bytes, x)
	return true
}

func (rcv *LayerBase) OutputSlotsLength() int {
	return vectorLen(&rcv._tab, 3)
}

func LayerBaseStart(builder *flatbuffers.Builder) {
	builder.StartObject(4)
}

func LayerBaseAddIndex(builder *flatbuffers.Builder, index uint32) {
	builder.PrependUint32Slot(0, index, 0)
}

func LayerBaseAddLayerName(builder *flatbuffers.Builder, layerName flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, layerName, 0)
}

func LayerBaseAddInputSlots(builder *flatbuffers.Builder, inputSlots flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, inputSlots, 0)
}

func LayerBaseAddOutputSlots(builder *flatbuffers.Builder, outputSlots flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, outputSlots, 0)
}

func LayerBaseEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// CreateTableVector writes a vector of already finished tables, such as
// the slots of a LayerBase or the layers of a Network.
func CreateTableVector(builder *flatbuffers.Builder, tables []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	return createOffsetVector(builder, tables)
}

// AnyLayer wraps one concrete layer record, its base and its fused
// sub-layers.
type AnyLayer struct {
	_tab flatbuffers.Table
}

func (rcv *AnyLayer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *AnyLayer) Base(obj *LayerBase) *LayerBase {
	x, ok := subTable(&rcv._tab, 0)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(LayerBase)
	}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}

func (rcv *AnyLayer) LayerType() Layer {
	return Layer(rcv._tab.GetByteSlot(slot(1), 0))
}

func (rcv *AnyLayer) Layer(obj *flatbuffers.Table) bool {
	return unionField(&rcv._tab, 2, obj)
}

func (rcv *AnyLayer) FusedLayers(obj *AnyLayer, j int) bool {
	x, ok := vectorTable(&rcv._tab, 3, j)
	if !ok {
		return false
	}
	obj.Init(rcv._tab.Bytes, x)
	return true
}

func (rcv *AnyLayer) FusedLayersLength() int {
	return vectorLen(&rcv._tab, 3)
}

func AnyLayerStart(builder *flatbuffers.Builder) {
	builder.StartObject(4)
}

func AnyLayerAddBase(builder *flatbuffers.Builder, base flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, base, 0)
}

func AnyLayerAddLayerType(builder *flatbuffers.Builder, layerType Layer) {
	builder.PrependByteSlot(1, byte(layerType), 0)
}

func AnyLayerAddLayer(builder *flatbuffers.Builder, layer flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, layer, 0)
}

func AnyLayerAddFusedLayers(builder *flatbuffers.Builder, fusedLayers flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, fusedLayers, 0)
}

func AnyLayerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
