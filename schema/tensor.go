// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type TensorInfo struct {
	_tab flatbuffers.Table
}

func (rcv *TensorInfo) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *TensorInfo) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *TensorInfo) Dimensions(j int) uint32 {
	if x, ok := vectorElem(&rcv._tab, 0, j, 4); ok {
		return rcv._tab.GetUint32(x)
	}
	return 0
}

func (rcv *TensorInfo) DimensionsLength() int {
	return vectorLen(&rcv._tab, 0)
}

func (rcv *TensorInfo) DataType() DataType {
	return DataType(rcv._tab.GetInt8Slot(slot(1), 0))
}

func (rcv *TensorInfo) QuantizationScale(j int) float32 {
	if x, ok := vectorElem(&rcv._tab, 2, j, 4); ok {
		return rcv._tab.GetFloat32(x)
	}
	return 0
}

func (rcv *TensorInfo) QuantizationScaleLength() int {
	return vectorLen(&rcv._tab, 2)
}

func (rcv *TensorInfo) QuantizationOffset() int32 {
	return rcv._tab.GetInt32Slot(slot(3), 0)
}

func (rcv *TensorInfo) QuantizationEnabled() bool {
	return rcv._tab.GetBoolSlot(slot(4), false)
}

func TensorInfoStart(builder *flatbuffers.Builder) {
	builder.StartObject(5)
}

func TensorInfoAddDimensions(builder *flatbuffers.Builder, dimensions flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, dimensions, 0)
}

func TensorInfoAddDataType(builder *flatbuffers.Builder, dataType DataType) {
	builder.PrependInt8Slot(1, int8(dataType), 0)
}

func TensorInfoAddQuantizationScale(builder *flatbuffers.Builder, quantizationScale flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, quantizationScale, 0)
}

func TensorInfoAddQuantizationOffset(builder *flatbuffers.Builder, quantizationOffset int32) {
	builder.PrependInt32Slot(3, quantizationOffset, 0)
}

func TensorInfoAddQuantizationEnabled(builder *flatbuffers.Builder, quantizationEnabled bool) {
	builder.PrependBoolSlot(4, quantizationEnabled, false)
}

func TensorInfoEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

func CreateDimensionsVector(builder *flatbuffers.Builder, dimensions []uint32) flatbuffers.UOffsetT {
	return createUint32Vector(builder, dimensions)
}

func CreateQuantizationScaleVector(builder *flatbuffers.Builder, scales []float32) flatbuffers.UOffsetT {
	return createFloat32Vector(builder, scales)
}

// Connection references the output slot of the layer that feeds an input
// slot.
type Connection struct {
	_tab flatbuffers.Struct
}

func (rcv *Connection) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Connection) SourceLayerIndex() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + flatbuffers.UOffsetT(0))
}

func (rcv *Connection) OutputSlotIndex() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + flatbuffers.UOffsetT(4))
}

func CreateConnection(builder *flatbuffers.Builder, sourceLayerIndex, outputSlotIndex uint32) flatbuffers.UOffsetT {
	builder.Prep(4, 8)
	builder.PrependUint32(outputSlotIndex)
	builder.PrependUint32(sourceLayerIndex)
	return builder.Offset()
}

// ScalarData is implemented by the tables of the ConstTensorData union.
type ScalarData interface {
	Init(buf []byte, i flatbuffers.UOffsetT)
	DataLength() int
	// DataBytes returns the raw little-endian bytes of the data vector.
	DataBytes() []byte
}

type ByteData struct {
	_tab flatbuffers.Table
}

func (rcv *ByteData) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ByteData) Data(j int) int8 {
	if x, ok := vectorElem(&rcv._tab, 0, j, 1); ok {
		return rcv._tab.GetInt8(x)
	}
	return 0
}

func (rcv *ByteData) DataLength() int {
	return vectorLen(&rcv._tab, 0)
}

func (rcv *ByteData) DataBytes() []byte {
	return vectorBytes(&rcv._tab, 0, 1)
}

type ShortData struct {
	_tab flatbuffers.Table
}

func (rcv *ShortData) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ShortData) Data(j int) int16 {
	if x, ok := vectorElem(&rcv._tab, 0, j, 2); ok {
		return rcv._tab.GetInt16(x)
	}
	return 0
}

func (rcv *ShortData) DataLength() int {
	return vectorLen(&rcv._tab, 0)
}

func (rcv *ShortData) DataBytes() []byte {
	return vectorBytes(&rcv._tab, 0, 2)
}

type IntData struct {
	_tab flatbuffers.Table
}

func (rcv *IntData) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *IntData) Data(j int) int32 {
	if x, ok := vectorElem(&rcv._tab, 0, j, 4); ok {
		return rcv._tab.GetInt32(x)
	}
	return 0
}

func (rcv *IntData) DataLength() int {
	return vectorLen(&rcv._tab, 0)
}

func (rcv *IntData) DataBytes() []byte {
	return vectorBytes(&rcv._tab, 0, 4)
}

type FloatData struct {
	_tab flatbuffers.Table
}

func (rcv *FloatData) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *FloatData) Data(j int) float32 {
	if x, ok := vectorElem(&rcv._tab, 0, j, 4); ok {
		return rcv._tab.GetFloat32(x)
	}
	return 0
}

func (rcv *FloatData) DataLength() int {
	return vectorLen(&rcv._tab, 0)
}

func (rcv *FloatData) DataBytes() []byte {
	return vectorBytes(&rcv._tab, 0, 4)
}

// CreateScalarData writes one of the ConstTensorData tables around raw
// little-endian bytes; elemSize selects the vector element width.
func CreateScalarData(builder *flatbuffers.Builder, raw []byte, elemSize int) flatbuffers.UOffsetT {
	builder.StartVector(elemSize, len(raw)/elemSize, elemSize)
	for i := len(raw) - 1; i >= 0; i-- {
		builder.PrependByte(raw[i])
	}
	vec := builder.EndVector(len(raw) / elemSize)
	builder.StartObject(1)
	builder.PrependUOffsetTSlot(0, vec, 0)
	return builder.EndObject()
}

type ConstTensor struct {
	_tab flatbuffers.Table
}

func (rcv *ConstTensor) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ConstTensor) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *ConstTensor) Info(obj *TensorInfo) *TensorInfo {
	x, ok := subTable(&rcv._tab, 0)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(TensorInfo)
	}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}

func (rcv *ConstTensor) DataType() ConstTensorData {
	return ConstTensorData(rcv._tab.GetByteSlot(slot(1), 0))
}

func (rcv *ConstTensor) Data(obj *flatbuffers.Table) bool {
	return unionField(&rcv._tab, 2, obj)
}

// ScalarData resolves the data union to its concrete table, or nil when the
// union is empty or carries an unknown tag.
func (rcv *ConstTensor) ScalarData() ScalarData {
	var data ScalarData
	switch rcv.DataType() {
	case ConstTensorDataByteData:
		data = new(ByteData)
	case ConstTensorDataShortData:
		data = new(ShortData)
	case ConstTensorDataIntData:
		data = new(IntData)
	case ConstTensorDataFloatData:
		data = new(FloatData)
	default:
		return nil
	}
	var t flatbuffers.Table
	if !rcv.Data(&t) {
		return nil
	}
	data.Init(t.Bytes, t.Pos)
	return data
}

func ConstTensorStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func ConstTensorAddInfo(builder *flatbuffers.Builder, info flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, info, 0)
}

func ConstTensorAddDataType(builder *flatbuffers.Builder, dataType ConstTensorData) {
	builder.PrependByteSlot(1, byte(dataType), 0)
}

func ConstTensorAddData(builder *flatbuffers.Builder, data flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, data, 0)
}

func ConstTensorEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
