// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enlighttest builds small EnlightNN model files, for testing.
package enlighttest

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/nlpodyssey/enlight/schema"
)

// Network describes a whole model file.
type Network struct {
	Layers    []Layer
	InputIDs  []uint32
	OutputIDs []uint32
	Info      *NetInfo
}

// Layer describes one AnyLayer. Without Base the layer has no LayerBase.
type Layer struct {
	Base  *Base
	Body  Body
	Fused []Layer
}

// Base describes a LayerBase.
type Base struct {
	Index   uint32
	Name    string
	Inputs  []Connection
	Outputs []Output
}

// Connection refers to an output slot of a layer.
type Connection struct {
	Layer, Slot uint32
}

// Output describes an OutputSlot. Nil Stats or Threshold are disabled.
type Output struct {
	Info      *TensorInfo
	Stats     *[4]float32
	Threshold *float32
}

// TensorInfo describes the type of a tensor. Scales are written only if
// Quantized is true.
type TensorInfo struct {
	DataType   schema.DataType
	Dimensions []uint32
	Quantized  bool
	Scales     []float32
}

// ConstTensor describes a constant tensor. Nil Data leaves the data union
// empty; otherwise the storage table is chosen from the data type.
type ConstTensor struct {
	Info TensorInfo
	Data []byte
}

// Body is the concrete table of a layer, with its union tag.
type Body struct {
	Type  schema.Layer
	build func(*flatbuffers.Builder) flatbuffers.UOffsetT
}

// NetInfo describes the global properties of a model.
type NetInfo struct {
	Model                    string
	Type                     string
	HasDetectionLayer        bool
	NumClass                 uint32
	ClassLabels              []string
	HasScore                 bool
	MAP, Top5, Top1          float32
	EvaluationDataset        string
	IsFusedNormalization     bool
	NormMean, NormStd        []float32
	Optimizations            []string
	IsTracked, HasHistogram  bool
	TrackDataset             string
	NumImages                uint32
	IsQuantized              bool
	QuantizationMethod       string
	MStd8, MStd4, MStdRatio  float32
	ClipMinMax               bool
	IterWeightMeanCorrection bool
	QuantizePostProcess      bool
}

// Build returns the bytes of the model file.
func (n Network) Build() []byte {
	b := flatbuffers.NewBuilder(1024)

	layers := make([]flatbuffers.UOffsetT, len(n.Layers))
	for i, l := range n.Layers {
		layers[i] = l.build(b)
	}
	layersVec := schema.CreateTableVector(b, layers)
	var inputs, outputs, info flatbuffers.UOffsetT
	if n.InputIDs != nil {
		inputs = schema.CreateIdsVector(b, n.InputIDs)
	}
	if n.OutputIDs != nil {
		outputs = schema.CreateIdsVector(b, n.OutputIDs)
	}
	if n.Info != nil {
		info = n.Info.build(b)
	}

	schema.NetworkStart(b)
	schema.NetworkAddLayers(b, layersVec)
	if inputs != 0 {
		schema.NetworkAddInputIds(b, inputs)
	}
	if outputs != 0 {
		schema.NetworkAddOutputIds(b, outputs)
	}
	if info != 0 {
		schema.NetworkAddNetinfo(b, info)
	}
	b.Finish(schema.NetworkEnd(b))
	return b.FinishedBytes()
}

func (l Layer) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	var base, body, fused flatbuffers.UOffsetT
	if l.Base != nil {
		base = l.Base.build(b)
	}
	if l.Body.build != nil {
		body = l.Body.build(b)
	}
	if len(l.Fused) > 0 {
		offsets := make([]flatbuffers.UOffsetT, len(l.Fused))
		for i, f := range l.Fused {
			offsets[i] = f.build(b)
		}
		fused = schema.CreateTableVector(b, offsets)
	}

	schema.AnyLayerStart(b)
	if base != 0 {
		schema.AnyLayerAddBase(b, base)
	}
	schema.AnyLayerAddLayerType(b, l.Body.Type)
	if body != 0 {
		schema.AnyLayerAddLayer(b, body)
	}
	if fused != 0 {
		schema.AnyLayerAddFusedLayers(b, fused)
	}
	return schema.AnyLayerEnd(b)
}

func (lb *Base) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	name := b.CreateString(lb.Name)

	inputs := make([]flatbuffers.UOffsetT, len(lb.Inputs))
	for i, c := range lb.Inputs {
		schema.InputSlotStart(b)
		schema.InputSlotAddIndex(b, uint32(i))
		schema.InputSlotAddConnection(b, schema.CreateConnection(b, c.Layer, c.Slot))
		inputs[i] = schema.InputSlotEnd(b)
	}
	inputsVec := schema.CreateTableVector(b, inputs)

	outputs := make([]flatbuffers.UOffsetT, len(lb.Outputs))
	for i, o := range lb.Outputs {
		outputs[i] = o.build(b, uint32(i))
	}
	outputsVec := schema.CreateTableVector(b, outputs)

	schema.LayerBaseStart(b)
	schema.LayerBaseAddIndex(b, lb.Index)
	schema.LayerBaseAddLayerName(b, name)
	schema.LayerBaseAddInputSlots(b, inputsVec)
	schema.LayerBaseAddOutputSlots(b, outputsVec)
	return schema.LayerBaseEnd(b)
}

func (o Output) build(b *flatbuffers.Builder, index uint32) flatbuffers.UOffsetT {
	var info flatbuffers.UOffsetT
	if o.Info != nil {
		info = o.Info.build(b)
	}
	schema.OutputSlotStart(b)
	schema.OutputSlotAddIndex(b, index)
	if info != 0 {
		schema.OutputSlotAddTensorInfo(b, info)
	}
	if o.Stats != nil {
		schema.OutputSlotAddStatisticsEnabled(b, true)
		schema.OutputSlotAddMin(b, o.Stats[0])
		schema.OutputSlotAddMax(b, o.Stats[1])
		schema.OutputSlotAddMean(b, o.Stats[2])
		schema.OutputSlotAddStd(b, o.Stats[3])
	}
	if o.Threshold != nil {
		schema.OutputSlotAddThresholdEnabled(b, true)
		schema.OutputSlotAddThreshold(b, *o.Threshold)
	}
	return schema.OutputSlotEnd(b)
}

func (ti *TensorInfo) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	dims := schema.CreateDimensionsVector(b, ti.Dimensions)
	var scales flatbuffers.UOffsetT
	if ti.Quantized {
		scales = schema.CreateQuantizationScaleVector(b, ti.Scales)
	}
	schema.TensorInfoStart(b)
	schema.TensorInfoAddDimensions(b, dims)
	schema.TensorInfoAddDataType(b, ti.DataType)
	if ti.Quantized {
		schema.TensorInfoAddQuantizationScale(b, scales)
		schema.TensorInfoAddQuantizationEnabled(b, true)
	}
	return schema.TensorInfoEnd(b)
}

// storage returns the data table and element width used for a data type.
func storage(dt schema.DataType) (schema.ConstTensorData, int) {
	switch dt {
	case schema.DataTypeFloat32:
		return schema.ConstTensorDataFloatData, 4
	case schema.DataTypeSigned32, schema.DataTypeSigned64:
		return schema.ConstTensorDataIntData, 4
	case schema.DataTypeFloat16, schema.DataTypeQuantisedSymm16:
		return schema.ConstTensorDataShortData, 2
	}
	return schema.ConstTensorDataByteData, 1
}

func (ct *ConstTensor) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	if ct == nil {
		return 0
	}
	info := ct.Info.build(b)
	kind, size := storage(ct.Info.DataType)
	var data flatbuffers.UOffsetT
	if ct.Data != nil {
		data = schema.CreateScalarData(b, ct.Data, size)
	}
	schema.ConstTensorStart(b)
	schema.ConstTensorAddInfo(b, info)
	if data != 0 {
		schema.ConstTensorAddDataType(b, kind)
		schema.ConstTensorAddData(b, data)
	}
	return schema.ConstTensorEnd(b)
}

func (ni *NetInfo) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	model := b.CreateString(ni.Model)
	typ := b.CreateString(ni.Type)
	labels := schema.CreateStringVector(b, ni.ClassLabels)
	evaluation := b.CreateString(ni.EvaluationDataset)
	mean := schema.CreateNormVector(b, ni.NormMean)
	std := schema.CreateNormVector(b, ni.NormStd)
	optimizations := schema.CreateStringVector(b, ni.Optimizations)
	track := b.CreateString(ni.TrackDataset)
	method := b.CreateString(ni.QuantizationMethod)

	schema.NetInfoStart(b)
	schema.NetInfoAddModel(b, model)
	schema.NetInfoAddType(b, typ)
	schema.NetInfoAddHasDetectionLayer(b, ni.HasDetectionLayer)
	schema.NetInfoAddNumClass(b, ni.NumClass)
	schema.NetInfoAddClassLabels(b, labels)
	schema.NetInfoAddHasScore(b, ni.HasScore)
	schema.NetInfoAddMAP(b, ni.MAP)
	schema.NetInfoAddTop5(b, ni.Top5)
	schema.NetInfoAddTop1(b, ni.Top1)
	schema.NetInfoAddEvaluationDataset(b, evaluation)
	schema.NetInfoAddIsFusedNormalization(b, ni.IsFusedNormalization)
	schema.NetInfoAddNormMean(b, mean)
	schema.NetInfoAddNormStd(b, std)
	schema.NetInfoAddOptimization(b, optimizations)
	schema.NetInfoAddIsTracked(b, ni.IsTracked)
	schema.NetInfoAddHasHistogram(b, ni.HasHistogram)
	schema.NetInfoAddTrackDataset(b, track)
	schema.NetInfoAddNumImages(b, ni.NumImages)
	schema.NetInfoAddIsQuantized(b, ni.IsQuantized)
	schema.NetInfoAddQuantizationMethod(b, method)
	schema.NetInfoAddMStd8(b, ni.MStd8)
	schema.NetInfoAddMStd4(b, ni.MStd4)
	schema.NetInfoAddMStdRatio(b, ni.MStdRatio)
	schema.NetInfoAddClipMinMax(b, ni.ClipMinMax)
	schema.NetInfoAddIterWeightMeanCorrection(b, ni.IterWeightMeanCorrection)
	schema.NetInfoAddQuantizePostProcess(b, ni.QuantizePostProcess)
	return schema.NetInfoEnd(b)
}
