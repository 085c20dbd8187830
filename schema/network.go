// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Network is the root table of an EnlightNN model.
type Network struct {
	_tab flatbuffers.Table
}

// GetRootAsNetwork reads the root table offset at the given position of
// buf. It performs no bounds checking.
func GetRootAsNetwork(buf []byte, offset flatbuffers.UOffsetT) *Network {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Network{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Network) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Network) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Network) Layers(obj *AnyLayer, j int) bool {
	x, ok := vectorTable(&rcv._tab, 0, j)
	if !ok {
		return false
	}
	obj.Init(rcv._tab.Bytes, x)
	return true
}

func (rcv *Network) LayersLength() int {
	return vectorLen(&rcv._tab, 0)
}

func (rcv *Network) InputIds(j int) uint32 {
	if x, ok := vectorElem(&rcv._tab, 1, j, 4); ok {
		return rcv._tab.GetUint32(x)
	}
	return 0
}

func (rcv *Network) InputIdsLength() int {
	return vectorLen(&rcv._tab, 1)
}

func (rcv *Network) OutputIds(j int) uint32 {
	if x, ok := vectorElem(&rcv._tab, 2, j, 4); ok {
		return rcv._tab.GetUint32(x)
	}
	return 0
}

func (rcv *Network) OutputIdsLength() int {
	return vectorLen(&rcv._tab, 2)
}

func (rcv *Network) Netinfo(obj *NetInfo) *NetInfo {
	x, ok := subTable(&rcv._tab, 3)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(NetInfo)
	}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}

func NetworkStart(builder *flatbuffers.Builder) {
	builder.StartObject(4)
}

func NetworkAddLayers(builder *flatbuffers.Builder, layers flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, layers, 0)
}

func NetworkAddInputIds(builder *flatbuffers.Builder, inputIds flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, inputIds, 0)
}

func NetworkAddOutputIds(builder *flatbuffers.Builder, outputIds flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, outputIds, 0)
}

func NetworkAddNetinfo(builder *flatbuffers.Builder, netinfo flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, netinfo, 0)
}

func NetworkEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

func CreateIdsVector(builder *flatbuffers.Builder, ids []uint32) flatbuffers.UOffsetT {
	return createUint32Vector(builder, ids)
}

// NetInfo carries the global properties of a model: its task, its training
// and evaluation summary, and how it was quantized.
type NetInfo struct {
	_tab flatbuffers.Table
}

func (rcv *NetInfo) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *NetInfo) Model() string {
	return stringField(&rcv._tab, 0)
}

func (rcv *NetInfo) Type() string {
	return stringField(&rcv._tab, 1)
}

func (rcv *NetInfo) HasDetectionLayer() bool {
	return rcv._tab.GetBoolSlot(slot(2), false)
}

func (rcv *NetInfo) NumClass() uint32 {
	return rcv._tab.GetUint32Slot(slot(3), 0)
}

func (rcv *NetInfo) ClassLabels(j int) string {
	if x, ok := vectorElem(&rcv._tab, 4, j, flatbuffers.SizeUOffsetT); ok {
		return rcv._tab.String(x)
	}
	return ""
}

func (rcv *NetInfo) ClassLabelsLength() int {
	return vectorLen(&rcv._tab, 4)
}

func (rcv *NetInfo) HasScore() bool {
	return rcv._tab.GetBoolSlot(slot(5), false)
}

func (rcv *NetInfo) MAP() float32 {
	return rcv._tab.GetFloat32Slot(slot(6), 0)
}

func (rcv *NetInfo) Top5() float32 {
	return rcv._tab.GetFloat32Slot(slot(7), 0)
}

func (rcv *NetInfo) Top1() float32 {
	return rcv._tab.GetFloat32Slot(slot(8), 0)
}

func (rcv *NetInfo) EvaluationDataset() string {
	return stringField(&rcv._tab, 9)
}

func (rcv *NetInfo) IsFusedNormalization() bool {
	return rcv._tab.GetBoolSlot(slot(10), false)
}

func (rcv *NetInfo) NormMean(j int) float32 {
	if x, ok := vectorElem(&rcv._tab, 11, j, 4); ok {
		return rcv._tab.GetFloat32(x)
	}
	return 0
}

func (rcv *NetInfo) NormMeanLength() int {
	return vectorLen(&rcv._tab, 11)
}

func (rcv *NetInfo) NormStd(j int) float32 {
	if x, ok := vectorElem(&rcv._tab, 12, j, 4); ok {
		return rcv._tab.GetFloat32(x)
	}
	return 0
}

func (rcv *NetInfo) NormStdLength() int {
	return vectorLen(&rcv._tab, 12)
}

func (rcv *NetInfo) Optimization(j int) string {
	if x, ok := vectorElem(&rcv._tab, 13, j, flatbuffers.SizeUOffsetT); ok {
		return rcv._tab.String(x)
	}
	return ""
}

func (rcv *NetInfo) OptimizationLength() int {
	return vectorLen(&rcv._tab, 13)
}

func (rcv *NetInfo) IsTracked() bool {
	return rcv._tab.GetBoolSlot(slot(14), false)
}

func (rcv *NetInfo) HasHistogram() bool {
	return rcv._tab.GetBoolSlot(slot(15), false)
}

func (rcv *NetInfo) TrackDataset() string {
	return stringField(&rcv._tab, 16)
}

func (rcv *NetInfo) NumImages() uint32 {
	return rcv._tab.GetUint32Slot(slot(17), 0)
}

func (rcv *NetInfo) IsQuantized() bool {
	return rcv._tab.GetBoolSlot(slot(18), false)
}

func (rcv *NetInfo) QuantizationMethod() string {
	return stringField(&rcv._tab, 19)
}

func (rcv *NetInfo) MStd8() float32 {
	return rcv._tab.GetFloat32Slot(slot(20), 0)
}

func (rcv *NetInfo) MStd4() float32 {
	return rcv._tab.GetFloat32Slot(slot(21), 0)
}

func (rcv *NetInfo) MStdRatio() float32 {
	return rcv._tab.GetFloat32Slot(slot(22), 0)
}

func (rcv *NetInfo) ClipMinMax() bool {
	return rcv._tab.GetBoolSlot(slot(23), false)
}

func (rcv *NetInfo) IterWeightMeanCorrection() bool {
	return rcv._tab.GetBoolSlot(slot(24), false)
}

func (rcv *NetInfo) QuantizePostProcess() bool {
	return rcv._tab.GetBoolSlot(slot(25), false)
}

func NetInfoStart(builder *flatbuffers.Builder) {
	builder.StartObject(26)
}

func NetInfoAddModel(builder *flatbuffers.Builder, model flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, model, 0)
}

func NetInfoAddType(builder *flatbuffers.Builder, typ flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, typ, 0)
}

func NetInfoAddHasDetectionLayer(builder *flatbuffers.Builder, hasDetectionLayer bool) {
	builder.PrependBoolSlot(2, hasDetectionLayer, false)
}

func NetInfoAddNumClass(builder *flatbuffers.Builder, numClass uint32) {
	builder.PrependUint32Slot(3, numClass, 0)
}

func NetInfoAddClassLabels(builder *flatbuffers.Builder, classLabels flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, classLabels, 0)
}

func NetInfoAddHasScore(builder *flatbuffers.Builder, hasScore bool) {
	builder.PrependBoolSlot(5, hasScore, false)
}

func NetInfoAddMAP(builder *flatbuffers.Builder, mAP float32) {
	builder.PrependFloat32Slot(6, mAP, 0)
}

func NetInfoAddTop5(builder *flatbuffers.Builder, top5 float32) {
	builder.PrependFloat32Slot(7, top5, 0)
}

func NetInfoAddTop1(builder *flatbuffers.Builder, top1 float32) {
	builder.PrependFloat32Slot(8, top1, 0)
}

func NetInfoAddEvaluationDataset(builder *flatbuffers.Builder, evaluationDataset flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(9, evaluationDataset, 0)
}

func NetInfoAddIsFusedNormalization(builder *flatbuffers.Builder, isFusedNormalization bool) {
	builder.PrependBoolSlot(10, isFusedNormalization, false)
}

func NetInfoAddNormMean(builder *flatbuffers.Builder, normMean flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(11, normMean, 0)
}

func NetInfoAddNormStd(builder *flatbuffers.Builder, normStd flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(12, normStd, 0)
}

func NetInfoAddOptimization(builder *flatbuffers.Builder, optimization flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(13, optimization, 0)
}

func NetInfoAddIsTracked(builder *flatbuffers.Builder, isTracked bool) {
	builder.PrependBoolSlot(14, isTracked, false)
}

func NetInfoAddHasHistogram(builder *flatbuffers.Builder, hasHistogram bool) {
	builder.PrependBoolSlot(15, hasHistogram, false)
}

func NetInfoAddTrackDataset(builder *flatbuffers.Builder, trackDataset flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(16, trackDataset, 0)
}

func NetInfoAddNumImages(builder *flatbuffers.Builder, numImages uint32) {
	builder.PrependUint32Slot(17, numImages, 0)
}

func NetInfoAddIsQuantized(builder *flatbuffers.Builder, isQuantized bool) {
	builder.PrependBoolSlot(18, isQuantized, false)
}

func NetInfoAddQuantizationMethod(builder *flatbuffers.Builder, quantizationMethod flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(19, quantizationMethod, 0)
}

func NetInfoAddMStd8(builder *flatbuffers.Builder, mStd8 float32) {
	builder.PrependFloat32Slot(20, mStd8, 0)
}

func NetInfoAddMStd4(builder *flatbuffers.Builder, mStd4 float32) {
	builder.PrependFloat32Slot(21, mStd4, 0)
}

func NetInfoAddMStdRatio(builder *flatbuffers.Builder, mStdRatio float32) {
	builder.PrependFloat32Slot(22, mStdRatio, 0)
}

func NetInfoAddClipMinMax(builder *flatbuffers.Builder, clipMinMax bool) {
	builder.PrependBoolSlot(23, clipMinMax, false)
}

func NetInfoAddIterWeightMeanCorrection(builder *flatbuffers.Builder, iterWeightMeanCorrection bool) {
	builder.PrependBoolSlot(24, iterWeightMeanCorrection, false)
}

func NetInfoAddQuantizePostProcess(builder *flatbuffers.Builder, quantizePostProcess bool) {
	builder.PrependBoolSlot(25, quantizePostProcess, false)
}

func NetInfoEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

func CreateNormVector(builder *flatbuffers.Builder, v []float32) flatbuffers.UOffsetT {
	return createFloat32Vector(builder, v)
}
