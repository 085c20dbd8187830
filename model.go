// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"strconv"
	"strings"

	"github.com/nlpodyssey/enlight/schema"
)

// Format is the name of the model format.
const Format = "EnlightNN"

// A Model is a decoded EnlightNN network.
type Model struct {
	graphs []*Graph
	info   NetInfo
}

func newModel(network *schema.Network, metadata *Metadata) *Model {
	return &Model{
		graphs: []*Graph{newGraph(network, metadata)},
		info:   newNetInfo(network.Netinfo(nil)),
	}
}

// Format is always "EnlightNN".
func (m *Model) Format() string {
	return Format
}

// Graphs always holds one Graph.
func (m *Model) Graphs() []*Graph {
	return m.graphs
}

// NetInfo returns the global properties of the model.
func (m *Model) NetInfo() NetInfo {
	return m.info
}

// Name is the model name recorded in NetInfo.
func (m *Model) Name() string {
	return m.info.ModelName
}

// ClassLabels renders the class labels one per line, as "#i : label".
func (m *Model) ClassLabels() string {
	lines := make([]string, len(m.info.ClassLabels))
	for i, label := range m.info.ClassLabels {
		lines[i] = "#" + strconv.Itoa(i) + " : " + label
	}
	return strings.Join(lines, "\n")
}

// NetInfo describes the task of a model, its evaluation and its
// quantization.
type NetInfo struct {
	ModelName         string
	ModelType         string
	HasDetectionLayer bool
	NumClass          uint32
	ClassLabels       []string

	HasScore          bool
	MAP               float32
	Top5              float32
	Top1              float32
	EvaluationDataset string

	IsFusedNormalization bool
	NormMean             []float32
	NormStd              []float32
	Optimizations        []string

	IsTracked    bool
	HasHistogram bool
	TrackDataset string
	NumImages    uint32

	IsQuantized              bool
	QuantizationMethod       string
	MStd8                    float32
	MStd4                    float32
	MStdRatio                float32
	ClipMinMax               bool
	IterWeightMeanCorrection bool
	QuantizePostProcess      bool
}

// newNetInfo returns the zero NetInfo when info is nil.
func newNetInfo(info *schema.NetInfo) NetInfo {
	if info == nil {
		return NetInfo{}
	}
	n := NetInfo{
		ModelName:                info.Model(),
		ModelType:                info.Type(),
		HasDetectionLayer:        info.HasDetectionLayer(),
		NumClass:                 info.NumClass(),
		HasScore:                 info.HasScore(),
		MAP:                      info.MAP(),
		Top5:                     info.Top5(),
		Top1:                     info.Top1(),
		EvaluationDataset:        info.EvaluationDataset(),
		IsFusedNormalization:     info.IsFusedNormalization(),
		IsTracked:                info.IsTracked(),
		HasHistogram:             info.HasHistogram(),
		TrackDataset:             info.TrackDataset(),
		NumImages:                info.NumImages(),
		IsQuantized:              info.IsQuantized(),
		QuantizationMethod:       info.QuantizationMethod(),
		MStd8:                    info.MStd8(),
		MStd4:                    info.MStd4(),
		MStdRatio:                info.MStdRatio(),
		ClipMinMax:               info.ClipMinMax(),
		IterWeightMeanCorrection: info.IterWeightMeanCorrection(),
		QuantizePostProcess:      info.QuantizePostProcess(),
	}
	for i := 0; i < info.ClassLabelsLength(); i++ {
		n.ClassLabels = append(n.ClassLabels, info.ClassLabels(i))
	}
	for i := 0; i < info.NormMeanLength(); i++ {
		n.NormMean = append(n.NormMean, info.NormMean(i))
	}
	for i := 0; i < info.NormStdLength(); i++ {
		n.NormStd = append(n.NormStd, info.NormStd(i))
	}
	for i := 0; i < info.OptimizationLength(); i++ {
		n.Optimizations = append(n.Optimizations, info.Optimization(i))
	}
	return n
}
