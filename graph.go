// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"strconv"

	"github.com/nlpodyssey/enlight/schema"
)

// ParameterKey identifies the value produced by one output slot of a layer.
type ParameterKey struct {
	LayerIndex uint32
	OutputSlot uint32
}

// A Graph holds the nodes of a network, connected through shared
// Parameters.
type Graph struct {
	name      string
	nodes     []*Node
	inputs    []*Parameter
	outputs   []*Parameter
	inputIDs  []uint32
	outputIDs []uint32
	params    map[ParameterKey]*Parameter
}

func newGraph(network *schema.Network, metadata *Metadata) *Graph {
	g := &Graph{params: make(map[ParameterKey]*Parameter)}

	var layer schema.AnyLayer
	var base schema.LayerBase
	var slot schema.OutputSlot
	id := 0
	for j := 0; j < network.LayersLength(); j++ {
		if !network.Layers(&layer, j) || layer.Base(&base) == nil {
			continue
		}
		for i := 0; i < base.OutputSlotsLength(); i++ {
			if !base.OutputSlots(&slot, i) {
				continue
			}
			name := strconv.Itoa(id)
			id++
			var stats *SlotStatistics
			if slot.StatisticsEnabled() {
				stats = &SlotStatistics{Min: slot.Min(), Max: slot.Max(), Mean: slot.Mean(), Std: slot.Std()}
			}
			var threshold float32
			if slot.ThresholdEnabled() {
				threshold = slot.Threshold()
			}
			g.params[ParameterKey{base.Index(), uint32(i)}] = &Parameter{
				name:      name,
				arguments: []*Argument{newSlotArgument(name, slot.TensorInfo(nil), stats, threshold)},
			}
		}
	}

	for j := 0; j < network.LayersLength(); j++ {
		if network.Layers(&layer, j) {
			g.nodes = append(g.nodes, newNode(&layer, g.params, metadata, false))
		}
	}

	// The bound inputs and outputs are kept as ids only. Graph.Inputs and
	// Graph.Outputs are left empty.
	for k := 0; k < network.InputIdsLength(); k++ {
		g.inputIDs = append(g.inputIDs, network.InputIds(k))
	}
	for k := 0; k < network.OutputIdsLength(); k++ {
		g.outputIDs = append(g.outputIDs, network.OutputIds(k))
	}
	return g
}

// The Name of the graph is always empty.
func (g *Graph) Name() string {
	return g.name
}

// Nodes are in the order of the layers of the network.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Inputs is always empty: see InputIDs.
func (g *Graph) Inputs() []*Parameter {
	return g.inputs
}

// Outputs is always empty: see OutputIDs.
func (g *Graph) Outputs() []*Parameter {
	return g.outputs
}

// InputIDs are the layer binding ids of the network inputs.
func (g *Graph) InputIDs() []uint32 {
	return g.inputIDs
}

// OutputIDs are the layer binding ids of the network outputs.
func (g *Graph) OutputIDs() []uint32 {
	return g.outputIDs
}

// Parameter returns the value produced by an output slot of a layer, or nil.
func (g *Graph) Parameter(layerIndex, outputSlot uint32) *Parameter {
	return g.params[ParameterKey{layerIndex, outputSlot}]
}
