// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"strings"

	"github.com/nlpodyssey/enlight/schema"
)

// A Node is one layer of the graph.
type Node struct {
	operator   string
	name       string
	category   string
	inputs     []*Parameter
	outputs    []*Parameter
	attributes []*Attribute
	chain      []*Node
}

// newNode builds the node of a layer. A fused node, or a layer without
// base, is not connected to the parameters but still has its attributes.
func newNode(layer *schema.AnyLayer, params map[ParameterKey]*Parameter, metadata *Metadata, fused bool) *Node {
	tag := layer.LayerType()
	n := &Node{operator: strings.TrimSuffix(tag.String(), "Layer")}

	var base *schema.LayerBase
	if !fused {
		base = layer.Base(nil)
	}
	if base != nil {
		n.name = base.LayerName()
		var in schema.InputSlot
		var conn schema.Connection
		for i := 0; i < base.InputSlotsLength(); i++ {
			if !base.InputSlots(&in, i) {
				continue
			}
			c := in.Connection(&conn)
			if c == nil {
				n.inputs = append(n.inputs, nil)
				continue
			}
			n.inputs = append(n.inputs, params[ParameterKey{c.SourceLayerIndex(), c.OutputSlotIndex()}])
		}
		for j := 0; j < base.OutputSlotsLength(); j++ {
			n.outputs = append(n.outputs, params[ParameterKey{base.Index(), uint32(j)}])
		}
		var sub schema.AnyLayer
		for j := 0; j < layer.FusedLayersLength(); j++ {
			if layer.FusedLayers(&sub, j) {
				n.chain = append(n.chain, newNode(&sub, params, metadata, true))
			}
		}
	}

	s := metadata.Schema(tag.String())
	if s == nil {
		return n
	}
	layerRecord, descriptor := layerRecords(layer)
	n.attributes = attributes(s, layerRecord, descriptor)
	for _, rule := range s.Inputs {
		if !layerRecord.truthy(rule.Src) {
			continue
		}
		f, _ := layerRecord.field(rule.Src)
		var arg *Argument
		if f.kind == tensorField {
			arg = newInitializerArgument(f.tensor)
		} else {
			arg = newConstantArgument(layerRecord.value(rule.Src))
		}
		n.inputs = append(n.inputs, &Parameter{name: rule.Name, arguments: []*Argument{arg}})
	}
	n.category = s.Category
	return n
}

// Operator is the layer kind, such as "Convolution2d".
func (n *Node) Operator() string {
	return n.operator
}

// The Name of the layer, empty for fused nodes.
func (n *Node) Name() string {
	return n.name
}

// Category is the display grouping given by the metadata.
func (n *Node) Category() string {
	return n.category
}

// Inputs are the consumed parameters, followed by the extra inputs read
// from the layer (weights, biases, ...). An input whose producer is not in
// the graph is nil.
func (n *Node) Inputs() []*Parameter {
	return n.inputs
}

// Outputs are the produced parameters.
func (n *Node) Outputs() []*Parameter {
	return n.outputs
}

// Attributes are ordered as declared by the metadata.
func (n *Node) Attributes() []*Attribute {
	return n.attributes
}

// Chain holds the nodes of the layers fused into this one.
func (n *Node) Chain() []*Node {
	return n.chain
}
