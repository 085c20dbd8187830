// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"context"
	"testing"

	"github.com/nlpodyssey/enlight/enlighttest"
	"github.com/nlpodyssey/enlight/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatTensor(values ...float32) *enlighttest.ConstTensor {
	return &enlighttest.ConstTensor{
		Info: enlighttest.TensorInfo{DataType: schema.DataTypeFloat32, Dimensions: []uint32{uint32(len(values))}},
		Data: float32Bytes(values...),
	}
}

func TestNode_Attributes(t *testing.T) {
	testCases := map[string]struct {
		body     enlighttest.Body
		category string
		names    []string
		values   []any
		inputs   []string
	}{
		"activation": {
			enlighttest.Activation(schema.ActivationFunctionBoundedReLu, 6, 0),
			"Activation",
			[]string{"function", "a", "b"},
			[]any{"BoundedReLu", float32(6), float32(0)},
			nil,
		},
		"addition": {
			enlighttest.Addition(), "Tensor", nil, nil, nil,
		},
		"batch normalization": {
			enlighttest.BatchNormalization(0.5, schema.DataLayoutNHWC, floatTensor(1, 2), floatTensor(3, 4), nil, nil),
			"Normalization",
			[]string{"eps", "data_layout"},
			[]any{float32(0.5), "NHWC"},
			[]string{"mean", "variance"},
		},
		"concat": {
			enlighttest.Concat(1, 2, 4),
			"Tensor",
			[]string{"concat_axis", "num_views", "num_dimensions"},
			[]any{uint32(1), uint32(2), uint32(4)},
			nil,
		},
		"convolution with bias": {
			enlighttest.Convolution2d(enlighttest.Convolution2dParams{
				PadLeft: 1, PadRight: 2, PadTop: 3, PadBottom: 4,
				StrideX: 2, StrideY: 3,
				BiasEnabled: true,
				DataLayout:  schema.DataLayoutNCHW,
			}, floatTensor(1), floatTensor(2)),
			"Layer",
			[]string{"padding", "stride", "dilation", "data_layout", "bias_enabled"},
			[]any{"3, 2, 4, 1", "2, 3", "1, 1", "NCHW", true},
			[]string{"weights", "biases"},
		},
		"depthwise convolution without bias": {
			enlighttest.DepthwiseConvolution2d(enlighttest.Convolution2dParams{
				StrideX: 1, StrideY: 1, DilationX: 2, DilationY: 2,
				DataLayout: schema.DataLayoutNHWC,
			}, floatTensor(1), nil),
			"Layer",
			[]string{"padding", "stride", "dilation", "data_layout"},
			[]any{"0, 0, 0, 0", "1, 1", "2, 2", "NHWC"},
			[]string{"weights"},
		},
		"fully connected": {
			enlighttest.FullyConnected(true, false, floatTensor(1, 2, 3), floatTensor(4)),
			"Layer",
			[]string{"transpose_weights_matrix", "bias_enabled"},
			[]any{false, true},
			[]string{"weights", "biases"},
		},
		"input": {
			enlighttest.Input(-1), "Data", []string{"layer_binding_id"}, []any{int32(-1)}, nil,
		},
		"output": {
			enlighttest.Output(3), "Data", []string{"layer_binding_id"}, []any{int32(3)}, nil,
		},
		"pooling": {
			enlighttest.Pooling2d(enlighttest.Pooling2dParams{
				PoolType:  schema.PoolingAlgorithmAverage,
				PoolWidth: 3, PoolHeight: 2,
				StrideX: 1, StrideY: 1,
				OutputShapeRounding: schema.OutputShapeRoundingCeiling,
				PaddingMethod:       schema.PaddingMethodExclude,
				DataLayout:          schema.DataLayoutNHWC,
			}),
			"Pool",
			[]string{"pool_type", "padding", "kernel", "stride", "output_shape_rounding", "padding_method", "data_layout"},
			[]any{"Average", "0, 0, 0, 0", "3, 2", "1, 1", "Ceiling", "Exclude", "NHWC"},
			nil,
		},
		"reshape": {
			enlighttest.Reshape([]uint32{1, 10}), "Shape", []string{"target_shape"}, []any{"1, 10"}, nil,
		},
		"reshape to nothing": {
			enlighttest.Reshape(nil), "Shape", []string{"target_shape"}, []any{""}, nil,
		},
		"softmax": {
			enlighttest.Softmax(0.25), "Activation", []string{"beta"}, []any{float32(0.25)}, nil,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			n := enlighttest.Network{Layers: []enlighttest.Layer{{
				Base: &enlighttest.Base{Index: 0, Name: "layer"},
				Body: tc.body,
			}}}
			node := openNetwork(t, n).Graphs()[0].Nodes()[0]

			assert.Equal(t, tc.category, node.Category())
			names := make([]string, 0, len(node.Attributes()))
			for _, a := range node.Attributes() {
				names = append(names, a.Name())
				assert.True(t, a.Visible())
			}
			assert.Equal(t, tc.names, nilIfNoStrings(names))
			assert.Equal(t, tc.values, nilIfNoValues(attributeValues(node)))

			var inputs []string
			for _, p := range node.Inputs() {
				inputs = append(inputs, p.Name())
				require.Len(t, p.Arguments(), 1)
				arg := p.Arguments()[0]
				require.NotNil(t, arg.Initializer())
				assert.Equal(t, "", arg.Initializer().State())
				assert.Same(t, arg.Type(), arg.Initializer().Type())
			}
			assert.Equal(t, tc.inputs, inputs)
		})
	}
}

func TestNode_Inputs_TensorValue(t *testing.T) {
	n := enlighttest.Network{Layers: []enlighttest.Layer{{
		Base: &enlighttest.Base{Index: 0},
		Body: enlighttest.FullyConnected(false, false, &enlighttest.ConstTensor{
			Info: enlighttest.TensorInfo{
				DataType:   schema.DataTypeQuantisedAsymm8,
				Dimensions: []uint32{2, 2},
				Quantized:  true,
				Scales:     []float32{0.5},
			},
			Data: []byte{1, 2, 3, 0xff},
		}, &enlighttest.ConstTensor{
			Info: enlighttest.TensorInfo{DataType: schema.DataTypeSigned32, Dimensions: []uint32{2}},
		}),
	}}}
	node := openNetwork(t, n).Graphs()[0].Nodes()[0]

	// The biases have no data, but a present tensor is still an input.
	require.Len(t, node.Inputs(), 2)

	weights := node.Inputs()[0].Arguments()[0]
	assert.Equal(t, "", weights.ID())
	assert.Equal(t, "QuantisedAsymm8[2,2]", weights.Type().String())
	assert.Equal(t, "[\n    0.5\n]", weights.Quantization())
	assert.Equal(t, []any{[]any{int8(1), int8(2)}, []any{int8(3), int8(-1)}}, weights.Initializer().Value())

	biases := node.Inputs()[1].Arguments()[0]
	assert.Equal(t, "Tensor data is empty.", biases.Initializer().State())
	assert.Nil(t, biases.Initializer().Value())
}

const ruleMetadata = `[
  {
    "name": "Convolution2dLayer",
    "schema": {
      "category": "Custom",
      "bindings": [ { "name": "missing_binding", "src": "nothing" } ],
      "attributes": [
        { "name": "layout_raw", "src": "dataLayout" },
        { "name": "layout_unknown_enum", "src": "dataLayout", "src_type": "Nope" },
        { "name": "missing", "src": "nope" },
        { "name": "missing_enum", "src": "nope", "src_type": "DataLayout" },
        { "name": "joined_missing", "src": ["strideX", "nope"] },
        { "name": "no_such_name", "src": "padLeft", "src_type": "DataLayout" },
        { "name": "single_joined", "src": ["strideY"] }
      ]
    }
  },
  {
    "name": "FullyConnectedLayer",
    "schema": {
      "attributes": [ { "name": "transpose", "src": "transposeWeightsMatrix" } ],
      "attributes_option_keys": [ { "src": "biasEnabled" }, { "src": "transposeWeightsMatrix" } ],
      "attributes_optional": [ { "name": "optional", "src": "biasEnabled" } ]
    }
  },
  {
    "name": "SoftmaxLayer",
    "schema": {
      "attributes_option_keys": [ { "src": "nope" } ],
      "attributes_optional": [ { "name": "optional", "src": "beta" } ]
    }
  },
  {
    "name": "ConcatLayer",
    "schema": {
      "attributes_optional": [ { "name": "optional", "src": "concatAxis" } ]
    }
  }
]`

func openWithMetadata(t *testing.T, metadata string, layers ...enlighttest.Layer) *Graph {
	t.Helper()
	h := &testHost{files: map[string][]byte{MetadataFile: []byte(metadata)}}
	data := enlighttest.Network{Layers: layers}.Build()
	model, err := newTestFactory().Open(context.Background(), "rules.enlight", data, h)
	require.NoError(t, err)
	return model.Graphs()[0]
}

func TestNode_AttributeRules(t *testing.T) {
	g := openWithMetadata(t, ruleMetadata, enlighttest.Layer{
		Base: &enlighttest.Base{Index: 0},
		Body: enlighttest.Convolution2d(enlighttest.Convolution2dParams{
			PadLeft: 7, StrideX: 2, StrideY: 5, DataLayout: schema.DataLayoutNCHW,
		}, nil, nil),
	})
	node := g.Nodes()[0]

	assert.Equal(t, "Custom", node.Category())
	assert.Equal(t, []any{
		"undefined",
		int64(1),
		int64(1),
		"undefined",
		"undefined",
		"2, undefined",
		uint32(7),
		"5",
	}, attributeValues(node))
	assert.Empty(t, node.Inputs())
}

func TestNode_OptionalAttributes(t *testing.T) {
	testCases := []struct {
		bias, transpose bool
		expected        []any
	}{
		{false, false, []any{false}},
		{true, false, []any{false}},
		{false, true, []any{true}},
		{true, true, []any{true, true}},
	}
	for _, tc := range testCases {
		g := openWithMetadata(t, ruleMetadata, enlighttest.Layer{
			Base: &enlighttest.Base{Index: 0},
			Body: enlighttest.FullyConnected(tc.bias, tc.transpose, nil, nil),
		})
		assert.Equal(t, tc.expected, attributeValues(g.Nodes()[0]), "bias=%v transpose=%v", tc.bias, tc.transpose)
	}
}

func TestNode_OptionalAttributes_NotApplied(t *testing.T) {
	g := openWithMetadata(t, ruleMetadata,
		// The option key names a missing field.
		enlighttest.Layer{Base: &enlighttest.Base{Index: 0}, Body: enlighttest.Softmax(1)},
		// No option keys at all.
		enlighttest.Layer{Base: &enlighttest.Base{Index: 1}, Body: enlighttest.Concat(1, 1, 1)},
		// No descriptor.
		enlighttest.Layer{Base: &enlighttest.Base{Index: 2}, Body: enlighttest.Unknown(schema.LayerFullyConnectedLayer)},
	)
	nodes := g.Nodes()
	require.Len(t, nodes, 3)
	assert.Empty(t, nodes[0].Attributes())
	assert.Empty(t, nodes[1].Attributes())
	assert.Equal(t, []any{"undefined"}, attributeValues(nodes[2]))
}

func nilIfNoStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func nilIfNoValues(v []any) []any {
	if len(v) == 0 {
		return nil
	}
	return v
}
