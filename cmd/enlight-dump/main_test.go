// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/nlpodyssey/enlight/enlighttest"
	"github.com/nlpodyssey/enlight/internal/config"
	"github.com/nlpodyssey/enlight/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModel(t *testing.T) string {
	t.Helper()
	var weights []byte
	for _, v := range []float32{1, 2} {
		weights = binary.LittleEndian.AppendUint32(weights, math.Float32bits(v))
	}
	info := &enlighttest.TensorInfo{DataType: schema.DataTypeFloat32, Dimensions: []uint32{1, 2}}
	n := enlighttest.Network{
		Layers: []enlighttest.Layer{
			{
				Base: &enlighttest.Base{Index: 0, Name: "in", Outputs: []enlighttest.Output{{Info: info}}},
				Body: enlighttest.Input(0),
			},
			{
				Base: &enlighttest.Base{
					Index:   1,
					Name:    "fc",
					Inputs:  []enlighttest.Connection{{Layer: 0, Slot: 0}},
					Outputs: []enlighttest.Output{{Info: info, Stats: &[4]float32{0, 1, 0.5, 0.25}}},
				},
				Body: enlighttest.FullyConnected(false, false, &enlighttest.ConstTensor{
					Info: enlighttest.TensorInfo{DataType: schema.DataTypeFloat32, Dimensions: []uint32{2}},
					Data: weights,
				}, nil),
				Fused: []enlighttest.Layer{{Body: enlighttest.Activation(schema.ActivationFunctionReLu, 0, 0)}},
			},
		},
		InputIDs:  []uint32{0},
		OutputIDs: []uint32{1},
		Info:      &enlighttest.NetInfo{Model: "tiny", Type: "classification", ClassLabels: []string{"a", "b"}, NumClass: 2},
	}
	path := filepath.Join(t.TempDir(), "tiny.enlight")
	require.NoError(t, os.WriteFile(path, n.Build(), 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeModel(t)
	cfg := config.Default()
	cfg.LogLevel = "error"
	cfg.Tensors = true

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, path, &out))

	expected := `format: EnlightNN
model: tiny
type: classification
classes: 2
  #0 : a
  #1 : b
inputs: [0]
outputs: [1]
Input "in" [Data]
  layer_binding_id = 0
  -> 0: Float32[1,2]
FullyConnected "fc" [Layer]
  transpose_weights_matrix = false
  <- 0: Float32[1,2]
  <- weights: Float32[2]
       [
           1,
           2
       ]
  -> 1: Float32[1,2]
       min=0.00 , max=1.00, mean=0.50, std=0.25
  + Activation "" [Activation]
  +   function = ReLu
  +   a = 0
  +   b = 0
`
	assert.Equal(t, expected, out.String())
}

func TestRun_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "error"

	err := run(context.Background(), cfg, filepath.Join(t.TempDir(), "missing.enlight"), &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to read model")

	bad := filepath.Join(t.TempDir(), "bad.enlight")
	require.NoError(t, os.WriteFile(bad, []byte{1, 2}, 0o644))
	err = run(context.Background(), cfg, bad, &bytes.Buffer{})
	assert.EqualError(t, err, "buffer too small (2 bytes) in '"+bad+"'.")
}

func TestRun_MetadataDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enlight-metadata.json"), []byte(`[
		{"name": "InputLayer", "schema": {"category": "Custom"}}
	]`), 0o644))

	cfg := config.Default()
	cfg.LogLevel = "error"
	cfg.MetadataDir = dir

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, writeModel(t), &out))
	assert.Contains(t, out.String(), `Input "in" [Custom]`)
}

func TestCommand_Validation(t *testing.T) {
	testCases := map[string][]string{
		"no arguments":   {"enlight-dump"},
		"bad log level":  {"enlight-dump", "--log-level", "loud", "m.enlight"},
		"bad log format": {"enlight-dump", "--log-format", "xml", "m.enlight"},
	}
	for name, args := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, command().Run(context.Background(), args))
		})
	}
}
