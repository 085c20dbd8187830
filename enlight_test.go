// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nlpodyssey/enlight/enlighttest"
	"github.com/nlpodyssey/enlight/internal/metrics"
	"github.com/nlpodyssey/enlight/schema"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelFactory_Match(t *testing.T) {
	f := NewModelFactory()
	testCases := map[string]bool{
		"model.enlight":      true,
		"X.ENLIGHT":          true,
		"dir.v2/m.Enlight":   true,
		"enlight":            true,
		"model.enlight.json": false,
		"model.tflite":       false,
		"model.":             false,
		"":                   false,
	}
	for identifier, expected := range testCases {
		assert.Equal(t, expected, f.Match(identifier), identifier)
	}
}

func TestModelFactory_Open(t *testing.T) {
	h := newTestHost(t)
	opened := testutil.ToFloat64(metrics.ModelsOpened)

	model, err := newTestFactory().Open(context.Background(), "model.enlight", smallNetwork().Build(), h)
	require.NoError(t, err)

	assert.Equal(t, "EnlightNN", model.Format())
	require.Len(t, model.Graphs(), 1)
	assert.Len(t, model.Graphs()[0].Nodes(), 3)
	assert.Equal(t, "small", model.Name())
	assert.Empty(t, h.exceptions)
	assert.Equal(t, opened+1, testutil.ToFloat64(metrics.ModelsOpened))
}

func TestModelFactory_Open_Logs(t *testing.T) {
	var buf bytes.Buffer
	f := NewModelFactory(
		WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
		WithMetadataLoader(NewMetadataLoader(zerolog.Nop())),
	)

	_, err := f.Open(context.Background(), "dir/model.enlight", smallNetwork().Build(), newTestHost(t))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"model":"model.enlight"`)
	assert.Contains(t, buf.String(), `"nodes":3`)

	buf.Reset()
	_, err = f.Open(context.Background(), "dir/bad.enlight", []byte{1}, newTestHost(t))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"phase":"parse"`)
}

func TestModelFactory_Open_ParseError(t *testing.T) {
	testCases := map[string]struct {
		buffer []byte
		prefix string
	}{
		"empty":             {nil, "buffer too small (0 bytes)"},
		"too small":         {[]byte{1, 2, 3}, "buffer too small (3 bytes)"},
		"root out of range": {[]byte{0xff, 0, 0, 0, 0, 0, 0, 0}, "invalid root table offset 255"},
		// The root table points its vtable far outside the buffer.
		"corrupted vtable": {[]byte{4, 0, 0, 0, 0x9c, 0xff, 0xff, 0xff}, "invalid network: "},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			h := newTestHost(t)
			failures := testutil.ToFloat64(metrics.DecodeErrors.WithLabelValues(metrics.PhaseParse))

			model, err := newTestFactory().Open(context.Background(), "bad.enlight", tc.buffer, h)
			assert.Nil(t, model)
			require.Error(t, err)

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, "bad.enlight", e.Identifier)
			assert.True(t, strings.HasPrefix(err.Error(), tc.prefix), err.Error())
			assert.Regexp(t, `[^.] in 'bad\.enlight'\.$`, err.Error())

			require.Len(t, h.exceptions, 1)
			assert.Equal(t, e.Err, h.exceptions[0])
			assert.Equal(t, 0, h.requestCount(), "metadata is not requested")
			assert.Equal(t, failures+1, testutil.ToFloat64(metrics.DecodeErrors.WithLabelValues(metrics.PhaseParse)))
		})
	}
}

func TestModelFactory_Open_MetadataUnavailable(t *testing.T) {
	h := newTestHost(t)
	h.err = errors.New("offline")

	model, err := newTestFactory().Open(context.Background(), "model.enlight", smallNetwork().Build(), h)
	require.NoError(t, err)

	nodes := model.Graphs()[0].Nodes()
	require.Len(t, nodes, 3)
	for _, n := range nodes {
		assert.Empty(t, n.Attributes())
		assert.Empty(t, n.Category())
	}
	assert.Empty(t, h.exceptions)
}

func TestNewModelFactory_Defaults(t *testing.T) {
	f := NewModelFactory()
	assert.Same(t, defaultMetadataLoader, f.loader)
}

// smallNetwork is input -> convolution -> output.
func smallNetwork() enlighttest.Network {
	float := &enlighttest.TensorInfo{DataType: schema.DataTypeFloat32, Dimensions: []uint32{1, 2}}
	return enlighttest.Network{
		Layers: []enlighttest.Layer{
			{
				Base: &enlighttest.Base{Index: 0, Name: "input", Outputs: []enlighttest.Output{{Info: float}}},
				Body: enlighttest.Input(7),
			},
			{
				Base: &enlighttest.Base{
					Index:   1,
					Name:    "conv",
					Inputs:  []enlighttest.Connection{{Layer: 0, Slot: 0}},
					Outputs: []enlighttest.Output{{Info: float}},
				},
				Body: enlighttest.Convolution2d(
					enlighttest.Convolution2dParams{StrideX: 1, StrideY: 1, BiasEnabled: true, DataLayout: schema.DataLayoutNHWC},
					&enlighttest.ConstTensor{
						Info: enlighttest.TensorInfo{DataType: schema.DataTypeFloat32, Dimensions: []uint32{2}},
						Data: float32Bytes(1, 2),
					},
					nil,
				),
			},
			{
				Base: &enlighttest.Base{Index: 2, Name: "output", Inputs: []enlighttest.Connection{{Layer: 1, Slot: 0}}},
				Body: enlighttest.Output(9),
			},
		},
		InputIDs:  []uint32{0},
		OutputIDs: []uint32{2},
		Info:      &enlighttest.NetInfo{Model: "small"},
	}
}
