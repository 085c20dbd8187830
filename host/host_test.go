// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/nlpodyssey/enlight"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Request(t *testing.T) {
	h := New(fstest.MapFS{"a.json": {Data: []byte("[]")}}, zerolog.Nop())

	data, err := h.Request(context.Background(), "a.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), data)

	_, err = h.Request(context.Background(), "b.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFS_Request_Canceled(t *testing.T) {
	h := New(fstest.MapFS{"a.json": {Data: []byte("[]")}}, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Request(ctx, "a.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFS_Exception(t *testing.T) {
	var buf bytes.Buffer
	h := New(fstest.MapFS{}, zerolog.New(&buf))

	h.Exception(errors.New("boom"), false)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)

	buf.Reset()
	h.Exception(errors.New("boom"), true)
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestEmbedded(t *testing.T) {
	data, err := Embedded(zerolog.Nop()).Request(context.Background(), enlight.MetadataFile)
	require.NoError(t, err)

	m, err := enlight.ParseMetadata(data)
	require.NoError(t, err)
	assert.Equal(t, 12, m.Len())

	for _, op := range []string{
		"ActivationLayer", "AdditionLayer", "BatchNormalizationLayer", "ConcatLayer",
		"Convolution2dLayer", "DepthwiseConvolution2dLayer", "FullyConnectedLayer",
		"InputLayer", "OutputLayer", "Pooling2dLayer", "ReshapeLayer", "SoftmaxLayer",
	} {
		assert.NotNil(t, m.Schema(op), op)
	}

	padding := m.AttributeSchema("Convolution2dLayer", "padding")
	require.NotNil(t, padding)
	assert.Equal(t, enlight.JoinedRule, padding.Kind)
	assert.Equal(t, []string{"padTop", "padRight", "padBottom", "padLeft"}, padding.Fields)

	function := m.AttributeSchema("ActivationLayer", "function")
	require.NotNil(t, function)
	assert.Equal(t, enlight.EnumRule, function.Kind)
	assert.Equal(t, "ActivationFunction", function.Enum)
}
