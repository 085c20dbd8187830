// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"context"
	"fmt"
	"io/fs"
	"sync"
	"testing"

	"github.com/nlpodyssey/enlight/host"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testHost serves files from memory and records requests and exceptions.
type testHost struct {
	mu         sync.Mutex
	files      map[string][]byte
	err        error
	requests   int
	exceptions []error
}

func newTestHost(t *testing.T) *testHost {
	t.Helper()
	data, err := host.Embedded(zerolog.Nop()).Request(context.Background(), MetadataFile)
	require.NoError(t, err)
	return &testHost{files: map[string][]byte{MetadataFile: data}}
}

func (h *testHost) Request(ctx context.Context, name string) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	data, ok := h.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
	}
	return data, nil
}

func (h *testHost) Exception(err error, _ bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exceptions = append(h.exceptions, err)
}

func (h *testHost) requestCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.requests
}

// newTestFactory returns a factory with its own metadata loader.
func newTestFactory() *ModelFactory {
	return NewModelFactory(WithMetadataLoader(NewMetadataLoader(zerolog.Nop())))
}
