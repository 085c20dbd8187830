// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enlight decodes EnlightNN model files (".enlight"), FlatBuffers
// binaries describing a quantized neural network, into a graph of nodes,
// parameters and constant tensors which can be displayed.
//
// How the attributes of each layer are extracted is described by a JSON
// metadata file, requested once to a Host.
package enlight

import (
	"context"
	"fmt"
	"path"
	"strings"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/nlpodyssey/enlight/internal/metrics"
	"github.com/nlpodyssey/enlight/schema"
	"github.com/rs/zerolog"
)

// Extension is the file extension of EnlightNN models.
const Extension = "enlight"

// A Host provides the resources a ModelFactory needs, and is told about
// decoding failures.
type Host interface {
	// Request returns the content of a named resource.
	Request(ctx context.Context, name string) ([]byte, error)
	// Exception reports an error. fatal is false for decoding errors.
	Exception(err error, fatal bool)
}

// ModelFactory recognizes and opens EnlightNN models.
type ModelFactory struct {
	log    zerolog.Logger
	loader *MetadataLoader
}

// Option configures a ModelFactory.
type Option func(*ModelFactory)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(f *ModelFactory) {
		f.log = log
	}
}

// WithMetadataLoader sets the loader of the operator metadata. The default
// is shared by the whole process.
func WithMetadataLoader(l *MetadataLoader) Option {
	return func(f *ModelFactory) {
		f.loader = l
	}
}

// NewModelFactory returns a ModelFactory configured with opts.
func NewModelFactory(opts ...Option) *ModelFactory {
	f := &ModelFactory{log: zerolog.Nop(), loader: defaultMetadataLoader}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Match reports whether the identifier has the "enlight" extension, in
// any case.
func (f *ModelFactory) Match(identifier string) bool {
	ext := identifier
	if i := strings.LastIndexByte(identifier, '.'); i >= 0 {
		ext = identifier[i+1:]
	}
	return strings.ToLower(ext) == Extension
}

// Open decodes buffer, the content of the model named identifier.
//
// A failure is reported to the host and returned as an *Error.
func (f *ModelFactory) Open(ctx context.Context, identifier string, buffer []byte, host Host) (*Model, error) {
	log := f.log.With().Str("model", path.Base(identifier)).Logger()

	network, err := parseNetwork(buffer)
	if err != nil {
		host.Exception(err, false)
		return nil, f.fail(log, metrics.PhaseParse, identifier, err)
	}

	metadata := f.loader.Open(ctx, host)

	model, err := buildModel(network, metadata)
	if err != nil {
		host.Exception(err, false)
		return nil, f.fail(log, metrics.PhaseConstruct, identifier, err)
	}

	metrics.ModelsOpened.Inc()
	nodes := len(model.Graphs()[0].Nodes())
	metrics.NodesDecoded.Observe(float64(nodes))
	log.Debug().Int("nodes", nodes).Int("operators", metadata.Len()).Msg("model decoded")
	return model, nil
}

func (f *ModelFactory) fail(log zerolog.Logger, phase, identifier string, err error) error {
	metrics.DecodeErrors.WithLabelValues(phase).Inc()
	e := &Error{Identifier: identifier, Err: err}
	log.Error().Err(err).Str("phase", phase).Msg("failed to decode model")
	return e
}

// parseNetwork reads the root table of buffer. Out-of-range reads of a
// corrupted buffer are turned into errors.
func parseNetwork(buffer []byte) (network *schema.Network, err error) {
	if len(buffer) < 2*flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("buffer too small (%d bytes)", len(buffer))
	}
	if root := flatbuffers.GetUOffsetT(buffer); int(root) >= len(buffer) {
		return nil, fmt.Errorf("invalid root table offset %d", root)
	}
	defer func() {
		if r := recover(); r != nil {
			network, err = nil, fmt.Errorf("invalid network: %v", r)
		}
	}()
	network = schema.GetRootAsNetwork(buffer, 0)
	network.LayersLength()
	network.Netinfo(nil)
	return network, nil
}

func buildModel(network *schema.Network, metadata *Metadata) (model *Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			model, err = nil, fmt.Errorf("invalid layer data: %v", r)
		}
	}()
	return newModel(network, metadata), nil
}
