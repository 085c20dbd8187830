// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics holds the Prometheus collectors updated while decoding
// models. They are registered on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Phases of a decode, used as the "phase" label of DecodeErrors.
const (
	PhaseParse     = "parse"
	PhaseConstruct = "construct"
)

// Results of a metadata load, used as the "result" label of MetadataLoads.
const (
	ResultLoaded   = "loaded"
	ResultFallback = "fallback"
)

var (
	ModelsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "enlight_models_opened_total",
		Help: "The total number of models decoded successfully",
	})

	DecodeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "enlight_decode_errors_total",
		Help: "The total number of models that failed to decode",
	}, []string{"phase"})

	MetadataLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "enlight_metadata_loads_total",
		Help: "The total number of operator metadata fetches",
	}, []string{"result"})

	NodesDecoded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "enlight_graph_nodes",
		Help:    "Distribution of the number of nodes per decoded graph",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)
