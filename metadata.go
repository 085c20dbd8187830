// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nlpodyssey/enlight/internal/metrics"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// MetadataFile is the name of the resource requested to the Host.
const MetadataFile = "enlight-metadata.json"

// Metadata maps operator names to the schema describing how their
// attributes and extra inputs are read from the binary records.
type Metadata struct {
	schemas map[string]*OperatorSchema
}

// OperatorSchema is the declarative description of one operator, as found
// in the metadata JSON.
type OperatorSchema struct {
	// Category is a display grouping, such as "Layer" or "Activation".
	Category string `json:"category"`
	// Bindings are read from the layer record and displayed as is.
	Bindings []Binding `json:"bindings"`
	// Attributes are read from the layer descriptor.
	Attributes []AttributeRule `json:"attributes"`
	// AttributesOptionKeys name the descriptor fields which must all be
	// truthy for AttributesOptional to be applied.
	AttributesOptionKeys []AttributeRule `json:"attributes_option_keys"`
	// AttributesOptional are read from the layer descriptor, conditionally.
	AttributesOptional []AttributeRule `json:"attributes_optional"`
	// Inputs are extra arguments read from fields of the layer record.
	Inputs []InputRule `json:"inputs"`

	attributeMapOnce sync.Once
	attributeMap     map[string]*AttributeRule
}

// Binding copies a field of the layer record to an attribute.
type Binding struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Src  string `json:"src"`
}

// InputRule turns a field of the layer record into an extra input.
type InputRule struct {
	Name string `json:"name"`
	Src  string `json:"src"`
}

// RuleKind tells how an AttributeRule reads its value.
type RuleKind uint8

const (
	// FieldRule reads one field; repeated fields are joined with ", ".
	FieldRule RuleKind = iota
	// EnumRule reads one enum field and renders it by name.
	EnumRule
	// JoinedRule reads several fields and joins them with ", ".
	JoinedRule
)

// AttributeRule describes one attribute extracted from a descriptor.
//
// In JSON, "src" is either a field name or a list of field names (a
// JoinedRule); "src_type" names the enum of the field (an EnumRule).
type AttributeRule struct {
	Name   string
	Type   string
	Kind   RuleKind
	Fields []string
	// Enum is the enum name of an EnumRule.
	Enum string
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (r *AttributeRule) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name    string          `json:"name"`
		Type    string          `json:"type"`
		Src     json.RawMessage `json:"src"`
		SrcType string          `json:"src_type"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = AttributeRule{Name: raw.Name, Type: raw.Type}

	var src string
	var srcList []string
	if err := json.Unmarshal(raw.Src, &src); err == nil {
		r.Fields = []string{src}
	} else if err := json.Unmarshal(raw.Src, &srcList); err == nil {
		r.Fields = srcList
	} else {
		return fmt.Errorf("attribute %q: src must be a string or a list of strings", raw.Name)
	}

	switch {
	case raw.SrcType != "":
		if len(r.Fields) != 1 {
			return fmt.Errorf("attribute %q: an enum attribute must have exactly one src", raw.Name)
		}
		r.Kind = EnumRule
		r.Enum = raw.SrcType
	case len(srcList) > 0:
		r.Kind = JoinedRule
	default:
		r.Kind = FieldRule
	}
	return nil
}

// ParseMetadata decodes the metadata JSON: a list of objects, each with a
// "name" and a "schema". Items lacking either are ignored.
func ParseMetadata(data []byte) (*Metadata, error) {
	var items []struct {
		Name   string          `json:"name"`
		Schema *OperatorSchema `json:"schema"`
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to JSON-decode metadata: %w", err)
	}
	m := &Metadata{schemas: make(map[string]*OperatorSchema, len(items))}
	for _, item := range items {
		if item.Name != "" && item.Schema != nil {
			m.schemas[item.Name] = item.Schema
		}
	}
	return m, nil
}

// Schema returns the schema of an operator, or nil if it is unknown.
func (m *Metadata) Schema(operator string) *OperatorSchema {
	return m.schemas[operator]
}

// Len returns the number of operators described.
func (m *Metadata) Len() int {
	return len(m.schemas)
}

// AttributeSchema returns the rule of the named attribute of an operator,
// or nil if either is unknown.
func (m *Metadata) AttributeSchema(operator, name string) *AttributeRule {
	s := m.Schema(operator)
	if s == nil {
		return nil
	}
	s.attributeMapOnce.Do(func() {
		s.attributeMap = make(map[string]*AttributeRule, len(s.Attributes))
		for i := range s.Attributes {
			s.attributeMap[s.Attributes[i].Name] = &s.Attributes[i]
		}
	})
	return s.attributeMap[name]
}

// A MetadataLoader loads the Metadata once and hands out the same value on
// every later call.
type MetadataLoader struct {
	log   zerolog.Logger
	group singleflight.Group

	mu       sync.Mutex
	metadata *Metadata
}

// NewMetadataLoader returns a loader that reports fallbacks on log.
func NewMetadataLoader(log zerolog.Logger) *MetadataLoader {
	return &MetadataLoader{log: log}
}

var defaultMetadataLoader = NewMetadataLoader(zerolog.Nop())

// OpenMetadata opens the Metadata with the process-wide loader.
func OpenMetadata(ctx context.Context, host Host) *Metadata {
	return defaultMetadataLoader.Open(ctx, host)
}

// Open returns the Metadata, requesting MetadataFile to the host the first
// time. Concurrent first calls share one request.
//
// Open never fails: if the request or the decoding fails, empty Metadata is
// returned and cached. A failure caused by the cancellation of ctx is not
// cached, so that a later call can try again.
func (l *MetadataLoader) Open(ctx context.Context, host Host) *Metadata {
	if m := l.cached(); m != nil {
		return m
	}
	v, _, _ := l.group.Do(MetadataFile, func() (any, error) {
		if m := l.cached(); m != nil {
			return m, nil
		}
		m, err := l.load(ctx, host)
		if err != nil {
			metrics.MetadataLoads.WithLabelValues(metrics.ResultFallback).Inc()
			l.log.Warn().Err(err).Str("file", MetadataFile).Msg("using empty operator metadata")
			if ctx.Err() != nil {
				return m, nil
			}
		} else {
			metrics.MetadataLoads.WithLabelValues(metrics.ResultLoaded).Inc()
			l.log.Debug().Int("operators", m.Len()).Msg("operator metadata loaded")
		}
		l.mu.Lock()
		l.metadata = m
		l.mu.Unlock()
		return m, nil
	})
	return v.(*Metadata)
}

func (l *MetadataLoader) cached() *Metadata {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.metadata
}

// load always returns usable Metadata, empty when err is not nil.
func (l *MetadataLoader) load(ctx context.Context, host Host) (*Metadata, error) {
	empty := &Metadata{schemas: map[string]*OperatorSchema{}}
	data, err := host.Request(ctx, MetadataFile)
	if err != nil {
		return empty, fmt.Errorf("failed to request %s: %w", MetadataFile, err)
	}
	m, err := ParseMetadata(data)
	if err != nil {
		return empty, err
	}
	return m, nil
}
