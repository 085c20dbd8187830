// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nlpodyssey/enlight/schema"
)

// undefined is the value of an attribute read from a missing field.
const undefined = "undefined"

// An Attribute is a named, displayable property of a Node.
type Attribute struct {
	name  string
	typ   string
	value any
}

// The Name of the attribute.
func (a *Attribute) Name() string {
	return a.name
}

// Type is the type declared by the metadata, possibly empty.
func (a *Attribute) Type() string {
	return a.typ
}

// Value is either a scalar read from the model or a string built by
// joining several values with ", ".
func (a *Attribute) Value() any {
	return a.value
}

// Visible is always true.
func (a *Attribute) Visible() bool {
	return true
}

// enumNames maps the enum names usable as "src_type" to a function
// returning the name of a value.
var enumNames = map[string]func(int64) (string, bool){
	"DataType":            names(schema.EnumNamesDataType),
	"DataLayout":          names(schema.EnumNamesDataLayout),
	"ActivationFunction":  names(schema.EnumNamesActivationFunction),
	"PoolingAlgorithm":    names(schema.EnumNamesPoolingAlgorithm),
	"OutputShapeRounding": names(schema.EnumNamesOutputShapeRounding),
	"PaddingMethod":       names(schema.EnumNamesPaddingMethod),
	"Layer":               names(schema.EnumNamesLayer),
}

func names[E ~int8 | ~uint8](m map[E]string) func(int64) (string, bool) {
	return func(v int64) (string, bool) {
		e := E(v)
		if int64(e) != v {
			return "", false
		}
		s, ok := m[e]
		return s, ok
	}
}

// plain converts the schema enum values to their underlying integer, so
// that they are displayed as numbers unless an enum rule names them.
func plain(v any) any {
	switch e := v.(type) {
	case schema.DataType:
		return int64(e)
	case schema.DataLayout:
		return int64(e)
	case schema.ActivationFunction:
		return int64(e)
	case schema.PoolingAlgorithm:
		return int64(e)
	case schema.OutputShapeRounding:
		return int64(e)
	case schema.PaddingMethod:
		return int64(e)
	case schema.Layer:
		return int64(e)
	}
	return v
}

func integer(v any) (int64, bool) {
	switch n := plain(v).(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

func render(v any) string {
	switch x := plain(v).(type) {
	case string:
		return x
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}

func join(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = render(v)
	}
	return strings.Join(parts, ", ")
}

// value returns the display value of a named field: scalars as they are,
// repeated fields joined with ", ", missing fields as "undefined".
func (r record) value(name string) any {
	f, ok := r.field(name)
	if !ok {
		return undefined
	}
	switch f.kind {
	case repeatedField:
		return join(f.values)
	case tensorField:
		if f.tensor == nil {
			return nil
		}
		return newConstTensor(f.tensor)
	}
	return plain(f.scalar)
}

// truthy reports whether a field is set to a non-zero value. Missing
// fields are false.
func (r record) truthy(name string) bool {
	f, ok := r.field(name)
	if !ok {
		return false
	}
	switch f.kind {
	case repeatedField:
		return len(f.values) > 0
	case tensorField:
		return f.tensor != nil
	}
	switch x := plain(f.scalar).(type) {
	case bool:
		return x
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case string:
		return x != ""
	}
	n, _ := integer(f.scalar)
	return n != 0
}

// evaluate computes the value of an attribute rule over a descriptor.
func (r record) evaluate(rule *AttributeRule) any {
	switch rule.Kind {
	case EnumRule:
		v := r.value(rule.Fields[0])
		if v == undefined {
			return v
		}
		lookup, ok := enumNames[rule.Enum]
		if !ok {
			return v
		}
		n, ok := integer(v)
		if !ok {
			return v
		}
		if s, ok := lookup(n); ok {
			return s
		}
		return v
	case JoinedRule:
		values := make([]any, len(rule.Fields))
		for i, name := range rule.Fields {
			values[i] = r.value(name)
		}
		return join(values)
	}
	if len(rule.Fields) == 0 {
		return undefined
	}
	return r.value(rule.Fields[0])
}

// optionsEnabled reports whether every option key of the schema is truthy
// in the descriptor. It is false without keys or without a descriptor.
func optionsEnabled(s *OperatorSchema, descriptor record) bool {
	if len(s.AttributesOptionKeys) == 0 || descriptor == nil {
		return false
	}
	for i := range s.AttributesOptionKeys {
		for _, name := range s.AttributesOptionKeys[i].Fields {
			if !descriptor.truthy(name) {
				return false
			}
		}
	}
	return true
}

// attributes extracts the attributes of a layer, in order: bindings,
// attributes, then the optional attributes when enabled.
func attributes(s *OperatorSchema, layer, descriptor record) []*Attribute {
	var attrs []*Attribute
	for _, b := range s.Bindings {
		attrs = append(attrs, &Attribute{name: b.Name, typ: b.Type, value: layer.value(b.Src)})
	}
	for i := range s.Attributes {
		rule := &s.Attributes[i]
		attrs = append(attrs, &Attribute{name: rule.Name, typ: rule.Type, value: descriptor.evaluate(rule)})
	}
	if optionsEnabled(s, descriptor) {
		for i := range s.AttributesOptional {
			rule := &s.AttributesOptional[i]
			attrs = append(attrs, &Attribute{name: rule.Name, typ: rule.Type, value: descriptor.evaluate(rule)})
		}
	}
	return attrs
}
