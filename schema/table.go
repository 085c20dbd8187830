// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema provides FlatBuffers accessors and builders for the
// EnlightNN model format described in enlight.fbs.
//
// The accessors follow the layout flatc produces for Go: every table wraps a
// flatbuffers.Table, scalar fields fall back to their schema default when
// absent, and vectors are read through a Length method plus an indexed
// accessor. Accessors do not validate the buffer; reading a corrupted buffer
// may panic with an index out of range.
package schema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// slot returns the vtable offset of the field with the given ordinal.
func slot(field int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT(4 + 2*field)
}

func fieldOffset(t *flatbuffers.Table, field int) flatbuffers.UOffsetT {
	return flatbuffers.UOffsetT(t.Offset(slot(field)))
}

// subTable returns the absolute position of the table referenced by field.
func subTable(t *flatbuffers.Table, field int) (flatbuffers.UOffsetT, bool) {
	o := fieldOffset(t, field)
	if o == 0 {
		return 0, false
	}
	return t.Indirect(o + t.Pos), true
}

func stringField(t *flatbuffers.Table, field int) string {
	o := fieldOffset(t, field)
	if o == 0 {
		return ""
	}
	return t.String(o + t.Pos)
}

func vectorLen(t *flatbuffers.Table, field int) int {
	o := fieldOffset(t, field)
	if o == 0 {
		return 0
	}
	return t.VectorLen(o)
}

// vectorElem returns the absolute position of the j-th element of a vector
// of elements of the given size, or false if the field is absent.
func vectorElem(t *flatbuffers.Table, field, j, size int) (flatbuffers.UOffsetT, bool) {
	o := fieldOffset(t, field)
	if o == 0 {
		return 0, false
	}
	return t.Vector(o) + flatbuffers.UOffsetT(j*size), true
}

// vectorTable returns the absolute position of the j-th table of a vector
// of tables.
func vectorTable(t *flatbuffers.Table, field, j int) (flatbuffers.UOffsetT, bool) {
	x, ok := vectorElem(t, field, j, flatbuffers.SizeUOffsetT)
	if !ok {
		return 0, false
	}
	return t.Indirect(x), true
}

// vectorBytes returns the raw little-endian bytes of a vector of scalars,
// without copying.
func vectorBytes(t *flatbuffers.Table, field, size int) []byte {
	o := fieldOffset(t, field)
	if o == 0 {
		return nil
	}
	start := t.Vector(o)
	n := t.VectorLen(o)
	return t.Bytes[start : start+flatbuffers.UOffsetT(n*size)]
}

func unionField(t *flatbuffers.Table, field int, obj *flatbuffers.Table) bool {
	o := fieldOffset(t, field)
	if o == 0 {
		return false
	}
	t.Union(obj, o)
	return true
}

func createUint32Vector(b *flatbuffers.Builder, v []uint32) flatbuffers.UOffsetT {
	b.StartVector(4, len(v), 4)
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependUint32(v[i])
	}
	return b.EndVector(len(v))
}

func createFloat32Vector(b *flatbuffers.Builder, v []float32) flatbuffers.UOffsetT {
	b.StartVector(4, len(v), 4)
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependFloat32(v[i])
	}
	return b.EndVector(len(v))
}

func createOffsetVector(b *flatbuffers.Builder, v []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(flatbuffers.SizeUOffsetT, len(v), flatbuffers.SizeUOffsetT)
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependUOffsetT(v[i])
	}
	return b.EndVector(len(v))
}

// CreateStringVector writes a vector of strings; the strings are created
// first, as nesting is not allowed while a vector is being built.
func CreateStringVector(b *flatbuffers.Builder, v []string) flatbuffers.UOffsetT {
	offsets := make([]flatbuffers.UOffsetT, len(v))
	for i, s := range v {
		offsets[i] = b.CreateString(s)
	}
	return createOffsetVector(b, offsets)
}
