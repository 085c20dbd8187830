// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nlpodyssey/enlight/enlighttest"
	"github.com/stretchr/testify/assert"
)

func TestModel_NetInfo(t *testing.T) {
	n := smallNetwork()
	n.Info = &enlighttest.NetInfo{
		Model:                    "mobilenet",
		Type:                     "classification",
		HasDetectionLayer:        true,
		NumClass:                 3,
		ClassLabels:              []string{"cat", "dog", "bird"},
		HasScore:                 true,
		MAP:                      0.5,
		Top5:                     0.75,
		Top1:                     0.25,
		EvaluationDataset:        "imagenet",
		IsFusedNormalization:     true,
		NormMean:                 []float32{0.5, 0.25},
		NormStd:                  []float32{2},
		Optimizations:            []string{"fuse", "fold"},
		IsTracked:                true,
		HasHistogram:             true,
		TrackDataset:             "calibration",
		NumImages:                100,
		IsQuantized:              true,
		QuantizationMethod:       "minmax",
		MStd8:                    8,
		MStd4:                    4,
		MStdRatio:                2,
		ClipMinMax:               true,
		IterWeightMeanCorrection: true,
		QuantizePostProcess:      true,
	}
	model := openNetwork(t, n)

	assert.Equal(t, NetInfo{
		ModelName:                "mobilenet",
		ModelType:                "classification",
		HasDetectionLayer:        true,
		NumClass:                 3,
		ClassLabels:              []string{"cat", "dog", "bird"},
		HasScore:                 true,
		MAP:                      0.5,
		Top5:                     0.75,
		Top1:                     0.25,
		EvaluationDataset:        "imagenet",
		IsFusedNormalization:     true,
		NormMean:                 []float32{0.5, 0.25},
		NormStd:                  []float32{2},
		Optimizations:            []string{"fuse", "fold"},
		IsTracked:                true,
		HasHistogram:             true,
		TrackDataset:             "calibration",
		NumImages:                100,
		IsQuantized:              true,
		QuantizationMethod:       "minmax",
		MStd8:                    8,
		MStd4:                    4,
		MStdRatio:                2,
		ClipMinMax:               true,
		IterWeightMeanCorrection: true,
		QuantizePostProcess:      true,
	}, model.NetInfo())
	assert.Equal(t, "mobilenet", model.Name())
	assert.Equal(t, "#0 : cat\n#1 : dog\n#2 : bird", model.ClassLabels())
}

func TestModel_WithoutNetInfo(t *testing.T) {
	n := smallNetwork()
	n.Info = nil
	model := openNetwork(t, n)

	assert.Equal(t, NetInfo{}, model.NetInfo())
	assert.Equal(t, "", model.Name())
	assert.Equal(t, "", model.ClassLabels())
	assert.Equal(t, "EnlightNN", model.Format())
}

func TestError(t *testing.T) {
	testCases := []struct {
		cause    string
		expected string
	}{
		{"bad header", "bad header in 'm.enlight'."},
		{"bad header.", "bad header in 'm.enlight'."},
		{"bad header..", "bad header. in 'm.enlight'."},
		{"", " in 'm.enlight'."},
	}
	for _, tc := range testCases {
		cause := errors.New(tc.cause)
		err := &Error{Identifier: "m.enlight", Err: cause}
		assert.EqualError(t, err, tc.expected)
		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), cause)
	}
}
