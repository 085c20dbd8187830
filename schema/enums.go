// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import "strconv"

type DataType int8

const (
	DataTypeFloat16         DataType = 0
	DataTypeFloat32         DataType = 1
	DataTypeQuantisedAsymm8 DataType = 2
	DataTypeSigned32        DataType = 3
	DataTypeBoolean         DataType = 4
	DataTypeQuantisedSymm16 DataType = 5
	DataTypeSigned64        DataType = 6
	DataTypeSigned8         DataType = 7
)

var EnumNamesDataType = map[DataType]string{
	DataTypeFloat16:         "Float16",
	DataTypeFloat32:         "Float32",
	DataTypeQuantisedAsymm8: "QuantisedAsymm8",
	DataTypeSigned32:        "Signed32",
	DataTypeBoolean:         "Boolean",
	DataTypeQuantisedSymm16: "QuantisedSymm16",
	DataTypeSigned64:        "Signed64",
	DataTypeSigned8:         "Signed8",
}

func (v DataType) String() string {
	if s, ok := EnumNamesDataType[v]; ok {
		return s
	}
	return "DataType(" + strconv.FormatInt(int64(v), 10) + ")"
}

type DataLayout int8

const (
	DataLayoutNHWC DataLayout = 0
	DataLayoutNCHW DataLayout = 1
)

var EnumNamesDataLayout = map[DataLayout]string{
	DataLayoutNHWC: "NHWC",
	DataLayoutNCHW: "NCHW",
}

func (v DataLayout) String() string {
	if s, ok := EnumNamesDataLayout[v]; ok {
		return s
	}
	return "DataLayout(" + strconv.FormatInt(int64(v), 10) + ")"
}

type ActivationFunction int8

const (
	ActivationFunctionSigmoid     ActivationFunction = 0
	ActivationFunctionTanH        ActivationFunction = 1
	ActivationFunctionLinear      ActivationFunction = 2
	ActivationFunctionReLu        ActivationFunction = 3
	ActivationFunctionBoundedReLu ActivationFunction = 4
	ActivationFunctionSoftReLu    ActivationFunction = 5
	ActivationFunctionLeakyReLu   ActivationFunction = 6
	ActivationFunctionAbs         ActivationFunction = 7
	ActivationFunctionSqrt        ActivationFunction = 8
	ActivationFunctionSquare      ActivationFunction = 9
)

var EnumNamesActivationFunction = map[ActivationFunction]string{
	ActivationFunctionSigmoid:     "Sigmoid",
	ActivationFunctionTanH:        "TanH",
	ActivationFunctionLinear:      "Linear",
	ActivationFunctionReLu:        "ReLu",
	ActivationFunctionBoundedReLu: "BoundedReLu",
	ActivationFunctionSoftReLu:    "SoftReLu",
	ActivationFunctionLeakyReLu:   "LeakyReLu",
	ActivationFunctionAbs:         "Abs",
	ActivationFunctionSqrt:        "Sqrt",
	ActivationFunctionSquare:      "Square",
}

func (v ActivationFunction) String() string {
	if s, ok := EnumNamesActivationFunction[v]; ok {
		return s
	}
	return "ActivationFunction(" + strconv.FormatInt(int64(v), 10) + ")"
}

type PoolingAlgorithm int8

const (
	PoolingAlgorithmMax     PoolingAlgorithm = 0
	PoolingAlgorithmAverage PoolingAlgorithm = 1
	PoolingAlgorithmL2      PoolingAlgorithm = 2
)

var EnumNamesPoolingAlgorithm = map[PoolingAlgorithm]string{
	PoolingAlgorithmMax:     "Max",
	PoolingAlgorithmAverage: "Average",
	PoolingAlgorithmL2:      "L2",
}

func (v PoolingAlgorithm) String() string {
	if s, ok := EnumNamesPoolingAlgorithm[v]; ok {
		return s
	}
	return "PoolingAlgorithm(" + strconv.FormatInt(int64(v), 10) + ")"
}

type OutputShapeRounding int8

const (
	OutputShapeRoundingFloor   OutputShapeRounding = 0
	OutputShapeRoundingCeiling OutputShapeRounding = 1
)

var EnumNamesOutputShapeRounding = map[OutputShapeRounding]string{
	OutputShapeRoundingFloor:   "Floor",
	OutputShapeRoundingCeiling: "Ceiling",
}

func (v OutputShapeRounding) String() string {
	if s, ok := EnumNamesOutputShapeRounding[v]; ok {
		return s
	}
	return "OutputShapeRounding(" + strconv.FormatInt(int64(v), 10) + ")"
}

type PaddingMethod int8

const (
	PaddingMethodIgnoreValue PaddingMethod = 0
	PaddingMethodExclude     PaddingMethod = 1
)

var EnumNamesPaddingMethod = map[PaddingMethod]string{
	PaddingMethodIgnoreValue: "IgnoreValue",
	PaddingMethodExclude:     "Exclude",
}

func (v PaddingMethod) String() string {
	if s, ok := EnumNamesPaddingMethod[v]; ok {
		return s
	}
	return "PaddingMethod(" + strconv.FormatInt(int64(v), 10) + ")"
}

// ConstTensorData is the tag of the union holding the storage vector of a
// ConstTensor.
type ConstTensorData byte

const (
	ConstTensorDataNONE      ConstTensorData = 0
	ConstTensorDataByteData  ConstTensorData = 1
	ConstTensorDataShortData ConstTensorData = 2
	ConstTensorDataIntData   ConstTensorData = 3
	ConstTensorDataFloatData ConstTensorData = 4
)

var EnumNamesConstTensorData = map[ConstTensorData]string{
	ConstTensorDataNONE:      "NONE",
	ConstTensorDataByteData:  "ByteData",
	ConstTensorDataShortData: "ShortData",
	ConstTensorDataIntData:   "IntData",
	ConstTensorDataFloatData: "FloatData",
}

func (v ConstTensorData) String() string {
	if s, ok := EnumNamesConstTensorData[v]; ok {
		return s
	}
	return "ConstTensorData(" + strconv.FormatInt(int64(v), 10) + ")"
}

// Layer is the tag of the union holding the concrete record of an AnyLayer.
type Layer byte

const (
	LayerNONE                        Layer = 0
	LayerActivationLayer             Layer = 1
	LayerAdditionLayer               Layer = 2
	LayerBatchNormalizationLayer     Layer = 3
	LayerConcatLayer                 Layer = 4
	LayerConvolution2dLayer          Layer = 5
	LayerDepthwiseConvolution2dLayer Layer = 6
	LayerFullyConnectedLayer         Layer = 7
	LayerInputLayer                  Layer = 8
	LayerOutputLayer                 Layer = 9
	LayerPooling2dLayer              Layer = 10
	LayerReshapeLayer                Layer = 11
	LayerSoftmaxLayer                Layer = 12
)

var EnumNamesLayer = map[Layer]string{
	LayerNONE:                        "NONE",
	LayerActivationLayer:             "ActivationLayer",
	LayerAdditionLayer:               "AdditionLayer",
	LayerBatchNormalizationLayer:     "BatchNormalizationLayer",
	LayerConcatLayer:                 "ConcatLayer",
	LayerConvolution2dLayer:          "Convolution2dLayer",
	LayerDepthwiseConvolution2dLayer: "DepthwiseConvolution2dLayer",
	LayerFullyConnectedLayer:         "FullyConnectedLayer",
	LayerInputLayer:                  "InputLayer",
	LayerOutputLayer:                 "OutputLayer",
	LayerPooling2dLayer:              "Pooling2dLayer",
	LayerReshapeLayer:                "ReshapeLayer",
	LayerSoftmaxLayer:                "SoftmaxLayer",
}

func (v Layer) String() string {
	if s, ok := EnumNamesLayer[v]; ok {
		return s
	}
	return "Layer(" + strconv.FormatInt(int64(v), 10) + ")"
}
