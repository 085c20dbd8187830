// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import "fmt"

// checkedMul multiplies a and b and checks for overflow.
func checkedMul(a, b uint64) (uint64, error) {
	c := a * b
	if a > 1 && b > 1 && c/a != b {
		return c, fmt.Errorf("multiplication overflow: %d * %d", a, b)
	}
	return c, nil
}

// byteSize returns the number of bytes of a tensor of the given shape and
// element size. Negative dimensions are an error.
func byteSize(shape []int, elemSize int) (uint64, error) {
	n := uint64(elemSize)
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("negative dimension %d", d)
		}
		var err error
		if n, err = checkedMul(n, uint64(d)); err != nil {
			return 0, err
		}
	}
	return n, nil
}
