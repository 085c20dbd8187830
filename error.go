// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enlight

import "strings"

// Error is returned by ModelFactory.Open when a model cannot be decoded.
type Error struct {
	// Identifier of the model, usually its file name.
	Identifier string
	Err        error
}

// Error returns the message of the cause, with one trailing period
// removed, followed by " in '<identifier>'.".
func (e *Error) Error() string {
	msg := strings.TrimSuffix(e.Err.Error(), ".")
	return msg + " in '" + e.Identifier + "'."
}

func (e *Error) Unwrap() error {
	return e.Err
}
