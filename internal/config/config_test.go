// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		err    string
	}{
		{"default", func(*Config) {}, ""},
		{"upper case level", func(c *Config) { c.LogLevel = "DEBUG" }, ""},
		{"json format", func(c *Config) { c.LogFormat = "json" }, ""},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, `invalid log level: "trace" (must be one of debug, info, warn, error)`},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, `invalid log format: "xml" (must be console or json)`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.modify(&c)
			err := c.Validate()
			if tc.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.err)
			}
		})
	}
}
