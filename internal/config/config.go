// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"
)

// Config holds the settings of the enlight-dump command.
type Config struct {
	LogLevel  string
	LogFormat string
	// MetadataDir is the directory holding enlight-metadata.json.
	// When empty the embedded copy is used.
	MetadataDir string
	// Tensors enables printing the content of constant tensors.
	Tensors bool
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
	}
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q (must be one of debug, info, warn, error)", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %q (must be console or json)", c.LogFormat)
	}
	return nil
}
