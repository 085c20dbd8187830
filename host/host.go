// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host provides Host implementations reading resources from a
// file system.
package host

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

//go:embed enlight-metadata.json
var embedded embed.FS

// FS serves resources from a file system and logs the reported errors.
type FS struct {
	fsys fs.FS
	log  zerolog.Logger
}

// New returns a Host serving the files of fsys.
func New(fsys fs.FS, log zerolog.Logger) *FS {
	return &FS{fsys: fsys, log: log}
}

// Dir returns a Host serving the files of a directory.
func Dir(dir string, log zerolog.Logger) *FS {
	return New(os.DirFS(dir), log)
}

// Embedded returns a Host serving the operator metadata shipped with the
// package.
func Embedded(log zerolog.Logger) *FS {
	return New(embedded, log)
}

// Request reads the named file.
func (h *FS) Request(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(h.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", name, err)
	}
	return data, nil
}

// Exception logs err, at error level when fatal and at warn level
// otherwise.
func (h *FS) Exception(err error, fatal bool) {
	ev := h.log.Warn()
	if fatal {
		ev = h.log.Error()
	}
	ev.Err(err).Bool("fatal", fatal).Msg("model exception")
}
