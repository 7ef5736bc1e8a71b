// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: logger/logger.go
// Summary: File-backed logging setup. The UI owns the terminal, so logs
// never go to stdout/stderr while it runs.

package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Setup routes the standard logger to path. An empty path discards all
// output. Returns a closer for the underlying file (nil when discarded).
func Setup(path string) (io.Closer, error) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if path == "" {
		logrus.SetOutput(io.Discard)
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	logrus.SetOutput(f)
	return f, nil
}
