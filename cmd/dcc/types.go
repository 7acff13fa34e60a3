/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"io"
	"io/fs"
	"os"

	"github.com/voedger/dclass/pkg/dcload"
	imetrics "github.com/voedger/dclass/pkg/metrics"
)

type dccParams struct {
	out          io.Writer
	config       string
	printMetrics bool
	typeName     string
	loader       *dcload.Loader
	metrics      imetrics.IMetrics
}

// osFS reads files by OS paths, relative to working dir
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) { return os.Open(name) }

func (osFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }
