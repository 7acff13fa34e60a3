/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"os"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/dclass/pkg/dclass"
	"github.com/voedger/dclass/pkg/dcload"
	"github.com/voedger/dclass/pkg/dcparser"
)

// Returns DC files from args, or from config file if args are empty
func dcFiles(params *dccParams, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	name := params.config
	if name == "" {
		name = dcload.DefaultConfigFile
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("no DC files given and config can not be read: %w", err)
	}
	defer f.Close()

	cfg, err := dcload.ReadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("DC files from %s: %v", name, cfg.General.DCFiles))
	}
	return cfg.General.DCFiles, nil
}

func load(params *dccParams, args []string) (*dclass.File, *dcparser.Result, error) {
	files, err := dcFiles(params, args)
	if err != nil {
		return nil, nil, err
	}
	return params.loader.Load(files...)
}
