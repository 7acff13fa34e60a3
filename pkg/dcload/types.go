/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcload

import (
	"sync"

	"github.com/VictoriaMetrics/fastcache"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/voedger/dclass/pkg/dclass"
	"github.com/voedger/dclass/pkg/dcparser"
	imetrics "github.com/voedger/dclass/pkg/metrics"
)

// Config is the daemon configuration. Only DC files list is used.
type Config struct {
	General General `yaml:"general"`
}

type General struct {
	DCFiles []string `yaml:"dc_files"`
}

// Loader reads DC files and parses them into schema documents.
//
// Parsed documents are cached by digest of file names and contents,
// compiled override values are cached by the same digest, type name and
// literal. Loader is safe for concurrent use.
type Loader struct {
	fs      dcparser.IReadFS
	name    string
	docs    *lru.Cache[uint64, loaded]
	digests sync.Map // *dclass.File -> uint64 digest of cached documents
	values  *fastcache.Cache
	metrics imetrics.IMetrics
}

// Successfully parsed document with its warnings
type loaded struct {
	file *dclass.File
	res  *dcparser.Result
}

type Option func(*options)

type options struct {
	cacheSize      int
	valueCacheSize int
	name           string
	metrics        imetrics.IMetrics
}
