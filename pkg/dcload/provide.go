/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcload

import (
	"io"

	"github.com/VictoriaMetrics/fastcache"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/voedger/dclass/pkg/dcparser"
	imetrics "github.com/voedger/dclass/pkg/metrics"
)

// New returns loader which reads DC files from fs.
func New(fs dcparser.IReadFS, opts ...Option) *Loader {
	o := options{
		cacheSize:      DefaultCacheSize,
		valueCacheSize: DefaultValueCacheSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = imetrics.Provide()
	}

	l := &Loader{
		fs:      fs,
		name:    o.name,
		values:  fastcache.New(o.valueCacheSize),
		metrics: o.metrics,
	}
	docs, err := lru.NewWithEvict[uint64, loaded](o.cacheSize, func(_ uint64, doc loaded) {
		l.digests.Delete(doc.file)
	})
	if err != nil {
		panic(err)
	}
	l.docs = docs
	return l
}

// Sets the count of parsed documents kept in cache. Default is DefaultCacheSize.
func WithCacheSize(size int) Option {
	return func(o *options) { o.cacheSize = size }
}

// Sets the maximum bytes of compiled values kept in cache. Default is DefaultValueCacheSize.
func WithValueCacheSize(maxBytes int) Option {
	return func(o *options) { o.valueCacheSize = maxBytes }
}

// Sets metrics to count loads and cache hits, and loader name to label them.
func WithMetrics(metrics imetrics.IMetrics, name string) Option {
	return func(o *options) {
		o.metrics = metrics
		o.name = name
	}
}

// ReadConfig reads YAML daemon configuration.
//
// Returns ErrNoDCFiles if configuration lists no DC files.
func ReadConfig(r io.Reader) (Config, error) {
	return readConfig(r)
}
