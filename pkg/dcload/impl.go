/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcload

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/untillpro/goutils/logger"
	"github.com/valyala/bytebufferpool"
	"gopkg.in/yaml.v3"

	"github.com/voedger/dclass/pkg/dclass"
	"github.com/voedger/dclass/pkg/dcparser"
)

// Load reads and parses DC files, in order, into one schema document.
//
// Returns error if some file can not be read or if there are errors in
// DC sources. In the last case parsed document and result with
// diagnostics are returned too. Documents with errors are never cached.
func (l *Loader) Load(names ...string) (*dclass.File, *dcparser.Result, error) {
	if len(names) == 0 {
		return nil, nil, ErrNoDCFiles
	}
	sources, digest, err := l.read(names)
	if err != nil {
		return nil, nil, err
	}

	l.metrics.Increase(loadTotal, l.name, 1)
	if doc, ok := l.docs.Get(digest); ok {
		l.metrics.Increase(loadCachedTotal, l.name, 1)
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("schema %v found in cache, hash 0x%08x", names, doc.file.Hash()))
		}
		return doc.file, doc.res, nil
	}

	start := time.Now()
	file, res := dcparser.ParseSources(sources...)
	l.metrics.Increase(parseSeconds, l.name, time.Since(start).Seconds())

	if res.Errors() > 0 {
		l.metrics.Increase(loadFailedTotal, l.name, 1)
		return file, res, fmt.Errorf("%w %v: %w", ErrInvalidSchema, names, res.Err())
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("schema %v parsed, hash 0x%08x, %d warning(s)", names, file.Hash(), res.Warnings()))
	}
	l.digests.Store(file, digest)
	l.docs.Add(digest, loaded{file: file, res: res})
	return file, res, nil
}

// LoadConfig loads DC files listed in configuration.
func (l *Loader) LoadConfig(cfg Config) (*dclass.File, *dcparser.Result, error) {
	return l.Load(cfg.General.DCFiles...)
}

// Reads files and returns them as sources with digest of names and contents.
func (l *Loader) read(names []string) ([]dcparser.Source, uint64, error) {
	h := xxhash.New()
	sources := make([]dcparser.Source, 0, len(names))
	for _, name := range names {
		content, err := l.fs.ReadFile(name)
		if err != nil {
			return nil, 0, err
		}
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
		_, _ = h.Write(content)
		_, _ = h.Write([]byte{0})
		sources = append(sources, dcparser.Source{Name: name, Content: string(content)})
	}
	return sources, h.Sum64(), nil
}

// CompileOverride compiles literal value for named type of document.
//
// Used to check default values supplied from outside of DC files.
// Values are cached only for documents returned by this loader, keyed by
// digest of document sources, type name and literal.
// Returns ErrTypeNotFound if document has no such type, ErrInvalidValue
// if literal can not be compiled.
func (l *Loader) CompileOverride(file *dclass.File, typeName, literal string) ([]byte, error) {
	t, ok := file.TypeByName(typeName)
	if !ok {
		return nil, errTypeNotFound(typeName)
	}
	l.metrics.Increase(overrideTotal, l.name, 1)

	var key *bytebufferpool.ByteBuffer
	if digest, ok := l.digests.Load(file); ok {
		key = bytebufferpool.Get()
		defer bytebufferpool.Put(key)
		key.B = binary.LittleEndian.AppendUint64(key.B, digest.(uint64))
		_, _ = key.WriteString(typeName)
		_ = key.WriteByte(0)
		_, _ = key.WriteString(literal)

		if value, ok := l.values.HasGet(nil, key.B); ok {
			l.metrics.Increase(overrideCachedTotal, l.name, 1)
			return value, nil
		}
	}

	value, res := dcparser.ParseValue(file, t.ID(), literal)
	if res.Errors() > 0 {
		l.metrics.Increase(overrideRejectedTotal, l.name, 1)
		return nil, fmt.Errorf("%w for «%s» %s: %w", ErrInvalidValue, typeName, literal, res.Err())
	}
	if key != nil {
		l.values.Set(key.B, value)
	}
	return value, nil
}

func readConfig(r io.Reader) (cfg Config, err error) {
	if err = yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return cfg, err
	}
	if len(cfg.General.DCFiles) == 0 {
		return cfg, ErrNoDCFiles
	}
	return cfg, nil
}
