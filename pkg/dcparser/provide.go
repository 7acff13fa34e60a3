/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import "github.com/voedger/dclass/pkg/dclass"

// ParseString parses DC source and returns built schema document with
// parse result.
//
// Schema document is returned even if there are errors in source; such
// document contains placeholders instead of erroneous constructs and
// must not be used if result has errors.
func ParseString(fileName, content string) (*dclass.File, *Result) {
	return parseSourcesImpl(Source{Name: fileName, Content: content})
}

// ParseSources parses several DC sources, in order, into one schema
// document. Declarations of previous sources are visible to the next ones.
func ParseSources(sources ...Source) (*dclass.File, *Result) {
	return parseSourcesImpl(sources...)
}

// ParseFile reads DC file from fs and parses it.
//
// Returns error if file can not be read.
func ParseFile(fs IReadFS, fileName string) (*dclass.File, *Result, error) {
	return parseFilesImpl(fs, fileName)
}

// ParseFiles reads several DC files from fs and parses them, in order,
// into one schema document.
func ParseFiles(fs IReadFS, fileNames ...string) (*dclass.File, *Result, error) {
	return parseFilesImpl(fs, fileNames...)
}

// ParseValue compiles literal value against type of built schema document.
//
// Returns encoded bytes, even if result has errors.
func ParseValue(file *dclass.File, typ dclass.TypeID, value string) ([]byte, *Result) {
	return parseValueImpl(file, typ, value)
}
