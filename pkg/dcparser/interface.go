/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import "io/fs"

type IReadFS interface {
	fs.ReadFileFS
}

// Source is a named DC source text. Name is used in diagnostics.
type Source struct {
	Name    string
	Content string
}

// Severity of diagnostic.
type Severity uint8

const (
	Severity_error Severity = iota
	Severity_warning
)

func (s Severity) String() string {
	if s == Severity_warning {
		return "warning"
	}
	return "error"
}
