/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"
)

// Diagnostic is a single error or warning reported while parsing.
//
// Err wraps one of the package sentinel errors, so callers may test
// the category of diagnostic with errors.Is.
type Diagnostic struct {
	Severity Severity
	Pos      lexer.Position
	Err      error
}

// Returns the human readable message of diagnostic, without category.
func (d Diagnostic) Message() string {
	if d.Err == nil {
		return ""
	}
	msg := d.Err.Error()
	if category := errors.Unwrap(d.Err); category != nil {
		return strings.TrimPrefix(msg, category.Error()+": ")
	}
	return msg
}

// Returns the line of source where diagnostic was reported.
func (d Diagnostic) Line() int { return d.Pos.Line }

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %v: %s", posString(d.Pos), d.Severity, d.Message())
}

func posString(pos lexer.Position) string {
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Column)
}

// Result accumulates diagnostics of single parse. Result is owned by
// the caller of parse.
type Result struct {
	diags []Diagnostic
}

func newResult() *Result {
	return &Result{}
}

func (r *Result) report(sev Severity, pos lexer.Position, err error) {
	d := Diagnostic{Severity: sev, Pos: pos, Err: err}
	r.diags = append(r.diags, d)
	if sev == Severity_warning {
		logger.Warning(d.String())
	} else {
		logger.Error(d.String())
	}
}

func (r *Result) errorAt(pos lexer.Position, err error) {
	r.report(Severity_error, pos, err)
}

func (r *Result) warningAt(pos lexer.Position, err error) {
	r.report(Severity_warning, pos, err)
}

// Returns all diagnostics sorted by file, then by position in file.
// Files are ordered as they were parsed.
func (r *Result) Diagnostics() []Diagnostic {
	files := make(map[string]int)
	for _, d := range r.diags {
		if _, ok := files[d.Pos.Filename]; !ok {
			files[d.Pos.Filename] = len(files)
		}
	}
	dd := slices.Clone(r.diags)
	slices.SortStableFunc(dd, func(a, b Diagnostic) bool {
		if fa, fb := files[a.Pos.Filename], files[b.Pos.Filename]; fa != fb {
			return fa < fb
		}
		if a.Pos.Line != b.Pos.Line {
			return a.Pos.Line < b.Pos.Line
		}
		return a.Pos.Column < b.Pos.Column
	})
	return dd
}

// Returns the count of errors. Schema document with errors must not be used.
func (r *Result) Errors() int {
	cnt := 0
	for _, d := range r.diags {
		if d.Severity == Severity_error {
			cnt++
		}
	}
	return cnt
}

func (r *Result) Warnings() int {
	return len(r.diags) - r.Errors()
}

// Returns all errors joined, or nil if there are no errors. Warnings are
// not included.
func (r *Result) Err() error {
	errs := make([]error, 0)
	for _, d := range r.Diagnostics() {
		if d.Severity == Severity_error {
			errs = append(errs, fmt.Errorf("%s: %w", posString(d.Pos), d.Err))
		}
	}
	return errors.Join(errs...)
}
