// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package geojson

import (
	"errors"
	"fmt"
)

// Kind classifies document errors. Every load/compare failure carries exactly
// one Kind so callers can react without string matching.
type Kind int

const (
	// NotFound - the referenced file path does not exist.
	NotFound Kind = iota
	// UnsupportedFormat - the file extension is not recognized by the loader.
	UnsupportedFormat
	// MalformedInput - the content failed to parse as JSON.
	MalformedInput
	// InvalidSchema - the parsed content violates minimal structural
	// requirements (root must be an object declaring a "type").
	InvalidSchema
	// TypeMismatch - the two documents being compared declare different
	// top-level types.
	TypeMismatch
	// UnsupportedType - a document declares a type outside
	// {FeatureCollection, Feature}.
	UnsupportedType
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case UnsupportedFormat:
		return "unsupported format"
	case MalformedInput:
		return "malformed input"
	case InvalidSchema:
		return "invalid schema"
	case TypeMismatch:
		return "type mismatch"
	case UnsupportedType:
		return "unsupported type"
	}
	return "unknown"
}

// Error is a classified document error. Msg always identifies the offending
// path or value.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf constructs a classified error with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a geojson error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
