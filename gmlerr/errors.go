package gmlerr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind represents the class of a GML reader error
type Kind int

const (
	// KindOpen is a source open or read failure
	KindOpen Kind = iota
	// KindParse is a tokenizer level failure (malformed XML)
	KindParse
	// KindSchema is a schema mismatch, such as a property missing
	// from a locked feature class
	KindSchema
	// KindStructure is a structural failure in a schema sidecar
	// document
	KindStructure
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindParse:
		return "parse"
	case KindSchema:
		return "schema"
	case KindStructure:
		return "structure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "open":
		*k = KindOpen
	case "parse":
		*k = KindParse
	case "schema":
		*k = KindSchema
	case "structure":
		*k = KindStructure
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error represents a GML reader error.
type Error struct {
	Kind    Kind
	Path    string
	Element string
	Line    int
	Column  int
	Message string
}

func (e Error) Error() string {
	s := fmt.Sprintf("gml %s error", e.Kind)
	if e.Path != "" {
		s += " path:" + e.Path
	}
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Line > 0 {
		s += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			s += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

func OpenFailed(path string, opts ...Option) *Error {
	e := &Error{Kind: KindOpen, Path: path}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func ParseFailed(opts ...Option) *Error {
	e := &Error{Kind: KindParse}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func PropertyMissing(element string, opts ...Option) *Error {
	e := &Error{Kind: KindSchema, Element: element, Message: "property missing from class schema"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NotClassList(path string, opts ...Option) *Error {
	e := &Error{Kind: KindStructure, Path: path, Message: "not a GMLFeatureClassList document"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func BadClassDefn(element string, opts ...Option) *Error {
	e := &Error{Kind: KindStructure, Element: element}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
