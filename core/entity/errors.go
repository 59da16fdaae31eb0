package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is the sentinel wrapped by every *ParseError.
var ErrParse = errors.New("parse error")

// ParseError reports a record that is missing a required field or carries a
// field of the wrong JSON type.
type ParseError struct {
	// Entity is the kind of record that failed (trainer, pokemon, move...).
	Entity string
	// Field is the path of the offending field relative to the outermost record.
	Field string
	// Reason describes the failure.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("invalid %s: field %q: %s", e.Entity, e.Field, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func newParseError(entity, field, reason string) *ParseError {
	return &ParseError{Entity: entity, Field: field, Reason: reason}
}

// within prefixes the field path of a nested *ParseError.
func within(err error, prefix string) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	field := prefix
	switch {
	case strings.HasPrefix(pe.Field, "["):
		field = prefix + pe.Field
	case pe.Field != "":
		field = prefix + "." + pe.Field
	}
	return &ParseError{Entity: pe.Entity, Field: field, Reason: pe.Reason}
}
