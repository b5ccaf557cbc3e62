package domain

import (
	"errors"
	"fmt"
)

// Kind classifies query failures so every front-end (shell, HTTP) can map
// them uniformly instead of matching on message text.
type Kind int

const (
	KindUnknown    Kind = iota
	KindValidation      // malformed command, wrong arity, unknown reference at validation time
	KindDateFormat      // non-8-digit or non-calendar date string
	KindNotFound        // unknown hotel referenced at query time
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func NewValidation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NewDateFormat(format string, args ...any) error {
	return &Error{Kind: KindDateFormat, Msg: fmt.Sprintf(format, args...)}
}

func NewNotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindUnknown for errors that did not
// originate in this package.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// IsValidation reports whether err is a validation failure. Date-format
// errors are a subtype of validation.
func IsValidation(err error) bool {
	k := KindOf(err)
	return k == KindValidation || k == KindDateFormat
}
