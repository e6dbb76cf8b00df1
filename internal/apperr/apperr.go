// Package apperr defines the single application-level error type shared by the
// orchestration core, the worker and the store. Callers match on kinds with
// errors.Is against the exported sentinels.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	KindUnknown Kind = iota
	KindSessionExpired
	KindSerialization
	KindNetwork
	KindStatus
	KindLanguageMissing
	KindFilenameFormat
	KindLangIDParse
	KindStorage
	KindChannelClosed
	KindUnknownWidget
	KindNoNavigableWidget
	KindEmptyPopupStack
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindSessionExpired:    "session expired",
	KindSerialization:     "serialization",
	KindNetwork:           "network",
	KindStatus:            "status",
	KindLanguageMissing:   "language missing",
	KindFilenameFormat:    "filename format",
	KindLangIDParse:       "language id parse",
	KindStorage:           "storage",
	KindChannelClosed:     "channel closed",
	KindUnknownWidget:     "unknown widget",
	KindNoNavigableWidget: "no navigable widget",
	KindEmptyPopupStack:   "empty popup stack",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinels usable with errors.Is.
var (
	ErrSessionExpired    = &Error{Kind: KindSessionExpired}
	ErrSerialization     = &Error{Kind: KindSerialization}
	ErrNetwork           = &Error{Kind: KindNetwork}
	ErrStatus            = &Error{Kind: KindStatus}
	ErrLanguageMissing   = &Error{Kind: KindLanguageMissing}
	ErrFilenameFormat    = &Error{Kind: KindFilenameFormat}
	ErrLangIDParse       = &Error{Kind: KindLangIDParse}
	ErrStorage           = &Error{Kind: KindStorage}
	ErrChannelClosed     = &Error{Kind: KindChannelClosed}
	ErrUnknownWidget     = &Error{Kind: KindUnknownWidget}
	ErrNoNavigableWidget = &Error{Kind: KindNoNavigableWidget}
	ErrEmptyPopupStack   = &Error{Kind: KindEmptyPopupStack}
)

// Error is the application error. Detail carries the human readable context,
// Code is only set for KindStatus.
type Error struct {
	Kind   Kind
	Detail string
	Code   int
	Err    error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindSessionExpired:
		msg = "session has expired, update LEETCODE_SESSION and csrftoken in config.toml"
	case KindSerialization:
		msg = "deserialization/serialization failed"
	case KindNetwork:
		msg = "network request error"
	case KindStatus:
		msg = fmt.Sprintf("status %d", e.Code)
	case KindLanguageMissing:
		msg = "language does not exist for question"
	case KindFilenameFormat:
		msg = "filename format does not match"
	case KindLangIDParse:
		msg = "couldn't parse language id"
	default:
		msg = e.Kind.String()
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// New builds an error of the given kind.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap attaches a kind to an underlying error. A nil err yields nil.
func Wrap(kind Kind, err error, detail string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// Status reports a non-success status returned by a remote.
func Status(code int, contents string) *Error {
	return &Error{Kind: KindStatus, Code: code, Detail: contents}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
