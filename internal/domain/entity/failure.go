package entity

import (
	"fmt"
	"time"
)

// ErrorKind classifies why a call to the Dell API failed.
type ErrorKind string

const (
	ErrorKindAuth    ErrorKind = "auth"
	ErrorKindHTTP    ErrorKind = "http"
	ErrorKindNetwork ErrorKind = "network"
	ErrorKindParse   ErrorKind = "parse"
)

// FetchError is returned by every Dell API operation that fails.
type FetchError struct {
	Kind       ErrorKind
	Tag        string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	target := e.URL
	if e.Tag != "" {
		target = fmt.Sprintf("tag '%s' at %s", e.Tag, e.URL)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error for %s (status %d): %v", e.Kind, target, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s error for %s: %v", e.Kind, target, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FailureRecord is one line of the failed tags log.
type FailureRecord struct {
	Tag      string    `json:"tag"`
	URL      string    `json:"url"`
	Kind     ErrorKind `json:"kind,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	FailedAt time.Time `json:"failed_at"`
}

// Line renders the record in the failure log format "<tag> - <url>".
func (f FailureRecord) Line() string {
	return fmt.Sprintf("%s - %s", f.Tag, f.URL)
}
