package keyedstore

import "fmt"

// ParseError reports a stored value that is not valid JSON for the requested
// type. Load still returns the caller's default alongside it.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse stored %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StoreError is a backend failure that was not recovered locally.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
