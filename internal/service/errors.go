package service

import "errors"

var (
	ErrNotFound     = errors.New("item not found")
	ErrEmptyText    = errors.New("text must not be empty")
	ErrInvalidInput = errors.New("invalid input")
)
