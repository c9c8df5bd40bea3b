package ringlist

import "errors"

var (
	ErrEmptyList       = errors.New("ringlist: list is empty")
	ErrIndexOutOfRange = errors.New("ringlist: index out of range")
)
