package storage

import "errors"

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrTableMissing  = errors.New("gallery table does not exist")
	ErrCacheMiss     = errors.New("cache miss")
)

var (
	ErrUnknownDriver = errors.New("unknown sql driver")
	ErrUnknownCache  = errors.New("unknown cache kind")
)
