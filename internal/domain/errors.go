package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrStorageUnavailable indicates the durable client store could not be
	// opened or written; callers degrade to in-memory state.
	ErrStorageUnavailable = errors.New("durable storage unavailable")
	// ErrSyncFailed wraps a user-awaited write that did not reach the server.
	ErrSyncFailed = errors.New("sync failed")
)
