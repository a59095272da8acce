package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrProjectNotFound = errors.New("project not found")

// ErrStoreFailure is the failure channel for the collection store. The
// original system modeled storage as always succeeding; the store still wraps
// backend and codec errors in this sentinel so callers have a defined kind to
// match on.
var ErrStoreFailure = errors.New("collection store failure")
