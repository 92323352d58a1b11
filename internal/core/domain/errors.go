package domain

import "errors"

// ErrNotFound indicates the requested entity does not exist in storage.
var ErrNotFound = errors.New("domain: not found")
