package interfaces

import "errors"

// ErrAlreadyExists is returned by repositories when a create hits an existing key.
var ErrAlreadyExists = errors.New("already exists")
