package roster

import "errors"

var (
	ErrDuplicateName = errors.New("employee name already registered")
	ErrNotFound      = errors.New("employee not found")
	ErrEmptyName     = errors.New("employee name must not be empty")
)
