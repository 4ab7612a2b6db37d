package idgen

import "github.com/google/uuid"

// NewFunc produces session identifiers. Tests override it for determinism.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier as a string.
func New() string { return NewFunc() }
