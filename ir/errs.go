package ir

import (
	"errors"
)

var (
	ErrInvalidTree = errors.New("invalid tree")
)
