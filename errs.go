package lineconf

import (
	"errors"

	"github.com/signadot/lineconf/ir"
	"github.com/signadot/lineconf/ir/ypath"
	"github.com/signadot/lineconf/token"
)

var (
	ErrParse          = token.ErrParse
	ErrInvalidPath    = ypath.ErrInvalidPath
	ErrInvalidTree    = ir.ErrInvalidTree
	ErrAmbiguousMatch = errors.New("ambiguous match")
	ErrEmptyMatch     = errors.New("empty match")
	ErrInvalidValue   = errors.New("invalid value")
	ErrPatchTest      = errors.New("patch test failed")
	ErrUnsupportedOp  = errors.New("unsupported patch operation")
)
