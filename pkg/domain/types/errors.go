package types

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for enumeration parsing. Any persistence layer rejects
// values outside the closed enumerations at write time with one of these.
var (
	ErrInvalidRole     = goerr.New("invalid role")
	ErrInvalidStatus   = goerr.New("invalid status")
	ErrInvalidType     = goerr.New("invalid type")
	ErrInvalidPriority = goerr.New("invalid priority")
)
