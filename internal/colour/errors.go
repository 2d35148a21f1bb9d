package colour

import "errors"

var (
	// ErrInvalidColorFormat is returned when a hex colour string is malformed.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidPaletteArity is returned when a palette has no colours.
	ErrInvalidPaletteArity = errors.New("invalid palette arity")
)
