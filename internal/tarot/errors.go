package tarot

import "errors"

var (
	ErrInvalidTheme  = errors.New("invalid theme")
	ErrInvalidSpread = errors.New("invalid spread type")
	ErrCardNotFound  = errors.New("card not found in catalog")
)
