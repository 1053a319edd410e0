package content

import "errors"

var (
	ErrNotFound           = errors.New("content not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrDuplicateTAID      = errors.New("tai_d already exists")
	ErrNoFields           = errors.New("no fields to update")
)
