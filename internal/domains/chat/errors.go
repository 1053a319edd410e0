package chat

import "errors"

var (
	ErrNotFound            = errors.New("file not found")
	ErrFileTooLarge        = errors.New("file exceeds maximum upload size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrAssistantFailure    = errors.New("assistant unavailable")
)
