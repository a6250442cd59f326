package digest

import "errors"

var (
	// ErrUnknownAlgorithm is returned for an unsupported or unavailable algorithm.
	ErrUnknownAlgorithm = errors.New("unsupported digest algorithm")
	// ErrFileNotFound is returned when a path does not name an existing regular file.
	ErrFileNotFound = errors.New("file not found")
	// ErrRead is returned when opening or streaming a file fails.
	ErrRead = errors.New("read failed")
)
