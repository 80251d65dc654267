package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrUnsupportedFormat is returned when a stream does not match the
	// codec's encoding process
	ErrUnsupportedFormat = errors.New("unsupported format")
)
