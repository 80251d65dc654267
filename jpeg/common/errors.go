package common

import "errors"

// Common errors
var (
	ErrFiletype                 = errors.New("not a JPEG stream: first marker is not SOI")
	ErrStream                   = errors.New("unexpected end of stream")
	ErrStructural               = errors.New("marker prefix byte is not 0xFF")
	ErrMissingJFIFHeader        = errors.New("missing JFIF header")
	ErrInvalidJFIFHeader        = errors.New("invalid JFIF header")
	ErrMissingFrameHeader       = errors.New("missing frame header")
	ErrInvalidFrameHeader       = errors.New("invalid frame header")
	ErrMissingScanHeader        = errors.New("missing scan header")
	ErrInvalidScanHeader        = errors.New("invalid scan header")
	ErrInvalidQuantizationTable = errors.New("invalid quantization table")
	ErrInvalidHuffmanTable      = errors.New("invalid Huffman table")
	ErrInvalidDNLSegment        = errors.New("invalid DNL segment")
	ErrSyntax                   = errors.New("invalid JPEG data")
	ErrUnsupported              = errors.New("unsupported JPEG feature")
	ErrUnimplemented            = errors.New("unimplemented JPEG feature")
)
