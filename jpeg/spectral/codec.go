package spectral

import (
	"bytes"
	"fmt"

	"github.com/cocosip/go-dicom/pkg/dicom/transfer"

	"github.com/cocosip/go-jpeg-codec/codec"
)

// The retired DICOM Full Progression transfer syntax; the transfer
// package does not export it.
const progressiveUID = "1.2.840.10008.1.2.4.55"

// Codec adapts the spectral decoder to the codec registry for one
// encoding process.
type Codec struct {
	encoding Encoding
	name     string
	uid      string
}

// NewBaselineCodec creates the codec for Baseline DCT streams.
func NewBaselineCodec() *Codec {
	return &Codec{
		encoding: EncodingBaseline,
		name:     "jpeg-baseline",
		uid:      transfer.JPEGBaseline8Bit.UID().UID(),
	}
}

// NewExtendedCodec creates the codec for Extended Sequential DCT streams.
func NewExtendedCodec() *Codec {
	return &Codec{
		encoding: EncodingExtended,
		name:     "jpeg-extended",
		uid:      transfer.JPEGExtended12Bit.UID().UID(),
	}
}

// NewProgressiveCodec creates the codec for Progressive DCT streams.
func NewProgressiveCodec() *Codec {
	return &Codec{
		encoding: EncodingProgressive,
		name:     "jpeg-progressive",
		uid:      progressiveUID,
	}
}

// Decode decodes a complete JPEG stream into spectral coefficients.
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	frame, spectra, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if frame.Encoding != c.encoding {
		return nil, fmt.Errorf("%w: stream is %s, codec handles %s", codec.ErrUnsupportedFormat, frame.Encoding, c.encoding)
	}

	return &codec.DecodeResult{
		Width:        frame.Width,
		Height:       frame.Height,
		Components:   len(frame.Components),
		Precision:    frame.Precision,
		Encoding:     frame.Encoding.String(),
		Coefficients: spectra.Coefficients(),
		GroupStride:  spectra.GroupStride(),
		BlockStride:  spectra.BlockStride(),
	}, nil
}

// UID returns the DICOM Transfer Syntax UID for this encoding process.
func (c *Codec) UID() string {
	return c.uid
}

// Name returns a human-readable name for this codec.
func (c *Codec) Name() string {
	return c.name
}

// init automatically registers the three supported processes.
func init() {
	codec.Register(NewBaselineCodec())
	codec.Register(NewExtendedCodec())
	codec.Register(NewProgressiveCodec())
}
