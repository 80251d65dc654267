package spectral

import (
	"fmt"
	"io"

	"github.com/cocosip/go-jpeg-codec/jpeg/common"
)

// Decoder walks a JPEG stream marker by marker from SOI to EOI and
// accumulates the frame's spectral coefficients. The fields it exposes
// are populated as parsing proceeds, so a caller can inspect what was
// decoded before a failure.
type Decoder struct {
	reader  *common.Reader
	context *Context

	JFIF    *JFIFSegment
	Frame   *FrameHeader
	Spectra *Spectra
}

// NewDecoder creates a decoder over a JPEG byte stream.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		reader:  common.NewReader(r),
		context: NewContext(),
		Spectra: NewSpectra(),
	}
}

// Decode decodes a complete JPEG stream: SOI, JFIF, the ancillary
// segments and frame header, then every scan up to EOI. On success the
// Frame field carries the final height (after any DNL) and Spectra the
// decoded coefficients.
func Decode(r io.Reader) (*FrameHeader, *Spectra, error) {
	d := NewDecoder(r)
	if err := d.Decode(); err != nil {
		return nil, nil, err
	}
	return d.Frame, d.Spectra, nil
}

// Decode runs the marker state machine to completion.
func (d *Decoder) Decode() error {
	marker, err := d.reader.ReadNextMarker()
	if err != nil {
		return err
	}
	if marker != common.MarkerSOI {
		return fmt.Errorf("%w: 0x%02X", common.ErrFiletype, marker)
	}

	if marker, err = d.reader.ReadNextMarker(); err != nil {
		return err
	}
	if marker != common.MarkerAPP0 {
		return fmt.Errorf("%w: marker 0x%02X", common.ErrMissingJFIFHeader, marker)
	}
	payload, err := d.reader.ReadSegment()
	if err != nil {
		return err
	}
	if d.JFIF, err = ParseJFIF(payload); err != nil {
		return err
	}

	if marker, err = d.reader.ReadNextMarker(); err != nil {
		return err
	}
	if marker, err = d.context.Update(d.reader, marker); err != nil {
		return err
	}

	if !common.IsSOF(marker) {
		return fmt.Errorf("%w: marker 0x%02X", common.ErrMissingFrameHeader, marker)
	}
	if payload, err = d.reader.ReadSegment(); err != nil {
		return err
	}
	if d.Frame, err = ParseFrameHeader(marker, payload); err != nil {
		return err
	}

	firstScan := true
	if marker, err = d.reader.ReadNextMarker(); err != nil {
		return err
	}

	for marker != common.MarkerEOI {
		if marker, err = d.context.Update(d.reader, marker); err != nil {
			return err
		}
		if marker != common.MarkerSOS {
			return fmt.Errorf("%w: marker 0x%02X", common.ErrMissingScanHeader, marker)
		}

		if payload, err = d.reader.ReadSegment(); err != nil {
			return err
		}
		scan, err := ParseScanHeader(payload, d.Frame)
		if err != nil {
			return err
		}

		if marker, err = d.decodeEntropicSegment(scan); err != nil {
			return err
		}

		if d.context.RestartInterval > 0 {
			for d.context.Restart(marker) {
				if marker, err = d.decodeEntropicSegment(scan); err != nil {
					return err
				}
			}
		}

		if firstScan && marker == common.MarkerDNL {
			if payload, err = d.reader.ReadSegment(); err != nil {
				return err
			}
			height, err := ParseDNL(payload)
			if err != nil {
				return err
			}
			d.Frame.UpdateHeight(height)
			firstScan = false

			if marker, err = d.reader.ReadNextMarker(); err != nil {
				return err
			}
		}
	}

	return nil
}

// decodeEntropicSegment reads one entropy-coded segment, decodes it into
// the spectra and returns the marker that terminated it.
func (d *Decoder) decodeEntropicSegment(scan *ScanHeader) (byte, error) {
	payload, terminator, err := common.ReadEntropySegment(d.reader)
	if err != nil {
		return 0, err
	}
	if err := d.Spectra.DecodeScan(common.NewBitstream(payload), d.Frame, scan, d.context); err != nil {
		return 0, err
	}
	return terminator, nil
}
