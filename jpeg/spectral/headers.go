package spectral

import (
	"encoding/binary"
	"fmt"

	"github.com/cocosip/go-jpeg-codec/jpeg/common"
)

// Encoding identifies the entropy/DCT process declared by the frame header.
type Encoding int

const (
	EncodingBaseline Encoding = iota
	EncodingExtended
	EncodingProgressive
)

// String returns the process name.
func (e Encoding) String() string {
	switch e {
	case EncodingBaseline:
		return "baseline"
	case EncodingExtended:
		return "extended"
	case EncodingProgressive:
		return "progressive"
	}
	return "unknown"
}

// JFIFSegment holds the JFIF (APP0) metadata relevant to decoding.
type JFIFSegment struct {
	VersionMajor int
	VersionMinor int
	// DensityUnit is 0 (aspect ratio), 1 (dots/inch) or 2 (dots/cm).
	DensityUnit int
	DensityX    int
	DensityY    int
}

var jfifIdentifier = [5]byte{'J', 'F', 'I', 'F', 0x00}

// ParseJFIF parses an APP0 payload as a JFIF segment. Thumbnail bytes are
// ignored.
func ParseJFIF(payload []byte) (*JFIFSegment, error) {
	if len(payload) < 12 {
		return nil, fmt.Errorf("%w: payload of %d bytes", common.ErrInvalidJFIFHeader, len(payload))
	}
	if [5]byte(payload[:5]) != jfifIdentifier {
		return nil, fmt.Errorf("%w: bad identifier", common.ErrInvalidJFIFHeader)
	}

	major, minor := int(payload[5]), int(payload[6])
	if major != 1 || minor > 2 {
		return nil, fmt.Errorf("%w: version %d.%02d", common.ErrInvalidJFIFHeader, major, minor)
	}

	unit := int(payload[7])
	if unit > 2 {
		return nil, fmt.Errorf("%w: density unit %d", common.ErrUnsupported, unit)
	}

	return &JFIFSegment{
		VersionMajor: major,
		VersionMinor: minor,
		DensityUnit:  unit,
		DensityX:     int(binary.BigEndian.Uint16(payload[8:10])),
		DensityY:     int(binary.BigEndian.Uint16(payload[10:12])),
	}, nil
}

// ComponentSpec describes one frame component: sampling factors and the
// quantization table selector.
type ComponentSpec struct {
	// H and V are the horizontal and vertical sampling factors, 1..4.
	H, V int
	// Tq is the quantization table selector, 0..3.
	Tq int
}

// FrameHeader holds a parsed SOF segment. Height is the only mutable
// attribute: a DNL segment after the first scan may overwrite it, so
// consumers must not snapshot it before the first scan completes.
type FrameHeader struct {
	Encoding   Encoding
	Precision  int
	Width      int
	Height     int
	Components map[byte]ComponentSpec
}

// ParseFrameHeader parses an SOF payload. Only the Baseline, Extended
// Sequential and Progressive Huffman processes (SOF0..SOF2) are accepted;
// the remaining SOF markers are well-formed JPEG this decoder does not
// implement.
func ParseFrameHeader(marker byte, payload []byte) (*FrameHeader, error) {
	var encoding Encoding
	switch marker {
	case common.MarkerSOF0:
		encoding = EncodingBaseline
	case common.MarkerSOF1:
		encoding = EncodingExtended
	case common.MarkerSOF2:
		encoding = EncodingProgressive
	default:
		return nil, fmt.Errorf("%w: SOF marker 0x%02X", common.ErrUnsupported, marker)
	}

	if len(payload) < 6 {
		return nil, fmt.Errorf("%w: payload of %d bytes", common.ErrInvalidFrameHeader, len(payload))
	}

	precision := int(payload[0])
	switch {
	case precision == 8:
	case precision == 12 && encoding != EncodingBaseline:
	default:
		return nil, fmt.Errorf("%w: precision %d for %s", common.ErrInvalidFrameHeader, precision, encoding)
	}

	height := int(binary.BigEndian.Uint16(payload[1:3]))
	width := int(binary.BigEndian.Uint16(payload[3:5]))

	n := int(payload[5])
	if n < 1 {
		return nil, fmt.Errorf("%w: no components", common.ErrInvalidFrameHeader)
	}
	if encoding == EncodingProgressive && n > 4 {
		return nil, fmt.Errorf("%w: %d components in a progressive frame", common.ErrInvalidFrameHeader, n)
	}
	if len(payload) != 6+3*n {
		return nil, fmt.Errorf("%w: payload of %d bytes for %d components", common.ErrInvalidFrameHeader, len(payload), n)
	}

	components := make(map[byte]ComponentSpec, n)
	for i := 0; i < n; i++ {
		id := payload[6+3*i]
		sampling := payload[7+3*i]
		tq := int(payload[8+3*i])

		if _, dup := components[id]; dup {
			return nil, fmt.Errorf("%w: duplicate component id %d", common.ErrInvalidFrameHeader, id)
		}

		h, v := int(sampling>>4), int(sampling&0x0F)
		if h < 1 || h > 4 || v < 1 || v > 4 {
			return nil, fmt.Errorf("%w: sampling factors %dx%d", common.ErrInvalidFrameHeader, h, v)
		}
		if tq > 3 {
			return nil, fmt.Errorf("%w: quantization selector %d", common.ErrInvalidFrameHeader, tq)
		}

		components[id] = ComponentSpec{H: h, V: v, Tq: tq}
	}

	return &FrameHeader{
		Encoding:   encoding,
		Precision:  precision,
		Width:      width,
		Height:     height,
		Components: components,
	}, nil
}

// MaxSampling returns the maximum horizontal and vertical sampling factors
// across the frame components.
func (f *FrameHeader) MaxSampling() (maxH, maxV int) {
	maxH, maxV = 1, 1
	for _, c := range f.Components {
		if c.H > maxH {
			maxH = c.H
		}
		if c.V > maxV {
			maxV = c.V
		}
	}
	return maxH, maxV
}

// UpdateHeight overwrites the frame height from a DNL segment.
func (f *FrameHeader) UpdateHeight(height int) {
	f.Height = height
}

// ParseDNL parses a DNL payload: exactly one big-endian uint16 line count.
func ParseDNL(payload []byte) (int, error) {
	if len(payload) != 2 {
		return 0, fmt.Errorf("%w: payload of %d bytes", common.ErrInvalidDNLSegment, len(payload))
	}
	return int(binary.BigEndian.Uint16(payload)), nil
}

// ScanComponent selects one frame component and its entropy table slots
// for a scan.
type ScanComponent struct {
	ID byte
	// DC and AC are Huffman table selectors, 0..3.
	DC, AC int
}

// Band is the half-open range of spectral positions a scan carries.
type Band struct {
	Start, End int
}

// ScanHeader holds a parsed SOS segment.
type ScanHeader struct {
	Components []ScanComponent
	Band       Band
	// Exponent is the successive-approximation point transform (Al).
	Exponent int
}

// ParseScanHeader parses an SOS payload against the current frame.
func ParseScanHeader(payload []byte, frame *FrameHeader) (*ScanHeader, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: empty payload", common.ErrInvalidScanHeader)
	}

	ns := int(payload[0])
	if ns < 1 || ns > 4 {
		return nil, fmt.Errorf("%w: %d components", common.ErrInvalidScanHeader, ns)
	}
	if len(payload) != 1+2*ns+3 {
		return nil, fmt.Errorf("%w: payload of %d bytes for %d components", common.ErrInvalidScanHeader, len(payload), ns)
	}

	components := make([]ScanComponent, ns)
	for i := 0; i < ns; i++ {
		id := payload[1+2*i]
		selectors := payload[2+2*i]
		if _, ok := frame.Components[id]; !ok {
			return nil, fmt.Errorf("%w: component id %d not in frame", common.ErrInvalidScanHeader, id)
		}
		components[i] = ScanComponent{
			ID: id,
			DC: int(selectors >> 4),
			AC: int(selectors & 0x0F),
		}
	}

	ss := int(payload[1+2*ns])
	se := int(payload[2+2*ns])
	if ss > se || se > 63 {
		return nil, fmt.Errorf("%w: spectral selection %d..%d", common.ErrInvalidScanHeader, ss, se)
	}

	approximation := payload[3+2*ns]
	ah, al := int(approximation>>4), int(approximation&0x0F)
	if ah > 13 || al > 13 {
		return nil, fmt.Errorf("%w: successive approximation %d/%d", common.ErrInvalidScanHeader, ah, al)
	}

	return &ScanHeader{
		Components: components,
		Band:       Band{Start: ss, End: se + 1},
		Exponent:   al,
	}, nil
}
