package spectral

import (
	"errors"
	"testing"

	"github.com/cocosip/go-jpeg-codec/jpeg/common"
)

func TestParseJFIF(t *testing.T) {
	payload := []byte{'J', 'F', 'I', 'F', 0x00, 0x01, 0x02, 0x01, 0x00, 0x48, 0x00, 0x60, 0x00, 0x00}

	jfif, err := ParseJFIF(payload)
	if err != nil {
		t.Fatalf("ParseJFIF() error = %v", err)
	}
	if jfif.VersionMajor != 1 || jfif.VersionMinor != 2 {
		t.Errorf("version = %d.%d, want 1.2", jfif.VersionMajor, jfif.VersionMinor)
	}
	if jfif.DensityUnit != 1 {
		t.Errorf("density unit = %d, want 1", jfif.DensityUnit)
	}
	if jfif.DensityX != 72 || jfif.DensityY != 96 {
		t.Errorf("density = (%d, %d), want (72, 96)", jfif.DensityX, jfif.DensityY)
	}
}

func TestParseJFIFRejects(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		wantErr error
	}{
		{
			name:    "short payload",
			payload: []byte{'J', 'F', 'I', 'F', 0x00},
			wantErr: common.ErrInvalidJFIFHeader,
		},
		{
			name:    "bad identifier",
			payload: []byte{'J', 'F', 'X', 'X', 0x00, 0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x01},
			wantErr: common.ErrInvalidJFIFHeader,
		},
		{
			name:    "bad major version",
			payload: []byte{'J', 'F', 'I', 'F', 0x00, 0x02, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01},
			wantErr: common.ErrInvalidJFIFHeader,
		},
		{
			name:    "bad minor version",
			payload: []byte{'J', 'F', 'I', 'F', 0x00, 0x01, 0x03, 0x00, 0x00, 0x01, 0x00, 0x01},
			wantErr: common.ErrInvalidJFIFHeader,
		},
		{
			name:    "unknown density unit",
			payload: []byte{'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, 0x03, 0x00, 0x01, 0x00, 0x01},
			wantErr: common.ErrUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJFIF(tt.payload); !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseJFIF() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFrameHeader(t *testing.T) {
	payload := []byte{
		8,          // precision
		0x00, 0x10, // height 16
		0x00, 0x20, // width 32
		3,
		1, 0x22, 0, // Y, 2x2, quant 0
		2, 0x11, 1, // Cb, 1x1, quant 1
		3, 0x11, 1, // Cr, 1x1, quant 1
	}

	frame, err := ParseFrameHeader(common.MarkerSOF0, payload)
	if err != nil {
		t.Fatalf("ParseFrameHeader() error = %v", err)
	}
	if frame.Encoding != EncodingBaseline {
		t.Errorf("encoding = %v, want baseline", frame.Encoding)
	}
	if frame.Width != 32 || frame.Height != 16 {
		t.Errorf("dimensions = %dx%d, want 32x16", frame.Width, frame.Height)
	}
	if len(frame.Components) != 3 {
		t.Fatalf("components = %d, want 3", len(frame.Components))
	}
	if c := frame.Components[1]; c.H != 2 || c.V != 2 || c.Tq != 0 {
		t.Errorf("component 1 = %+v, want 2x2 quant 0", c)
	}
	if maxH, maxV := frame.MaxSampling(); maxH != 2 || maxV != 2 {
		t.Errorf("MaxSampling() = %d, %d, want 2, 2", maxH, maxV)
	}
}

func TestParseFrameHeaderRejects(t *testing.T) {
	valid := []byte{8, 0x00, 0x08, 0x00, 0x08, 1, 1, 0x11, 0}

	tests := []struct {
		name    string
		marker  byte
		payload []byte
		wantErr error
	}{
		{"lossless SOF3", common.MarkerSOF3, valid, common.ErrUnsupported},
		{"differential SOF5", common.MarkerSOF5, valid, common.ErrUnsupported},
		{"arithmetic SOF9", common.MarkerSOF9, valid, common.ErrUnsupported},
		{"arithmetic SOF15", common.MarkerSOF15, valid, common.ErrUnsupported},
		{
			"12-bit baseline",
			common.MarkerSOF0,
			[]byte{12, 0x00, 0x08, 0x00, 0x08, 1, 1, 0x11, 0},
			common.ErrInvalidFrameHeader,
		},
		{
			"length mismatch",
			common.MarkerSOF0,
			[]byte{8, 0x00, 0x08, 0x00, 0x08, 2, 1, 0x11, 0},
			common.ErrInvalidFrameHeader,
		},
		{
			"duplicate component ids",
			common.MarkerSOF0,
			[]byte{8, 0x00, 0x08, 0x00, 0x08, 2, 1, 0x11, 0, 1, 0x11, 0},
			common.ErrInvalidFrameHeader,
		},
		{
			"sampling factor out of range",
			common.MarkerSOF0,
			[]byte{8, 0x00, 0x08, 0x00, 0x08, 1, 1, 0x51, 0},
			common.ErrInvalidFrameHeader,
		},
		{
			"quantization selector out of range",
			common.MarkerSOF0,
			[]byte{8, 0x00, 0x08, 0x00, 0x08, 1, 1, 0x11, 4},
			common.ErrInvalidFrameHeader,
		},
		{
			"progressive with five components",
			common.MarkerSOF2,
			[]byte{8, 0x00, 0x08, 0x00, 0x08, 5, 1, 0x11, 0, 2, 0x11, 0, 3, 0x11, 0, 4, 0x11, 0, 5, 0x11, 0},
			common.ErrInvalidFrameHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFrameHeader(tt.marker, tt.payload); !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseFrameHeader() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFrameHeader12BitExtended(t *testing.T) {
	payload := []byte{12, 0x00, 0x08, 0x00, 0x08, 1, 1, 0x11, 0}
	frame, err := ParseFrameHeader(common.MarkerSOF1, payload)
	if err != nil {
		t.Fatalf("ParseFrameHeader() error = %v", err)
	}
	if frame.Encoding != EncodingExtended || frame.Precision != 12 {
		t.Errorf("got %v/%d-bit, want extended/12-bit", frame.Encoding, frame.Precision)
	}
}

func TestParseDNL(t *testing.T) {
	height, err := ParseDNL([]byte{0x01, 0x00})
	if err != nil {
		t.Fatalf("ParseDNL() error = %v", err)
	}
	if height != 256 {
		t.Errorf("height = %d, want 256", height)
	}

	for _, payload := range [][]byte{nil, {0x01}, {0x01, 0x00, 0x00}} {
		if _, err := ParseDNL(payload); !errors.Is(err, common.ErrInvalidDNLSegment) {
			t.Errorf("ParseDNL(% X) error = %v, want %v", payload, err, common.ErrInvalidDNLSegment)
		}
	}
}

func TestParseScanHeader(t *testing.T) {
	frame := &FrameHeader{
		Components: map[byte]ComponentSpec{
			1: {H: 2, V: 2, Tq: 0},
			2: {H: 1, V: 1, Tq: 1},
		},
	}

	payload := []byte{
		2,
		1, 0x01, // component 1, DC 0, AC 1
		2, 0x12, // component 2, DC 1, AC 2
		0, 63, 0x10, // full band, Ah 1, Al 0
	}

	scan, err := ParseScanHeader(payload, frame)
	if err != nil {
		t.Fatalf("ParseScanHeader() error = %v", err)
	}
	if len(scan.Components) != 2 {
		t.Fatalf("components = %d, want 2", len(scan.Components))
	}
	if scan.Components[0] != (ScanComponent{ID: 1, DC: 0, AC: 1}) {
		t.Errorf("component 0 = %+v", scan.Components[0])
	}
	if scan.Components[1] != (ScanComponent{ID: 2, DC: 1, AC: 2}) {
		t.Errorf("component 1 = %+v", scan.Components[1])
	}
	if scan.Band != (Band{Start: 0, End: 64}) {
		t.Errorf("band = %+v, want [0, 64)", scan.Band)
	}
	if scan.Exponent != 0 {
		t.Errorf("exponent = %d, want 0", scan.Exponent)
	}
}

func TestParseScanHeaderRejects(t *testing.T) {
	frame := &FrameHeader{
		Components: map[byte]ComponentSpec{1: {H: 1, V: 1}},
	}

	tests := []struct {
		name    string
		payload []byte
	}{
		{"empty", nil},
		{"zero components", []byte{0, 0, 63, 0}},
		{"five components", []byte{5, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 0, 63, 0}},
		{"length mismatch", []byte{1, 1, 0x00, 0, 63}},
		{"unknown component", []byte{1, 9, 0x00, 0, 63, 0}},
		{"band start past end", []byte{1, 1, 0x00, 5, 4, 0}},
		{"band end past 63", []byte{1, 1, 0x00, 0, 64, 0}},
		{"bad approximation", []byte{1, 1, 0x00, 0, 63, 0xE0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScanHeader(tt.payload, frame); !errors.Is(err, common.ErrInvalidScanHeader) {
				t.Errorf("ParseScanHeader() error = %v, want %v", err, common.ErrInvalidScanHeader)
			}
		})
	}
}
