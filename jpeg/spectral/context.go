package spectral

import (
	"fmt"

	"github.com/cocosip/go-jpeg-codec/jpeg/common"
)

// Context holds the tables installed by the ancillary segments that may
// precede a frame or scan header: four selector-addressed slots each of
// quantization, DC Huffman and AC Huffman tables, plus the restart
// interval. A table replaces the previous occupant of its slot in place.
type Context struct {
	Quantization    [4]*common.QuantizationTable
	DC              [4]*common.HuffmanTable
	AC              [4]*common.HuffmanTable
	RestartInterval int
}

// NewContext creates an empty table context for one decode.
func NewContext() *Context {
	return &Context{}
}

// Update consumes the run of ancillary segments starting at marker:
// DQT and DHT install tables, COM and APPn payloads are discarded, DRI
// and DAC are rejected. The first marker Update does not own is returned
// for the caller to dispatch.
func (c *Context) Update(r *common.Reader, marker byte) (byte, error) {
	for {
		switch {
		case marker == common.MarkerDQT:
			payload, err := r.ReadSegment()
			if err != nil {
				return 0, err
			}
			specs, err := common.ParseDQT(payload)
			if err != nil {
				return 0, err
			}
			for _, spec := range specs {
				c.Quantization[spec.Slot] = spec.Table
			}

		case marker == common.MarkerDHT:
			payload, err := r.ReadSegment()
			if err != nil {
				return 0, err
			}
			specs, err := common.ParseDHT(payload)
			if err != nil {
				return 0, err
			}
			for _, spec := range specs {
				if spec.Class == 0 {
					c.DC[spec.Slot] = spec.Table
				} else {
					c.AC[spec.Slot] = spec.Table
				}
			}

		case marker == common.MarkerDRI:
			return 0, fmt.Errorf("%w: restart intervals", common.ErrUnimplemented)

		case marker == common.MarkerDAC:
			return 0, fmt.Errorf("%w: arithmetic coding", common.ErrUnsupported)

		case marker == common.MarkerCOM || common.IsAPP(marker):
			if _, err := r.ReadSegment(); err != nil {
				return 0, err
			}

		default:
			return marker, nil
		}

		var err error
		marker, err = r.ReadNextMarker()
		if err != nil {
			return 0, err
		}
	}
}

// Restart reports whether marker is a restart marker.
func (c *Context) Restart(marker byte) bool {
	return common.IsRST(marker)
}
