package common

import "fmt"

// QuantizationTable holds one dequantization table. Values are stored in
// the zigzag order they are serialized in; 8-bit and 16-bit variants share
// the representation, distinguished by Precision.
type QuantizationTable struct {
	// Precision is 8 or 16 bits per coefficient.
	Precision int
	Values    [64]uint16
}

// QuantizationTableSpec is one table of a DQT payload.
type QuantizationTableSpec struct {
	// Slot is the destination selector, 0..3.
	Slot  int
	Table *QuantizationTable
}

// ParseDQT parses a DQT payload, which concatenates one or more tables:
// a precision/slot byte, then 64 coefficients of 1 or 2 bytes each
// (16-bit coefficients are big-endian).
func ParseDQT(payload []byte) ([]QuantizationTableSpec, error) {
	var specs []QuantizationTableSpec

	offset := 0
	for offset < len(payload) {
		flags := payload[offset]
		precision := int(flags >> 4)
		slot := int(flags & 0x0F)
		if precision > 1 {
			return nil, fmt.Errorf("%w: precision flag %d", ErrInvalidQuantizationTable, precision)
		}
		if slot > 3 {
			return nil, fmt.Errorf("%w: table slot %d", ErrInvalidQuantizationTable, slot)
		}
		offset++

		table := &QuantizationTable{}
		if precision == 0 {
			table.Precision = 8
			if offset+64 > len(payload) {
				return nil, fmt.Errorf("%w: truncated DQT payload", ErrInvalidQuantizationTable)
			}
			for i := 0; i < 64; i++ {
				table.Values[i] = uint16(payload[offset+i])
			}
			offset += 64
		} else {
			table.Precision = 16
			if offset+128 > len(payload) {
				return nil, fmt.Errorf("%w: truncated DQT payload", ErrInvalidQuantizationTable)
			}
			for i := 0; i < 64; i++ {
				table.Values[i] = uint16(payload[offset+i*2])<<8 | uint16(payload[offset+i*2+1])
			}
			offset += 128
		}

		specs = append(specs, QuantizationTableSpec{Slot: slot, Table: table})
	}

	return specs, nil
}
