package common

import "bytes"

// ReadEntropySegment reads one entropy-coded segment from the stream and
// returns its de-stuffed payload together with the marker that terminated
// it. Stuffed 0xFF 0x00 pairs collapse to a data 0xFF; any other byte
// after 0xFF ends the segment, with additional 0xFF fill bytes skipped.
// The terminator is handed back to the caller as the stream's next marker.
func ReadEntropySegment(r *Reader) ([]byte, byte, error) {
	var payload bytes.Buffer

	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, 0, err
		}
		if b != 0xFF {
			payload.WriteByte(b)
			continue
		}

		next, err := r.ReadByte()
		if err != nil {
			return nil, 0, err
		}
		if next == 0x00 {
			payload.WriteByte(0xFF)
			continue
		}
		for next == 0xFF {
			next, err = r.ReadByte()
			if err != nil {
				return nil, 0, err
			}
		}
		return payload.Bytes(), next, nil
	}
}
