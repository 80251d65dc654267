package spectral

import (
	"fmt"

	"github.com/cocosip/go-jpeg-codec/jpeg/common"
)

// Spectra accumulates the amplitude-decoded spectral coefficients of a
// frame, indexed by MCU group, block within the group and coefficient
// position. Values are stored as read from the entropy-coded data,
// shifted by the scan's point transform; dequantization against the
// Context tables belongs to the downstream pixel pipeline.
// Coefficient positions follow the zigzag serialization order of the
// entropy-coded data. The store grows in groups as decoding proceeds, so
// frames whose height is unknown until a DNL segment can still be decoded.
type Spectra struct {
	coefficients []int16
	groupStride  int
	blockStride  int
	groups       int
}

// NewSpectra creates an empty coefficient store.
func NewSpectra() *Spectra {
	return &Spectra{blockStride: 64}
}

// Groups returns the number of MCU groups decoded so far.
func (s *Spectra) Groups() int {
	return s.groups
}

// GroupStride returns the number of coefficients one MCU group occupies.
func (s *Spectra) GroupStride() int {
	return s.groupStride
}

// BlockStride returns the number of coefficients one block occupies.
func (s *Spectra) BlockStride() int {
	return s.blockStride
}

// Coefficients returns the backing coefficient buffer.
func (s *Spectra) Coefficients() []int16 {
	return s.coefficients
}

// At returns the coefficient at [group, block, k].
func (s *Spectra) At(group, block, k int) int16 {
	return s.coefficients[group*s.groupStride+block*s.blockStride+k]
}

// extend grows the backing buffer with zeroed coefficients so that group
// is addressable.
func (s *Spectra) extend(group int) {
	need := (group + 1) * s.groupStride
	if need > len(s.coefficients) {
		s.coefficients = append(s.coefficients, make([]int16, need-len(s.coefficients))...)
	}
	if group+1 > s.groups {
		s.groups = group + 1
	}
}

// Amplitude decodes a JPEG signed coefficient from its bit count and the
// MSB-aligned bit pattern. A pattern whose leading bit is set is the
// positive value itself; otherwise the value is the pattern minus
// 2^count - 1.
func Amplitude(count int, pattern uint16) int16 {
	v := int32(pattern >> (16 - count))
	flip := int32(pattern>>15)&1 ^ 1
	return int16((v + flip) | (-flip << count))
}

// scanComponent is the resolved per-component state of one scan.
type scanComponent struct {
	spec   ComponentSpec
	dc, ac *common.HuffmanTable
	blocks int
}

// DecodeScan consumes one entropy-coded segment through the scan's
// Huffman tables, interleaving blocks across the scan components by their
// sampling factors. When the frame height is known the MCU count is fixed
// by the frame dimensions; a zero height (DNL pending) decodes groups
// until the bitstream is exhausted.
func (s *Spectra) DecodeScan(bs *common.Bitstream, frame *FrameHeader, scan *ScanHeader, ctx *Context) error {
	components := make([]scanComponent, len(scan.Components))
	blocksPerGroup := 0
	for i, sc := range scan.Components {
		spec := frame.Components[sc.ID]

		scomponent := scanComponent{spec: spec, blocks: spec.H * spec.V}
		if scan.Band.Start == 0 {
			if scomponent.dc = ctx.DC[sc.DC]; scomponent.dc == nil {
				return fmt.Errorf("%w: DC slot %d is empty", common.ErrInvalidHuffmanTable, sc.DC)
			}
		}
		if scan.Band.End > 1 {
			if scomponent.ac = ctx.AC[sc.AC]; scomponent.ac == nil {
				return fmt.Errorf("%w: AC slot %d is empty", common.ErrInvalidHuffmanTable, sc.AC)
			}
		}
		// The component's quantization slot must be populated even though
		// dequantization happens downstream.
		if ctx.Quantization[spec.Tq] == nil {
			return fmt.Errorf("%w: slot %d is empty", common.ErrInvalidQuantizationTable, spec.Tq)
		}

		components[i] = scomponent
		blocksPerGroup += scomponent.blocks
	}

	if s.groupStride == 0 {
		s.groupStride = blocksPerGroup * s.blockStride
	}

	totalGroups := -1
	if frame.Height > 0 {
		maxH, maxV := frame.MaxSampling()
		totalGroups = common.DivCeil(frame.Width, 8*maxH) * common.DivCeil(frame.Height, 8*maxV)
	}

	for group := 0; totalGroups < 0 || group < totalGroups; group++ {
		if _, ok := bs.Front(); !ok {
			if totalGroups < 0 {
				return nil
			}
			return fmt.Errorf("%w: entropy-coded segment exhausted after %d of %d MCUs", common.ErrSyntax, group, totalGroups)
		}

		s.extend(group)

		block := 0
		for i := range components {
			for b := 0; b < components[i].blocks; b++ {
				if err := s.decodeBlock(bs, group, block, &components[i], scan); err != nil {
					return err
				}
				block++
			}
		}
	}

	return nil
}

// decodeBlock decodes one block's coefficients in the scan band.
func (s *Spectra) decodeBlock(bs *common.Bitstream, group, block int, c *scanComponent, scan *ScanHeader) error {
	base := group*s.groupStride + block*s.blockStride

	k := scan.Band.Start
	if k == 0 {
		// DC: the symbol is the bit count of the DC difference.
		window, _ := bs.Front()
		entry := c.dc.Lookup(window)
		if entry == common.Reserved {
			return fmt.Errorf("%w: reserved DC codeword", common.ErrSyntax)
		}
		bs.Pop(int(entry.Length))

		if count := int(entry.Value); count > 0 {
			pattern, _ := bs.Front()
			diff := Amplitude(count, pattern)
			bs.Pop(count)

			s.coefficients[base] |= diff << scan.Exponent
		}
		k = 1
	}

	// AC: the symbol packs a zero run length and an amplitude bit count.
	for k < scan.Band.End {
		window, _ := bs.Front()
		entry := c.ac.Lookup(window)
		if entry == common.Reserved {
			return fmt.Errorf("%w: reserved AC codeword", common.ErrSyntax)
		}
		bs.Pop(int(entry.Length))

		run := int(entry.Value >> 4)
		count := int(entry.Value & 0x0F)

		if count == 0 {
			if entry.Value == 0xF0 {
				k += 16
				continue
			}
			// EOB
			break
		}

		k += run
		if k >= scan.Band.End {
			return fmt.Errorf("%w: AC run past spectral band", common.ErrSyntax)
		}

		pattern, _ := bs.Front()
		amplitude := Amplitude(count, pattern)
		bs.Pop(count)

		s.coefficients[base+k] |= amplitude << scan.Exponent
		k++
	}

	return nil
}
