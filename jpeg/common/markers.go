package common

// JPEG marker constants. A marker is the single byte following one or more
// 0xFF fill bytes in the stream.
const (
	// Start of Image
	MarkerSOI = 0xD8

	// End of Image
	MarkerEOI = 0xD9

	// Start of Frame markers
	MarkerSOF0  = 0xC0 // Baseline DCT
	MarkerSOF1  = 0xC1 // Extended Sequential DCT
	MarkerSOF2  = 0xC2 // Progressive DCT
	MarkerSOF3  = 0xC3 // Lossless (Sequential)
	MarkerSOF5  = 0xC5 // Differential Sequential DCT
	MarkerSOF6  = 0xC6 // Differential Progressive DCT
	MarkerSOF7  = 0xC7 // Differential Lossless
	MarkerSOF9  = 0xC9 // Extended Sequential DCT, Arithmetic coding
	MarkerSOF10 = 0xCA // Progressive DCT, Arithmetic coding
	MarkerSOF11 = 0xCB // Lossless, Arithmetic coding
	MarkerSOF13 = 0xCD // Differential Sequential DCT, Arithmetic coding
	MarkerSOF14 = 0xCE // Differential Progressive DCT, Arithmetic coding
	MarkerSOF15 = 0xCF // Differential Lossless, Arithmetic coding

	// Define Huffman Table
	MarkerDHT = 0xC4

	// Define Arithmetic Coding conditioning
	MarkerDAC = 0xCC

	// Define Quantization Table
	MarkerDQT = 0xDB

	// Define Restart Interval
	MarkerDRI = 0xDD

	// Define Number of Lines
	MarkerDNL = 0xDC

	// Start of Scan
	MarkerSOS = 0xDA

	// Application segments
	MarkerAPP0  = 0xE0
	MarkerAPP15 = 0xEF

	// Comment
	MarkerCOM = 0xFE

	// Restart markers
	MarkerRST0 = 0xD0
	MarkerRST7 = 0xD7
)

// IsSOF returns true if the marker is a Start of Frame marker.
// DHT (0xC4) and DAC (0xCC) share the SOF range but are not frames.
func IsSOF(marker byte) bool {
	return marker >= MarkerSOF0 && marker <= MarkerSOF15 &&
		marker != MarkerDHT && marker != MarkerDAC
}

// IsRST returns true if the marker is a Restart marker.
func IsRST(marker byte) bool {
	return marker >= MarkerRST0 && marker <= MarkerRST7
}

// IsAPP returns true if the marker is an application segment marker.
func IsAPP(marker byte) bool {
	return marker >= MarkerAPP0 && marker <= MarkerAPP15
}
