package codec

import "golang.org/x/text/encoding/charmap"

// Substitute bytes used when a conversion has no valid target.
const (
	asciiSubstitute  = 0x1A
	ebcdicSubstitute = 0x3F
)

// ebcdicToASCIITable and asciiToEBCDICTable are built once at init from
// golang.org/x/text/encoding/charmap.CodePage037 (IBM037), the EBCDIC code
// page SEG-Y text headers use. Deriving the tables from the ecosystem
// charmap instead of hand-transcribing IBM037 keeps the mapping
// authoritative and avoids a 512-entry magic table living in this repo.
var (
	ebcdicToASCIITable [256]byte
	asciiToEBCDICTable [256]byte
)

func init() {
	dec := charmap.CodePage037.NewDecoder()

	var asciiHasMapping [256]bool

	for i := 0; i < 256; i++ {
		out, err := dec.Bytes([]byte{byte(i)})
		if err != nil || len(out) != 1 || out[0] > 0x7F {
			ebcdicToASCIITable[i] = asciiSubstitute
			continue
		}

		ebcdicToASCIITable[i] = out[0]
		if !asciiHasMapping[out[0]] {
			asciiToEBCDICTable[out[0]] = byte(i)
			asciiHasMapping[out[0]] = true
		}
	}

	for i := 0; i < 256; i++ {
		if !asciiHasMapping[i] {
			asciiToEBCDICTable[i] = ebcdicSubstitute
		}
	}

	// NUL must round-trip through NUL in both directions, never through the
	// substitute byte.
	ebcdicToASCIITable[0] = 0
	asciiToEBCDICTable[0] = 0
}

// ToASCIIFromEBCDIC converts a single EBCDIC (IBM037) byte to its ASCII
// equivalent. Unmappable input maps to the fixed substitute byte 0x1A; NUL
// always maps to NUL.
func ToASCIIFromEBCDIC(b byte) byte { return ebcdicToASCIITable[b] }

// ToEBCDICFromASCII converts a single printable ASCII byte to its EBCDIC
// (IBM037) equivalent. Unmappable input maps to the fixed substitute byte
// 0x3F; NUL always maps to NUL.
func ToEBCDICFromASCII(b byte) byte { return asciiToEBCDICTable[b] }

// IsPrintableASCII reports whether b is a printable ASCII byte, i.e. in the
// range [0x20, 0x7E].
func IsPrintableASCII(b byte) bool { return b >= 0x20 && b <= 0x7E }

// IsPrintableEBCDIC reports whether b decodes, via IBM037, to a printable
// ASCII byte.
func IsPrintableEBCDIC(b byte) bool { return IsPrintableASCII(ToASCIIFromEBCDIC(b)) }

// ASCIIBytesToEBCDIC converts a slice of ASCII bytes to EBCDIC in place into
// dst, which must be at least len(src) bytes.
func ASCIIBytesToEBCDIC(dst, src []byte) {
	for i, b := range src {
		dst[i] = ToEBCDICFromASCII(b)
	}
}

// EBCDICBytesToASCII converts a slice of EBCDIC bytes to ASCII in place into
// dst, which must be at least len(src) bytes.
func EBCDICBytesToASCII(dst, src []byte) {
	for i, b := range src {
		dst[i] = ToASCIIFromEBCDIC(b)
	}
}
