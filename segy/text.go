package segy

import "bytes"

// DetectTextEncoding reports whether raw (a TextHeaderSize-byte block) looks
// like printable ASCII. Callers fall back to EBCDIC decoding when this
// returns false: reads autodetect by attempting EBCDIC→ASCII translation
// when the raw block is not printable ASCII.
func DetectTextEncoding(raw []byte) (isASCII bool) {
	for _, b := range raw {
		if b == 0 {
			continue
		}
		if b < 0x20 || b > 0x7E {
			return false
		}
	}

	return true
}

// NormalizeTextHeader trims trailing NUL, space and newline padding from a decoded
// 3200-byte text header: padding bytes after the last non-blank line are
// not considered part of the content.
func NormalizeTextHeader(decoded string) string {
	return string(bytes.TrimRight([]byte(decoded), "\x00 \n"))
}
