package file

import (
	"context"
	"fmt"

	"github.com/exseisdat/segyio/codec"
	"github.com/exseisdat/segyio/errs"
	"github.com/exseisdat/segyio/iodriver"
	"github.com/exseisdat/segyio/segy"
)

// fileHeader is the decoded form of a SEG-Y file's 3600-byte text+binary
// header pair, shared by both InputFile and OutputFile.
type fileHeader struct {
	text           string
	ns             int
	sampleInterval int16
	sampleFormat   segy.SampleFormat
}

func readFileHeader(ctx context.Context, d iodriver.Driver) (fileHeader, error) {
	buf := make([]byte, segy.FileHeaderSize)
	if err := d.Read(ctx, 0, segy.FileHeaderSize, buf); err != nil {
		return fileHeader{}, err
	}

	textRaw := buf[:segy.TextHeaderSize]

	var text string
	if segy.DetectTextEncoding(textRaw) {
		text = string(textRaw)
	} else {
		ascii := make([]byte, len(textRaw))
		codec.EBCDICBytesToASCII(ascii, textRaw)
		text = string(ascii)
	}
	text = segy.NormalizeTextHeader(text)

	binHdr := buf[segy.TextHeaderSize:]
	ns := int(codec.Int16(binHdr[segy.OffsetSamplesPerTrace-segy.TextHeaderSize:]))
	interval := codec.Int16(binHdr[segy.OffsetSampleInterval-segy.TextHeaderSize:])
	format := segy.SampleFormat(codec.Int16(binHdr[segy.OffsetNumberFormat-segy.TextHeaderSize:]))

	if !format.Valid() {
		return fileHeader{}, fmt.Errorf("%w: number format %d", errs.ErrUnsupportedFormat, format)
	}

	return fileHeader{text: text, ns: ns, sampleInterval: interval, sampleFormat: format}, nil
}

func writeFileHeader(ctx context.Context, d iodriver.Driver, h fileHeader) error {
	buf := make([]byte, segy.FileHeaderSize)

	asciiPadded := h.text
	if len(asciiPadded) > segy.TextHeaderSize {
		asciiPadded = asciiPadded[:segy.TextHeaderSize]
	}
	copy(buf, asciiPadded)
	for i := len(asciiPadded); i < segy.TextHeaderSize; i++ {
		buf[i] = ' '
	}

	binHdr := buf[segy.TextHeaderSize:]
	codec.PutInt16(binHdr[segy.OffsetSamplesPerTrace-segy.TextHeaderSize:], int16(h.ns))
	codec.PutInt16(binHdr[segy.OffsetSampleInterval-segy.TextHeaderSize:], h.sampleInterval)
	codec.PutInt16(binHdr[segy.OffsetNumberFormat-segy.TextHeaderSize:], int16(h.sampleFormat))

	return d.Write(ctx, 0, buf)
}
