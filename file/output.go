package file

import (
	"context"

	"github.com/exseisdat/segyio/comm"
	"github.com/exseisdat/segyio/internal/options"
	"github.com/exseisdat/segyio/iodriver"
	"github.com/exseisdat/segyio/rules"
	"github.com/exseisdat/segyio/segy"
	"github.com/exseisdat/segyio/tracemd"
)

// OutputFile is a write handle onto a SEG-Y file, created collectively
// across a Communicator's group.
type OutputFile struct {
	path   string
	driver iodriver.Driver
	comm   comm.Communicator
	rule   *rules.Rule

	ns             int
	sampleFormat   segy.SampleFormat
	usFactor       float64
	text           string
	sampleInterval int16
}

// CreateOutput creates (or truncates) path collectively across c, sized
// for ns samples per trace. The binary file header is written immediately
// with a default IEEE_fp32 number format; WriteText/WriteSampleInterval
// can be called before the first trace write to override the rest of the
// header.
func CreateOutput(ctx context.Context, c comm.Communicator, path string, ns int, opts ...Option) (*OutputFile, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	d, err := iodriver.NewFileDriver(c, cfg.driverConfig(), path, true)
	if err != nil {
		return nil, err
	}

	if err := d.Resize(ctx, uint64(segy.FileHeaderSize)); err != nil {
		return nil, err
	}

	f := &OutputFile{
		path:         path,
		driver:       d,
		comm:         c,
		rule:         cfg.rule,
		ns:           ns,
		sampleFormat: segy.SampleFormatIEEE,
		usFactor:     cfg.usFactor,
	}

	if err := f.flushFileHeader(ctx); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *OutputFile) flushFileHeader(ctx context.Context) error {
	return writeFileHeader(ctx, f.driver, fileHeader{
		text:           f.text,
		ns:             f.ns,
		sampleInterval: f.sampleInterval,
		sampleFormat:   f.sampleFormat,
	})
}

// FileName returns the path this file was created at.
func (f *OutputFile) FileName() string { return f.path }

// WriteText sets the file's text header (ASCII, normalized/padded to
// TextHeaderSize on write) and flushes it immediately.
func (f *OutputFile) WriteText(ctx context.Context, text string) error {
	f.text = text

	return f.flushFileHeader(ctx)
}

// WriteSamplesPerTrace sets the binary header's samples-per-trace field
// and flushes it immediately. It does not resize already-written traces.
func (f *OutputFile) WriteSamplesPerTrace(ctx context.Context, ns int) error {
	f.ns = ns

	return f.flushFileHeader(ctx)
}

// WriteNumberOfTraces grows the file to hold nt traces of f.ns samples
// each.
func (f *OutputFile) WriteNumberOfTraces(ctx context.Context, nt int64) error {
	return f.driver.Resize(ctx, uint64(segy.TraceOffset(nt, f.ns)))
}

// WriteSampleInterval sets the binary header's sample interval, taking a
// value already scaled by the configured microsecond factor, and flushes
// it immediately.
func (f *OutputFile) WriteSampleInterval(ctx context.Context, interval float64) error {
	f.sampleInterval = int16(interval / f.usFactor)

	return f.flushFileHeader(ctx)
}

// WriteMetadata encodes n trace headers from src starting at row skip
// into the file starting at trace offset.
func (f *OutputFile) WriteMetadata(ctx context.Context, offset int64, n int, src *tracemd.Metadata, skip int) error {
	return writeHeadersContiguous(ctx, f.driver, f.rule, f.ns, offset, n, src, skip)
}

// WriteMetadataEmpty is the collective no-op form of WriteMetadata.
func (f *OutputFile) WriteMetadataEmpty(ctx context.Context) error {
	return f.WriteMetadata(ctx, 0, 0, nil, 0)
}

// WriteData encodes n traces' sample vectors from in (n*ns float32s) into
// the file starting at trace offset.
func (f *OutputFile) WriteData(ctx context.Context, offset int64, n int, in []float32) error {
	return writeSamplesContiguous(ctx, f.driver, f.ns, f.sampleFormat, offset, n, in)
}

// WriteDataEmpty is the collective no-op form of WriteData.
func (f *OutputFile) WriteDataEmpty(ctx context.Context) error {
	return f.WriteData(ctx, 0, 0, nil)
}

// Write encodes both metadata and sample data for n traces starting at
// trace offset.
func (f *OutputFile) Write(ctx context.Context, offset int64, n int, data []float32, src *tracemd.Metadata, skip int) error {
	if err := f.WriteMetadata(ctx, offset, n, src, skip); err != nil {
		return err
	}

	return f.WriteData(ctx, offset, n, data)
}

// WriteEmpty is the collective no-op form of Write.
func (f *OutputFile) WriteEmpty(ctx context.Context) error {
	return f.Write(ctx, 0, 0, nil, nil, 0)
}

// WriteMetadataNonContiguous encodes trace headers at the given trace
// offsets (monotonic) from src starting at row skip.
func (f *OutputFile) WriteMetadataNonContiguous(ctx context.Context, offsets []int64, src *tracemd.Metadata, skip int) error {
	return writeHeadersNonContiguous(ctx, f.driver, f.rule, f.ns, offsets, src, skip)
}

// WriteMetadataNonContiguousEmpty is the collective no-op form of
// WriteMetadataNonContiguous.
func (f *OutputFile) WriteMetadataNonContiguousEmpty(ctx context.Context) error {
	return f.WriteMetadataNonContiguous(ctx, nil, nil, 0)
}

// WriteDataNonContiguous encodes sample vectors at the given trace offsets
// (monotonic) from in.
func (f *OutputFile) WriteDataNonContiguous(ctx context.Context, offsets []int64, in []float32) error {
	return writeSamplesNonContiguous(ctx, f.driver, f.ns, f.sampleFormat, offsets, in)
}

// WriteDataNonContiguousEmpty is the collective no-op form of
// WriteDataNonContiguous.
func (f *OutputFile) WriteDataNonContiguousEmpty(ctx context.Context) error {
	return f.WriteDataNonContiguous(ctx, nil, nil)
}

// WriteNonContiguous encodes both metadata and sample data at the given
// trace offsets (monotonic).
func (f *OutputFile) WriteNonContiguous(ctx context.Context, offsets []int64, data []float32, src *tracemd.Metadata, skip int) error {
	if err := f.WriteMetadataNonContiguous(ctx, offsets, src, skip); err != nil {
		return err
	}

	return f.WriteDataNonContiguous(ctx, offsets, data)
}

// WriteNonContiguousEmpty is the collective no-op form of
// WriteNonContiguous.
func (f *OutputFile) WriteNonContiguousEmpty(ctx context.Context) error {
	return f.WriteNonContiguous(ctx, nil, nil, nil, 0)
}

// Sync establishes a happens-before boundary: every write issued before
// Sync on any rank is visible to every read issued after Sync on any rank.
func (f *OutputFile) Sync(ctx context.Context) error { return f.driver.Sync(ctx) }

// Close releases the underlying driver's resources.
func (f *OutputFile) Close() error { return f.driver.Close() }
