package file

import (
	"context"
	"fmt"

	"github.com/exseisdat/segyio/comm"
	"github.com/exseisdat/segyio/errs"
	"github.com/exseisdat/segyio/internal/options"
	"github.com/exseisdat/segyio/iodriver"
	"github.com/exseisdat/segyio/rules"
	"github.com/exseisdat/segyio/segy"
	"github.com/exseisdat/segyio/tracemd"
)

// InputFile is a read-only handle onto a SEG-Y file, opened collectively
// across a Communicator's group.
type InputFile struct {
	path   string
	driver iodriver.Driver
	comm   comm.Communicator
	rule   *rules.Rule

	ns             int
	nt             int64
	sampleFormat   segy.SampleFormat
	usFactor       float64
	text           string
	sampleInterval int16
}

// OpenInput opens path collectively across c, validating the binary file
// header and recovering the trace count from the file's size.
func OpenInput(ctx context.Context, c comm.Communicator, path string, opts ...Option) (*InputFile, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	d, err := iodriver.NewFileDriver(c, cfg.driverConfig(), path, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
	}

	size, err := d.Size(ctx)
	if err != nil {
		return nil, err
	}

	hdr, err := readFileHeader(ctx, d)
	if err != nil {
		return nil, err
	}

	nt, err := segy.NumberOfTracesFromFileSize(int64(size), hdr.ns)
	if err != nil {
		return nil, err
	}

	return &InputFile{
		path:           path,
		driver:         d,
		comm:           c,
		rule:           cfg.rule,
		ns:             hdr.ns,
		nt:             nt,
		sampleFormat:   hdr.sampleFormat,
		usFactor:       cfg.usFactor,
		text:           hdr.text,
		sampleInterval: hdr.sampleInterval,
	}, nil
}

// FileName returns the path this file was opened from.
func (f *InputFile) FileName() string { return f.path }

// ReadText returns the file's 3200-byte text header, decoded to ASCII and
// trimmed of padding.
func (f *InputFile) ReadText() (string, error) { return f.text, nil }

// ReadSamplesPerTrace returns the binary header's samples-per-trace value.
func (f *InputFile) ReadSamplesPerTrace() (int, error) { return f.ns, nil }

// ReadNumberOfTraces returns the trace count recovered from the file's
// size.
func (f *InputFile) ReadNumberOfTraces() (int64, error) { return f.nt, nil }

// ReadSampleInterval returns the binary header's sample interval, scaled
// by the configured microsecond factor (default 1e-6).
func (f *InputFile) ReadSampleInterval() (float64, error) {
	return float64(f.sampleInterval) * f.usFactor, nil
}

// ReadMetadata decodes n trace headers starting at trace offset into dst
// starting at row skip.
func (f *InputFile) ReadMetadata(ctx context.Context, offset int64, n int, dst *tracemd.Metadata, skip int) error {
	return readHeadersContiguous(ctx, f.driver, f.rule, f.ns, offset, n, dst, skip)
}

// ReadMetadataEmpty is the collective no-op: call it on ranks that
// contribute zero traces to a collective ReadMetadata round, so the
// underlying driver rounds stay agreed across every rank.
func (f *InputFile) ReadMetadataEmpty(ctx context.Context) error {
	return f.ReadMetadata(ctx, 0, 0, nil, 0)
}

// ReadData decodes n traces' sample vectors starting at trace offset into
// out (n*ns float32s).
func (f *InputFile) ReadData(ctx context.Context, offset int64, n int, out []float32) error {
	return readSamplesContiguous(ctx, f.driver, f.ns, f.sampleFormat, offset, n, out)
}

// ReadDataEmpty is the collective no-op form of ReadData.
func (f *InputFile) ReadDataEmpty(ctx context.Context) error {
	return f.ReadData(ctx, 0, 0, nil)
}

// Read decodes both metadata and sample data for n traces starting at
// trace offset.
func (f *InputFile) Read(ctx context.Context, offset int64, n int, data []float32, dst *tracemd.Metadata, skip int) error {
	if err := f.ReadMetadata(ctx, offset, n, dst, skip); err != nil {
		return err
	}

	return f.ReadData(ctx, offset, n, data)
}

// ReadEmpty is the collective no-op form of Read.
func (f *InputFile) ReadEmpty(ctx context.Context) error {
	return f.Read(ctx, 0, 0, nil, nil, 0)
}

// ReadMetadataNonContiguous decodes trace headers at the given trace
// offsets (monotonic) into dst starting at row skip.
func (f *InputFile) ReadMetadataNonContiguous(ctx context.Context, offsets []int64, dst *tracemd.Metadata, skip int) error {
	return readHeadersNonContiguous(ctx, f.driver, f.rule, f.ns, offsets, dst, skip)
}

// ReadMetadataNonContiguousEmpty is the collective no-op form of
// ReadMetadataNonContiguous.
func (f *InputFile) ReadMetadataNonContiguousEmpty(ctx context.Context) error {
	return f.ReadMetadataNonContiguous(ctx, nil, nil, 0)
}

// ReadDataNonContiguous decodes sample vectors at the given trace offsets
// (monotonic) into out.
func (f *InputFile) ReadDataNonContiguous(ctx context.Context, offsets []int64, out []float32) error {
	return readSamplesNonContiguous(ctx, f.driver, f.ns, f.sampleFormat, offsets, out)
}

// ReadDataNonContiguousEmpty is the collective no-op form of
// ReadDataNonContiguous.
func (f *InputFile) ReadDataNonContiguousEmpty(ctx context.Context) error {
	return f.ReadDataNonContiguous(ctx, nil, nil)
}

// ReadNonContiguous decodes both metadata and sample data at the given
// trace offsets (monotonic).
func (f *InputFile) ReadNonContiguous(ctx context.Context, offsets []int64, data []float32, dst *tracemd.Metadata, skip int) error {
	if err := f.ReadMetadataNonContiguous(ctx, offsets, dst, skip); err != nil {
		return err
	}

	return f.ReadDataNonContiguous(ctx, offsets, data)
}

// ReadNonContiguousEmpty is the collective no-op form of
// ReadNonContiguous.
func (f *InputFile) ReadNonContiguousEmpty(ctx context.Context) error {
	return f.ReadNonContiguous(ctx, nil, nil, nil, 0)
}

// ReadNonMonotonic decodes both metadata and sample data at arbitrary
// (unordered) trace offsets, sorting internally and permuting the results
// back into request order.
func (f *InputFile) ReadNonMonotonic(ctx context.Context, offsets []int64, data []float32, dst *tracemd.Metadata, skip int) error {
	return readNonMonotonic(ctx, f.driver, f.rule, f.ns, f.sampleFormat, offsets, data, dst, skip)
}

// Close releases the underlying driver's resources.
func (f *InputFile) Close() error { return f.driver.Close() }
