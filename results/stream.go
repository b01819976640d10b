// SPDX-License-Identifier: MIT

package results

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the stream codec.
type Compression uint8

const (
	// CompressionNone writes plain line-delimited JSON.
	CompressionNone Compression = iota
	// CompressionZstd wraps the stream in a zstd frame.
	CompressionZstd
	// CompressionLZ4 wraps the stream in an LZ4 frame.
	CompressionLZ4
)

// String returns the conventional file suffix without the dot.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "json"
	case CompressionZstd:
		return "zst"
	case CompressionLZ4:
		return "lz4"
	}
	return "unknown"
}

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// maxLine bounds a single record line.
const maxLine = 1 << 20

// Writer appends records to a line-delimited stream. It is not safe for
// concurrent use.
type Writer struct {
	buf   *bufio.Writer
	codec io.WriteCloser // nil for CompressionNone
	line  bytes.Buffer
	count int
}

// NewWriter returns a Writer on w. Close must be called to flush the
// compressed frame; it does not close w.
func NewWriter(w io.Writer, c Compression) (*Writer, error) {
	out := &Writer{}
	switch c {
	case CompressionNone:
		out.buf = bufio.NewWriter(w)
	case CompressionZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("NewWriter: %w", err)
		}
		out.codec = enc
		out.buf = bufio.NewWriter(enc)
	case CompressionLZ4:
		enc := lz4.NewWriter(w)
		out.codec = enc
		out.buf = bufio.NewWriter(enc)
	default:
		return nil, fmt.Errorf("NewWriter(%d): %w", c, ErrUnknownCompression)
	}
	return out, nil
}

// Write encodes r as one JSON line.
func (w *Writer) Write(r *Record) error {
	w.line.Reset()
	if err := gojay.NewEncoder(&w.line).EncodeObject(r); err != nil {
		return fmt.Errorf("Write %s: %w", r.Key, err)
	}
	w.line.WriteByte('\n')
	if _, err := w.buf.Write(w.line.Bytes()); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int { return w.count }

// Close flushes buffered data and finishes the compressed frame.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		return err
	}
	if w.codec != nil {
		return w.codec.Close()
	}
	return nil
}

// Reader iterates over the records of a stream.
type Reader struct {
	scan  *bufio.Scanner
	close func()
	line  int
}

// NewReader returns a Reader decoding r with the given codec.
func NewReader(r io.Reader, c Compression) (*Reader, error) {
	out := &Reader{close: func() {}}
	var src io.Reader
	switch c {
	case CompressionNone:
		src = r
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("NewReader: %w", err)
		}
		out.close = dec.Close
		src = dec
	case CompressionLZ4:
		src = lz4.NewReader(r)
	default:
		return nil, fmt.Errorf("NewReader(%d): %w", c, ErrUnknownCompression)
	}
	out.scan = bufio.NewScanner(src)
	out.scan.Buffer(make([]byte, 0, 4096), maxLine)
	return out, nil
}

// Open detects the codec from the leading magic bytes and returns a Reader.
func Open(r io.Reader) (*Reader, Compression, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, CompressionNone, err
	}
	c := CompressionNone
	switch {
	case bytes.Equal(head, zstdMagic):
		c = CompressionZstd
	case bytes.Equal(head, lz4Magic):
		c = CompressionLZ4
	}
	rd, err := NewReader(br, c)
	return rd, c, err
}

// Next decodes the next record. It returns io.EOF after the last one.
// Blank lines are skipped.
func (r *Reader) Next() (Record, error) {
	for r.scan.Scan() {
		r.line++
		b := bytes.TrimSpace(r.scan.Bytes())
		if len(b) == 0 {
			continue
		}
		var rec Record
		if err := gojay.UnmarshalJSONObject(b, &rec); err != nil {
			return Record{}, fmt.Errorf("line %d: %v: %w", r.line, err, ErrMalformed)
		}
		if err := rec.Validate(); err != nil {
			return Record{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return rec, nil
	}
	if err := r.scan.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, io.EOF
}

// ReadAll drains the reader.
func (r *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// Close releases decoder resources. It does not close the source.
func (r *Reader) Close() { r.close() }
