package columnar

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/columnlab/tabular/pkg/errors"
)

// delimiter is the single field separator. The format has no quoting or
// escaping, so fields can never contain it.
const delimiter = ","

// Option configures ingestion.
type Option func(*readConfig)

type readConfig struct {
	logger *zap.Logger
}

// WithLogger attaches a logger to ingestion. Without it, ingestion is silent.
func WithLogger(log *zap.Logger) Option {
	return func(rc *readConfig) {
		if log != nil {
			rc.logger = log
		}
	}
}

// ReadFromCSV opens the named delimited text file and parses it into a Store
// whose columns carry the declared types, in order. Sources ending in .gz or
// .zst are decompressed transparently.
//
// Ingestion is all-or-nothing: on any failure no partial Store is returned.
// An unopenable path yields SourceNotFound; a missing, empty, or
// wrong-arity header yields InvalidFormat, as does a data row whose field
// count differs from the declared arity; a field that does not convert to
// its column's type yields ParseError.
func ReadFromCSV(path string, types []ColumnType, opts ...Option) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSourceNotFound, "cannot open source").
			WithDetail("path", path)
	}
	defer file.Close()

	var src io.Reader = file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeInvalidFormat, "not a gzip stream").
				WithDetail("path", path)
		}
		defer gz.Close()
		src = gz
	case ".zst":
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeInvalidFormat, "not a zstd stream").
				WithDetail("path", path)
		}
		defer zr.Close()
		src = zr
	}

	store, err := ReadFrom(src, types, opts...)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// ReadFrom parses delimited text from r into a Store. The caller declares
// the column types; the first line names the columns 1:1 with them. See
// ReadFromCSV for the error contract.
func ReadFrom(r io.Reader, types []ColumnType, opts ...Option) (*Store, error) {
	cfg := readConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(types) == 0 {
		return nil, errors.New(errors.ErrorTypeInvalidFormat, "no column types declared")
	}

	br := bufio.NewReader(r)

	// The header is mandatory: a completely empty source is a format error,
	// distinct from a header with zero data rows.
	header, ok, err := readLine(br)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInvalidFormat, "reading header")
	}
	if !ok {
		return nil, errors.New(errors.ErrorTypeInvalidFormat, "empty source: no header line")
	}
	if header == "" {
		return nil, errors.New(errors.ErrorTypeInvalidFormat, "empty header line")
	}

	// Header names are taken verbatim: no trimming, case preserved.
	names := strings.Split(header, delimiter)
	if len(names) != len(types) {
		return nil, errors.Newf(errors.ErrorTypeInvalidFormat,
			"header has %d fields, %d columns declared", len(names), len(types))
	}

	// Accumulate into an unpublished store; it is discarded on any failure.
	columns := make([]Column, len(types))
	for i, t := range types {
		columns[i] = newColumn(t)
	}

	rows := 0
	line := 1
	for {
		text, ok, err := readLine(br)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeInvalidFormat, "reading rows")
		}
		if !ok {
			break
		}
		line++
		if text == "" {
			// Blank lines between header and EOF are not rows.
			continue
		}

		fields := strings.Split(text, delimiter)
		if len(fields) != len(types) {
			return nil, errors.Newf(errors.ErrorTypeInvalidFormat,
				"line %d has %d fields, %d columns declared", line, len(fields), len(types))
		}

		for i, field := range fields {
			if err := columns[i].appendField(field); err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeParse, "bad field").
					WithDetail("line", line).
					WithDetail("column", names[i])
			}
		}
		rows++
	}

	cfg.logger.Debug("parsed delimited source",
		zap.Int("rows", rows),
		zap.Int("columns", len(types)))

	return &Store{columns: columns, names: names, rows: rows}, nil
}

// readLine reads one logical line of any length, stripping the trailing
// newline and an optional carriage return before it. ok reports whether a
// line was read; it is false only at end of input.
func readLine(br *bufio.Reader) (text string, ok bool, err error) {
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if line == "" {
		// ReadString returns data alongside io.EOF for a final line with
		// no newline; an empty result means the input is exhausted.
		return "", false, nil
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}
