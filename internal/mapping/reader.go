package mapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/vvka-141/metaguid/internal/files/filesystem"
	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// Format tells which parse stage produced a mapping.
type Format int

const (
	// FormatHeadered means the first row named both the path and guid columns.
	FormatHeadered Format = iota + 1
	// FormatHeaderless means rows were read positionally as path,guid[,...].
	FormatHeaderless
)

func (f Format) String() string {
	switch f {
	case FormatHeadered:
		return "headered"
	case FormatHeaderless:
		return "headerless"
	default:
		return "unknown"
	}
}

// Result is the outcome of reading a mapping file.
type Result struct {
	Format  Format
	Mapping *metaguid.Mapping
}

// ReadFile reads and parses the mapping file at path.
// A missing file yields an error matching both metaguid.ErrMappingNotFound
// and fs.ErrNotExist.
func ReadFile(fsProvider filesystem.FileSystemProvider, path string) (Result, error) {
	data, err := fsProvider.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %w", metaguid.ErrMappingNotFound, err)
		}
		return Result{}, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}
	res, err := Parse(data)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// Read parses a mapping from r.
func Read(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read mapping: %w", err)
	}
	return Parse(data)
}

// Parse parses mapping file content. Content must be UTF-8 with an optional
// leading byte-order mark; anything else fails with metaguid.ErrEncoding.
func Parse(data []byte) (Result, error) {
	text, err := decode(data)
	if err != nil {
		return Result{}, err
	}

	res, ok, err := parseHeadered(text)
	if err != nil {
		return Result{}, err
	}
	if ok {
		return res, nil
	}
	return parseHeaderless(text)
}

// decode validates UTF-8 and strips a leading byte-order mark.
func decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", metaguid.ErrEncoding
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", metaguid.ErrEncoding, err)
	}
	return string(out), nil
}

func newCSVReader(text string) *csv.Reader {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

// parseHeadered runs the first stage. ok is false when the header row does
// not name both columns, in which case the caller falls back to parseHeaderless.
func parseHeadered(text string) (Result, bool, error) {
	r := newCSVReader(text)

	header, err := r.Read()
	if err == io.EOF {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, fmt.Errorf("failed to parse mapping header: %w", err)
	}

	pathCol, idCol := -1, -1
	for i, name := range header {
		// A repeated column name refers to its last occurrence.
		switch name {
		case metaguid.PathColumn:
			pathCol = i
		case metaguid.IdentifierColumn:
			idCol = i
		}
	}
	if pathCol < 0 || idCol < 0 {
		return Result{}, false, nil
	}

	m := metaguid.NewMapping()
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, false, fmt.Errorf("failed to parse mapping: %w", err)
		}
		add(m, NormalizePath(field(record, pathCol)), NormalizeIdentifier(field(record, idCol)))
	}
	return Result{Format: FormatHeadered, Mapping: m}, true, nil
}

// parseHeaderless runs the second stage. Rows with fewer than two fields are
// dropped without a diagnostic, and a literal path,guid row is treated as a
// header and skipped.
func parseHeaderless(text string) (Result, error) {
	r := newCSVReader(text)

	m := metaguid.NewMapping()
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("failed to parse mapping: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		path := NormalizePath(record[0])
		id := NormalizeIdentifier(record[1])
		if strings.EqualFold(path, metaguid.PathColumn) && strings.EqualFold(id, metaguid.IdentifierColumn) {
			continue
		}
		add(m, path, id)
	}
	return Result{Format: FormatHeaderless, Mapping: m}, nil
}

// add stores a normalized pair, dropping it if either side is empty.
func add(m *metaguid.Mapping, path, id string) {
	if path == "" || id == "" {
		return
	}
	m.Set(path, id)
}

// field returns record[i], or "" when the row is too short.
func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
