package cscmat

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Matrix Market banner and keyword constants.
const (
	mmBanner = "%%MatrixMarket"

	mmFormatCoordinate = "coordinate"
	mmFormatArray      = "array"

	mmFieldPattern = "pattern"
	mmFieldReal    = "real"
	mmFieldInteger = "integer"

	mmSymGeneral   = "general"
	mmSymSymmetric = "symmetric"
	mmSymSkew      = "skew-symmetric"
	mmSymHermitian = "hermitian"

	// mmMaxDim bounds declared sizes before anything is allocated from
	// them; indices are uint32, so larger values can only be a size-line
	// lie.
	mmMaxDim = 1 << 31
)

// LoadMatrixMarket reads a Matrix Market (.mtx) file from disk.
func LoadMatrixMarket(path string) (*CSCBinaryMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cscmat: open %q: %w", path, err)
	}
	defer f.Close()

	m, err := ReadMatrixMarket(f)
	if err != nil {
		return nil, fmt.Errorf("cscmat: %q: %w", path, err)
	}
	return m, nil
}

// ReadMatrixMarket parses a Matrix Market stream into CSC form.
//
// Supported: coordinate and array formats; pattern, real, and integer
// fields (all interpreted as binary: nonzero ⇒ stored entry); general,
// symmetric, skew-symmetric and hermitian symmetry. Plain symmetric
// input mirrors each off-diagonal entry, so an undirected edge listed
// once produces both (r,c) and (c,r).
//
// Indices are 1-based on disk and converted to 0-based in memory.
func ReadMatrixMarket(r io.Reader) (*CSCBinaryMatrix, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cscmat: read: %w", err)
	}

	header, tokens, err := splitMM(string(raw))
	if err != nil {
		return nil, err
	}

	format, field := header[2], header[3]
	symmetry := header[4]

	switch symmetry {
	case mmSymGeneral, mmSymSymmetric, mmSymSkew, mmSymHermitian:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSymmetry, symmetry)
	}

	isPattern := field == mmFieldPattern
	if !isPattern && field != mmFieldReal && field != mmFieldInteger {
		return nil, fmt.Errorf("%w: unsupported field %q", ErrBadHeader, field)
	}

	tr := &tokenReader{tokens: tokens}

	switch format {
	case mmFormatCoordinate:
		return readCoordinate(tr, isPattern, symmetry == mmSymSymmetric)
	case mmFormatArray:
		if isPattern {
			return nil, fmt.Errorf("%w: array format cannot be pattern", ErrBadHeader)
		}
		return readArray(tr)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrBadHeader, format)
	}
}

// splitMM separates the banner line from the data tokens, dropping
// comment and blank lines along the way.
func splitMM(s string) (header []string, tokens []string, err error) {
	lines := strings.Split(s, "\n")
	if len(lines) == 0 {
		return nil, nil, ErrBadHeader
	}

	header = strings.Fields(lines[0])
	if len(header) != 5 || header[0] != mmBanner || header[1] != "matrix" {
		return nil, nil, fmt.Errorf("%w: %q", ErrBadHeader, strings.TrimSpace(lines[0]))
	}

	for _, line := range lines[1:] {
		t := strings.TrimSpace(line)
		if t == "" || t[0] == '%' {
			continue
		}
		tokens = append(tokens, strings.Fields(t)...)
	}
	return header, tokens, nil
}

// tokenReader walks a flat whitespace-token stream, mirroring fscanf-style
// consumption of the size line and data entries.
type tokenReader struct {
	tokens []string
	pos    int
}

func (t *tokenReader) next() (string, bool) {
	if t.pos >= len(t.tokens) {
		return "", false
	}
	s := t.tokens[t.pos]
	t.pos++
	return s, true
}

func (t *tokenReader) uint(sentinel error) (int, error) {
	s, ok := t.next()
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of input", sentinel)
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", sentinel, s)
	}
	return v, nil
}

// remaining reports how many tokens are left to consume.
func (t *tokenReader) remaining() int {
	return len(t.tokens) - t.pos
}

func (t *tokenReader) float() (float64, error) {
	s, ok := t.next()
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of input", ErrBadEntry)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadEntry, s)
	}
	return v, nil
}

// readCoordinate parses "i j [value]" entries and converts to CSC.
func readCoordinate(tr *tokenReader, isPattern, mirror bool) (*CSCBinaryMatrix, error) {
	nrows, err := tr.uint(ErrBadSize)
	if err != nil {
		return nil, err
	}
	ncols, err := tr.uint(ErrBadSize)
	if err != nil {
		return nil, err
	}
	nnz, err := tr.uint(ErrBadSize)
	if err != nil {
		return nil, err
	}
	if nrows > mmMaxDim || ncols > mmMaxDim || nnz > mmMaxDim {
		return nil, fmt.Errorf("%w: implausible dimensions %dx%d nnz=%d", ErrBadSize, nrows, ncols, nnz)
	}

	// Never pre-allocate more than the token stream can actually hold:
	// a declared nnz beyond the data present is caught entry by entry.
	capHint := nnz
	if rem := tr.remaining() / 2; rem < capHint {
		capHint = rem
	}
	cooRows := make([]uint32, 0, capHint)
	cooCols := make([]uint32, 0, capHint)
	for k := 0; k < nnz; k++ {
		i, err := tr.uint(ErrBadEntry)
		if err != nil {
			return nil, err
		}
		j, err := tr.uint(ErrBadEntry)
		if err != nil {
			return nil, err
		}
		val := 1.0
		if !isPattern {
			if val, err = tr.float(); err != nil {
				return nil, err
			}
		}
		if i < 1 || i > nrows || j < 1 || j > ncols {
			return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrBadEntry, i, j, nrows, ncols)
		}
		if val == 0 {
			continue
		}
		cooRows = append(cooRows, uint32(i-1))
		cooCols = append(cooCols, uint32(j-1))
		if mirror && i != j {
			cooRows = append(cooRows, uint32(j-1))
			cooCols = append(cooCols, uint32(i-1))
		}
	}

	m, err := FromCOO(nrows, ncols, cooRows, cooCols)
	if err != nil {
		return nil, err
	}
	return m, m.Validate()
}

// readArray parses a dense column-major value block, keeping only
// nonzero positions.
func readArray(tr *tokenReader) (*CSCBinaryMatrix, error) {
	nrows, err := tr.uint(ErrBadSize)
	if err != nil {
		return nil, err
	}
	ncols, err := tr.uint(ErrBadSize)
	if err != nil {
		return nil, err
	}
	if nrows > mmMaxDim || ncols > mmMaxDim {
		return nil, fmt.Errorf("%w: implausible dimensions %dx%d", ErrBadSize, nrows, ncols)
	}

	var cooRows, cooCols []uint32
	for j := 0; j < ncols; j++ {
		for i := 0; i < nrows; i++ {
			val, err := tr.float()
			if err != nil {
				return nil, err
			}
			if val != 0 {
				cooRows = append(cooRows, uint32(i))
				cooCols = append(cooCols, uint32(j))
			}
		}
	}

	m, err := FromCOO(nrows, ncols, cooRows, cooCols)
	if err != nil {
		return nil, err
	}
	return m, m.Validate()
}
