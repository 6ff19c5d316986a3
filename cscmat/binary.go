package cscmat

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Columnar binary-sparse format (.csb):
//
//	bytes 0..3   magic "CSCB"
//	byte  4      version (currently 1)
//	u64   x3     nrows, ncols, nnz (little endian)
//	u32   xN     ColPtr (ncols+1 words), then RowIdx (nnz words)
//
// The layout mirrors the in-memory struct so loading is a straight copy.
var csbMagic = [4]byte{'C', 'S', 'C', 'B'}

const (
	csbVersion = 1

	// csbMaxDim bounds every declared dimension before anything is
	// allocated from it. Row indices are uint32, so nothing past 2³¹
	// vertices or nonzeros is representable input, only a header lie.
	csbMaxDim = 1 << 31
)

// LoadBinary reads a .csb file from disk.
func LoadBinary(path string) (*CSCBinaryMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cscmat: open %q: %w", path, err)
	}
	defer f.Close()

	m, err := ReadBinary(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("cscmat: %q: %w", path, err)
	}
	return m, nil
}

// ReadBinary parses a CSCB stream.
func ReadBinary(r io.Reader) (*CSCBinaryMatrix, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCSB, err)
	}
	if magic != csbMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrNotCSB, magic[:])
	}
	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCSB, err)
	}
	if version[0] != csbVersion {
		return nil, fmt.Errorf("%w: version %d", ErrNotCSB, version[0])
	}

	var dims [3]uint64
	if err := binary.Read(r, binary.LittleEndian, dims[:]); err != nil {
		return nil, fmt.Errorf("%w: dimensions: %v", ErrNotCSB, err)
	}
	for _, d := range dims {
		if d > csbMaxDim {
			return nil, fmt.Errorf("%w: implausible dimension %d", ErrNotCSB, d)
		}
	}

	m := &CSCBinaryMatrix{
		NRows:  int(dims[0]),
		NCols:  int(dims[1]),
		NNZ:    int(dims[2]),
		ColPtr: make([]uint32, dims[1]+1),
		RowIdx: make([]uint32, dims[2]),
	}
	if err := binary.Read(r, binary.LittleEndian, m.ColPtr); err != nil {
		return nil, fmt.Errorf("%w: ColPtr: %v", ErrNotCSB, err)
	}
	if err := binary.Read(r, binary.LittleEndian, m.RowIdx); err != nil {
		return nil, fmt.Errorf("%w: RowIdx: %v", ErrNotCSB, err)
	}

	return m, m.Validate()
}

// WriteBinary emits m in CSCB form. The output round-trips through
// ReadBinary bit-for-bit.
func (m *CSCBinaryMatrix) WriteBinary(w io.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(csbMagic[:]); err != nil {
		return fmt.Errorf("cscmat: write magic: %w", err)
	}
	if err := bw.WriteByte(csbVersion); err != nil {
		return fmt.Errorf("cscmat: write version: %w", err)
	}
	dims := [3]uint64{uint64(m.NRows), uint64(m.NCols), uint64(m.NNZ)}
	if err := binary.Write(bw, binary.LittleEndian, dims[:]); err != nil {
		return fmt.Errorf("cscmat: write dimensions: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, m.ColPtr); err != nil {
		return fmt.Errorf("cscmat: write ColPtr: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, m.RowIdx); err != nil {
		return fmt.Errorf("cscmat: write RowIdx: %w", err)
	}
	return bw.Flush()
}
