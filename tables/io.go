package tables

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cubeforge/kociemba/cube"
	"github.com/gtank/blake2/blake2b"
)

// checksum256 returns the unkeyed, unsalted 32-byte BLAKE2b-256 digest of
// data, using github.com/gtank/blake2/blake2b directly (no hash.Hash
// wrapper is needed for a single one-shot Write+Sum).
func checksum256(data []byte) ([]byte, error) {
	d, err := blake2b.NewDigest(nil, nil, nil, 32)
	if err != nil {
		return nil, err
	}
	if _, err := d.Write(data); err != nil {
		return nil, err
	}
	return d.Sum(nil), nil
}

// Save writes t's pruning tables to dir as raw, headerless byte files,
// each paired with a ".b2b" sidecar holding its BLAKE2b-256 checksum so
// Load can detect silent corruption in addition to its size check.
func Save(dir string, t *Tables) error {
	entries := []struct {
		name string
		data []byte
	}{
		{COFileName, t.CO},
		{EOFileName, t.EO},
		{UDSFileName, t.UDS},
		{CPFileName, t.CP},
		{EPFileName, t.EP},
		{SliceEPFileName, t.SliceEP},
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tables: creating %s: %w", dir, err)
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.name)
		if err := os.WriteFile(path, e.data, 0o644); err != nil {
			return fmt.Errorf("tables: writing %s: %w", e.name, err)
		}
		sum, err := checksum256(e.data)
		if err != nil {
			return fmt.Errorf("tables: checksumming %s: %w", e.name, err)
		}
		if err := os.WriteFile(path+checksumSuffix, sum, 0o644); err != nil {
			return fmt.Errorf("tables: writing %s%s: %w", e.name, checksumSuffix, err)
		}
	}
	return nil
}

// loadOne reads one fixed-size table file from dir. A wrong-sized file
// is fatal; when a checksum sidecar is present it is verified too.
func loadOne(dir, name string, wantSize int) ([]byte, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTableMissing, path)
		}
		return nil, fmt.Errorf("tables: reading %s: %w", path, err)
	}
	if len(data) != wantSize {
		return nil, fmt.Errorf("%w: %s has %d bytes, want %d", ErrTableSize, path, len(data), wantSize)
	}

	sumPath := path + checksumSuffix
	want, err := os.ReadFile(sumPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No sidecar (e.g. a table produced by a pre-checksum tool):
			// the size check above is the only guarantee available.
			return data, nil
		}
		return nil, fmt.Errorf("tables: reading %s: %w", sumPath, err)
	}
	got, err := checksum256(data)
	if err != nil {
		return nil, fmt.Errorf("tables: checksumming %s: %w", path, err)
	}
	if !bytes.Equal(got, want) {
		return nil, fmt.Errorf("%w: %s", ErrTableCorrupt, path)
	}
	return data, nil
}

// Load reads the six pruning tables from dir. Any missing, wrong-sized,
// or (when a checksum sidecar exists) corrupted file is a fatal error:
// the solver cannot start without a trustworthy heuristic source.
func Load(dir string) (*Tables, error) {
	co, err := loadOne(dir, COFileName, cube.NumCOCoords)
	if err != nil {
		return nil, err
	}
	eo, err := loadOne(dir, EOFileName, cube.NumEOCoords)
	if err != nil {
		return nil, err
	}
	uds, err := loadOne(dir, UDSFileName, cube.NumUDSCoords)
	if err != nil {
		return nil, err
	}
	cp, err := loadOne(dir, CPFileName, cube.NumCPCoords)
	if err != nil {
		return nil, err
	}
	ep, err := loadOne(dir, EPFileName, cube.NumEPCoords)
	if err != nil {
		return nil, err
	}
	sliceEP, err := loadOne(dir, SliceEPFileName, cube.NumSliceEPCoords)
	if err != nil {
		return nil, err
	}
	return &Tables{CO: co, EO: eo, UDS: uds, CP: cp, EP: ep, SliceEP: sliceEP}, nil
}
