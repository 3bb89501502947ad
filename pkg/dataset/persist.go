package dataset

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnsupportedExtension indicates a save path with an unrecognized
// file extension.
var ErrUnsupportedExtension = errors.New("unsupported dataset file extension")

// savedDataset is the on-disk gob layout.
type savedDataset struct {
	Column string
	Rows   []Row
}

// Save serializes the dataset to path with encoding/gob, creating the parent
// directory if absent. Recognized extensions are ".gob", ".pkl" and
// ".pickle"; the legacy two are kept so paths from the original tooling keep
// working. A write failure is returned rather than aborting the caller.
func (d *Dataset) Save(path string) error {
	switch filepath.Ext(path) {
	case ".gob", ".pkl", ".pickle":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExtension, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer out.Close()

	if err := gob.NewEncoder(out).Encode(savedDataset{Column: d.column, Rows: d.rows}); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	return nil
}

// Load reads a dataset previously written by Save.
func Load(path string) (*Dataset, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer in.Close()

	var saved savedDataset
	if err := gob.NewDecoder(in).Decode(&saved); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return &Dataset{column: saved.Column, rows: saved.Rows}, nil
}
