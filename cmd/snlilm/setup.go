package main

import (
	"fmt"
	"os"

	"github.com/revelaction/snlilm/storage"
	"github.com/revelaction/snlilm/storage/filesystem"
	"github.com/revelaction/snlilm/storage/sqlite/zombiezen"
)

// NewRecordReader returns the corpus store at path: a directory of JSONL
// split files or an imported SQLite file.
func NewRecordReader(p *Pool, path, prefix string) (storage.RecordReader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("corpus not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewRecordStore(path, prefix), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewRecordStore(pool, path), nil
}
