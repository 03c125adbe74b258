package main

import (
	"fmt"
	"os"

	sent "github.com/revelaction/snlilm/sentence"
	"github.com/revelaction/snlilm/storage"
	"github.com/revelaction/snlilm/storage/filesystem"
	"github.com/revelaction/snlilm/storage/sqlite/zombiezen"
)

func exportCommand(opts ExportOptions, ui UI) error {
	pool, err := zombiezen.NewPool(opts.From)
	if err != nil {
		return err
	}
	defer pool.Close()
	src := zombiezen.NewRecordStore(pool, opts.From)

	// Ensure target directory exists
	if err := os.MkdirAll(opts.To, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}
	dst := filesystem.NewRecordStore(opts.To, opts.Prefix)

	count := 0
	for _, split := range storage.Splits {
		var records []sent.Record
		err := src.Each(split, func(r sent.Record) error {
			records = append(records, r)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to read %s split: %w", split, err)
		}

		if err := dst.Write(split, records); err != nil {
			return err
		}
		count += len(records)
	}

	fmt.Fprintf(ui.Out, "Successfully exported %d records from %s to %s\n", count, opts.From, opts.To)
	return nil
}
