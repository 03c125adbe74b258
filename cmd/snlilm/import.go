package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"

	sent "github.com/revelaction/snlilm/sentence"
	"github.com/revelaction/snlilm/storage"
	"github.com/revelaction/snlilm/storage/filesystem"
	"github.com/revelaction/snlilm/storage/sqlite/zombiezen"
)

func importCommand(opts ImportOptions, ui UI) error {
	src := filesystem.NewRecordStore(opts.From, opts.Prefix)

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(pool, zombiezen.RecordsSchema); err != nil {
		return fmt.Errorf("failed to create records table: %w", err)
	}

	dst := zombiezen.NewRecordStore(pool, opts.To)

	fmt.Fprintf(ui.Out, "Reading splits from %s...\n", opts.From)

	var bar *uiprogress.Bar
	if !opts.Quiet {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(storage.Splits))
		bar.AppendCompleted()
		bar.PrependElapsed()
	}

	count := 0
	for _, split := range storage.Splits {
		var records []sent.Record
		err := src.Each(split, func(r sent.Record) error {
			records = append(records, r)
			return nil
		})
		if err != nil {
			stopProgress(bar)
			return fmt.Errorf("failed to read %s split: %w", split, err)
		}

		if err := dst.Write(split, records); err != nil {
			stopProgress(bar)
			return fmt.Errorf("failed to write %s split: %w", split, err)
		}
		count += len(records)

		if bar != nil {
			bar.Incr()
		}
	}
	stopProgress(bar)

	fmt.Fprintf(ui.Out, "Successfully imported %d records from %s to %s\n", count, opts.From, opts.To)
	return nil
}

func stopProgress(bar *uiprogress.Bar) {
	if bar != nil {
		uiprogress.Stop()
	}
}
