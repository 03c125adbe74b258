package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/snlilm/file"
	"github.com/revelaction/snlilm/render"
	"github.com/revelaction/snlilm/stat"
	"github.com/revelaction/snlilm/storage"
)

// target is the output file of a split.
type target struct {
	split storage.Split
	name  string
	mode  file.Mode
}

// The dev split is appended to the train output.
var targets = []target{
	{split: storage.Test, name: "test.txt", mode: file.Truncate},
	{split: storage.Train, name: "train.txt", mode: file.Truncate},
	{split: storage.Dev, name: "train.txt", mode: file.Append},
}

func preprocessCommand(opts PreprocessOptions, ui UI) error {
	p := &Pool{}
	defer p.Close()

	src, err := NewRecordReader(p, opts.InPath, opts.Prefix)
	if err != nil {
		return err
	}

	if err := ensureDir(opts.OutPath, ui); err != nil {
		return err
	}

	var stats []stat.Stats
	for _, t := range targets {
		fmt.Fprintf(ui.Out, "Loading %s\n", src.Source(t.split))
		res, err := transformSplit(src, t.split, opts.KeepBrackets, opts.Quiet)
		if err != nil {
			return err
		}

		dest := filepath.Join(opts.OutPath, t.name)
		fmt.Fprintf(ui.Out, "Writing to %s\n\n", dest)
		if err := file.WriteSentences(dest, res.Premises, res.Hypotheses, t.mode); err != nil {
			return err
		}

		stats = append(stats, res.Stats)
	}

	return render.NewTextRenderer(ui.Out).Render(stats)
}

// ensureDir creates the output directory if it does not exist.
func ensureDir(path string, ui UI) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Fprintf(ui.Out, "Creating directory %s\n", path)
	return nil
}
