package main

import (
	"github.com/revelaction/snlilm/render"
	"github.com/revelaction/snlilm/stat"
	"github.com/revelaction/snlilm/storage"
)

func statCommand(opts StatOptions, ui UI) error {
	r, err := render.New(opts.Format, ui.Out, !opts.NoColor)
	if err != nil {
		return err
	}

	p := &Pool{}
	defer p.Close()

	src, err := NewRecordReader(p, opts.InPath, opts.Prefix)
	if err != nil {
		return err
	}

	stats := make([]stat.Stats, 0, len(storage.Splits))
	for _, split := range storage.Splits {
		res, err := transformSplit(src, split, opts.KeepBrackets, opts.Quiet)
		if err != nil {
			return err
		}
		stats = append(stats, res.Stats)
	}

	return r.Render(stats)
}
