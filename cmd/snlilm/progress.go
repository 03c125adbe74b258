package main

import (
	"github.com/gosuri/uiprogress"

	"github.com/revelaction/snlilm/storage"
	"github.com/revelaction/snlilm/transform"
)

// transformSplit runs the transform of a split, showing a progress bar over
// its records unless quiet.
func transformSplit(src storage.RecordReader, split storage.Split, keepBrackets, quiet bool) (transform.Result, error) {
	if quiet {
		return transform.Split(src, split, keepBrackets, nil)
	}

	total, err := src.Count(split)
	if err != nil {
		return transform.Result{}, err
	}

	if total == 0 {
		return transform.Split(src, split, keepBrackets, nil)
	}

	p := uiprogress.New()
	p.Start()
	bar := p.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return split.String()
	})

	res, err := transform.Split(src, split, keepBrackets, func() {
		bar.Incr()
	})

	p.Stop()
	return res, err
}
