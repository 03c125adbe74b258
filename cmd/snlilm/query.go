package main

import (
	"github.com/revelaction/snlilm/query"
)

func queryCommand(opts QueryOptions, ui UI) error {
	h := query.NewHandler(ui.Out, opts.KeepBrackets)
	return h.Run()
}
