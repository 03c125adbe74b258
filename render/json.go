package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/snlilm/stat"
)

// JSONRenderer writes split stats as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the split stats as a JSON array.
func (r *JSONRenderer) Render(stats []stat.Stats) error {
	if stats == nil {
		stats = []stat.Stats{}
	}
	return json.NewEncoder(r.W).Encode(stats)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
