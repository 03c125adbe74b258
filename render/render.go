package render

import (
	"fmt"
	"io"

	"github.com/revelaction/snlilm/stat"
)

const DefaultFormat = "text"

var (
	Yellow = "\033[0;33m"
	Teal   = "\033[1;36m"
	Off    = "\033[0m"
)

func SupportedFormats() []string {
	return []string{"text", "json"}
}

// Renderer writes the stats of the processed splits.
type Renderer interface {
	Render(stats []stat.Stats) error
}

// New returns the Renderer for format, writing to w.
func New(format string, w io.Writer, hasColor bool) (Renderer, error) {
	switch format {
	case "text":
		r := NewTextRenderer(w)
		r.HasColor = hasColor
		return r, nil
	case "json":
		return NewJSONRenderer(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

// TextRenderer writes one line per split and a total line.
type TextRenderer struct {
	W        io.Writer
	HasColor bool
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

func (r *TextRenderer) Render(stats []stat.Stats) error {
	for _, s := range stats {
		if err := r.line(s.Split, s); err != nil {
			return err
		}
	}

	if len(stats) > 1 {
		return r.line("total", stat.Sum(stats))
	}
	return nil
}

func (r *TextRenderer) line(name string, s stat.Stats) error {
	_, err := fmt.Fprintf(r.W, "%s %s records, %s premises (%d repeated), %s hypotheses, %d brackets removed\n",
		r.color(Teal, fmt.Sprintf("%-6s", name)),
		r.color(Yellow, fmt.Sprint(s.Records)),
		r.color(Yellow, fmt.Sprint(s.Premises)),
		s.DuplicatePremises,
		r.color(Yellow, fmt.Sprint(s.Hypotheses)),
		s.BracketTokens,
	)
	return err
}

func (r *TextRenderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)
