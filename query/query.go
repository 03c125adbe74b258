package query

import (
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/valyala/fastjson"

	sent "github.com/revelaction/snlilm/sentence"
)

const (
	completionThreshold = 2

	quit = "quit"
)

// Handler runs an interactive prompt that cleans binary parses.
type Handler struct {
	Out          io.Writer
	KeepBrackets bool

	parser fastjson.Parser

	// words seen in previous inputs, used for completion
	words map[string]bool
}

func NewHandler(out io.Writer, keepBrackets bool) *Handler {
	return &Handler{
		Out:          out,
		KeepBrackets: keepBrackets,
		words:        map[string]bool{},
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+B: Toggle brackets, 🔧 quit")

	history := []string{}

	for {
		in := prompt.Input("      🌳 ", h.completer,
			prompt.OptionTitle("snlilm query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlB,
				Fn: func(buf *prompt.Buffer) {
					h.KeepBrackets = !h.KeepBrackets
					fmt.Fprintf(h.Out, "Keep brackets set to %t\n", h.KeepBrackets)
				}}),
		)

		if strings.TrimSpace(in) == quit {
			return nil
		}

		history = append(history, in)
		fmt.Fprint(h.Out, h.Eval(in))
	}
}

// Eval cleans the input and returns the lines to print. The input is either
// a binary parse or a whole corpus record.
func (h *Handler) Eval(in string) string {
	if in == "" {
		return ""
	}

	if strings.HasPrefix(strings.TrimSpace(in), "{") {
		r, err := sent.ParseRecord(&h.parser, []byte(in))
		if err != nil {
			return fmt.Sprintf("✍  %s\n", err)
		}

		premise, _ := sent.Clean(r.Premise, h.KeepBrackets)
		hypothesis, _ := sent.Clean(r.Hypothesis, h.KeepBrackets)
		h.remember(premise)
		h.remember(hypothesis)
		return fmt.Sprintf("P: %s\nH: %s\n", premise, hypothesis)
	}

	cleaned, removed := sent.Clean(in, h.KeepBrackets)
	h.remember(cleaned)
	return fmt.Sprintf("%s   (%d brackets)\n", cleaned, removed)
}

func (h *Handler) remember(s string) {
	for _, w := range sent.Tokens(s) {
		if len(w) >= completionThreshold && !sent.IsBracket(w) {
			h.words[w] = true
		}
	}
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	word := in.GetWordBeforeCursor()
	if len(word) < completionThreshold {
		return []prompt.Suggest{}
	}

	s := []prompt.Suggest{{Text: quit, Description: "exit"}}
	for w := range h.words {
		s = append(s, prompt.Suggest{Text: w})
	}

	return prompt.FilterHasPrefix(s, word, true)
}
