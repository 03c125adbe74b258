package sentence

import (
	"strings"

	"github.com/valyala/fastjson"
)

const (
	PremiseField    = "sentence1_binary_parse"
	HypothesisField = "sentence2_binary_parse"

	// the token separator of the binary parse fields
	separator = " "

	openBracket  = "("
	closeBracket = ")"
)

// Record is one sentence pair of the corpus, as binary parses.
type Record struct {
	// The premise binary parse, tokens and brackets space separated
	Premise string `json:"sentence1_binary_parse"`

	// The hypothesis binary parse
	Hypothesis string `json:"sentence2_binary_parse"`
}

// ParseRecord decodes one JSONL line into a Record. Both parse fields must
// be present and be strings.
func ParseRecord(p *fastjson.Parser, line []byte) (Record, error) {
	v, err := p.ParseBytes(line)
	if err != nil {
		return Record{}, &ParseError{Err: err}
	}

	premise, err := stringField(v, PremiseField)
	if err != nil {
		return Record{}, err
	}

	hypothesis, err := stringField(v, HypothesisField)
	if err != nil {
		return Record{}, err
	}

	return Record{Premise: premise, Hypothesis: hypothesis}, nil
}

func stringField(v *fastjson.Value, name string) (string, error) {
	f := v.Get(name)
	if f == nil {
		return "", &ParseError{Field: name, Err: ErrMissingField}
	}

	b, err := f.StringBytes()
	if err != nil {
		return "", &ParseError{Field: name, Err: ErrNotString}
	}

	// b points into the parser buffer, reused on the next line
	return string(b), nil
}

// Tokens splits a binary parse on single spaces. Consecutive spaces yield
// empty tokens, and an empty parse yields one empty token.
func Tokens(parse string) []string {
	return strings.Split(parse, separator)
}

// IsBracket reports whether the token is a structural parse bracket.
func IsBracket(token string) bool {
	return token == openBracket || token == closeBracket
}

// Clean returns the sentence text of a binary parse. If keepBrackets is false
// the "(" and ")" tokens are removed. It also returns the number of removed
// tokens.
func Clean(parse string, keepBrackets bool) (string, int) {
	if keepBrackets {
		return parse, 0
	}

	tokens := Tokens(parse)
	words := make([]string, 0, len(tokens))
	removed := 0
	for _, t := range tokens {
		if IsBracket(t) {
			removed++
			continue
		}
		words = append(words, t)
	}

	return strings.Join(words, separator), removed
}
