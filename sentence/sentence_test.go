package sentence

import (
	"errors"
	"strings"
	"testing"

	"github.com/valyala/fastjson"
)

func TestCleanStripsBrackets(t *testing.T) {
	got, removed := Clean("( ( the cat ) sat )", false)
	if got != "the cat sat" {
		t.Fatalf("expected %q, got %q", "the cat sat", got)
	}

	if removed != 4 {
		t.Errorf("expected 4 removed brackets, got %d", removed)
	}
}

func TestCleanKeepBracketsIsIdentity(t *testing.T) {
	for _, parse := range []string{"( ( the cat ) sat )", "", "a  b", " ( x ) "} {
		got, removed := Clean(parse, true)
		if got != parse {
			t.Errorf("expected %q unchanged, got %q", parse, got)
		}
		if removed != 0 {
			t.Errorf("expected 0 removed for %q, got %d", parse, removed)
		}
	}
}

func TestCleanKeepsTokensContainingBrackets(t *testing.T) {
	got, _ := Clean("( f(x) -LRB- ) (", false)
	if got != "f(x) -LRB-" {
		t.Fatalf("expected %q, got %q", "f(x) -LRB-", got)
	}
}

func TestCleanNaiveSplit(t *testing.T) {
	// the empty token between the two spaces survives
	got, _ := Clean("( a  b )", false)
	if got != "a  b" {
		t.Fatalf("expected %q, got %q", "a  b", got)
	}

	got, _ = Clean("", false)
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}

	if n := len(Tokens("")); n != 1 {
		t.Fatalf("expected one empty token, got %d", n)
	}
}

func TestCleanLeavesNoBracketTokens(t *testing.T) {
	got, _ := Clean("( ( ( A man ) ( is ( playing ( a guitar ) ) ) ) . )", false)
	for _, tok := range Tokens(got) {
		if IsBracket(tok) {
			t.Fatalf("bracket token left in %q", got)
		}
	}
}

func TestParseRecord(t *testing.T) {
	var p fastjson.Parser
	line := `{"gold_label": "neutral", "sentence1_binary_parse": "( ( the cat ) sat )", "sentence2_binary_parse": "( cat sat )"}`

	r, err := ParseRecord(&p, []byte(line))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Premise != "( ( the cat ) sat )" {
		t.Errorf("unexpected premise %q", r.Premise)
	}

	if r.Hypothesis != "( cat sat )" {
		t.Errorf("unexpected hypothesis %q", r.Hypothesis)
	}
}

func TestParseRecordUnicode(t *testing.T) {
	var p fastjson.Parser
	line := `{"sentence1_binary_parse": "( café ( naïve ) )", "sentence2_binary_parse": "ö"}`

	r, err := ParseRecord(&p, []byte(line))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Premise != "( café ( naïve ) )" || r.Hypothesis != "ö" {
		t.Fatalf("unexpected record %+v", r)
	}
}

func TestParseRecordErrors(t *testing.T) {
	var p fastjson.Parser

	cases := []struct {
		line  string
		field string
		err   error
	}{
		{line: `{"sentence2_binary_parse": "a"}`, field: PremiseField, err: ErrMissingField},
		{line: `{"sentence1_binary_parse": "a"}`, field: HypothesisField, err: ErrMissingField},
		{line: `{"sentence1_binary_parse": 1, "sentence2_binary_parse": "a"}`, field: PremiseField, err: ErrNotString},
		{line: `{"sentence1_binary_parse": "a", "sentence2_binary_parse": null}`, field: HypothesisField, err: ErrNotString},
		{line: `["sentence1_binary_parse"]`, field: PremiseField, err: ErrMissingField},
	}

	for _, c := range cases {
		_, err := ParseRecord(&p, []byte(c.line))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError for %s, got %v", c.line, err)
		}
		if perr.Field != c.field {
			t.Errorf("expected field %s, got %s", c.field, perr.Field)
		}
		if !errors.Is(err, c.err) {
			t.Errorf("expected %v for %s, got %v", c.err, c.line, err)
		}
	}
}

func TestParseRecordInvalidJSON(t *testing.T) {
	var p fastjson.Parser
	for _, line := range []string{"", "{", "not json"} {
		_, err := ParseRecord(&p, []byte(line))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError for %q, got %v", line, err)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Source: "dev.jsonl", Line: 3, Field: PremiseField, Err: ErrMissingField}
	msg := err.Error()
	if !strings.Contains(msg, "dev.jsonl:3") || !strings.Contains(msg, PremiseField) {
		t.Fatalf("unexpected message %q", msg)
	}
}
