package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	sent "github.com/revelaction/snlilm/sentence"
	"github.com/revelaction/snlilm/storage"
)

const devLines = `{"sentence1_binary_parse": "( ( the cat ) sat )", "sentence2_binary_parse": "( cat sat )"}
{"sentence1_binary_parse": "( ( the cat ) sat )", "sentence2_binary_parse": "( a cat )"}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func collect(t *testing.T, s storage.RecordReader, split storage.Split) ([]sent.Record, error) {
	t.Helper()
	var records []sent.Record
	err := s.Each(split, func(r sent.Record) error {
		records = append(records, r)
		return nil
	})
	return records, err
}

func TestRecordStorePath(t *testing.T) {
	s := NewRecordStore("corpus", "")
	want := filepath.Join("corpus", "snli_1.0_train.jsonl")
	if got := s.Path(storage.Train); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	s = NewRecordStore("corpus", "multinli_1.0")
	want = filepath.Join("corpus", "multinli_1.0_dev.jsonl")
	if got := s.Path(storage.Dev); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestRecordStoreEach(t *testing.T) {
	dir := t.TempDir()
	s := NewRecordStore(dir, "")
	writeFile(t, s.Path(storage.Dev), devLines)

	records, err := collect(t, s, storage.Dev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []sent.Record{
		{Premise: "( ( the cat ) sat )", Hypothesis: "( cat sat )"},
		{Premise: "( ( the cat ) sat )", Hypothesis: "( a cat )"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}

	n, err := s.Count(storage.Dev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
}

func TestRecordStoreMissingFile(t *testing.T) {
	s := NewRecordStore(t.TempDir(), "")

	_, err := collect(t, s, storage.Test)
	var ioErr *sent.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}

	if _, err := s.Count(storage.Test); !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError from Count, got %v", err)
	}
}

func TestReadRecordsParseErrorLine(t *testing.T) {
	input := devLines + `{"sentence1_binary_parse": "( a b )"}` + "\n" + devLines

	calls := 0
	err := ReadRecords(strings.NewReader(input), "dev.jsonl", func(sent.Record) error {
		calls++
		return nil
	})

	var perr *sent.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 3 || perr.Source != "dev.jsonl" {
		t.Errorf("expected dev.jsonl:3, got %s:%d", perr.Source, perr.Line)
	}
	if !errors.Is(err, sent.ErrMissingField) {
		t.Errorf("expected missing field, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 records before the failure, got %d", calls)
	}
}

func TestReadRecordsBlankLineFails(t *testing.T) {
	input := devLines + "\n" + devLines
	err := ReadRecords(strings.NewReader(input), "dev.jsonl", func(sent.Record) error { return nil })

	var perr *sent.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 3 {
		t.Errorf("expected line 3, got %d", perr.Line)
	}
}

func TestReadRecordsCallbackError(t *testing.T) {
	stop := errors.New("stop")
	err := ReadRecords(strings.NewReader(devLines), "dev.jsonl", func(sent.Record) error { return stop })
	if !errors.Is(err, stop) {
		t.Fatalf("expected callback error, got %v", err)
	}
}

func TestRecordStoreWriteThenEach(t *testing.T) {
	s := NewRecordStore(t.TempDir(), "")

	want := []sent.Record{
		{Premise: `( "quoted" \ back )`, Hypothesis: "( x )"},
		{Premise: "", Hypothesis: "ünïcode"},
	}
	if err := s.Write(storage.Train, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := collect(t, s, storage.Train)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestCountLines(t *testing.T) {
	for input, want := range map[string]int{"": 0, "a\n": 1, "a\nb": 2, "a\n\nb\n": 3} {
		n, err := CountLines(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != want {
			t.Errorf("expected %d lines for %q, got %d", want, input, n)
		}
	}
}
