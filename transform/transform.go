package transform

import (
	"os"

	sent "github.com/revelaction/snlilm/sentence"
	"github.com/revelaction/snlilm/stat"
	"github.com/revelaction/snlilm/storage"
	"github.com/revelaction/snlilm/storage/filesystem"
)

// Result holds the cleaned sentences of one corpus source.
type Result struct {
	// Premises, without equal consecutive entries
	Premises []string

	// Hypotheses, one per record
	Hypotheses []string

	Stats stat.Stats
}

// Transformer cleans records one at a time, keeping the premise of the
// previous record to drop consecutive repeated premises.
type Transformer struct {
	keepBrackets bool

	// nil until the first record
	lastPremise *string

	premises   []string
	hypotheses []string
	stats      *stat.Handler
}

func NewTransformer(name string, keepBrackets bool) *Transformer {
	return &Transformer{
		keepBrackets: keepBrackets,
		premises:     []string{},
		hypotheses:   []string{},
		stats:        stat.NewHandler(name),
	}
}

// Add cleans a record and appends its sentences.
func (t *Transformer) Add(r sent.Record) {
	premise, pb := sent.Clean(r.Premise, t.keepBrackets)
	hypothesis, hb := sent.Clean(r.Hypothesis, t.keepBrackets)

	kept := t.lastPremise == nil || *t.lastPremise != premise
	if kept {
		t.premises = append(t.premises, premise)
	}
	t.lastPremise = &premise

	t.hypotheses = append(t.hypotheses, hypothesis)
	t.stats.Aggregate(kept, pb+hb)
}

func (t *Transformer) Result() Result {
	return Result{
		Premises:   t.premises,
		Hypotheses: t.hypotheses,
		Stats:      t.stats.Get(),
	}
}

// File reads the JSONL corpus file at path and returns its cleaned premises
// and hypotheses.
func File(path string, keepBrackets bool) (premises, hypotheses []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &sent.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	t := NewTransformer(path, keepBrackets)
	err = filesystem.ReadRecords(f, path, func(r sent.Record) error {
		t.Add(r)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	res := t.Result()
	return res.Premises, res.Hypotheses, nil
}

// Split transforms the records of a split read from src. onRecord, if not
// nil, is called after each record.
func Split(src storage.RecordReader, split storage.Split, keepBrackets bool, onRecord func()) (Result, error) {
	t := NewTransformer(split.String(), keepBrackets)
	err := src.Each(split, func(r sent.Record) error {
		t.Add(r)
		if onRecord != nil {
			onRecord()
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return t.Result(), nil
}
