package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/valyala/fastjson"

	sent "github.com/revelaction/snlilm/sentence"
	"github.com/revelaction/snlilm/storage"
)

const (
	DefaultPrefix = "snli_1.0"

	ext = ".jsonl"

	// maxLineSize bounds a single corpus line
	maxLineSize = 10 * 1024 * 1024
)

// RecordStore reads and writes the corpus splits as JSONL files of a
// directory, named <prefix>_<split>.jsonl.
type RecordStore struct {
	dir    string
	prefix string
}

var _ storage.RecordRepository = (*RecordStore)(nil)

// NewRecordStore creates a filesystem record store. An empty prefix means
// DefaultPrefix.
func NewRecordStore(dir, prefix string) *RecordStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RecordStore{dir: dir, prefix: prefix}
}

// Path returns the file path of the split.
func (s *RecordStore) Path(split storage.Split) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s%s", s.prefix, split, ext))
}

func (s *RecordStore) Source(split storage.Split) string {
	return s.Path(split)
}

// Count returns the number of lines of the split file.
func (s *RecordStore) Count(split storage.Split) (int, error) {
	path := s.Path(split)
	f, err := os.Open(path)
	if err != nil {
		return 0, &sent.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	n, err := CountLines(f)
	if err != nil {
		return 0, &sent.IOError{Op: "read", Path: path, Err: err}
	}
	return n, nil
}

// Each streams the records of the split file.
func (s *RecordStore) Each(split storage.Split, fn func(sent.Record) error) error {
	path := s.Path(split)
	f, err := os.Open(path)
	if err != nil {
		return &sent.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return ReadRecords(f, path, fn)
}

// Write replaces the split file with one JSON object per record.
func (s *RecordStore) Write(split storage.Split, records []sent.Record) (err error) {
	path := s.Path(split)
	f, err := os.Create(path)
	if err != nil {
		return &sent.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &sent.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	var a fastjson.Arena
	var buf []byte
	for _, r := range records {
		o := a.NewObject()
		o.Set(sent.PremiseField, a.NewString(r.Premise))
		o.Set(sent.HypothesisField, a.NewString(r.Hypothesis))

		buf = o.MarshalTo(buf[:0])
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return &sent.IOError{Op: "write", Path: path, Err: err}
		}
		a.Reset()
	}

	if err := w.Flush(); err != nil {
		return &sent.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// ReadRecords decodes r line by line, calling fn for each record. source
// names r in errors.
func ReadRecords(r io.Reader, source string, fn func(sent.Record) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var p fastjson.Parser
	line := 0
	for scanner.Scan() {
		line++
		rec, err := sent.ParseRecord(&p, scanner.Bytes())
		if err != nil {
			var perr *sent.ParseError
			if errors.As(err, &perr) {
				perr.Source = source
				perr.Line = line
			}
			return err
		}

		if err := fn(rec); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return &sent.IOError{Op: "read", Path: source, Err: err}
	}
	return nil
}

// CountLines counts the lines of r, a last line without newline included.
func CountLines(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		n++
	}
	return n, scanner.Err()
}
