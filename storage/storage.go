package storage

import (
	"fmt"

	sent "github.com/revelaction/snlilm/sentence"
)

// Split is a named partition of the corpus.
type Split int

const (
	Test Split = iota
	Train
	Dev
)

// Splits lists the corpus splits in processing order.
var Splits = []Split{Test, Train, Dev}

func (s Split) String() string {
	switch s {
	case Test:
		return "test"
	case Train:
		return "train"
	case Dev:
		return "dev"
	}
	return fmt.Sprintf("split(%d)", int(s))
}

// ParseSplit returns the Split for its name.
func ParseSplit(name string) (Split, error) {
	for _, s := range Splits {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown split: %s", name)
}

// RecordReader defines read operations for corpus storage
type RecordReader interface {
	// Source returns a human readable location of the split records
	Source(split Split) string

	// Count returns the number of records of the split
	Count(split Split) (int, error)

	// Each calls fn for every record of the split, in corpus order. It stops
	// at the first error, decoding errors included.
	Each(split Split, fn func(sent.Record) error) error
}

// RecordWriter defines write operations for corpus storage
type RecordWriter interface {
	// Write replaces the records of the split
	Write(split Split, records []sent.Record) error
}

// RecordRepository combines read and write operations
type RecordRepository interface {
	RecordReader
	RecordWriter
}
