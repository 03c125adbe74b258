package file

import (
	"bufio"
	"fmt"
	"io"
	"os"

	sent "github.com/revelaction/snlilm/sentence"
)

// Mode selects how WriteSentences opens the output file.
type Mode int

const (
	// Truncate creates the file or discards its content
	Truncate Mode = iota

	// Append creates the file or writes after its content
	Append
)

func (m Mode) String() string {
	switch m {
	case Truncate:
		return "truncate"
	case Append:
		return "append"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func (m Mode) flag() int {
	if m == Append {
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
}

// WriteSentences writes premises then hypotheses to path, one per line. The
// parent directory must exist.
func WriteSentences(path string, premises, hypotheses []string, mode Mode) (err error) {
	f, err := os.OpenFile(path, mode.flag(), 0644)
	if err != nil {
		return &sent.IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &sent.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if err := Write(f, premises, hypotheses); err != nil {
		return &sent.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Write writes each premise and then each hypothesis to w, newline
// terminated.
func Write(w io.Writer, premises, hypotheses []string) error {
	bw := bufio.NewWriter(w)
	for _, lines := range [][]string{premises, hypotheses} {
		for _, l := range lines {
			if _, err := bw.WriteString(l); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
