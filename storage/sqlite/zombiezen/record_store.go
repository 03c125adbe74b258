package zombiezen

import (
	"context"
	"fmt"

	sent "github.com/revelaction/snlilm/sentence"
	"github.com/revelaction/snlilm/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type RecordStore struct {
	pool *sqlitex.Pool
	path string
}

var _ storage.RecordRepository = (*RecordStore)(nil)

// NewRecordStore returns a store over pool. path is only used to name the
// source of the records.
func NewRecordStore(pool *sqlitex.Pool, path string) *RecordStore {
	return &RecordStore{pool: pool, path: path}
}

func (s *RecordStore) Source(split storage.Split) string {
	return fmt.Sprintf("%s (%s)", s.path, split)
}

func (s *RecordStore) Count(split storage.Split) (int, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer s.pool.Put(conn)

	count := 0
	err = sqlitex.Execute(conn, "SELECT COUNT(*) FROM records WHERE split = ?", &sqlitex.ExecOptions{
		Args: []interface{}{split.String()},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			count = stmt.ColumnInt(0)
			return nil
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s records: %w", split, err)
	}
	return count, nil
}

func (s *RecordStore) Each(split storage.Split, fn func(sent.Record) error) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	return sqlitex.Execute(conn, "SELECT premise, hypothesis FROM records WHERE split = ? ORDER BY id", &sqlitex.ExecOptions{
		Args: []interface{}{split.String()},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			return fn(sent.Record{
				Premise:    stmt.ColumnText(0),
				Hypothesis: stmt.ColumnText(1),
			})
		},
	})
}

// Write replaces the records of split in a single transaction.
func (s *RecordStore) Write(split storage.Split, records []sent.Record) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "DELETE FROM records WHERE split = ?", &sqlitex.ExecOptions{
		Args: []interface{}{split.String()},
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s records: %w", split, err)
	}

	for _, r := range records {
		err = sqlitex.Execute(conn, "INSERT INTO records (split, premise, hypothesis) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{split.String(), r.Premise, r.Hypothesis},
		})
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	return nil
}
