package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/tasklist/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteRepository keeps the session snapshot in a private in-memory SQLite
// database. Nothing is written to disk; the data is gone once the last
// connection closes.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSessionSQLite opens the named in-memory database and applies the
// schema. Repositories opened with the same name share data.
func OpenSessionSQLite(name string) (*SQLiteRepository, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// The in-memory database lives as long as one connection stays open.
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Save(ctx context.Context, in Snapshot) (err error) {
	tasks, err := model.Deserialize(in.Tasks)
	if err != nil {
		return fmt.Errorf("storage: save snapshot: %w", err)
	}
	savedAt := in.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM saved_tasks`); err != nil {
		return err
	}
	for pos, task := range tasks {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO saved_tasks (position, task_id, label, completed)
			VALUES (?, ?, ?, ?)`,
			pos, task.ID, task.Label, boolToInt(task.Completed),
		); err != nil {
			return err
		}
	}
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO saved_session (slot, input_text, last_id, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET input_text = excluded.input_text, last_id = excluded.last_id, saved_at = excluded.saved_at`,
		in.InputText, in.LastID, savedAt.UTC().Format(sqliteTimeLayout),
	); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLiteRepository) Load(ctx context.Context) (Snapshot, error) {
	var out Snapshot
	var savedAt string
	row := r.db.QueryRowContext(ctx, `SELECT input_text, last_id, saved_at FROM saved_session WHERE slot = 1`)
	if err := row.Scan(&out.InputText, &out.LastID, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, err
	}
	parsed, err := time.Parse(sqliteTimeLayout, savedAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse saved_at: %w", err)
	}
	out.SavedAt = parsed

	rows, err := r.db.QueryContext(ctx, `SELECT task_id, label, completed FROM saved_tasks ORDER BY position ASC`)
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()

	out.Tasks = make([]model.Tuple, 0)
	for rows.Next() {
		var id int64
		var label string
		var completed int
		if err := rows.Scan(&id, &label, &completed); err != nil {
			return Snapshot{}, err
		}
		out.Tasks = append(out.Tasks, model.Tuple{int(id), label, completed == 1})
	}
	return out, rows.Err()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
