package analytics

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/franpass87/bookwidget/internal/logger"
)

// Spool is the local analytics queue: events are appended to a SQLite
// table and drained to the collector later. Push never reports failure
// upward; a full disk or locked database costs an event, not a booking.
type Spool struct {
	db  *sql.DB
	hc  *http.Client
	url string
}

const spoolSchema = `
CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	params TEXT NOT NULL DEFAULT '{}',
	created_at TEXT NOT NULL
);`

// OpenSpool opens (creating if needed) the spool database. collectorURL
// may be empty; Flush is then a no-op and events accumulate locally.
func OpenSpool(path, collectorURL string) (*Spool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create spool directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spool database: %w", err)
	}
	if _, err := db.Exec(spoolSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize spool schema: %w", err)
	}
	return &Spool{
		db:  db,
		hc:  &http.Client{Timeout: 10 * time.Second},
		url: collectorURL,
	}, nil
}

// Close releases the underlying database.
func (s *Spool) Close() error {
	return s.db.Close()
}

// Push appends one event. Failures are logged and dropped.
func (s *Spool) Push(ev Event) {
	params, err := json.Marshal(ev.Params)
	if err != nil {
		logger.Warn("dropping analytics event", "name", ev.Name, "error", err)
		return
	}
	_, err = s.db.Exec(
		`INSERT INTO events (id, name, params, created_at) VALUES (?, ?, ?, ?)`,
		ev.ID, ev.Name, string(params), ev.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		logger.Warn("dropping analytics event", "name", ev.Name, "error", err)
	}
}

// Depth returns the number of events waiting to be flushed.
func (s *Spool) Depth() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

// Flush posts all pending events to the collector as one JSON batch and
// deletes the delivered rows. With no collector configured it reports
// zero without touching the queue.
func (s *Spool) Flush(ctx context.Context) (int, error) {
	if s.url == "" {
		return 0, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, params, created_at FROM events ORDER BY rowid`)
	if err != nil {
		return 0, fmt.Errorf("failed to read spool: %w", err)
	}
	defer rows.Close()

	var events []Event
	var ids []any
	for rows.Next() {
		var ev Event
		var params, createdAt string
		if err := rows.Scan(&ev.ID, &ev.Name, &params, &createdAt); err != nil {
			return 0, fmt.Errorf("failed to read spool: %w", err)
		}
		if err := json.Unmarshal([]byte(params), &ev.Params); err != nil {
			logger.Warn("skipping malformed spooled event", "id", ev.ID, "error", err)
			continue
		}
		if ev.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			ev.CreatedAt = time.Time{}
		}
		events = append(events, ev)
		ids = append(ids, ev.ID)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read spool: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	payload, err := json.Marshal(events)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.hc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to deliver events: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("collector rejected events (status=%d)", resp.StatusCode)
	}

	placeholders := ""
	for i := range ids {
		if i > 0 {
			placeholders += ","
		}
		placeholders += "?"
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id IN (`+placeholders+`)`, ids...); err != nil {
		return len(events), fmt.Errorf("delivered %d events but failed to clear spool: %w", len(events), err)
	}
	return len(events), nil
}
