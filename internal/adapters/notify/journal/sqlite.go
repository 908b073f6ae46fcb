// Package journal keeps an append-only SQLite log of committed asset events.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const queueSize = 4096

var errEmptyPath = errors.New("empty journal path")

// Journal appends events from a single writer goroutine so rows land in
// the order Notify was called.
type Journal struct {
	db     *sql.DB
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	ch     chan request
	wg     sync.WaitGroup
	once   sync.Once
}

type request struct {
	event domain.Event
	done  chan struct{}
}

var _ ports.Notifier = (*Journal)(nil)

func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, errEmptyPath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	j := &Journal{
		db:     db,
		logger: slog.New(slog.DiscardHandler),
		ch:     make(chan request, queueSize),
	}
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		j.loop()
	}()
	return j, nil
}

func (j *Journal) WithLogger(logger *slog.Logger) *Journal {
	if logger != nil {
		j.logger = logger
	}
	return j
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("apply journal pragma: %w", err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			token_id INTEGER,
			asset_id INTEGER NOT NULL,
			replaces_id INTEGER,
			priorities TEXT,
			at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_token_seq ON events(token_id, seq);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create journal schema: %w", err)
		}
	}
	return nil
}

// Notify queues the event. Events arriving after Close are dropped.
func (j *Journal) Notify(ctx context.Context, event domain.Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	j.enqueue(request{event: event})
}

// Flush blocks until every event queued before the call is written.
func (j *Journal) Flush(ctx context.Context) error {
	done := make(chan struct{})
	if !j.enqueue(request{done: done}) {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *Journal) enqueue(req request) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.closed {
		return false
	}
	j.ch <- req
	return true
}

func (j *Journal) Close() error {
	var err error
	j.once.Do(func() {
		j.mu.Lock()
		j.closed = true
		close(j.ch)
		j.mu.Unlock()
		j.wg.Wait()
		err = j.db.Close()
	})
	return err
}

func (j *Journal) loop() {
	ctx := context.Background()
	insert, err := j.db.Prepare(`INSERT OR IGNORE INTO events(id,kind,token_id,asset_id,replaces_id,priorities,at) VALUES(?,?,?,?,?,?,?)`)
	if err != nil {
		j.logger.Error("prepare journal insert", slog.Any("error", err))
	}
	defer func() {
		if insert != nil {
			_ = insert.Close()
		}
	}()

	for req := range j.ch {
		if req.done != nil {
			close(req.done)
			continue
		}
		if insert == nil {
			continue
		}
		if err := write(ctx, insert, req.event); err != nil {
			j.logger.Error("write journal event",
				slog.String("id", req.event.ID),
				slog.String("kind", string(req.event.Kind)),
				slog.Any("error", err),
			)
		}
	}
}

func write(ctx context.Context, insert *sql.Stmt, event domain.Event) error {
	// Registry events belong to no token. NULL keeps them out of per-token
	// queries, including token 0.
	var token sql.NullInt64
	if event.Kind != domain.EventAssetDefined {
		token = sql.NullInt64{Int64: int64(event.TokenID), Valid: true}
	}
	var replaces sql.NullInt64
	if event.ReplacesID != nil {
		replaces = sql.NullInt64{Int64: int64(*event.ReplacesID), Valid: true}
	}
	var priorities sql.NullString
	if len(event.Priorities) > 0 {
		raw, err := json.Marshal(event.Priorities)
		if err != nil {
			return fmt.Errorf("encode priorities: %w", err)
		}
		priorities = sql.NullString{String: string(raw), Valid: true}
	}

	_, err := insert.ExecContext(ctx,
		event.ID,
		string(event.Kind),
		token,
		int64(event.AssetID),
		replaces,
		priorities,
		int64(event.At),
	)
	return err
}

// Events lists a token's events in commit order. Registry events are not
// tied to a token and never appear here.
func (j *Journal) Events(ctx context.Context, token domain.TokenID) ([]domain.Event, error) {
	return j.query(ctx, `SELECT id,kind,token_id,asset_id,replaces_id,priorities,at FROM events WHERE token_id = ? ORDER BY seq`, int64(token))
}

// All lists every journaled event in commit order.
func (j *Journal) All(ctx context.Context) ([]domain.Event, error) {
	return j.query(ctx, `SELECT id,kind,token_id,asset_id,replaces_id,priorities,at FROM events ORDER BY seq`)
}

func (j *Journal) query(ctx context.Context, stmt string, args ...any) ([]domain.Event, error) {
	rows, err := j.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			event      domain.Event
			kind       string
			token      sql.NullInt64
			asset      int64
			replaces   sql.NullInt64
			priorities sql.NullString
			at         int64
		)
		if err := rows.Scan(&event.ID, &kind, &token, &asset, &replaces, &priorities, &at); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		event.Kind = domain.EventKind(kind)
		event.TokenID = domain.TokenID(token.Int64)
		event.AssetID = domain.AssetID(asset)
		event.At = domain.Timestamp(at)
		if replaces.Valid {
			id := domain.AssetID(replaces.Int64)
			event.ReplacesID = &id
		}
		if priorities.Valid {
			if err := json.Unmarshal([]byte(priorities.String), &event.Priorities); err != nil {
				return nil, fmt.Errorf("decode priorities: %w", err)
			}
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read journal rows: %w", err)
	}
	return events, nil
}
