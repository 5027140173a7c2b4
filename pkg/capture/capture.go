// Package capture records received Access-layer frames in a SQLite
// database so a sniffing session can be inspected later.
package capture

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pion/logging"

	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/transport"
)

// DefaultLimit is the number of entries returned when no limit is given.
const DefaultLimit = 100

// ErrClosed is returned when the store has been closed.
var ErrClosed = errors.New("capture: store closed")

// Config configures a Store.
type Config struct {
	// Path is the database file. ":memory:" keeps the log in memory.
	Path string

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Entry is one recorded frame.
type Entry struct {
	ID         int64     `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	Source     string    `json:"source"`
	Peer       string    `json:"peer"`
	Opcode     uint32    `json:"opcode"`
	Name       string    `json:"name,omitempty"`
	PDU        string    `json:"pdu"`
	Decoded    string    `json:"decoded,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Store is a frame log.
type Store struct {
	db  *sql.DB
	log logging.LeveledLogger

	mu     sync.RWMutex
	closed bool
}

// Open opens or creates the frame log at config.Path.
func Open(config Config) (*Store, error) {
	if config.Path == "" {
		return nil, errors.New("capture: missing database path")
	}

	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, fmt.Errorf("capture: open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("capture: enable WAL mode: %w", err)
	}

	s := &Store{db: db}
	if config.LoggerFactory != nil {
		s.log = config.LoggerFactory.NewLogger("capture")
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if s.log != nil {
		s.log.Infof("recording frames to %s", config.Path)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS frames (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		received_at INTEGER NOT NULL,
		source TEXT NOT NULL,
		peer TEXT NOT NULL,
		opcode INTEGER NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		pdu TEXT NOT NULL,
		decoded TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_frames_opcode ON frames(opcode);
	CREATE INDEX IF NOT EXISTS idx_frames_received ON frames(received_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("capture: create schema: %w", err)
	}
	return nil
}

// Insert stores f and returns its entry ID. The opcode of an undecodable
// frame is read from its first bytes when possible.
func (s *Store) Insert(ctx context.Context, f *transport.Frame) (int64, error) {
	if f == nil {
		return 0, errors.New("capture: nil frame")
	}

	var (
		op      opcode.Opcode
		name    string
		decoded string
		errText string
	)
	if f.Message != nil {
		op, name = f.Message.Opcode, f.Message.Name
		b, err := access.LoggableJSON(f.Message, access.ProjectionOptions{})
		if err != nil {
			return 0, fmt.Errorf("capture: render frame: %w", err)
		}
		decoded = string(b)
	} else if parsed, _, err := opcode.Decode(f.Data); err == nil {
		op = parsed
	}
	if f.Err != nil {
		errText = f.Err.Error()
	}

	receivedAt := f.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosed
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO frames (received_at, source, peer, opcode, name, pdu, decoded, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, receivedAt.UnixNano(), f.PeerAddr.Source.String(), f.PeerAddr.String(),
		int64(op), name, hex.EncodeToString(f.Data), decoded, errText)
	if err != nil {
		return 0, fmt.Errorf("capture: insert frame: %w", err)
	}
	return res.LastInsertId()
}

// Handler returns a FrameHandler that records every frame and then calls
// next, if set. Recording errors are logged.
func (s *Store) Handler(next transport.FrameHandler) transport.FrameHandler {
	return func(f *transport.Frame) {
		if _, err := s.Insert(context.Background(), f); err != nil && s.log != nil {
			s.log.Warnf("recording frame from %s: %v", f.PeerAddr, err)
		}
		if next != nil {
			next(f)
		}
	}
}

// Recent returns the newest entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return s.query(ctx, `
		SELECT id, received_at, source, peer, opcode, name, pdu, decoded, error
		FROM frames ORDER BY id DESC LIMIT ?
	`, normalizeLimit(limit))
}

// ByOpcode returns the newest entries carrying op, newest first.
func (s *Store) ByOpcode(ctx context.Context, op opcode.Opcode, limit int) ([]Entry, error) {
	return s.query(ctx, `
		SELECT id, received_at, source, peer, opcode, name, pdu, decoded, error
		FROM frames WHERE opcode = ? ORDER BY id DESC LIMIT ?
	`, int64(op), normalizeLimit(limit))
}

// Count returns the number of recorded frames.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosed
	}

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM frames").Scan(&n); err != nil {
		return 0, fmt.Errorf("capture: count frames: %w", err)
	}
	return n, nil
}

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return s.db.Close()
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("capture: query frames: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			ts int64
			op int64
		)
		if err := rows.Scan(&e.ID, &ts, &e.Source, &e.Peer, &op, &e.Name, &e.PDU, &e.Decoded, &e.Error); err != nil {
			return nil, fmt.Errorf("capture: scan frame: %w", err)
		}
		e.ReceivedAt = time.Unix(0, ts)
		e.Opcode = uint32(op)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
