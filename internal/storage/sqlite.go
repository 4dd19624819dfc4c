// Package storage provides SQLite-based persistence for draw history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-raster/internal/draw"
)

// Sources recorded with each draw.
const (
	SourceCLI   = "cli"
	SourceTUI   = "tui"
	SourceSSH   = "ssh"
	SourceScene = "scene"
)

// Store manages the SQLite database connection for draw history.
type Store struct {
	db *sql.DB
}

// DrawRecord is one executed draw request. Marked counts are zero for
// panels the request's mode did not draw.
type DrawRecord struct {
	ID              int64
	Mode            draw.Mode
	GridSize        int
	X0, Y0          int
	X1, Y1          int
	Radius          int
	MarkedLinear    int
	MarkedDDA       int
	MarkedBresenham int
	MarkedCircle    int
	Source          string
	CreatedAt       time.Time
}

// RecordFromResult builds a record from an executed draw.
func RecordFromResult(res draw.Result, source string) DrawRecord {
	req := res.Request
	counts := res.MarkedCounts()
	return DrawRecord{
		Mode:            req.Mode,
		GridSize:        req.GridSize,
		X0:              req.From.X,
		Y0:              req.From.Y,
		X1:              req.To.X,
		Y1:              req.To.Y,
		Radius:          req.Radius,
		MarkedLinear:    counts[draw.ModeLinear],
		MarkedDDA:       counts[draw.ModeDDA],
		MarkedBresenham: counts[draw.ModeBresenham],
		MarkedCircle:    counts[draw.ModeCircle],
		Source:          source,
	}
}

// Request converts the record back into a draw request.
func (r DrawRecord) Request() draw.Request {
	req := draw.DefaultRequest()
	req.Mode = r.Mode
	req.GridSize = r.GridSize
	req.From.X, req.From.Y = r.X0, r.Y0
	req.To.X, req.To.Y = r.X1, r.Y1
	req.Radius = r.Radius
	return req
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS draws (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			x0 INTEGER NOT NULL,
			y0 INTEGER NOT NULL,
			x1 INTEGER NOT NULL,
			y1 INTEGER NOT NULL,
			radius INTEGER NOT NULL,
			marked_linear INTEGER NOT NULL DEFAULT 0,
			marked_dda INTEGER NOT NULL DEFAULT 0,
			marked_bresenham INTEGER NOT NULL DEFAULT 0,
			marked_circle INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_draws_mode ON draws(mode);
		CREATE INDEX IF NOT EXISTS idx_draws_created ON draws(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveDraw records a draw and returns the ID of the inserted row.
func (s *Store) SaveDraw(r DrawRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO draws
		 (mode, grid_size, x0, y0, x1, y1, radius,
		  marked_linear, marked_dda, marked_bresenham, marked_circle, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(r.Mode), r.GridSize, r.X0, r.Y0, r.X1, r.Y1, r.Radius,
		r.MarkedLinear, r.MarkedDDA, r.MarkedBresenham, r.MarkedCircle, r.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save draw: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const drawColumns = `id, mode, grid_size, x0, y0, x1, y1, radius,
	marked_linear, marked_dda, marked_bresenham, marked_circle, source, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanDraw(row scanner) (DrawRecord, error) {
	var r DrawRecord
	var mode string
	var createdAt any
	err := row.Scan(
		&r.ID, &mode, &r.GridSize,
		&r.X0, &r.Y0, &r.X1, &r.Y1, &r.Radius,
		&r.MarkedLinear, &r.MarkedDDA, &r.MarkedBresenham, &r.MarkedCircle,
		&r.Source, &createdAt,
	)
	if err != nil {
		return DrawRecord{}, err
	}
	r.Mode = draw.Mode(mode)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentDraws retrieves the most recent draws, newest first.
func (s *Store) RecentDraws(limit int) ([]DrawRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+drawColumns+`
		 FROM draws
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query draws: %w", err)
	}
	defer rows.Close()

	var records []DrawRecord
	for rows.Next() {
		r, err := scanDraw(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DrawByID retrieves a single draw. Returns nil if no such draw exists.
func (s *Store) DrawByID(id int64) (*DrawRecord, error) {
	r, err := scanDraw(s.db.QueryRow(
		`SELECT `+drawColumns+` FROM draws WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query draw: %w", err)
	}
	return &r, nil
}

// ClearHistory deletes every recorded draw.
func (s *Store) ClearHistory() error {
	_, err := s.db.Exec("DELETE FROM draws")
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// HistoryStats contains aggregated statistics over the draw history.
type HistoryStats struct {
	Total    int
	ByMode   map[draw.Mode]int
	BySource map[string]int
	LastDraw time.Time
}

// Stats aggregates the draw history.
func (s *Store) Stats() (*HistoryStats, error) {
	stats := &HistoryStats{
		ByMode:   make(map[draw.Mode]int),
		BySource: make(map[string]int),
	}

	var lastDraw any
	err := s.db.QueryRow(`SELECT COUNT(*), MAX(created_at) FROM draws`).Scan(&stats.Total, &lastDraw)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get history stats: %w", err)
	}
	stats.LastDraw = parseTime(lastDraw)

	if err := s.countBy("mode", func(key string, n int) { stats.ByMode[draw.Mode(key)] = n }); err != nil {
		return nil, err
	}
	if err := s.countBy("source", func(key string, n int) { stats.BySource[key] = n }); err != nil {
		return nil, err
	}

	return stats, nil
}

// countBy groups draws by column and reports each group's size.
func (s *Store) countBy(column string, fn func(key string, n int)) error {
	rows, err := s.db.Query(`SELECT ` + column + `, COUNT(*) FROM draws GROUP BY ` + column)
	if err != nil {
		return fmt.Errorf("storage: cannot group draws by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		fn(key, n)
	}
	return rows.Err()
}
