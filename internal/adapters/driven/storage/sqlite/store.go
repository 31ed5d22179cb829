package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/makechair/text-analyzer/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
)

// Store is a SQLite-based storage that provides access to its store
// interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.text-analyzer/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".text-analyzer", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL for concurrency; foreign_keys is applied per connection
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ReportStore returns a ReportStore interface backed by this store.
func (s *Store) ReportStore() driven.ReportStore {
	return &reportStore{store: s}
}

// SchemaVersion returns the highest applied migration.
func (s *Store) SchemaVersion() (int, error) {
	var version int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("getting current version: %w", err)
	}
	return version, nil
}

// migrate runs all pending migrations. Each migration records its own
// version in schema_migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	currentVersion, err := s.SchemaVersion()
	if err != nil {
		return err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_reports.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Report Store ====================

// reportStore implements driven.ReportStore.
type reportStore struct {
	store *Store
}

var _ driven.ReportStore = (*reportStore)(nil)

// Save stores or replaces a report and re-indexes its words.
func (s *reportStore) Save(ctx context.Context, report domain.Report) error {
	if report.ID == "" {
		return domain.ErrInvalidInput
	}

	resultJSON, err := json.Marshal(report.Result)
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reports (id, source, sentence_count, group_count, variant_group_count, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			sentence_count = excluded.sentence_count,
			group_count = excluded.group_count,
			variant_group_count = excluded.variant_group_count,
			result = excluded.result,
			created_at = excluded.created_at
	`, report.ID, report.Source, report.SentenceCount, report.GroupCount,
		report.VariantGroupCount, string(resultJSON), report.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM report_words WHERE report_id = ?", report.ID); err != nil {
		return fmt.Errorf("clearing report words: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO report_words (report_id, reading, word, count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(report_id, reading, word) DO UPDATE SET count = excluded.count
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	if report.Result != nil {
		for _, cg := range report.Result.Categories {
			for _, g := range cg.Groups {
				for _, v := range g.Variants {
					if _, err := stmt.ExecContext(ctx, report.ID, g.Reading, v.Word, v.Count); err != nil {
						return fmt.Errorf("saving report word: %w", err)
					}
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Get retrieves a report with its full result.
func (s *reportStore) Get(ctx context.Context, id string) (*domain.Report, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source, sentence_count, group_count, variant_group_count, created_at, result
		FROM reports WHERE id = ?
	`, id)

	var report domain.Report
	var resultJSON string
	var createdAt sql.NullTime
	if err := row.Scan(&report.ID, &report.Source, &report.SentenceCount, &report.GroupCount,
		&report.VariantGroupCount, &createdAt, &resultJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	if createdAt.Valid {
		report.CreatedAt = createdAt.Time
	}

	if resultJSON != "" && resultJSON != "null" {
		var result domain.AnalysisResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("unmarshaling result: %w", err)
		}
		report.Result = &result
	}

	return &report, nil
}

// List returns reports newest first, without results.
func (s *reportStore) List(ctx context.Context, limit int) ([]domain.Report, error) {
	query := `
		SELECT id, source, sentence_count, group_count, variant_group_count, created_at
		FROM reports
		ORDER BY created_at DESC, id ASC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.query(ctx, query, args...)
}

// FindWord returns reports containing word, newest first.
func (s *reportStore) FindWord(ctx context.Context, word string, limit int) ([]domain.Report, error) {
	query := `
		SELECT r.id, r.source, r.sentence_count, r.group_count, r.variant_group_count, r.created_at
		FROM reports r
		WHERE EXISTS (SELECT 1 FROM report_words w WHERE w.report_id = r.id AND w.word = ?)
		ORDER BY r.created_at DESC, r.id ASC
	`
	args := []any{word}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.query(ctx, query, args...)
}

func (s *reportStore) query(ctx context.Context, query string, args ...any) ([]domain.Report, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report //nolint:prealloc // size unknown from query
	for rows.Next() {
		var report domain.Report
		var createdAt sql.NullTime
		if err := rows.Scan(&report.ID, &report.Source, &report.SentenceCount, &report.GroupCount,
			&report.VariantGroupCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		if createdAt.Valid {
			report.CreatedAt = createdAt.Time
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}

	return reports, nil
}

// Delete removes a report. Its indexed words are removed by cascade.
func (s *reportStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return nil
}
