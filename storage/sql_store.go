package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hcm-analyzer/models"
	"hcm-analyzer/utils"
)

// timeLayout is fixed-width UTC so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const batchSize = 50

// dialect holds what differs between the SQL backends.
type dialect struct {
	name       string
	driver     string
	schema     string
	dollarArgs bool
	singleConn bool
}

// bind rewrites ? placeholders for the dialect.
func (d dialect) bind(query string) string {
	if !d.dollarArgs {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		created_at  TEXT NOT NULL,
		system_name TEXT NOT NULL DEFAULT '',
		config      TEXT NOT NULL,
		metadata    TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS pages (
		session_id       TEXT    NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		idx              INTEGER NOT NULL,
		title            TEXT    NOT NULL,
		module           TEXT    NOT NULL,
		url              TEXT    NOT NULL,
		complexity_score REAL    NOT NULL,
		load_time        REAL    NOT NULL,
		record           TEXT    NOT NULL,
		PRIMARY KEY (session_id, idx)
	);

	CREATE TABLE IF NOT EXISTS features (
		session_id TEXT    NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		id         INTEGER NOT NULL,
		name       TEXT    NOT NULL,
		page       TEXT    NOT NULL DEFAULT '',
		category   TEXT    NOT NULL,
		risk_level TEXT    NOT NULL,
		record     TEXT    NOT NULL,
		PRIMARY KEY (session_id, id)
	);

	CREATE TABLE IF NOT EXISTS best_practices (
		session_id    TEXT    NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		title         TEXT    NOT NULL,
		category      TEXT    NOT NULL,
		priority      INTEGER NOT NULL,
		cost_estimate TEXT    NOT NULL,
		record        TEXT    NOT NULL,
		PRIMARY KEY (session_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at);
	CREATE INDEX IF NOT EXISTS idx_pages_module        ON pages(module);
	CREATE INDEX IF NOT EXISTS idx_features_risk       ON features(risk_level);
	CREATE INDEX IF NOT EXISTS idx_practices_priority  ON best_practices(priority);
`

// SQLStore persists sessions to a SQL database. Scalar columns are kept for
// querying; each record is also stored whole as JSON.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
	logger  *utils.Logger
}

func openStore(ctx context.Context, d dialect, dsn string, retry *utils.RetryConfig, logger *utils.Logger) (*SQLStore, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", d.name, err)
	}
	if d.singleConn {
		db.SetMaxOpenConns(1)
	}
	if retry == nil {
		retry = &utils.RetryConfig{MaxAttempts: 1}
	}

	if err := retry.Do(ctx, d.name+" ping", db.PingContext); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: ping failed after retries: %w", d.name, err)
	}

	s := &SQLStore{db: db, dialect: d, logger: logger}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: migrate: %w", d.name, err)
	}
	logger.Debug("[storage] %s store ready", d.name)
	return s, nil
}

func (s *SQLStore) migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(s.dialect.schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveSession replaces any stored copy of the session with s.
func (s *SQLStore) SaveSession(ctx context.Context, session *models.Session) error {
	cfg, err := json.Marshal(session.Config)
	if err != nil {
		return fmt.Errorf("%s: encode config: %w", s.dialect.name, err)
	}
	meta, err := json.Marshal(session.Metadata)
	if err != nil {
		return fmt.Errorf("%s: encode metadata: %w", s.dialect.name, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", s.dialect.name, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"best_practices", "features", "pages"} {
		q := s.dialect.bind("DELETE FROM " + table + " WHERE session_id = ?")
		if _, err := tx.ExecContext(ctx, q, session.ID); err != nil {
			return fmt.Errorf("%s: clear %s: %w", s.dialect.name, table, err)
		}
	}

	_, err = tx.ExecContext(ctx, s.dialect.bind(`
		INSERT INTO sessions (id, created_at, system_name, config, metadata)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			created_at = excluded.created_at,
			system_name = excluded.system_name,
			config = excluded.config,
			metadata = excluded.metadata
	`), session.ID, session.Timestamp.UTC().Format(timeLayout), session.Config.SystemName, string(cfg), string(meta))
	if err != nil {
		return fmt.Errorf("%s: insert session: %w", s.dialect.name, err)
	}

	pageRows := make([][]any, 0, len(session.Pages))
	for _, p := range session.Pages {
		rec, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("%s: encode page %q: %w", s.dialect.name, p.Title, err)
		}
		pageRows = append(pageRows, []any{session.ID, p.Index, p.Title, p.Module, p.URL, p.ComplexityScore, p.LoadTime, string(rec)})
	}
	if err := s.insertRows(ctx, tx, "pages",
		"session_id, idx, title, module, url, complexity_score, load_time, record", pageRows); err != nil {
		return err
	}

	featureRows := make([][]any, 0, len(session.Features))
	for _, f := range session.Features {
		rec, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("%s: encode feature %q: %w", s.dialect.name, f.Name, err)
		}
		featureRows = append(featureRows, []any{session.ID, f.ID, f.Name, f.Page, f.Category, string(f.RiskLevel), string(rec)})
	}
	if err := s.insertRows(ctx, tx, "features",
		"session_id, id, name, page, category, risk_level, record", featureRows); err != nil {
		return err
	}

	practiceRows := make([][]any, 0, len(session.BestPractices))
	for i, bp := range session.BestPractices {
		rec, err := json.Marshal(bp)
		if err != nil {
			return fmt.Errorf("%s: encode best practice %q: %w", s.dialect.name, bp.Title, err)
		}
		practiceRows = append(practiceRows, []any{session.ID, i, bp.Title, bp.Category, bp.Priority, bp.Cost.String(), string(rec)})
	}
	if err := s.insertRows(ctx, tx, "best_practices",
		"session_id, seq, title, category, priority, cost_estimate, record", practiceRows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", s.dialect.name, err)
	}
	s.logger.Info("[storage] Saved session %s to %s (%d pages, %d features, %d best practices)",
		session.ID, s.dialect.name, len(session.Pages), len(session.Features), len(session.BestPractices))
	return nil
}

// insertRows batch-inserts rows into table.
func (s *SQLStore) insertRows(ctx context.Context, tx *sql.Tx, table, columns string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	group := "(" + strings.TrimSuffix(strings.Repeat("?,", width), ",") + ")"

	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		batch := rows[i:end]

		groups := make([]string, len(batch))
		args := make([]any, 0, len(batch)*width)
		for j, row := range batch {
			groups[j] = group
			args = append(args, row...)
		}

		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, columns, strings.Join(groups, ","))
		if _, err := tx.ExecContext(ctx, s.dialect.bind(query), args...); err != nil {
			return fmt.Errorf("%s: insert %s: %w", s.dialect.name, table, err)
		}
	}
	return nil
}

// LoadSession reads the header and records of a session. Derived fields
// are left empty.
func (s *SQLStore) LoadSession(ctx context.Context, id string) (*models.Session, error) {
	var (
		createdAt, cfg, meta string
		session              = &models.Session{ID: id}
	)
	err := s.db.QueryRowContext(ctx,
		s.dialect.bind("SELECT created_at, config, metadata FROM sessions WHERE id = ?"), id,
	).Scan(&createdAt, &cfg, &meta)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: load %q: %w", s.dialect.name, id, ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: load %q: %w", s.dialect.name, id, err)
	}

	if session.Timestamp, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("%s: parse created_at %q: %w", s.dialect.name, createdAt, err)
	}
	if err := json.Unmarshal([]byte(cfg), &session.Config); err != nil {
		return nil, fmt.Errorf("%s: decode config: %w", s.dialect.name, err)
	}
	if err := json.Unmarshal([]byte(meta), &session.Metadata); err != nil {
		return nil, fmt.Errorf("%s: decode metadata: %w", s.dialect.name, err)
	}

	if session.Pages, err = loadRecords[models.Page](ctx, s, "pages", "idx", id); err != nil {
		return nil, err
	}
	if session.Features, err = loadRecords[models.Feature](ctx, s, "features", "id", id); err != nil {
		return nil, err
	}
	if session.BestPractices, err = loadRecords[models.BestPractice](ctx, s, "best_practices", "seq", id); err != nil {
		return nil, err
	}
	return session, nil
}

func loadRecords[T any](ctx context.Context, s *SQLStore, table, order, id string) ([]T, error) {
	query := s.dialect.bind("SELECT record FROM " + table + " WHERE session_id = ? ORDER BY " + order)
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch %s: %w", s.dialect.name, table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%s: scan %s row: %w", s.dialect.name, table, err)
		}
		var rec T
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("%s: decode %s row: %w", s.dialect.name, table, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// LatestSessionID returns the id of the most recently created session.
func (s *SQLStore) LatestSessionID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM sessions ORDER BY created_at DESC, id DESC LIMIT 1",
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: latest session: %w", s.dialect.name, ErrSessionNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s: latest session: %w", s.dialect.name, err)
	}
	return id, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
