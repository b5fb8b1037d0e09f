package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS quotes (
	id                     TEXT PRIMARY KEY,
	requested_jurisdiction TEXT NOT NULL,
	jurisdiction           TEXT NOT NULL,
	trade                  TEXT NOT NULL,
	project_value          REAL NOT NULL,
	permit_fee             INTEGER NOT NULL,
	recommended_charge     INTEGER NOT NULL,
	profit_margin_pct      INTEGER NOT NULL,
	data_quality           TEXT NOT NULL,
	created_at             DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS comparisons (
	id              TEXT PRIMARY KEY,
	job_type        TEXT NOT NULL,
	jurisdictions   TEXT NOT NULL,
	reference_value REAL NOT NULL,
	variance        INTEGER NOT NULL,
	created_at      DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_quotes_jurisdiction ON quotes(jurisdiction);
CREATE INDEX IF NOT EXISTS idx_quotes_trade ON quotes(trade);
CREATE INDEX IF NOT EXISTS idx_quotes_created_at ON quotes(created_at);
CREATE INDEX IF NOT EXISTS idx_comparisons_created_at ON comparisons(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) RecordQuote(ctx context.Context, q QuoteRecord) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quotes (id, requested_jurisdiction, jurisdiction, trade, project_value,
			permit_fee, recommended_charge, profit_margin_pct, data_quality, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, q.RequestedJurisdiction, q.Jurisdiction, q.Trade, q.ProjectValue,
		q.PermitFee, q.RecommendedCharge, q.ProfitMarginPct, q.DataQuality, now,
	)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: insert quote")
	}
	return id, nil
}

func (s *SQLiteStore) RecordComparison(ctx context.Context, c ComparisonRecord) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	jurisdictionsJSON, err := json.Marshal(c.Jurisdictions)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: marshal jurisdictions")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO comparisons (id, job_type, jurisdictions, reference_value, variance, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, c.JobType, string(jurisdictionsJSON), c.ReferenceValue, c.Variance, now,
	)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: insert comparison")
	}
	return id, nil
}

func (s *SQLiteStore) ListQuotes(ctx context.Context, filter QuoteFilter) ([]QuoteRecord, error) {
	query := `SELECT id, requested_jurisdiction, jurisdiction, trade, project_value,
		permit_fee, recommended_charge, profit_margin_pct, data_quality, created_at
		FROM quotes`

	var conds []string
	var args []any
	if filter.Jurisdiction != "" {
		conds = append(conds, "jurisdiction = ?")
		args = append(args, filter.Jurisdiction)
	}
	if filter.Trade != "" {
		conds = append(conds, "trade = ?")
		args = append(args, filter.Trade)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list quotes")
	}
	defer rows.Close()

	var out []QuoteRecord
	for rows.Next() {
		var q QuoteRecord
		if err := rows.Scan(&q.ID, &q.RequestedJurisdiction, &q.Jurisdiction, &q.Trade,
			&q.ProjectValue, &q.PermitFee, &q.RecommendedCharge, &q.ProfitMarginPct,
			&q.DataQuality, &q.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan quote")
		}
		out = append(out, q)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate quotes")
}

func (s *SQLiteStore) ActivityReport(ctx context.Context, since time.Time) (*ActivityReport, error) {
	report := &ActivityReport{Since: since}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(ROUND(AVG(recommended_charge)), 0) FROM quotes WHERE created_at >= ?`,
		since,
	).Scan(&report.TotalQuotes, &report.AverageCharge)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: quote totals")
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comparisons WHERE created_at >= ?`, since,
	).Scan(&report.TotalComparisons)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: comparison totals")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT trade, COUNT(*), COALESCE(ROUND(AVG(recommended_charge)), 0)
		FROM quotes WHERE created_at >= ?
		GROUP BY trade ORDER BY COUNT(*) DESC, trade`,
		since,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: activity by trade")
	}
	defer rows.Close()
	for rows.Next() {
		var t TradeActivity
		if err := rows.Scan(&t.Trade, &t.Quotes, &t.AvgCharge); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan trade activity")
		}
		report.ByTrade = append(report.ByTrade, t)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate trade activity")
	}

	jrows, err := s.db.QueryContext(ctx,
		`SELECT jurisdiction, COUNT(*), COALESCE(ROUND(AVG(recommended_charge)), 0)
		FROM quotes WHERE created_at >= ?
		GROUP BY jurisdiction ORDER BY COUNT(*) DESC, jurisdiction`,
		since,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: activity by jurisdiction")
	}
	defer jrows.Close()
	for jrows.Next() {
		var j JurisdictionActivity
		if err := jrows.Scan(&j.Jurisdiction, &j.Quotes, &j.AvgCharge); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan jurisdiction activity")
		}
		report.ByJurisdiction = append(report.ByJurisdiction, j)
	}
	if err := jrows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate jurisdiction activity")
	}

	return report, nil
}
