package store

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/permitdesk/permit-cli/internal/db"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresFromPool wraps an existing pool. Used by tests with pgxmock.
func NewPostgresFromPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool, closeFn: func() {}}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS quotes (
	id                     TEXT PRIMARY KEY,
	requested_jurisdiction TEXT NOT NULL,
	jurisdiction           TEXT NOT NULL,
	trade                  TEXT NOT NULL,
	project_value          DOUBLE PRECISION NOT NULL,
	permit_fee             INTEGER NOT NULL,
	recommended_charge     INTEGER NOT NULL,
	profit_margin_pct      INTEGER NOT NULL,
	data_quality           TEXT NOT NULL,
	created_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS comparisons (
	id              TEXT PRIMARY KEY,
	job_type        TEXT NOT NULL,
	jurisdictions   JSONB NOT NULL,
	reference_value DOUBLE PRECISION NOT NULL,
	variance        INTEGER NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_quotes_jurisdiction ON quotes(jurisdiction);
CREATE INDEX IF NOT EXISTS idx_quotes_trade ON quotes(trade);
CREATE INDEX IF NOT EXISTS idx_quotes_created_at ON quotes(created_at);
CREATE INDEX IF NOT EXISTS idx_comparisons_created_at ON comparisons(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.closeFn()
	return nil
}

func (s *PostgresStore) RecordQuote(ctx context.Context, q QuoteRecord) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO quotes (id, requested_jurisdiction, jurisdiction, trade, project_value,
			permit_fee, recommended_charge, profit_margin_pct, data_quality, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, q.RequestedJurisdiction, q.Jurisdiction, q.Trade, q.ProjectValue,
		q.PermitFee, q.RecommendedCharge, q.ProfitMarginPct, q.DataQuality, now,
	)
	if err != nil {
		return "", eris.Wrap(err, "postgres: insert quote")
	}
	return id, nil
}

func (s *PostgresStore) RecordComparison(ctx context.Context, c ComparisonRecord) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	jurisdictionsJSON, err := json.Marshal(c.Jurisdictions)
	if err != nil {
		return "", eris.Wrap(err, "postgres: marshal jurisdictions")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO comparisons (id, job_type, jurisdictions, reference_value, variance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, c.JobType, jurisdictionsJSON, c.ReferenceValue, c.Variance, now,
	)
	if err != nil {
		return "", eris.Wrap(err, "postgres: insert comparison")
	}
	return id, nil
}

func (s *PostgresStore) ListQuotes(ctx context.Context, filter QuoteFilter) ([]QuoteRecord, error) {
	query := `SELECT id, requested_jurisdiction, jurisdiction, trade, project_value,
		permit_fee, recommended_charge, profit_margin_pct, data_quality, created_at
		FROM quotes`

	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Jurisdiction != "" {
		conds = append(conds, "jurisdiction = "+arg(filter.Jurisdiction))
	}
	if filter.Trade != "" {
		conds = append(conds, "trade = "+arg(filter.Trade))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " LIMIT " + arg(limit) + " OFFSET " + arg(filter.Offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list quotes")
	}
	defer rows.Close()

	var out []QuoteRecord
	for rows.Next() {
		var q QuoteRecord
		if err := rows.Scan(&q.ID, &q.RequestedJurisdiction, &q.Jurisdiction, &q.Trade,
			&q.ProjectValue, &q.PermitFee, &q.RecommendedCharge, &q.ProfitMarginPct,
			&q.DataQuality, &q.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan quote")
		}
		out = append(out, q)
	}
	return out, eris.Wrap(rows.Err(), "postgres: iterate quotes")
}

func (s *PostgresStore) ActivityReport(ctx context.Context, since time.Time) (*ActivityReport, error) {
	report := &ActivityReport{Since: since}

	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(ROUND(AVG(recommended_charge)), 0)::int FROM quotes WHERE created_at >= $1`,
		since,
	).Scan(&report.TotalQuotes, &report.AverageCharge)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: quote totals")
	}

	err = s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM comparisons WHERE created_at >= $1`, since,
	).Scan(&report.TotalComparisons)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: comparison totals")
	}

	rows, err := s.pool.Query(ctx,
		`SELECT trade, COUNT(*)::int, COALESCE(ROUND(AVG(recommended_charge)), 0)::int
		FROM quotes WHERE created_at >= $1
		GROUP BY trade ORDER BY COUNT(*) DESC, trade`,
		since,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: activity by trade")
	}
	defer rows.Close()
	for rows.Next() {
		var t TradeActivity
		if err := rows.Scan(&t.Trade, &t.Quotes, &t.AvgCharge); err != nil {
			return nil, eris.Wrap(err, "postgres: scan trade activity")
		}
		report.ByTrade = append(report.ByTrade, t)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate trade activity")
	}

	jrows, err := s.pool.Query(ctx,
		`SELECT jurisdiction, COUNT(*)::int, COALESCE(ROUND(AVG(recommended_charge)), 0)::int
		FROM quotes WHERE created_at >= $1
		GROUP BY jurisdiction ORDER BY COUNT(*) DESC, jurisdiction`,
		since,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: activity by jurisdiction")
	}
	defer jrows.Close()
	for jrows.Next() {
		var j JurisdictionActivity
		if err := jrows.Scan(&j.Jurisdiction, &j.Quotes, &j.AvgCharge); err != nil {
			return nil, eris.Wrap(err, "postgres: scan jurisdiction activity")
		}
		report.ByJurisdiction = append(report.ByJurisdiction, j)
	}
	if err := jrows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate jurisdiction activity")
	}

	return report, nil
}
