package feedb

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/permitdesk/permit-cli/internal/model"
	"github.com/permitdesk/permit-cli/internal/overlay"
)

// DefaultTTL bounds how long a merged snapshot is served before the
// scrape history is re-read and re-merged.
const DefaultTTL = time.Minute

// Snapshot is an immutable merged view of the fee tables. Callers must
// not mutate it; the Service hands the same snapshot to every caller
// inside the TTL window.
type Snapshot struct {
	Profiles map[string]model.JurisdictionProfile
	Quality  map[string]model.DataQualityRecord
	Labor    map[model.Trade]model.LaborProfile
	Markup   map[model.Trade]model.MarkupProfile
	Raw      map[string]model.ScrapeRecord
	MergedAt time.Time
}

// Profile returns the fee profile and quality record for a resolved
// jurisdiction key, falling back to the generic default bucket if the
// key is somehow absent from the table.
func (s *Snapshot) Profile(key string) (model.JurisdictionProfile, model.DataQualityRecord) {
	if p, ok := s.Profiles[key]; ok {
		return p, s.Quality[key]
	}
	return s.Profiles[model.KeyDefault], s.Quality[model.KeyDefault]
}

// Service owns the baseline tables and the TTL-cached overlay merge.
// It is the only mutable shared state in the pricing core, so the
// read-check-then-rebuild path is guarded by a mutex.
type Service struct {
	tables      Tables
	historyPath string
	ttl         time.Duration
	now         func() time.Time

	mu       sync.Mutex
	snapshot *Snapshot
	expires  time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTTL overrides the snapshot TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service over the given baseline tables. The
// history path may name a missing file; merge degrades to the baseline.
func NewService(tables Tables, historyPath string, opts ...Option) *Service {
	s := &Service{
		tables:      tables,
		historyPath: historyPath,
		ttl:         DefaultTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tables returns the static baseline for callers that need the
// pre-merge view (the keys never change across merges).
func (s *Service) Tables() Tables {
	return s.tables
}

// Snapshot returns the current merged view, rebuilding it when the TTL
// has lapsed.
func (s *Service) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil && s.now().Before(s.expires) {
		return s.snapshot
	}
	return s.rebuildLocked()
}

// Refresh discards the cached snapshot and rebuilds it immediately.
func (s *Service) Refresh() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rebuildLocked()
}

// ClearCache drops the cached snapshot; the next Snapshot call
// re-merges.
func (s *Service) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	s.expires = time.Time{}
}

func (s *Service) rebuildLocked() *Snapshot {
	history := LoadHistory(s.historyPath)
	merged := overlay.Merge(s.tables.Profiles, s.tables.Quality, history)

	now := s.now()
	s.snapshot = &Snapshot{
		Profiles: merged.Profiles,
		Quality:  merged.Quality,
		Labor:    s.tables.Labor,
		Markup:   s.tables.Markup,
		Raw:      merged.Raw,
		MergedAt: now,
	}
	s.expires = now.Add(s.ttl)

	zap.L().Debug("feedb: snapshot rebuilt",
		zap.Int("jurisdictions", len(merged.Profiles)),
		zap.Int("scrape_records", len(history)),
		zap.Time("expires", s.expires))

	return s.snapshot
}
