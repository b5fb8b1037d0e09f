package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permitdesk/permit-cli/internal/compare"
	"github.com/permitdesk/permit-cli/internal/feedb"
	"github.com/permitdesk/permit-cli/internal/forms"
	"github.com/permitdesk/permit-cli/internal/model"
	"github.com/permitdesk/permit-cli/internal/pricing"
	"github.com/permitdesk/permit-cli/internal/store"
	"github.com/permitdesk/permit-cli/internal/strategy"
)

func testAppEnv(t *testing.T) *appEnv {
	t.Helper()

	fees := feedb.NewService(feedb.DefaultTables(), "")
	pricer := pricing.New(fees, pricing.DefaultConfig())
	comparer := compare.New(pricer, 0)
	catalog, err := forms.Load("")
	require.NoError(t, err)

	return &appEnv{
		fees:     fees,
		pricer:   pricer,
		comparer: comparer,
		advisor:  strategy.New(comparer),
		forms:    catalog,
	}
}

func testRouter(t *testing.T, adminKey string) (http.Handler, store.Store) {
	t.Helper()

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "permit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))

	return buildRouter(testAppEnv(t), st, adminKey), st
}

func TestServeHealth(t *testing.T) {
	r, _ := testRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestServePrice(t *testing.T) {
	r, _ := testRouter(t, "")

	body, _ := json.Marshal(priceRequest{Jurisdiction: "Houston, TX", Trade: "electrical", ProjectValue: 5000})
	req := httptest.NewRequest(http.MethodPost, "/v1/price", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var result model.PricingResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "Houston, TX", result.Jurisdiction)
	assert.Equal(t, 115, result.PermitFee)
}

func TestServePriceRecord(t *testing.T) {
	r, st := testRouter(t, "")

	body, _ := json.Marshal(priceRequest{Jurisdiction: "Houston, TX", Trade: "electrical", ProjectValue: 5000, Record: true})
	req := httptest.NewRequest(http.MethodPost, "/v1/price", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	quotes, err := st.ListQuotes(context.Background(), store.QuoteFilter{})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Electrical", quotes[0].Trade)
}

func TestServePriceBadRequest(t *testing.T) {
	r, _ := testRouter(t, "")

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: "{not json"},
		{name: "missing jurisdiction", body: `{"trade": "electrical", "project_value": 5000}`},
		{name: "missing trade", body: `{"jurisdiction": "Houston, TX", "project_value": 5000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/price", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestServeCompare(t *testing.T) {
	r, _ := testRouter(t, "")

	body, _ := json.Marshal(compareRequest{Jurisdictions: []string{"Houston, TX", "Denver, CO"}, Trade: "plumbing"})
	req := httptest.NewRequest(http.MethodPost, "/v1/compare", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var result model.ComparisonResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, model.TradePlumbing, result.JobType)
	require.Len(t, result.Comparisons, 2)
}

func TestServeStrategy(t *testing.T) {
	r, _ := testRouter(t, "")

	body, _ := json.Marshal(compareRequest{Jurisdictions: []string{"Houston, TX", "New York, NY"}, Trade: "electrical"})
	req := httptest.NewRequest(http.MethodPost, "/v1/strategy", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var result model.Strategy
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 2, result.MarketSize)
	assert.Equal(t, "Houston, TX", result.FastestJurisdiction)
}

func TestServeJurisdictions(t *testing.T) {
	r, _ := testRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/jurisdictions", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var out []map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Len(t, out, 10)
}

func TestServeForms(t *testing.T) {
	r, _ := testRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/forms?jurisdiction=Houston%2C+TX&trade=solar", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var packet []forms.Form
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &packet))
	assert.Len(t, packet, 3)
}

func TestServeFormsMissingJurisdiction(t *testing.T) {
	r, _ := testRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/forms", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServeAdminAuth(t *testing.T) {
	t.Run("wrong key rejected", func(t *testing.T) {
		r, _ := testRouter(t, "secret")
		req := httptest.NewRequest(http.MethodPost, "/admin/cache/clear", nil)
		req.Header.Set("X-Admin-Key", "wrong")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("empty configured key disables admin", func(t *testing.T) {
		r, _ := testRouter(t, "")
		req := httptest.NewRequest(http.MethodPost, "/admin/cache/clear", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("correct key accepted", func(t *testing.T) {
		r, _ := testRouter(t, "secret")
		req := httptest.NewRequest(http.MethodPost, "/admin/cache/clear", nil)
		req.Header.Set("X-Admin-Key", "secret")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestServeAdminReport(t *testing.T) {
	r, st := testRouter(t, "secret")

	_, err := st.RecordQuote(context.Background(), store.QuoteRecord{
		RequestedJurisdiction: "Houston, TX", Jurisdiction: "Houston, TX",
		Trade: "Electrical", ProjectValue: 5000, PermitFee: 115,
		RecommendedCharge: 800, ProfitMarginPct: 5, DataQuality: "verified",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/report?days=7", nil)
	req.Header.Set("X-Admin-Key", "secret")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var report store.ActivityReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 1, report.TotalQuotes)
}

func TestServeAdminQuotes(t *testing.T) {
	r, st := testRouter(t, "secret")

	_, err := st.RecordQuote(context.Background(), store.QuoteRecord{
		RequestedJurisdiction: "Denver, CO", Jurisdiction: "Denver, CO",
		Trade: "Plumbing", ProjectValue: 5000, PermitFee: 150,
		RecommendedCharge: 820, ProfitMarginPct: 6, DataQuality: "partially-verified",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/quotes?trade=Plumbing&limit=10", nil)
	req.Header.Set("X-Admin-Key", "secret")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var quotes []store.QuoteRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quotes))
	require.Len(t, quotes, 1)
	assert.Equal(t, "Denver, CO", quotes[0].Jurisdiction)
}
