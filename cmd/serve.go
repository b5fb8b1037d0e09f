package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/permitdesk/permit-cli/internal/model"
	"github.com/permitdesk/permit-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pricing API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		env, err := initEngines()
		if err != nil {
			return err
		}
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		r := buildRouter(env, st, cfg.Server.AdminKey)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}
		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}
		return nil
	},
}

// buildRouter assembles the API surface over the wired engines and
// store.
func buildRouter(env *appEnv, st store.Store, adminKey string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Admin-Key"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/v1/price", handlePrice(env, st))
	r.Post("/v1/compare", handleCompare(env, st))
	r.Post("/v1/strategy", handleStrategy(env))
	r.Get("/v1/jurisdictions", handleJurisdictions(env))
	r.Get("/v1/forms", handleForms(env))

	r.Route("/admin", func(r chi.Router) {
		r.Use(adminOnly(adminKey))
		r.Post("/cache/clear", func(w http.ResponseWriter, _ *http.Request) {
			env.fees.ClearCache()
			writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
		})
		r.Get("/report", handleActivity(st))
		r.Get("/quotes", handleQuotes(st))
	})

	return r
}

// adminOnly rejects requests without the configured admin key. An empty
// configured key disables the admin surface entirely.
func adminOnly(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" || r.Header.Get("X-Admin-Key") != key {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type priceRequest struct {
	Jurisdiction string  `json:"jurisdiction"`
	Trade        string  `json:"trade"`
	ProjectValue float64 `json:"project_value"`
	Record       bool    `json:"record"`
}

func handlePrice(env *appEnv, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req priceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Jurisdiction == "" || req.Trade == "" {
			http.Error(w, `{"error":"jurisdiction and trade are required"}`, http.StatusBadRequest)
			return
		}

		result := env.pricer.Price(req.Jurisdiction, req.Trade, req.ProjectValue)

		if req.Record {
			if _, err := st.RecordQuote(r.Context(), store.QuoteRecord{
				RequestedJurisdiction: result.RequestedJurisdiction,
				Jurisdiction:          result.Jurisdiction,
				Trade:                 string(result.Trade),
				ProjectValue:          result.ProjectValue,
				PermitFee:             result.PermitFee,
				RecommendedCharge:     result.RecommendedCharge,
				ProfitMarginPct:       result.ProfitMarginPct,
				DataQuality:           result.DataQuality.Quality,
			}); err != nil {
				zap.L().Error("record quote failed", zap.Error(err))
			}
		}

		writeJSON(w, http.StatusOK, result)
	}
}

type compareRequest struct {
	Jurisdictions []string `json:"jurisdictions"`
	Trade         string   `json:"trade"`
	Record        bool     `json:"record"`
}

func handleCompare(env *appEnv, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if len(req.Jurisdictions) == 0 || req.Trade == "" {
			http.Error(w, `{"error":"jurisdictions and trade are required"}`, http.StatusBadRequest)
			return
		}

		result := env.comparer.Compare(req.Jurisdictions, req.Trade)

		if req.Record {
			if _, err := st.RecordComparison(r.Context(), store.ComparisonRecord{
				JobType:        string(result.JobType),
				Jurisdictions:  req.Jurisdictions,
				ReferenceValue: result.ReferenceValue,
				Variance:       result.Analysis.Variance,
			}); err != nil {
				zap.L().Error("record comparison failed", zap.Error(err))
			}
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func handleStrategy(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if len(req.Jurisdictions) == 0 || req.Trade == "" {
			http.Error(w, `{"error":"jurisdictions and trade are required"}`, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, env.advisor.Strategize(req.Jurisdictions, req.Trade))
	}
}

func handleJurisdictions(env *appEnv) http.HandlerFunc {
	type entry struct {
		Key            string `json:"key"`
		Quality        string `json:"quality"`
		Confidence     string `json:"confidence"`
		ProcessingTime string `json:"processing_time"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		snap := env.fees.Snapshot()
		keys := env.fees.Tables().CityKeys()

		out := make([]entry, 0, len(keys))
		for _, key := range keys {
			profile, quality := snap.Profile(key)
			out = append(out, entry{
				Key:            key,
				Quality:        quality.Quality,
				Confidence:     quality.Confidence,
				ProcessingTime: profile.ProcessingTime,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleForms(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jurisdiction := r.URL.Query().Get("jurisdiction")
		if jurisdiction == "" {
			http.Error(w, `{"error":"jurisdiction is required"}`, http.StatusBadRequest)
			return
		}
		trade, _ := model.ParseTrade(r.URL.Query().Get("trade"))
		writeJSON(w, http.StatusOK, env.forms.Packet(jurisdiction, trade))
	}
}

func handleActivity(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := 30
		if d := r.URL.Query().Get("days"); d != "" {
			if n, err := strconv.Atoi(d); err == nil && n > 0 {
				days = n
			}
		}
		since := time.Now().UTC().AddDate(0, 0, -days)

		report, err := st.ActivityReport(r.Context(), since)
		if err != nil {
			zap.L().Error("activity report failed", zap.Error(err))
			http.Error(w, `{"error":"report failed"}`, http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func handleQuotes(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := store.QuoteFilter{
			Jurisdiction: q.Get("jurisdiction"),
			Trade:        q.Get("trade"),
		}
		if l := q.Get("limit"); l != "" {
			if n, err := strconv.Atoi(l); err == nil {
				filter.Limit = n
			}
		}

		quotes, err := st.ListQuotes(r.Context(), filter)
		if err != nil {
			zap.L().Error("list quotes failed", zap.Error(err))
			http.Error(w, `{"error":"list failed"}`, http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, quotes)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response failed", zap.Error(err))
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
