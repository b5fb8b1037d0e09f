package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/permitdesk/permit-cli/internal/compare"
	"github.com/permitdesk/permit-cli/internal/feedb"
	"github.com/permitdesk/permit-cli/internal/forms"
	"github.com/permitdesk/permit-cli/internal/pricing"
	"github.com/permitdesk/permit-cli/internal/store"
	"github.com/permitdesk/permit-cli/internal/strategy"
)

// appEnv bundles the assembled engines for a command invocation.
type appEnv struct {
	fees     *feedb.Service
	pricer   *pricing.Engine
	comparer *compare.Engine
	advisor  *strategy.Advisor
	forms    *forms.Catalog
}

// initEngines loads the fee tables and wires the pricing stack.
func initEngines() (*appEnv, error) {
	tables, err := feedb.LoadTables(cfg.Fees.TablesPath)
	if err != nil {
		return nil, eris.Wrap(err, "load fee tables")
	}

	fees := feedb.NewService(tables, cfg.Fees.HistoryPath, feedb.WithTTL(cfg.Fees.CacheTTL()))
	pricer := pricing.New(fees, pricing.Config{
		UnlicensedMultiplier: cfg.Pricing.UnlicensedMultiplier,
		ExpediterMultiplier:  cfg.Pricing.ExpediterMultiplier,
		ExpediterBase:        cfg.Pricing.ExpediterBase,
	})
	comparer := compare.New(pricer, cfg.Pricing.ReferenceProjectValue)

	catalog, err := forms.Load(cfg.Fees.FormsPath)
	if err != nil {
		return nil, eris.Wrap(err, "load forms catalog")
	}

	return &appEnv{
		fees:     fees,
		pricer:   pricer,
		comparer: comparer,
		advisor:  strategy.New(comparer),
		forms:    catalog,
	}, nil
}

// initStore opens the configured analytics backend and migrates it.
func initStore(ctx context.Context) (store.Store, error) {
	var st store.Store
	var err error

	switch cfg.Store.Driver {
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	case "sqlite", "":
		st, err = store.NewSQLite(cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, eris.Wrap(err, "init store")
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}
