package scheduler

import (
	"context"
	"time"

	"github.com/schemehub/schemehub/internal/catalog"
	"github.com/schemehub/schemehub/internal/logger"
	"github.com/schemehub/schemehub/internal/sources/schemes"
)

// CatalogReloader owns the lifecycle of the scheme catalog: an immediate load
// at startup, a periodic refresh, and a manual trigger fed by the admin
// reload endpoint.
//
// A failed load never brings the process down. The previous snapshot (or an
// empty, unloaded catalog at startup) stays in place and the failure is
// logged; the portal degrades instead of crashing.
type CatalogReloader struct {
	loader        *schemes.Loader
	catalog       *catalog.Catalog
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a reloader for the given schemes file.
func NewCatalogReloader(
	schemeFile string,
	cat *catalog.Catalog,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		loader:        schemes.NewLoader(schemeFile),
		catalog:       cat,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the catalog once, then refreshes on the interval and on manual
// triggers until Stop or context cancellation.
func (cr *CatalogReloader) Start(ctx context.Context) {
	if err := cr.Reload(ctx); err != nil {
		cr.logger.Error("initial catalog load failed, serving without a catalog until a reload succeeds",
			logger.Error(err))
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual catalog reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the reloader.
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the schemes file and swaps the catalog snapshot. On error the
// current snapshot is kept.
func (cr *CatalogReloader) Reload(_ context.Context) error {
	records, err := cr.loader.Load()
	if err != nil {
		return err
	}

	cr.catalog.Replace(records)
	cr.logger.Info("catalog reloaded",
		logger.Int("schemes", len(records)))

	return nil
}
