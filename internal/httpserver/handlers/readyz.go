package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/logger"
)

type readyzResponse struct {
	Ready         bool   `json:"ready"`
	CatalogLoaded bool   `json:"catalog_loaded"`
	SchemeCount   int    `json:"scheme_count"`
	Redis         string `json:"redis"`
}

// Readyz reports readiness: the catalog has loaded at least once and Redis
// answers a ping. Load balancers should route traffic only when this is 200.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loaded := d.Catalog.Loaded()

		redisState := "ok"
		if d.RedisClient != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := d.RedisClient.Ping(ctx).Err(); err != nil {
				redisState = "down"
				d.Logger.Warn("redis ping failed", logger.Error(err))
			}
		}

		ready := loaded && redisState == "ok"
		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, readyzResponse{
			Ready:         ready,
			CatalogLoaded: loaded,
			SchemeCount:   d.Catalog.Count(),
			Redis:         redisState,
		})
	}
}
