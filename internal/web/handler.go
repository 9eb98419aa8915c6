package web

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/weirdos/internal/config"
	"github.com/cory-johannsen/weirdos/internal/game/catalog"
	"github.com/cory-johannsen/weirdos/internal/game/warband"
	"github.com/cory-johannsen/weirdos/internal/importer"
)

// WarbandStore defines the persistence operations the handlers consume.
// *postgres.WarbandRepository satisfies it; tests substitute a stub.
type WarbandStore interface {
	Create(ctx context.Context, wb *warband.Warband) (*warband.Warband, error)
	GetByID(ctx context.Context, id string) (*warband.Warband, error)
	List(ctx context.Context) ([]*warband.Warband, error)
	Update(ctx context.Context, wb *warband.Warband) (*warband.Warband, error)
	Delete(ctx context.Context, id string) error
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Health(ctx context.Context, timeout time.Duration) error
}

// Handler holds the dependencies shared by every API endpoint.
type Handler struct {
	store    WarbandStore
	catalog  *catalog.Catalog
	importer *importer.Importer
	health   HealthChecker
	auth     config.AuthConfig
	logger   *zap.Logger
}

// NewHandler creates the API handler.
//
// Precondition: store, cat, imp, and logger must be non-nil; health may be
// nil, in which case /healthz only reports process liveness.
func NewHandler(store WarbandStore, cat *catalog.Catalog, imp *importer.Importer,
	health HealthChecker, auth config.AuthConfig, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		catalog:  cat,
		importer: imp,
		health:   health,
		auth:     auth,
		logger:   logger,
	}
}

// Routes builds the full route table wrapped in logging and, when
// configured, bearer-token authentication.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.handleHealth)

	mux.HandleFunc("GET /api/warbands", h.handleListWarbands)
	mux.HandleFunc("POST /api/warbands", h.handleCreateWarband)
	mux.HandleFunc("GET /api/warbands/{id}", h.handleGetWarband)
	mux.HandleFunc("PUT /api/warbands/{id}", h.handleUpdateWarband)
	mux.HandleFunc("DELETE /api/warbands/{id}", h.handleDeleteWarband)

	mux.HandleFunc("POST /api/warbands/import", h.handleImportWarband)
	mux.HandleFunc("GET /api/warbands/{id}/export", h.handleExportWarband)

	mux.HandleFunc("POST /api/validation/warband", h.handleValidateWarband)
	mux.HandleFunc("POST /api/validation/weirdo", h.handleValidateWeirdo)

	mux.HandleFunc("POST /api/cost/calculate", h.handleCostCalculate)
	mux.HandleFunc("POST /api/cost/weirdo", h.handleCostWeirdo)

	mux.HandleFunc("GET /api/catalog/weapons", h.handleCatalogWeapons)
	mux.HandleFunc("GET /api/catalog/equipment", h.handleCatalogEquipment)
	mux.HandleFunc("GET /api/catalog/psychic-powers", h.handleCatalogPowers)
	mux.HandleFunc("GET /api/catalog/leader-traits", h.handleCatalogLeaderTraits)
	mux.HandleFunc("GET /api/catalog/abilities", h.handleCatalogAbilities)
	mux.HandleFunc("GET /api/catalog/point-limits", h.handleCatalogPointLimits)

	return h.withLogging(h.withAuth(mux))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Health(r.Context(), 2*time.Second); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			h.writeError(w, http.StatusServiceUnavailable, "unhealthy", "database unreachable")
			return
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
