package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zoocore/habitat-service/internal/domain/dto"
	"github.com/zoocore/habitat-service/internal/domain/model"
	"github.com/zoocore/habitat-service/internal/i18n"
	"github.com/zoocore/habitat-service/internal/metrics"
	"github.com/zoocore/habitat-service/internal/service"
)

// rosterCache provides thread-safe caching of the stored roster snapshot.
type rosterCache struct {
	roster    atomic.Value // holds []model.Enclosure
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newRosterCache creates a new roster cache with the given TTL.
func newRosterCache(ttl time.Duration) *rosterCache {
	c := &rosterCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached roster if valid, or nil if cache is expired/empty.
func (c *rosterCache) get() []model.Enclosure {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if roster := c.roster.Load(); roster != nil {
				if r, ok := roster.([]model.Enclosure); ok {
					return r
				}
			}
		}
	}
	return nil
}

// set stores the roster in the cache with TTL.
func (c *rosterCache) set(roster []model.Enclosure) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.roster.Store(roster)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *rosterCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for habitat analysis routes.
type Handler struct {
	analyzer      service.HabitatAnalyzer
	catalog       service.Catalog
	rosterService service.RosterService
	rosterCache   *rosterCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRosterCacheTTL sets the TTL for roster snapshot caching.
func WithRosterCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.rosterCache = newRosterCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(analyzer service.HabitatAnalyzer, catalog service.Catalog, rosterService service.RosterService, opts ...HandlerOption) *Handler {
	h := &Handler{
		analyzer:      analyzer,
		catalog:       catalog,
		rosterService: rosterService,
		rosterCache:   newRosterCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getRoster retrieves the roster snapshot from cache, database, or the
// built-in default layout, in that order. The second return value names
// the source used.
func (h *Handler) getRoster(ctx context.Context) ([]model.Enclosure, string) {
	if roster := h.rosterCache.get(); roster != nil {
		return roster, "cache"
	}

	if h.rosterService == nil {
		return service.DefaultRoster(), "default"
	}

	// Use a timeout for database fetch
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	roster, err := h.rosterService.GetRoster(ctx)
	if err != nil || len(roster) == 0 {
		return service.DefaultRoster(), "default"
	}

	h.rosterCache.set(roster)
	return roster, "database"
}

// InvalidateRosterCache invalidates the roster snapshot cache.
// Call this when the stored roster changes.
func (h *Handler) InvalidateRosterCache() {
	h.rosterCache.invalidate()
}

// buildRoster converts a roster override into domain enclosures, resolving
// each occupant's unit size through the catalog.
func (h *Handler) buildRoster(inputs []dto.EnclosureInput) ([]model.Enclosure, error) {
	roster := make([]model.Enclosure, 0, len(inputs))
	for _, enc := range inputs {
		occupants := make([]model.Occupant, 0, len(enc.Occupants))
		for _, occ := range enc.Occupants {
			sp, ok := h.catalog.Lookup(occ.Species)
			if !ok {
				return nil, &dto.ValidationError{Field: "recintos", Message: "unknown occupant species " + occ.Species}
			}
			occupants = append(occupants, model.Occupant{
				Species:  occ.Species,
				Count:    occ.Count,
				UnitSize: sp.UnitSize,
			})
		}
		roster = append(roster, model.NewEnclosure(enc.ID, enc.Biome, enc.Capacity, occupants))
	}
	return roster, nil
}

// AnalyzeHabitat handles POST /api/analyze requests.
//
// @Summary      Analyze enclosures for a group of animals
// @Description  Evaluates which enclosures can legally house a hypothetical group of animals. The analysis combines biome matching, capacity arithmetic (including the extra unit reserved when an occupied enclosure gains a new species), carnivore exclusivity, and the hippopotamus dual-biome rule. Viable enclosures are returned ordered ascending by enclosure number. The optional "recintos" list analyzes a hypothetical roster instead of the stored one.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request body dto.AnalyzeRequest true "Group to place"
// @Success      200 {object} dto.SuccessResponse "Viable enclosures found"
// @Failure      400 {object} dto.ErrorResponse "Invalid species or quantity"
// @Failure      404 {object} dto.ErrorResponse "No viable enclosure"
// @Param        Authorization header string false "API key (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/analyze [post]
func (h *Handler) AnalyzeHabitat(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AnalyzeRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	var roster []model.Enclosure
	if len(req.Enclosures) > 0 {
		// Use the hypothetical roster from the request
		override, err := h.buildRoster(req.Enclosures)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
		roster = override
	} else {
		var source string
		roster, source = h.getRoster(c.Request.Context())
		metrics.RecordRosterSource(source)
	}

	start := time.Now()
	result, analyzeErr := h.analyzer.AnalyzeWithRoster(req.Animal, req.Quantity, roster)
	duration := time.Since(start)

	switch {
	case analyzeErr == nil:
		metrics.RecordAnalysis(duration, "success")
		metrics.RecordPlacements(len(result.Placements))
		builder.SuccessOK(result)
	case errors.Is(analyzeErr, service.ErrUnknownSpecies):
		metrics.RecordAnalysis(duration, "invalid_species")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationAnimal, analyzeErr)
	case errors.Is(analyzeErr, service.ErrInvalidQuantity):
		metrics.RecordAnalysis(duration, "invalid_quantity")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantidade, analyzeErr)
	case errors.Is(analyzeErr, service.ErrNoViableEnclosure):
		metrics.RecordAnalysis(duration, "no_viable_enclosure")
		builder.Error(http.StatusNotFound, i18n.ErrKeyNoViableEnclosure, analyzeErr)
	default:
		metrics.RecordAnalysis(duration, "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, analyzeErr)
	}
}

// ListEnclosures handles GET /api/enclosures requests.
//
// @Summary      List the enclosure roster
// @Description  Returns the current enclosure roster snapshot in ascending enclosure-number order.
// @Tags         Roster
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Current roster"
// @Router       /api/enclosures [get]
func (h *Handler) ListEnclosures(c *gin.Context) {
	builder := NewResponseBuilder(c)

	roster, source := h.getRoster(c.Request.Context())
	metrics.RecordRosterSource(source)

	builder.SuccessOK(roster)
}

// ListSpecies handles GET /api/species requests.
//
// @Summary      List accepted species
// @Description  Returns the fixed species catalog: unit size, compatible biomes and carnivore flag per species.
// @Tags         Roster
// @Produce     json
// @Success      200 {object} dto.SuccessResponse "Species catalog"
// @Router       /api/species [get]
func (h *Handler) ListSpecies(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.catalog.List())
}
