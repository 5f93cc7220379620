package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sirupsen/logrus"

	"github.com/TechSynnovate-com/Rentnova-sub002/internal/geometry"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/matching"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/models"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/queue"
)

// Store is the read side of listing storage the handlers depend on.
type Store interface {
	GetAllProperties(city string) ([]models.Property, error)
	GetCities() ([]string, error)
	GetAreaStats(city string) (models.AreaStats, error)
	GetCityCoordinates(city string) ([]models.Coordinate, error)
}

type Handler struct {
	store    Store
	queue    *queue.ListingQueue
	scorer   *matching.Scorer
	logger   *logrus.Logger
	workers  int
	defaults matching.Weights
}

// RecommendationRequest is the body of POST /api/recommendations.
type RecommendationRequest struct {
	matching.Profile
	City  string `json:"city"`
	Limit int    `json:"limit"`
}

// NewHandler wires the handlers to storage, the ingest queue, and the
// scoring engine. The weight table is the deployment default applied to
// profiles that do not bring their own.
func NewHandler(store Store, q *queue.ListingQueue, logger *logrus.Logger, workers int, defaults matching.Weights) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Handler{
		store:    store,
		queue:    q,
		scorer:   matching.NewScorer(),
		logger:   logger,
		workers:  workers,
		defaults: defaults,
	}
}

func (h *Handler) GetAllProperties(c *gin.Context) {
	city := c.Query("city")
	properties, err := h.store.GetAllProperties(city)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

// SearchProperties classifies every listing against the free-text query and
// returns them ordered by the additive location score. The tier and label on
// each result come from the classifier; the ordering does not.
func (h *Handler) SearchProperties(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}

	properties, err := h.store.GetAllProperties(c.Query("city"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to load candidates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load candidates"})
		return
	}

	results, err := h.scorer.SearchAll(c.Request.Context(), query, models.Candidates(properties), h.workers)
	if err != nil {
		h.logger.WithError(err).Error("Search scoring did not complete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search did not complete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": truncate(results, limitParam(c, 20)),
	})
}

// Recommend scores every listing against the supplied preference profile and
// returns the ranked percentage matches.
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse recommendation request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	properties, err := h.store.GetAllProperties(req.City)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load candidates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load candidates"})
		return
	}

	// A profile without its own weight table gets the deployment default.
	// Explicit weights, including malformed ones, are passed through so
	// caller mistakes surface instead of being masked.
	if req.Profile.Weights == nil {
		defaults := h.defaults
		req.Profile.Weights = &defaults
	}

	results, err := h.scorer.ScoreAll(c.Request.Context(), req.Profile, models.Candidates(properties), h.workers)
	if err != nil {
		var confErr *matching.ConfigurationError
		if errors.As(err, &confErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": confErr.Error()})
			return
		}
		h.logger.WithError(err).Error("Recommendation scoring did not complete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recommendations did not complete"})
		return
	}

	if req.Limit <= 0 {
		req.Limit = 10
	}
	c.JSON(http.StatusOK, gin.H{"results": truncate(results, req.Limit)})
}

// SuggestCities returns fuzzy city-name completions for a partial query.
func (h *Handler) SuggestCities(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"suggestions": []string{}})
		return
	}

	cities, err := h.store.GetCities()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get cities")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cities"})
		return
	}

	ranks := fuzzy.RankFindNormalizedFold(query, cities)
	sort.Sort(ranks)

	suggestions := make([]string, 0, len(ranks))
	for _, r := range ranks {
		suggestions = append(suggestions, r.Target)
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": truncate(suggestions, limitParam(c, 5))})
}

// GetAreaStats returns listing aggregates for a city together with the
// geographic footprint of its geocoded listings.
func (h *Handler) GetAreaStats(c *gin.Context) {
	city := c.Param("city")

	stats, err := h.store.GetAreaStats(city)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get area stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get area stats"})
		return
	}

	coords, err := h.store.GetCityCoordinates(city)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get coordinates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get coordinates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
		"area":  geometry.Summarize(coords),
	})
}

// IngestProperties accepts a batch of listings and queues it for the batch
// processor. Listings without an identifier are assigned one.
func (h *Handler) IngestProperties(c *gin.Context) {
	var listings []*models.Property
	if err := c.ShouldBindJSON(&listings); err != nil {
		h.logger.WithError(err).Error("Failed to parse listings batch")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(listings) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty listings batch"})
		return
	}

	for _, l := range listings {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
	}

	if err := h.queue.Push(listings); err != nil {
		h.logger.WithError(err).Error("Failed to queue listings batch")
		if errors.Is(err, queue.ErrQueueFull) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ingest queue is full"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue listings"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":   "accepted",
		"queued":   len(listings),
		"listings": listings,
	})
}

func limitParam(c *gin.Context, fallback int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(fallback)))
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

func truncate[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
