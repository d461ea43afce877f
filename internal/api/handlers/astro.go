package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/electa-app/electa/internal/astro"
	"github.com/electa-app/electa/internal/contracts"
	"github.com/electa-app/electa/internal/ephemeris"
	"github.com/electa-app/electa/pkg/config"
	"github.com/electa-app/electa/pkg/logger"
	"github.com/electa-app/electa/pkg/redis"
)

// AstroHandler serves the single-date read paths: planetary hours and
// lunar info.
type AstroHandler struct {
	calc   *astro.Calculator
	cache  *redis.Cache
	config *config.Config
	logger *logger.Logger
}

// NewAstroHandler creates a new astro handler.
func NewAstroHandler(calc *astro.Calculator, cache *redis.Cache, cfg *config.Config, log *logger.Logger) *AstroHandler {
	return &AstroHandler{
		calc:   calc,
		cache:  cache,
		config: cfg,
		logger: log,
	}
}

// HoursResponse lists one astrological day's planetary hours.
type HoursResponse struct {
	Date     string                   `json:"date"`
	DayRuler contracts.Body           `json:"day_ruler"`
	Hours    []contracts.PlanetaryHour `json:"hours"`
}

// Hours returns the 24 planetary hours of a date.
// GET /api/hours/{date}?latitude=&longitude=
func (h *AstroHandler) Hours(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(contracts.DateLayout, mux.Vars(r)["date"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date (expected YYYY-MM-DD)")
		return
	}
	lat, lon := h.observer(r)

	hours, err := h.calc.PlanetaryHours(date, lat, lon)
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute planetary hours")
		respondError(w, http.StatusInternalServerError, "Failed to compute planetary hours")
		return
	}

	respondJSON(w, http.StatusOK, HoursResponse{
		Date:     date.Format(contracts.DateLayout),
		DayRuler: astro.DayRuler(date.Weekday()),
		Hours:    hours,
	})
}

// Lunar returns the Moon's state for a date, cached for 24h.
// GET /api/lunar/{date}?latitude=&longitude=
func (h *AstroHandler) Lunar(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(contracts.DateLayout, mux.Vars(r)["date"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date (expected YYYY-MM-DD)")
		return
	}

	key := redis.LunarKey(date.Format(contracts.DateLayout))
	var cached contracts.LunarInfo
	if hit, err := h.cache.Get(r.Context(), key, &cached); err == nil && hit {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	lat, lon := h.observer(r)
	inst := contracts.NewInstant(date, 12.0, lat, lon, h.config.Location.UTCOffset)

	info, err := h.calc.LunarInfo(inst)
	if err != nil {
		if ephemeris.IsRangeError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.WithError(err).Error("Failed to compute lunar info")
		respondError(w, http.StatusInternalServerError, "Failed to compute lunar info")
		return
	}

	if err := h.cache.Set(r.Context(), key, info, redis.TTLLunar); err != nil {
		h.logger.WithError(err).Warn("Failed to cache lunar info")
	}

	respondJSON(w, http.StatusOK, info)
}

// observer resolves the query-string location, defaulting to the
// configured observer.
func (h *AstroHandler) observer(r *http.Request) (float64, float64) {
	loc := h.config.Location
	lat, lon := loc.Latitude, loc.Longitude

	q := r.URL.Query()
	if v, err := strconv.ParseFloat(q.Get("latitude"), 64); err == nil {
		lat = v
	}
	if v, err := strconv.ParseFloat(q.Get("longitude"), 64); err == nil {
		lon = v
	}
	return lat, lon
}
