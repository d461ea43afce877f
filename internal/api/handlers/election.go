package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/electa-app/electa/internal/contracts"
	"github.com/electa-app/electa/internal/ephemeris"
	"github.com/electa-app/electa/internal/history"
	"github.com/electa-app/electa/internal/scanner"
	"github.com/electa-app/electa/pkg/config"
	"github.com/electa-app/electa/pkg/logger"
)

// ElectionHandler serves the date-scanning endpoints.
type ElectionHandler struct {
	scanner     *scanner.Scanner
	historyRepo *history.Repository // nil when persistence is disabled
	policyHash  string
	config      *config.Config
	logger      *logger.Logger
}

// NewElectionHandler creates a new election handler.
func NewElectionHandler(
	sc *scanner.Scanner,
	historyRepo *history.Repository,
	policyHash string,
	cfg *config.Config,
	log *logger.Logger,
) *ElectionHandler {
	return &ElectionHandler{
		scanner:     sc,
		historyRepo: historyRepo,
		policyHash:  policyHash,
		config:      cfg,
		logger:      log,
	}
}

// ComputeRequest describes one scan over HTTP.
type ComputeRequest struct {
	Project   string   `json:"project"`
	Type      string   `json:"type"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ComputeResponse is the ranked scan outcome.
type ComputeResponse struct {
	Project     string                  `json:"project"`
	Type        string                  `json:"type"`
	Description string                  `json:"description"`
	From        string                  `json:"from"`
	To          string                  `json:"to"`
	PolicyHash  string                  `json:"policy_hash"`
	Results     []contracts.ScoreResult `json:"results"`
}

// Compute rates every day of the window and returns the ranked results.
// POST /api/election/compute
func (h *ElectionHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	scanReq, err := h.buildScanRequest(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.scanner.Scan(r.Context(), scanReq)
	if err != nil {
		h.respondScanError(w, err)
		return
	}

	h.persist(r, scanReq, results)

	respondJSON(w, http.StatusOK, ComputeResponse{
		Project:     scanReq.ProjectName,
		Type:        string(scanReq.ProjectType),
		Description: scanReq.ProjectType.Description(),
		From:        scanReq.From.Format(contracts.DateLayout),
		To:          scanReq.To.Format(contracts.DateLayout),
		PolicyHash:  h.policyHash,
		Results:     results,
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// StreamMessage is one websocket frame of a streamed scan.
type StreamMessage struct {
	Type  string      `json:"type"` // "result", "summary" or "error"
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Stream rates the window day by day over a websocket, emitting each
// result as it is computed and a ranked summary at the end.
// GET /api/election/stream?project=...&type=...&from=...&to=...
func (h *ElectionHandler) Stream(w http.ResponseWriter, r *http.Request) {
	req, err := h.buildScanRequest(requestFromQuery(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	days, err := h.scanner.Days(req)
	if err != nil {
		h.respondScanError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	results := make([]contracts.ScoreResult, 0, days)
	for d := 0; d < days; d++ {
		res, err := h.scanner.RateDay(r.Context(), req, req.From.AddDate(0, 0, d))
		if err != nil {
			conn.WriteJSON(StreamMessage{Type: "error", Error: err.Error()})
			return
		}
		results = append(results, res)
		if err := conn.WriteJSON(StreamMessage{Type: "result", Data: res}); err != nil {
			h.logger.WithError(err).Debug("Stream client went away")
			return
		}
	}

	scanner.Rank(results)
	h.persist(r, req, results)
	conn.WriteJSON(StreamMessage{Type: "summary", Data: results})
}

// buildScanRequest validates the transport-level request and fills the
// configured observer location where the caller gave none.
func (h *ElectionHandler) buildScanRequest(req ComputeRequest) (scanner.Request, error) {
	from, err := time.Parse(contracts.DateLayout, req.From)
	if err != nil {
		return scanner.Request{}, errors.New("invalid 'from' date (expected YYYY-MM-DD)")
	}
	to, err := time.Parse(contracts.DateLayout, req.To)
	if err != nil {
		return scanner.Request{}, errors.New("invalid 'to' date (expected YYYY-MM-DD)")
	}

	loc := h.config.Location
	lat, lon := loc.Latitude, loc.Longitude
	if req.Latitude != nil {
		lat = *req.Latitude
	}
	if req.Longitude != nil {
		lon = *req.Longitude
	}

	return scanner.Request{
		ProjectName: req.Project,
		ProjectType: contracts.ParseProjectType(req.Type),
		From:        from,
		To:          to,
		Latitude:    lat,
		Longitude:   lon,
		UTCOffset:   loc.UTCOffset,
	}, nil
}

func requestFromQuery(r *http.Request) ComputeRequest {
	q := r.URL.Query()
	req := ComputeRequest{
		Project: q.Get("project"),
		Type:    q.Get("type"),
		From:    q.Get("from"),
		To:      q.Get("to"),
	}
	if v, err := strconv.ParseFloat(q.Get("latitude"), 64); err == nil {
		req.Latitude = &v
	}
	if v, err := strconv.ParseFloat(q.Get("longitude"), 64); err == nil {
		req.Longitude = &v
	}
	return req
}

func (h *ElectionHandler) respondScanError(w http.ResponseWriter, err error) {
	var rangeErr *scanner.InvalidRangeError
	switch {
	case errors.As(err, &rangeErr):
		respondError(w, http.StatusBadRequest, rangeErr.Error())
	case ephemeris.IsRangeError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).Error("Scan failed")
		respondError(w, http.StatusInternalServerError, "Scan failed")
	}
}

// persist stores the completed scan best-effort; failures only log.
func (h *ElectionHandler) persist(r *http.Request, req scanner.Request, results []contracts.ScoreResult) {
	if h.historyRepo == nil {
		return
	}

	rec := history.RecordFromResults(
		req.ProjectName, req.ProjectType,
		req.From.Format(contracts.DateLayout), req.To.Format(contracts.DateLayout),
		h.policyHash, results,
	)
	if err := h.historyRepo.SaveScan(r.Context(), rec); err != nil {
		h.logger.WithError(err).Warn("Failed to persist scan")
	}
}
