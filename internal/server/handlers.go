package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/betslip/iris/pkg/common"
	"github.com/betslip/iris/pkg/models"
)

// handleHealth reports liveness plus the upstream quota snapshot
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	limits := s.adapter.GetRateLimits()

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":                 true,
		"as_of":              time.Now().UTC().Format(time.RFC3339),
		"requests_remaining": limits.RequestsRemaining,
		"requests_used":      limits.RequestsUsed,
	})
}

// handleOdds serves the generic query endpoint:
// GET /odds?sport=nfl&window=weekend&regions=us&markets=h2h,spreads
func (s *Server) handleOdds(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	query := &models.OddsQuery{
		Sport:   params.Get("sport"),
		Window:  models.Window(params.Get("window")),
		Regions: splitParam(params.Get("regions")),
		Markets: splitParam(params.Get("markets")),
	}

	resp, err := s.gateway.FetchOdds(r.Context(), query)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleWindow serves the client-shaped routes:
// GET /{sport}/weekend and GET /{sport}/today
func (s *Server) handleWindow(window models.Window) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		resp, err := s.gateway.FetchOdds(r.Context(), &models.OddsQuery{
			Sport:  vars["sport"],
			Window: window,
		})
		if err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, http.StatusOK, resp)
	}
}

// handleEvents serves upcoming-event discovery: GET /{sport}/events
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	events, err := s.gateway.ListEvents(r.Context(), vars["sport"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"as_of":  time.Now().UTC().Format(time.RFC3339),
		"events": events,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("encode response failed")
	}
}

// writeError maps a gateway error kind to an HTTP status. Only the safe
// Message crosses the wire; causes stay in the logs.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	ge, ok := common.AsGatewayError(err)
	if !ok {
		s.log.WithError(err).Error("unclassified error reached the handler")
		s.writeJSON(w, http.StatusInternalServerError, errorBody("internal", "internal error"))
		return
	}

	status := http.StatusInternalServerError
	switch ge.Kind {
	case common.KindInvalidQuery:
		status = http.StatusBadRequest
	case common.KindRateLimited:
		status = http.StatusTooManyRequests
		if ge.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(ge.RetryAfter/time.Second)))
		}
	case common.KindUpstreamUnavailable:
		status = http.StatusServiceUnavailable
	case common.KindCredentialRejected, common.KindUpstreamProtocol:
		status = http.StatusBadGateway
	}

	s.writeJSON(w, status, errorBody(string(ge.Kind), ge.Message))
}

func errorBody(kind, message string) map[string]interface{} {
	return map[string]interface{}{
		"error": map[string]string{
			"kind":    kind,
			"message": message,
		},
	}
}

func splitParam(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
