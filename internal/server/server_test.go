package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betslip/iris/internal/cache"
	"github.com/betslip/iris/internal/config"
	"github.com/betslip/iris/internal/gateway"
	"github.com/betslip/iris/internal/registry"
	"github.com/betslip/iris/internal/server"
	"github.com/betslip/iris/pkg/common"
	"github.com/betslip/iris/pkg/models"
	"github.com/betslip/iris/pkg/testutil"
	"github.com/betslip/iris/sports/football"
)

func newTestServer(t *testing.T, adapter *testutil.MockVendorAdapter) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	reg := registry.NewSportRegistry()
	require.NoError(t, reg.Register(football.NewNFL()))
	require.NoError(t, reg.Register(football.NewNCAAF()))

	gw := gateway.New(adapter, reg, cache.NewMemoryStore(), 45*time.Second, log)

	cfg := &config.HTTPConfig{Port: "0", AllowedOrigins: []string{"*"}}
	srv := httptest.NewServer(server.New(cfg, gw, adapter, log).Router())
	t.Cleanup(srv.Close)

	return srv
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]interface{}) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &testutil.MockVendorAdapter{})

	resp, body := getJSON(t, srv.URL+"/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(500), body["requests_remaining"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestOdds_Success(t *testing.T) {
	kickoff := time.Now().UTC().Add(2 * time.Hour)

	adapter := &testutil.MockVendorAdapter{
		FetchOddsFunc: func(ctx context.Context, opts *models.FetchOddsOptions) ([]models.EventOdds, error) {
			return []models.EventOdds{
				testutil.NewTestBoard("evt1", opts.Sport, "Kansas City Chiefs", "Buffalo Bills", kickoff),
			}, nil
		},
	}
	srv := newTestServer(t, adapter)

	resp, body := getJSON(t, srv.URL+"/odds?sport=nfl&window=all")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, body["as_of"])

	games, ok := body["games"].([]interface{})
	require.True(t, ok)
	require.Len(t, games, 1)

	game := games[0].(map[string]interface{})
	assert.Equal(t, "Kansas City Chiefs", game["home"])
	assert.Equal(t, "Buffalo Bills", game["away"])
}

func TestOdds_UnknownSportIs400(t *testing.T) {
	adapter := &testutil.MockVendorAdapter{}
	srv := newTestServer(t, adapter)

	resp, body := getJSON(t, srv.URL+"/odds?sport=curling")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "invalid_query", errObj["kind"])
	assert.Equal(t, 0, adapter.FetchOddsCalls())
}

func TestOdds_RateLimitedPropagatesRetryAfter(t *testing.T) {
	adapter := &testutil.MockVendorAdapter{
		FetchOddsFunc: func(ctx context.Context, opts *models.FetchOddsOptions) ([]models.EventOdds, error) {
			return nil, common.RateLimited(17*time.Second, fmt.Errorf("HTTP 429"))
		},
	}
	srv := newTestServer(t, adapter)

	resp, body := getJSON(t, srv.URL+"/nfl/weekend")

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "17", resp.Header.Get("Retry-After"))
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "rate_limited", errObj["kind"])
}

func TestOdds_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"unavailable", common.UpstreamUnavailable(fmt.Errorf("refused")), http.StatusServiceUnavailable, "upstream_unavailable"},
		{"credential", common.CredentialRejected(fmt.Errorf("HTTP 401")), http.StatusBadGateway, "credential_rejected"},
		{"protocol", common.UpstreamProtocol(fmt.Errorf("bad shape")), http.StatusBadGateway, "upstream_protocol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := &testutil.MockVendorAdapter{
				FetchOddsFunc: func(ctx context.Context, opts *models.FetchOddsOptions) ([]models.EventOdds, error) {
					return nil, tt.err
				},
			}
			srv := newTestServer(t, adapter)

			resp, body := getJSON(t, srv.URL+"/nfl/today")

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			errObj := body["error"].(map[string]interface{})
			assert.Equal(t, tt.wantKind, errObj["kind"])

			// No upstream detail in the response body
			raw, _ := json.Marshal(body)
			assert.NotContains(t, string(raw), "HTTP 401")
			assert.NotContains(t, string(raw), "refused")
		})
	}
}

func TestEvents(t *testing.T) {
	adapter := &testutil.MockVendorAdapter{
		FetchEventsFunc: func(ctx context.Context, sport string) ([]models.Event, error) {
			return []models.Event{{EventID: "evt1", SportKey: sport, HomeTeam: "A", AwayTeam: "B"}}, nil
		},
	}
	srv := newTestServer(t, adapter)

	resp, body := getJSON(t, srv.URL+"/cfb/events")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	events := body["events"].([]interface{})
	require.Len(t, events, 1)
	assert.Equal(t, "evt1", events[0].(map[string]interface{})["event_id"])
}

func TestRequestID_EchoesCallerValue(t *testing.T) {
	srv := newTestServer(t, &testutil.MockVendorAdapter{})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "caller-id-1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "caller-id-1", resp.Header.Get("X-Request-ID"))
}
