// Package gateway implements the core odds-fetch pipeline:
// validate -> cache lookup -> upstream fetch -> shape -> cache fill.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/betslip/iris/internal/cache"
	"github.com/betslip/iris/internal/registry"
	"github.com/betslip/iris/pkg/common"
	"github.com/betslip/iris/pkg/contracts"
	"github.com/betslip/iris/pkg/models"
)

// Gateway mediates between the client application and the upstream odds
// provider. It holds no per-request state; every call is independent.
type Gateway struct {
	adapter  contracts.VendorAdapter
	registry *registry.SportRegistry
	cache    cache.Store
	cacheTTL time.Duration
	log      *logrus.Logger
}

// New creates a gateway
func New(
	adapter contracts.VendorAdapter,
	sportRegistry *registry.SportRegistry,
	store cache.Store,
	cacheTTL time.Duration,
	log *logrus.Logger,
) *Gateway {
	return &Gateway{
		adapter:  adapter,
		registry: sportRegistry,
		cache:    store,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// FetchOdds validates the query, serves it from cache when possible, and
// otherwise fetches and shapes the upstream board. Validation failures
// never reach the upstream.
func (g *Gateway) FetchOdds(ctx context.Context, query *models.OddsQuery) (*models.GamesResponse, error) {
	sport, err := g.validate(query)
	if err != nil {
		return nil, err
	}

	// Only default-shaped queries are cacheable; overridden regions or
	// markets would poison the shared entry
	cacheable := len(query.Regions) == 0 && len(query.Markets) == 0
	key := fmt.Sprintf("odds:resp:%s:%s", query.Sport, query.Window)

	if cacheable {
		if resp := g.cacheLookup(ctx, key); resp != nil {
			return resp, nil
		}
	}

	opts := &models.FetchOddsOptions{
		Sport:   sport.GetSportKey(),
		Regions: sport.GetRegions(),
		Markets: sport.GetFeaturedMarkets(),
	}
	if len(query.Regions) > 0 {
		opts.Regions = query.Regions
	}
	if len(query.Markets) > 0 {
		opts.Markets = query.Markets
	}

	board, err := g.adapter.FetchOdds(ctx, opts)
	if err != nil {
		g.logUpstreamFailure(query.Sport, err)
		return nil, err
	}

	now := time.Now().UTC()
	resp := &models.GamesResponse{
		AsOf:  now.Format(time.RFC3339),
		Games: sport.MapGames(board, query.Window, now),
	}

	if cacheable {
		g.cacheFill(ctx, key, resp)
	}

	return resp, nil
}

// ListEvents returns upcoming events for a sport without odds
func (g *Gateway) ListEvents(ctx context.Context, slug string) ([]models.Event, error) {
	sport, ok := g.registry.Get(slug)
	if !ok {
		return nil, common.InvalidQuery("unknown sport %q", slug)
	}

	events, err := g.adapter.FetchEvents(ctx, sport.GetSportKey())
	if err != nil {
		g.logUpstreamFailure(slug, err)
		return nil, err
	}

	return events, nil
}

// validate checks the query before any upstream call is considered
func (g *Gateway) validate(query *models.OddsQuery) (contracts.SportModule, error) {
	if query.Sport == "" {
		return nil, common.InvalidQuery("sport is required")
	}

	sport, ok := g.registry.Get(query.Sport)
	if !ok {
		return nil, common.InvalidQuery("unknown sport %q", query.Sport)
	}

	switch query.Window {
	case models.WindowWeekend, models.WindowToday, models.WindowAll:
	case "":
		query.Window = models.WindowAll
	default:
		return nil, common.InvalidQuery("unknown window %q", query.Window)
	}

	for _, market := range query.Markets {
		if !g.adapter.SupportsMarket(market) {
			return nil, common.InvalidQuery("unsupported market %q", market)
		}
	}

	return sport, nil
}

func (g *Gateway) cacheLookup(ctx context.Context, key string) *models.GamesResponse {
	data, ok, err := g.cache.Get(ctx, key)
	if err != nil {
		g.log.WithError(err).WithField("key", key).Warn("cache get failed, treating as miss")
		return nil
	}
	if !ok {
		return nil
	}

	var resp models.GamesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		g.log.WithError(err).WithField("key", key).Warn("cache entry corrupt, treating as miss")
		return nil
	}

	return &resp
}

func (g *Gateway) cacheFill(ctx context.Context, key string, resp *models.GamesResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		g.log.WithError(err).WithField("key", key).Warn("marshal response for cache failed")
		return
	}

	if err := g.cache.Set(ctx, key, data, g.cacheTTL); err != nil {
		g.log.WithError(err).WithField("key", key).Warn("cache set failed")
	}
}

// logUpstreamFailure records every upstream failure server-side; a rejected
// credential is an operator problem and logs at Error
func (g *Gateway) logUpstreamFailure(sport string, err error) {
	entry := g.log.WithField("sport", sport).WithField("kind", string(common.KindOf(err))).WithError(err)

	if common.KindOf(err) == common.KindCredentialRejected {
		entry.Error("upstream rejected the configured API key; check ODDS_API_KEY")
		return
	}

	entry.Warn("upstream fetch failed")
}
