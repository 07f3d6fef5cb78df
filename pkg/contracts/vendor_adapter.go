package contracts

import (
	"context"

	"github.com/betslip/iris/pkg/models"
)

// VendorAdapter defines the interface for fetching odds from external vendors.
// Keeping the gateway behind this interface allows swapping The Odds API for
// an in-house aggregator without touching the serving path.
type VendorAdapter interface {
	// FetchOdds retrieves the full odds board for a sport
	// (featured markets: h2h, spreads, totals)
	FetchOdds(ctx context.Context, opts *models.FetchOddsOptions) ([]models.EventOdds, error)

	// FetchEvents retrieves upcoming events without odds (for discovery)
	FetchEvents(ctx context.Context, sport string) ([]models.Event, error)

	// SupportsMarket checks if this adapter supports a given market
	SupportsMarket(market string) bool

	// GetRateLimits returns the current upstream quota snapshot
	GetRateLimits() *models.RateLimits
}
