package contracts

import (
	"time"

	"github.com/betslip/iris/pkg/models"
)

// SportModule defines the interface for sport-specific query shaping.
// This enables Iris to serve multiple sports behind one gateway.
type SportModule interface {
	// GetSlug returns the inbound route key for this sport (e.g. "nfl")
	GetSlug() string

	// GetSportKey returns the upstream identifier (e.g. "americanfootball_nfl")
	GetSportKey() string

	// GetDisplayName returns the human-readable name (e.g. "NFL Football")
	GetDisplayName() string

	// GetFeaturedMarkets returns the markets requested by default
	GetFeaturedMarkets() []string

	// GetRegions returns the bookmaker regions requested by default
	GetRegions() []string

	// GetBookPriority returns bookmaker titles in preference order
	GetBookPriority() []string

	// MapGames filters a board to the given window and shapes it into the
	// client's game records
	MapGames(board []models.EventOdds, window models.Window, now time.Time) []models.Game
}
