package football

import (
	"sort"
	"time"

	"github.com/betslip/iris/pkg/models"
)

// Module implements the SportModule interface for a football league
type Module struct {
	config *Config
}

// NewNFL creates the NFL sport module
func NewNFL() *Module {
	return &Module{config: NFLConfig()}
}

// NewNCAAF creates the college football sport module
func NewNCAAF() *Module {
	return &Module{config: NCAAFConfig()}
}

// GetSlug returns the inbound route key
func (m *Module) GetSlug() string {
	return m.config.Slug
}

// GetSportKey returns the upstream sport identifier
func (m *Module) GetSportKey() string {
	return m.config.SportKey
}

// GetDisplayName returns the human-readable name
func (m *Module) GetDisplayName() string {
	return m.config.DisplayName
}

// GetFeaturedMarkets returns the default markets to request
func (m *Module) GetFeaturedMarkets() []string {
	return FeaturedMarkets()
}

// GetRegions returns the default bookmaker regions
func (m *Module) GetRegions() []string {
	return m.config.Regions
}

// GetBookPriority returns bookmaker titles in preference order
func (m *Module) GetBookPriority() []string {
	return m.config.BookPriority
}

// MapGames filters a board to the window and shapes each event into a game
// record at its preferred book. Events failing validation or missing any
// featured market are skipped, not errored: a partial board is still a
// useful board.
func (m *Module) MapGames(board []models.EventOdds, window models.Window, now time.Time) []models.Game {
	filtered := m.filterWindow(board, window, now)

	// Keep the client UI populated between game days
	if window == models.WindowToday && len(filtered) == 0 {
		filtered = m.soonestEvents(board, m.config.TodayFallbackGames)
	}

	games := make([]models.Game, 0, len(filtered))
	for i := range filtered {
		ev := &filtered[i]

		if err := ValidateEvent(ev); err != nil {
			continue
		}

		book := ChooseBook(ev.Bookmakers, m.config.BookPriority)
		if book == nil {
			continue
		}

		game, ok := MapGame(ev, book, SeasonWeek(ev.CommenceTime))
		if !ok {
			continue
		}

		games = append(games, game)
	}

	return games
}

func (m *Module) filterWindow(board []models.EventOdds, window models.Window, now time.Time) []models.EventOdds {
	switch window {
	case models.WindowWeekend:
		start, end := WeekWindow(now)
		filtered := make([]models.EventOdds, 0, len(board))
		for _, ev := range board {
			if WithinWindow(ev.CommenceTime, start, end) {
				filtered = append(filtered, ev)
			}
		}
		return filtered

	case models.WindowToday:
		filtered := make([]models.EventOdds, 0, len(board))
		for _, ev := range board {
			if SameDay(ev.CommenceTime, now) {
				filtered = append(filtered, ev)
			}
		}
		return filtered

	default:
		return board
	}
}

func (m *Module) soonestEvents(board []models.EventOdds, limit int) []models.EventOdds {
	if len(board) == 0 || limit <= 0 {
		return nil
	}

	sorted := make([]models.EventOdds, len(board))
	copy(sorted, board)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CommenceTime.Before(sorted[j].CommenceTime)
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}
