package football

import (
	"strings"
	"time"

	"github.com/betslip/iris/pkg/models"
)

// FeaturedMarkets returns the list of featured (mainline) markets for football
func FeaturedMarkets() []string {
	return []string{"h2h", "spreads", "totals"}
}

// ChooseBook selects the preferred bookmaker from an event's board.
// Priority entries are bookmaker titles; the first match wins, otherwise
// the first book on the board is used. Returns nil for an empty board.
func ChooseBook(bookmakers []models.Bookmaker, priority []string) *models.Bookmaker {
	if len(bookmakers) == 0 {
		return nil
	}

	byTitle := make(map[string]*models.Bookmaker, len(bookmakers))
	for i := range bookmakers {
		byTitle[bookmakers[i].Title] = &bookmakers[i]
	}

	for _, title := range priority {
		if book, ok := byTitle[title]; ok {
			return book
		}
	}

	return &bookmakers[0]
}

// MapGame shapes one event's odds at one book into the client's game record.
// Returns false when any of the three featured markets is missing or
// incomplete at that book.
func MapGame(ev *models.EventOdds, book *models.Bookmaker, week int) (models.Game, bool) {
	moneyline, ok := mapMoneyline(ev, book)
	if !ok {
		return models.Game{}, false
	}

	spread, ok := mapSpread(ev, book)
	if !ok {
		return models.Game{}, false
	}

	total, ok := mapTotal(book)
	if !ok {
		return models.Game{}, false
	}

	return models.Game{
		Week:       week,
		KickoffISO: ev.CommenceTime.UTC().Format(time.RFC3339),
		Home:       ev.HomeTeam,
		Away:       ev.AwayTeam,
		Moneyline:  moneyline,
		Spread:     spread,
		Total:      total,
	}, true
}

func mapMoneyline(ev *models.EventOdds, book *models.Bookmaker) (models.Moneyline, bool) {
	mkt := book.Market("h2h")
	if mkt == nil {
		return models.Moneyline{}, false
	}

	// Some feeds label outcomes by team, some by side
	home := mkt.Outcome(ev.HomeTeam)
	if home == nil {
		home = mkt.Outcome("Home")
	}
	away := mkt.Outcome(ev.AwayTeam)
	if away == nil {
		away = mkt.Outcome("Away")
	}

	if home == nil || away == nil {
		return models.Moneyline{}, false
	}

	return models.Moneyline{Home: home.Price, Away: away.Price}, true
}

func mapSpread(ev *models.EventOdds, book *models.Bookmaker) (models.Spread, bool) {
	mkt := book.Market("spreads")
	if mkt == nil {
		return models.Spread{}, false
	}

	home := mkt.Outcome(ev.HomeTeam)
	if home == nil {
		home = mkt.Outcome("Home")
	}
	away := mkt.Outcome(ev.AwayTeam)
	if away == nil {
		away = mkt.Outcome("Away")
	}

	if home == nil || away == nil || home.Point == nil || away.Point == nil {
		return models.Spread{}, false
	}

	// The side laying points is the favorite
	if *home.Point < *away.Point {
		return models.Spread{
			Favorite: ev.HomeTeam,
			Line:     abs(*home.Point),
			Price:    home.Price,
		}, true
	}

	return models.Spread{
		Favorite: ev.AwayTeam,
		Line:     abs(*away.Point),
		Price:    away.Price,
	}, true
}

func mapTotal(book *models.Bookmaker) (models.Total, bool) {
	mkt := book.Market("totals")
	if mkt == nil {
		return models.Total{}, false
	}

	var over, under *models.Outcome
	for i := range mkt.Outcomes {
		name := strings.ToLower(mkt.Outcomes[i].Name)
		switch {
		case strings.HasPrefix(name, "over"):
			over = &mkt.Outcomes[i]
		case strings.HasPrefix(name, "under"):
			under = &mkt.Outcomes[i]
		}
	}

	if over == nil || under == nil || over.Point == nil {
		return models.Total{}, false
	}

	return models.Total{
		Line:       *over.Point,
		OverPrice:  over.Price,
		UnderPrice: under.Price,
	}, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
