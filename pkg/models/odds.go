package models

import "time"

// EventOdds is the validated odds board for a single event: every bookmaker,
// market and outcome the upstream returned, typed at the boundary.
type EventOdds struct {
	EventID      string      `json:"event_id"`
	SportKey     string      `json:"sport_key"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	CommenceTime time.Time   `json:"commence_time"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker holds one book's markets for an event
type Bookmaker struct {
	Key        string    `json:"key"`
	Title      string    `json:"title"`
	LastUpdate time.Time `json:"last_update"`
	Markets    []Market  `json:"markets"`
}

// Market is a single betting market (h2h, spreads, totals)
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is a single priced side of a market
type Outcome struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`           // American odds
	Point *float64 `json:"point,omitempty"` // For spreads/totals
}

// Market returns the market with the given key, or nil
func (b *Bookmaker) Market(key string) *Market {
	for i := range b.Markets {
		if b.Markets[i].Key == key {
			return &b.Markets[i]
		}
	}
	return nil
}

// Outcome returns the outcome with the given name, or nil
func (m *Market) Outcome(name string) *Outcome {
	for i := range m.Outcomes {
		if m.Outcomes[i].Name == name {
			return &m.Outcomes[i]
		}
	}
	return nil
}

// Event represents a sporting event without odds (discovery endpoint)
type Event struct {
	EventID      string    `json:"event_id"`
	SportKey     string    `json:"sport_key"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	CommenceTime time.Time `json:"commence_time"`
	EventStatus  string    `json:"event_status"` // upcoming, live
}

// Window selects which slice of the schedule a query covers
type Window string

const (
	WindowWeekend Window = "weekend" // Thu 00:00 -> Tue 00:00 containing now
	WindowToday   Window = "today"   // games kicking off today (UTC)
	WindowAll     Window = "all"     // no time filter
)

// OddsQuery is the caller-supplied description of what odds to fetch.
// Sport is required; Regions and Markets override the sport module's
// defaults when set.
type OddsQuery struct {
	Sport   string
	Window  Window
	Regions []string
	Markets []string
}

// FetchOddsOptions contains parameters for an upstream odds fetch
type FetchOddsOptions struct {
	Sport   string
	Regions []string
	Markets []string
}

// RateLimits contains upstream quota information
type RateLimits struct {
	RequestsRemaining int
	RequestsUsed      int
}

// Moneyline is the h2h price pair for a game
type Moneyline struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Spread is the point spread from the favorite's side
type Spread struct {
	Favorite string  `json:"favorite"`
	Line     float64 `json:"line"`
	Price    int     `json:"price"`
}

// Total is the over/under line for a game
type Total struct {
	Line       float64 `json:"line"`
	OverPrice  int     `json:"over_price"`
	UnderPrice int     `json:"under_price"`
}

// Game is the shaped record the client renders
type Game struct {
	Week       int       `json:"week"`
	KickoffISO string    `json:"kickoff_iso"`
	Home       string    `json:"home"`
	Away       string    `json:"away"`
	Moneyline  Moneyline `json:"moneyline"`
	Spread     Spread    `json:"spread"`
	Total      Total     `json:"total"`
}

// GamesResponse is the normalized result returned to the caller
type GamesResponse struct {
	AsOf  string `json:"as_of"`
	Games []Game `json:"games"`
}
