package football

// Config contains sport-specific query shaping configuration
type Config struct {
	// Sport identification
	Slug        string // inbound route key
	SportKey    string // upstream sport key
	DisplayName string

	// Bookmaker regions to request
	Regions []string

	// Bookmaker titles in preference order; the first present on an
	// event's board wins
	BookPriority []string

	// How many soonest games to return when "today" is empty
	// (keeps the client UI populated between game days)
	TodayFallbackGames int
}

// NFLConfig returns the NFL configuration
func NFLConfig() *Config {
	return &Config{
		Slug:               "nfl",
		SportKey:           "americanfootball_nfl",
		DisplayName:        "NFL Football",
		Regions:            []string{"us"},
		BookPriority:       defaultBookPriority(),
		TodayFallbackGames: 2,
	}
}

// NCAAFConfig returns the college football configuration
func NCAAFConfig() *Config {
	return &Config{
		Slug:               "cfb",
		SportKey:           "americanfootball_ncaaf",
		DisplayName:        "College Football",
		Regions:            []string{"us"},
		BookPriority:       defaultBookPriority(),
		TodayFallbackGames: 2,
	}
}

func defaultBookPriority() []string {
	return []string{
		"DraftKings",
		"FanDuel",
		"BetMGM",
		"Caesars",
		"PointsBet (US)",
		"bet365",
	}
}
