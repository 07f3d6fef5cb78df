package football

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betslip/iris/pkg/models"
	"github.com/betslip/iris/pkg/testutil"
)

func TestChooseBook_Priority(t *testing.T) {
	books := []models.Bookmaker{
		testutil.NewTestBook("bovada", "Bovada", "Home Team", "Away Team"),
		testutil.NewTestBook("fanduel", "FanDuel", "Home Team", "Away Team"),
		testutil.NewTestBook("draftkings", "DraftKings", "Home Team", "Away Team"),
	}

	book := ChooseBook(books, defaultBookPriority())
	require.NotNil(t, book)
	assert.Equal(t, "DraftKings", book.Title)
}

func TestChooseBook_FallsBackToFirst(t *testing.T) {
	books := []models.Bookmaker{
		testutil.NewTestBook("bovada", "Bovada", "Home Team", "Away Team"),
		testutil.NewTestBook("unibet", "Unibet", "Home Team", "Away Team"),
	}

	book := ChooseBook(books, defaultBookPriority())
	require.NotNil(t, book)
	assert.Equal(t, "Bovada", book.Title)
}

func TestChooseBook_EmptyBoard(t *testing.T) {
	assert.Nil(t, ChooseBook(nil, defaultBookPriority()))
}

func TestMapGame(t *testing.T) {
	kickoff := time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC)
	ev := testutil.NewTestBoard("evt1", "americanfootball_nfl", "Kansas City Chiefs", "Buffalo Bills", kickoff)

	game, ok := MapGame(&ev, &ev.Bookmakers[0], 1)
	require.True(t, ok)

	assert.Equal(t, 1, game.Week)
	assert.Equal(t, "2025-09-07T17:00:00Z", game.KickoffISO)
	assert.Equal(t, "Kansas City Chiefs", game.Home)
	assert.Equal(t, "Buffalo Bills", game.Away)
	assert.Equal(t, models.Moneyline{Home: -120, Away: 110}, game.Moneyline)

	// Home lays 3.5, so home is the favorite at the home price
	assert.Equal(t, models.Spread{Favorite: "Kansas City Chiefs", Line: 3.5, Price: -110}, game.Spread)
	assert.Equal(t, models.Total{Line: 44.5, OverPrice: -110, UnderPrice: -110}, game.Total)
}

func TestMapGame_AwayFavorite(t *testing.T) {
	kickoff := time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC)
	ev := testutil.NewTestBoard("evt1", "americanfootball_nfl", "Home Team", "Away Team", kickoff)

	spreads := ev.Bookmakers[0].Market("spreads")
	require.NotNil(t, spreads)
	spreads.Outcome("Home Team").Point = testutil.PtrFloat64(6.5)
	spreads.Outcome("Home Team").Price = -105
	spreads.Outcome("Away Team").Point = testutil.PtrFloat64(-6.5)
	spreads.Outcome("Away Team").Price = -115

	game, ok := MapGame(&ev, &ev.Bookmakers[0], 1)
	require.True(t, ok)
	assert.Equal(t, models.Spread{Favorite: "Away Team", Line: 6.5, Price: -115}, game.Spread)
}

func TestMapGame_SideLabelledOutcomes(t *testing.T) {
	kickoff := time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC)
	ev := testutil.NewTestBoard("evt1", "americanfootball_nfl", "Home Team", "Away Team", kickoff)

	// Some books label h2h outcomes by side rather than team name
	h2h := ev.Bookmakers[0].Market("h2h")
	require.NotNil(t, h2h)
	h2h.Outcomes[0].Name = "Home"
	h2h.Outcomes[1].Name = "Away"

	game, ok := MapGame(&ev, &ev.Bookmakers[0], 1)
	require.True(t, ok)
	assert.Equal(t, models.Moneyline{Home: -120, Away: 110}, game.Moneyline)
}

func TestMapGame_MissingMarket(t *testing.T) {
	kickoff := time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC)
	ev := testutil.NewTestBoard("evt1", "americanfootball_nfl", "Home Team", "Away Team", kickoff)

	// Drop totals from the book
	book := ev.Bookmakers[0]
	book.Markets = book.Markets[:2]

	_, ok := MapGame(&ev, &book, 1)
	assert.False(t, ok)
}

func TestMapGame_SpreadWithoutPoints(t *testing.T) {
	kickoff := time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC)
	ev := testutil.NewTestBoard("evt1", "americanfootball_nfl", "Home Team", "Away Team", kickoff)

	spreads := ev.Bookmakers[0].Market("spreads")
	require.NotNil(t, spreads)
	spreads.Outcome("Home Team").Point = nil

	_, ok := MapGame(&ev, &ev.Bookmakers[0], 1)
	assert.False(t, ok)
}
