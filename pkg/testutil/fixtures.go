package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/betslip/iris/pkg/contracts"
	"github.com/betslip/iris/pkg/models"
)

// NewTestBoard creates a single-event board with a full three-market
// FanDuel book: home -120/+3.5, away +110/-3.5, total 44.5 at -110
func NewTestBoard(eventID, sportKey, home, away string, commence time.Time) models.EventOdds {
	return models.EventOdds{
		EventID:      eventID,
		SportKey:     sportKey,
		HomeTeam:     home,
		AwayTeam:     away,
		CommenceTime: commence,
		Bookmakers: []models.Bookmaker{
			NewTestBook("fanduel", "FanDuel", home, away),
		},
	}
}

// NewTestBook creates a bookmaker with complete h2h/spreads/totals markets
func NewTestBook(key, title, home, away string) models.Bookmaker {
	return models.Bookmaker{
		Key:        key,
		Title:      title,
		LastUpdate: time.Now(),
		Markets: []models.Market{
			{
				Key: "h2h",
				Outcomes: []models.Outcome{
					{Name: home, Price: -120},
					{Name: away, Price: 110},
				},
			},
			{
				Key: "spreads",
				Outcomes: []models.Outcome{
					{Name: home, Price: -110, Point: PtrFloat64(-3.5)},
					{Name: away, Price: -110, Point: PtrFloat64(3.5)},
				},
			},
			{
				Key: "totals",
				Outcomes: []models.Outcome{
					{Name: "Over", Price: -110, Point: PtrFloat64(44.5)},
					{Name: "Under", Price: -110, Point: PtrFloat64(44.5)},
				},
			},
		},
	}
}

// PtrFloat64 creates a pointer to float64
func PtrFloat64(val float64) *float64 {
	return &val
}

// MockVendorAdapter is a test adapter that returns predetermined boards and
// counts upstream calls so tests can assert none were made
type MockVendorAdapter struct {
	FetchOddsFunc   func(ctx context.Context, opts *models.FetchOddsOptions) ([]models.EventOdds, error)
	FetchEventsFunc func(ctx context.Context, sport string) ([]models.Event, error)

	mu              sync.Mutex
	fetchOddsCalls  int
	fetchEventCalls int
}

var _ contracts.VendorAdapter = (*MockVendorAdapter)(nil)

func (m *MockVendorAdapter) FetchOdds(ctx context.Context, opts *models.FetchOddsOptions) ([]models.EventOdds, error) {
	m.mu.Lock()
	m.fetchOddsCalls++
	m.mu.Unlock()

	if m.FetchOddsFunc != nil {
		return m.FetchOddsFunc(ctx, opts)
	}
	return []models.EventOdds{}, nil
}

func (m *MockVendorAdapter) FetchEvents(ctx context.Context, sport string) ([]models.Event, error) {
	m.mu.Lock()
	m.fetchEventCalls++
	m.mu.Unlock()

	if m.FetchEventsFunc != nil {
		return m.FetchEventsFunc(ctx, sport)
	}
	return []models.Event{}, nil
}

func (m *MockVendorAdapter) SupportsMarket(market string) bool {
	switch market {
	case "h2h", "spreads", "totals":
		return true
	}
	return false
}

func (m *MockVendorAdapter) GetRateLimits() *models.RateLimits {
	return &models.RateLimits{RequestsRemaining: 500}
}

// FetchOddsCalls returns how many times FetchOdds was invoked
func (m *MockVendorAdapter) FetchOddsCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchOddsCalls
}

// FetchEventCalls returns how many times FetchEvents was invoked
func (m *MockVendorAdapter) FetchEventCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchEventCalls
}
