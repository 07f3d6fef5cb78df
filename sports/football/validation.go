package football

import (
	"fmt"

	"github.com/betslip/iris/pkg/models"
)

// ValidateEvent checks that an event's board is usable for shaping
func ValidateEvent(ev *models.EventOdds) error {
	if ev.HomeTeam == "" {
		return fmt.Errorf("home team cannot be empty")
	}

	if ev.AwayTeam == "" {
		return fmt.Errorf("away team cannot be empty")
	}

	if ev.HomeTeam == ev.AwayTeam {
		return fmt.Errorf("home and away teams cannot be the same")
	}

	if ev.CommenceTime.IsZero() {
		return fmt.Errorf("event has no commence time")
	}

	return nil
}
