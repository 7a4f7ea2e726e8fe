package app

import (
	"fmt"
	"log/slog"
)

// sampleRoster is the starter barn for development databases.
var sampleRoster = map[string][]string{
	"Spirit":   {"Emma", "Sofia"},
	"Thunder":  {"Leo"},
	"Luna":     {"Ida", "Nora"},
	"Midnight": {"Maja"},
}

// SeedDev populates an empty development database with a sample roster so
// the login selector works out of the box. A database with any horse at all
// is left untouched.
func (a *App) SeedDev() error {
	horses, err := a.RosterService.Horses()
	if err != nil {
		return fmt.Errorf("failed to check roster: %w", err)
	}
	if len(horses) > 0 {
		return nil
	}

	for horseName, riderNames := range sampleRoster {
		horse, err := a.RosterService.CreateHorse(horseName, nil, nil)
		if err != nil {
			return fmt.Errorf("failed to seed horse %s: %w", horseName, err)
		}
		for _, riderName := range riderNames {
			_, err := a.RosterService.CreateRider(riderName, horse.ID)
			if err != nil {
				return fmt.Errorf("failed to seed rider %s: %w", riderName, err)
			}
		}
	}

	slog.Info("seeded sample roster", "horses", len(sampleRoster))
	return nil
}
