package testutil

import (
	"strings"
	"testing"

	"festival/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Festival is a seeded data set:
//
//	groups:      Blue House, Red House, Green House (no contestants)
//	categories:  Junior, Senior
//	events:      100m Dash (Junior), Relay (Junior, Senior)
//	contestants: Alice (Blue, Junior), Bob (Red, Junior), Carol (Blue, Junior),
//	             Erin (Red, Junior), Dave (Red, Senior)
//	100m Dash:   Alice, Bob, Carol, Erin
//	Relay:       Alice, Dave
type Festival struct {
	Groups        map[string]*repository.Group
	Categories    map[string]*repository.Category
	Events        map[string]*repository.Event
	Contestants   map[string]*repository.Contestant
	registrations map[string]map[string]*repository.Registration
}

// Registration returns the registration of a contestant for an event.
func (f *Festival) Registration(event string, contestant string) *repository.Registration {
	return f.registrations[event][contestant]
}

func SeedFestival(t testing.TB, db *gorm.DB) *Festival {
	t.Helper()
	f := &Festival{
		Groups:        make(map[string]*repository.Group),
		Categories:    make(map[string]*repository.Category),
		Events:        make(map[string]*repository.Event),
		Contestants:   make(map[string]*repository.Contestant),
		registrations: make(map[string]map[string]*repository.Registration),
	}
	for _, name := range []string{"Blue House", "Red House", "Green House"} {
		group := &repository.Group{Name: name}
		require.NoError(t, db.Create(group).Error)
		f.Groups[name] = group
	}
	for _, name := range []string{"Junior", "Senior"} {
		category := &repository.Category{Name: name}
		require.NoError(t, db.Create(category).Error)
		f.Categories[name] = category
	}

	events := repository.NewEventRepository(db)
	dash, err := events.Save(&repository.Event{
		Name:       "100m Dash",
		Categories: []*repository.Category{f.Categories["Junior"]},
	})
	require.NoError(t, err)
	f.Events[dash.Name] = dash
	relay, err := events.Save(&repository.Event{
		Name:       "Relay",
		Categories: []*repository.Category{f.Categories["Junior"], f.Categories["Senior"]},
	})
	require.NoError(t, err)
	f.Events[relay.Name] = relay

	contestants := []struct {
		name     string
		group    string
		category string
	}{
		{"Alice", "Blue House", "Junior"},
		{"Bob", "Red House", "Junior"},
		{"Carol", "Blue House", "Junior"},
		{"Erin", "Red House", "Junior"},
		{"Dave", "Red House", "Senior"},
	}
	for _, c := range contestants {
		contestant := &repository.Contestant{
			FullName:    c.name,
			Email:       strings.ToLower(c.name) + "@example.com",
			State:       "Kerala",
			Gender:      repository.GenderFemale,
			GroupId:     &f.Groups[c.group].Id,
			CategoryId:  &f.Categories[c.category].Id,
			Course:      "BSc",
			PhoneNumber: "0000000000",
		}
		require.NoError(t, db.Omit("Group", "Category").Create(contestant).Error)
		contestant.Group = f.Groups[c.group]
		contestant.Category = f.Categories[c.category]
		f.Contestants[c.name] = contestant
	}

	entries := map[string][]string{
		"100m Dash": {"Alice", "Bob", "Carol", "Erin"},
		"Relay":     {"Alice", "Dave"},
	}
	for event, names := range entries {
		f.registrations[event] = make(map[string]*repository.Registration)
		for _, name := range names {
			registration := &repository.Registration{
				ContestantId: f.Contestants[name].Id,
				EventId:      f.Events[event].Id,
			}
			require.NoError(t, db.Omit("Contestant", "Event").Create(registration).Error)
			registration.Contestant = f.Contestants[name]
			registration.Event = f.Events[event]
			f.registrations[event][name] = registration
		}
	}
	return f
}
