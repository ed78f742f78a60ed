package poster_test

import (
	"testing"

	"festival/poster"
	"festival/repository"

	"github.com/stretchr/testify/assert"
)

func posterResult(name string, group string, position int) *repository.Result {
	contestant := &repository.Contestant{FullName: name}
	if group != "" {
		contestant.Group = &repository.Group{Name: group}
	}
	return &repository.Result{
		Position:     position,
		ResultNumber: "R5",
		Registration: &repository.Registration{Contestant: contestant},
	}
}

func TestPrepare(t *testing.T) {
	event := &repository.Event{
		Name:       "100m Dash",
		Categories: []*repository.Category{{Name: "Junior"}},
	}
	data := poster.Prepare(event, []*repository.Result{
		posterResult("Alice", "Blue House", 1),
		posterResult("Bob", "", 1),
	})
	assert.Equal(t, poster.Data{
		ResultNumber: "R5",
		Category:     "JUNIOR",
		Event:        "100M DASH",
		General:      false,
		Winners: []poster.Winner{
			{Name: "Alice", Group: "Blue House"},
			{Name: "Bob", Group: ""},
		},
	}, data)
}

func TestPrepareGeneralEventHasNoCategoryLine(t *testing.T) {
	event := &repository.Event{
		Name:       "Relay",
		Categories: []*repository.Category{{Name: "Junior"}, {Name: "Senior"}},
	}
	data := poster.Prepare(event, []*repository.Result{posterResult("Dave", "Red House", 2)})
	assert.True(t, data.General)
	assert.Empty(t, data.Category)
	assert.Equal(t, "RELAY", data.Event)
}
