package poster

import (
	"festival/repository"
	"strings"
)

type Winner struct {
	Name  string
	Group string
}

// Data is the text shared by every template of one event's posters.
type Data struct {
	ResultNumber string
	// Category is empty for general events and events without a category.
	Category string
	Event    string
	General  bool
	Winners  []Winner
}

// Prepare derives poster text from an event and its poster-eligible results, which must already
// be ordered by position and display order.
func Prepare(event *repository.Event, results []*repository.Result) Data {
	data := Data{
		Event:   strings.ToUpper(event.Name),
		General: event.IsGeneral(),
		Winners: make([]Winner, 0, len(results)),
	}
	if len(results) > 0 {
		data.ResultNumber = results[0].ResultNumber
	}
	if len(event.Categories) == 1 {
		data.Category = strings.ToUpper(event.Categories[0].Name)
	}
	for _, result := range results {
		winner := Winner{}
		if result.Registration != nil && result.Registration.Contestant != nil {
			winner.Name = result.Registration.Contestant.FullName
			winner.Group = result.Registration.Contestant.GroupName()
		}
		data.Winners = append(data.Winners, winner)
	}
	return data
}
