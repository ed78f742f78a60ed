package scoring

import (
	"festival/app_error"
	"festival/repository"
	"sort"
	"strconv"
	"strings"
)

// Placement is one bucket of a result submission: the registrations sharing a position and
// the points each of them receives.
type Placement struct {
	RegistrationIds []int
	Points          *int
}

// Submission is an operator's result sheet for one event. Placements is keyed by position,
// repository.PositionNonPoster holds the participants that score but stay off the poster.
type Submission struct {
	EventId      int
	ResultNumber string
	Placements   map[int]*Placement
}

var bucketOrder = []int{
	repository.PositionFirst,
	repository.PositionSecond,
	repository.PositionThird,
	repository.PositionNonPoster,
}

func PositionLabel(position int) string {
	switch position {
	case repository.PositionFirst:
		return "1st place"
	case repository.PositionSecond:
		return "2nd place"
	case repository.PositionThird:
		return "3rd place"
	case repository.PositionNonPoster:
		return "non-poster participants"
	}
	return "unknown position"
}

// ValidateSubmission checks a submission against the event's registrations. It reports every
// violated rule at once; nothing may be saved when it returns an error.
func ValidateSubmission(submission *Submission, registrations map[int]*repository.Registration) error {
	validationErr := &app_error.ValidationError{}
	if strings.TrimSpace(submission.ResultNumber) == "" {
		validationErr.Add("result number is required")
	}

	invalid := make([]int, 0)
	for position := range submission.Placements {
		if position < repository.PositionFirst || position > repository.PositionNonPoster {
			invalid = append(invalid, position)
		}
	}
	sort.Ints(invalid)
	for _, position := range invalid {
		validationErr.Add("position %d is not a valid position", position)
	}

	selected := 0
	occurrences := make(map[int]int)
	unknown := make([]int, 0)
	for _, position := range bucketOrder {
		placement := submission.Placements[position]
		if placement == nil || len(placement.RegistrationIds) == 0 {
			continue
		}
		if placement.Points == nil {
			validationErr.Add("points for %s are required", PositionLabel(position))
		} else if *placement.Points < 0 {
			validationErr.Add("points for %s must be a non-negative integer", PositionLabel(position))
		}
		for _, registrationId := range placement.RegistrationIds {
			selected++
			occurrences[registrationId]++
			if _, ok := registrations[registrationId]; !ok && occurrences[registrationId] == 1 {
				unknown = append(unknown, registrationId)
			}
		}
	}

	if selected == 0 {
		validationErr.Add("select at least one winner or participant")
	}
	for _, registrationId := range unknown {
		validationErr.Add("registration %d does not belong to this event", registrationId)
	}

	duplicates := make([]string, 0)
	for registrationId, count := range occurrences {
		if count < 2 {
			continue
		}
		duplicates = append(duplicates, contestantName(registrations[registrationId], registrationId))
	}
	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		validationErr.Add("a contestant can only be placed once per event: %s", strings.Join(duplicates, ", "))
	}
	return validationErr.OrNil()
}

func contestantName(registration *repository.Registration, registrationId int) string {
	if registration == nil || registration.Contestant == nil {
		return "registration " + strconv.Itoa(registrationId)
	}
	return registration.Contestant.FullName
}

// BuildResults expands a validated submission into one result per registration. DisplayOrder
// starts at 1 in every bucket and follows submission order.
func BuildResults(submission *Submission) []*repository.Result {
	results := make([]*repository.Result, 0)
	resultNumber := strings.TrimSpace(submission.ResultNumber)
	for _, position := range bucketOrder {
		placement := submission.Placements[position]
		if placement == nil {
			continue
		}
		for i, registrationId := range placement.RegistrationIds {
			results = append(results, &repository.Result{
				RegistrationId:  registrationId,
				Position:        position,
				Points:          *placement.Points,
				ResultNumber:    resultNumber,
				IncludeInPoster: position != repository.PositionNonPoster,
				DisplayOrder:    i + 1,
			})
		}
	}
	return results
}

// SheetFromResults folds stored results back into the submission they were recorded from.
// results must be ordered by position and display order.
func SheetFromResults(eventId int, results []*repository.Result) *Submission {
	sheet := &Submission{EventId: eventId, Placements: make(map[int]*Placement)}
	for _, result := range results {
		if sheet.ResultNumber == "" {
			sheet.ResultNumber = result.ResultNumber
		}
		placement, ok := sheet.Placements[result.Position]
		if !ok {
			points := result.Points
			placement = &Placement{RegistrationIds: make([]int, 0), Points: &points}
			sheet.Placements[result.Position] = placement
		}
		placement.RegistrationIds = append(placement.RegistrationIds, result.RegistrationId)
	}
	return sheet
}
