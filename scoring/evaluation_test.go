package scoring

import (
	"festival/app_error"
	"festival/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(p int) *int {
	return &p
}

func eventRegistrations() map[int]*repository.Registration {
	names := map[int]string{1: "Alice", 2: "Bob", 3: "Carol", 4: "Dave"}
	registrations := make(map[int]*repository.Registration)
	for id, name := range names {
		registrations[id] = &repository.Registration{
			Id:         id,
			EventId:    10,
			Contestant: &repository.Contestant{Id: id * 100, FullName: name},
		}
	}
	return registrations
}

func validationMessages(t *testing.T, err error) []string {
	var validationErr *app_error.ValidationError
	require.ErrorAs(t, err, &validationErr)
	return validationErr.Messages
}

func TestValidateSubmissionAcceptsTiesAndNonPoster(t *testing.T) {
	submission := &Submission{
		EventId:      10,
		ResultNumber: "R5",
		Placements: map[int]*Placement{
			repository.PositionFirst:     {RegistrationIds: []int{1, 2}, Points: points(10)},
			repository.PositionThird:     {RegistrationIds: []int{3}, Points: points(5)},
			repository.PositionNonPoster: {RegistrationIds: []int{4}, Points: points(0)},
		},
	}
	assert.NoError(t, ValidateSubmission(submission, eventRegistrations()))
}

func TestValidateSubmissionRequiresResultNumber(t *testing.T) {
	submission := &Submission{
		ResultNumber: "   ",
		Placements: map[int]*Placement{
			repository.PositionFirst: {RegistrationIds: []int{1}, Points: points(10)},
		},
	}
	messages := validationMessages(t, ValidateSubmission(submission, eventRegistrations()))
	assert.Equal(t, []string{"result number is required"}, messages)
}

func TestValidateSubmissionRequiresSelection(t *testing.T) {
	submission := &Submission{
		ResultNumber: "R1",
		Placements: map[int]*Placement{
			repository.PositionFirst: {Points: points(10)},
		},
	}
	messages := validationMessages(t, ValidateSubmission(submission, eventRegistrations()))
	assert.Equal(t, []string{"select at least one winner or participant"}, messages)
}

func TestValidateSubmissionPoints(t *testing.T) {
	submission := &Submission{
		ResultNumber: "R1",
		Placements: map[int]*Placement{
			repository.PositionFirst:     {RegistrationIds: []int{1}},
			repository.PositionSecond:    {RegistrationIds: []int{2}, Points: points(-1)},
			repository.PositionThird:     {Points: nil},
			repository.PositionNonPoster: {RegistrationIds: []int{3}},
		},
	}
	messages := validationMessages(t, ValidateSubmission(submission, eventRegistrations()))
	assert.Equal(t, []string{
		"points for 1st place are required",
		"points for 2nd place must be a non-negative integer",
		"points for non-poster participants are required",
	}, messages)
}

func TestValidateSubmissionRejectsDuplicates(t *testing.T) {
	submission := &Submission{
		ResultNumber: "R1",
		Placements: map[int]*Placement{
			repository.PositionFirst:     {RegistrationIds: []int{1, 2}, Points: points(10)},
			repository.PositionSecond:    {RegistrationIds: []int{2}, Points: points(7)},
			repository.PositionNonPoster: {RegistrationIds: []int{1}, Points: points(1)},
		},
	}
	messages := validationMessages(t, ValidateSubmission(submission, eventRegistrations()))
	assert.Equal(t, []string{"a contestant can only be placed once per event: Alice, Bob"}, messages)
}

func TestValidateSubmissionRejectsDuplicateWithinPosition(t *testing.T) {
	submission := &Submission{
		ResultNumber: "R1",
		Placements: map[int]*Placement{
			repository.PositionFirst: {RegistrationIds: []int{3, 3}, Points: points(10)},
		},
	}
	messages := validationMessages(t, ValidateSubmission(submission, eventRegistrations()))
	assert.Equal(t, []string{"a contestant can only be placed once per event: Carol"}, messages)
}

func TestValidateSubmissionRejectsForeignRegistrations(t *testing.T) {
	submission := &Submission{
		ResultNumber: "R1",
		Placements: map[int]*Placement{
			repository.PositionFirst: {RegistrationIds: []int{99}, Points: points(10)},
			7:                        {RegistrationIds: []int{1}, Points: points(1)},
		},
	}
	messages := validationMessages(t, ValidateSubmission(submission, eventRegistrations()))
	assert.Equal(t, []string{
		"position 7 is not a valid position",
		"registration 99 does not belong to this event",
	}, messages)
}

func TestBuildResults(t *testing.T) {
	submission := &Submission{
		EventId:      10,
		ResultNumber: " R5 ",
		Placements: map[int]*Placement{
			repository.PositionFirst:     {RegistrationIds: []int{2, 1}, Points: points(10)},
			repository.PositionThird:     {RegistrationIds: []int{3}, Points: points(5)},
			repository.PositionNonPoster: {RegistrationIds: []int{4}, Points: points(2)},
		},
	}
	results := BuildResults(submission)
	require.Len(t, results, 4)

	expected := []repository.Result{
		{RegistrationId: 2, Position: 1, Points: 10, ResultNumber: "R5", IncludeInPoster: true, DisplayOrder: 1},
		{RegistrationId: 1, Position: 1, Points: 10, ResultNumber: "R5", IncludeInPoster: true, DisplayOrder: 2},
		{RegistrationId: 3, Position: 3, Points: 5, ResultNumber: "R5", IncludeInPoster: true, DisplayOrder: 1},
		{RegistrationId: 4, Position: 4, Points: 2, ResultNumber: "R5", IncludeInPoster: false, DisplayOrder: 1},
	}
	for i, result := range results {
		assert.Equal(t, expected[i], *result)
	}
	assert.False(t, results[3].IsPosterEligible())
	assert.True(t, results[0].IsPosterEligible())
}
