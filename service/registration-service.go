package service

import (
	"context"
	"errors"
	"festival/app_error"
	"festival/repository"
	"festival/utils"

	"gorm.io/gorm"
)

type RegistrationService struct {
	registrationRepository *repository.RegistrationRepository
	contestantRepository   *repository.ContestantRepository
	eventRepository        *repository.EventRepository
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{
		registrationRepository: repository.NewRegistrationRepository(db),
		contestantRepository:   repository.NewContestantRepository(db),
		eventRepository:        repository.NewEventRepository(db),
	}
}

func (e *RegistrationService) GetRegistrations() ([]*repository.Registration, error) {
	return e.registrationRepository.FindAll()
}

func (e *RegistrationService) GetRegistrationsForEvent(ctx context.Context, eventId int) ([]*repository.Registration, error) {
	return e.registrationRepository.GetRegistrationsForEvent(ctx, eventId)
}

// Enroll registers an existing contestant for an event open to their category.
func (e *RegistrationService) Enroll(ctx context.Context, contestantId int, eventId int) (*repository.Registration, error) {
	contestant, err := e.contestantRepository.GetContestantById(contestantId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("contestant", contestantId)
		}
		return nil, err
	}
	event, err := e.eventRepository.GetEventById(ctx, eventId, "Categories")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("event", eventId)
		}
		return nil, err
	}
	validationErr := &app_error.ValidationError{}
	checkEventsOpen([]*repository.Event{event}, contestant.CategoryId, validationErr)
	if err := validationErr.OrNil(); err != nil {
		return nil, err
	}
	registration, err := e.registrationRepository.Create(&repository.Registration{ContestantId: contestantId, EventId: eventId})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, app_error.WithStatus(errors.New("contestant is already registered for this event"), 409)
	}
	return registration, err
}

func (e *RegistrationService) DeleteRegistration(registrationId int) error {
	return e.registrationRepository.Delete(registrationId)
}

// RegistrationsById indexes the event's registrations for validating a result sheet.
func (e *RegistrationService) RegistrationsById(ctx context.Context, eventId int) (map[int]*repository.Registration, error) {
	registrations, err := e.registrationRepository.GetRegistrationsForEvent(ctx, eventId)
	if err != nil {
		return nil, err
	}
	return utils.ToMap(registrations, func(r *repository.Registration) int { return r.Id }), nil
}
