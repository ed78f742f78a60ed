package service

import (
	"context"
	"errors"
	"festival/app_error"
	"festival/repository"
	"festival/utils"

	"gorm.io/gorm"
)

type EventService struct {
	eventRepository    *repository.EventRepository
	categoryRepository *repository.CategoryRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		eventRepository:    repository.NewEventRepository(db),
		categoryRepository: repository.NewCategoryRepository(db),
	}
}

func (e *EventService) GetEvents() ([]*repository.Event, error) {
	return e.eventRepository.FindAll("Categories")
}

func (e *EventService) GetEventById(ctx context.Context, eventId int) (*repository.Event, error) {
	event, err := e.eventRepository.GetEventById(ctx, eventId, "Categories")
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, app_error.NotFound("event", eventId)
	}
	return event, err
}

// GetEventsForCategory lists the events a contestant of the category can register for.
func (e *EventService) GetEventsForCategory(categoryId int) ([]*repository.Event, error) {
	if _, err := e.categoryRepository.GetCategoryById(categoryId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("category", categoryId)
		}
		return nil, err
	}
	return e.eventRepository.GetEventsForCategory(categoryId)
}

// SaveEvent stores the event open to exactly the given categories.
func (e *EventService) SaveEvent(event *repository.Event, categoryIds []int) (*repository.Event, error) {
	categoryIds = utils.Uniques(categoryIds)
	categories, err := e.categoryRepository.GetCategoriesByIds(categoryIds)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(categoryIds) {
		found := utils.ToMap(categories, func(c *repository.Category) int { return c.Id })
		validationErr := &app_error.ValidationError{}
		for _, categoryId := range categoryIds {
			if _, ok := found[categoryId]; !ok {
				validationErr.Add("category %d does not exist", categoryId)
			}
		}
		return nil, validationErr
	}
	event.Categories = categories
	return e.eventRepository.Save(event)
}

func (e *EventService) DeleteEvent(eventId int) error {
	return e.eventRepository.Delete(eventId)
}
