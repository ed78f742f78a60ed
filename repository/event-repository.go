package repository

import (
	"context"

	"gorm.io/gorm"
)

// Event is a single competition, open to one or more categories.
type Event struct {
	Id         int         `gorm:"primaryKey"`
	Name       string      `gorm:"not null"`
	Rules      *string     `gorm:"null"`
	Categories []*Category `gorm:"many2many:event_categories;constraint:OnDelete:CASCADE"`
}

// IsGeneral reports whether the event is open to more than one category.
func (e *Event) IsGeneral() bool {
	return len(e.Categories) > 1
}

func (e *Event) CategoryNames() []string {
	names := make([]string, len(e.Categories))
	for i, category := range e.Categories {
		names[i] = category.Name
	}
	return names
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetEventById(ctx context.Context, eventId int, preloads ...string) (*Event, error) {
	var event Event
	query := r.DB.WithContext(ctx)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&event, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &event, nil
}

func (r *EventRepository) GetEventsByIds(eventIds []int) ([]*Event, error) {
	events := make([]*Event, 0)
	if len(eventIds) == 0 {
		return events, nil
	}
	result := r.DB.Preload("Categories").Find(&events, "id IN ?", eventIds)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepository) GetEventsByNames(names []string) ([]*Event, error) {
	events := make([]*Event, 0)
	if len(names) == 0 {
		return events, nil
	}
	result := r.DB.Preload("Categories").Find(&events, "name IN ?", names)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepository) FindAll(preloads ...string) ([]*Event, error) {
	events := make([]*Event, 0)
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("name").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

// GetEventsForCategory returns every event open to the category, general events included.
func (r *EventRepository) GetEventsForCategory(categoryId int) ([]*Event, error) {
	events := make([]*Event, 0)
	eventIds := r.DB.Table(r.DB.NamingStrategy.JoinTableName("event_categories")).
		Select("event_id").
		Where("category_id = ?", categoryId)
	result := r.DB.Preload("Categories").
		Where("id IN (?)", eventIds).
		Order("name").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

// Save persists the event and replaces its category set.
func (r *EventRepository) Save(event *Event) (*Event, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		categories := event.Categories
		if err := tx.Omit("Categories").Save(event).Error; err != nil {
			return err
		}
		return tx.Model(event).Association("Categories").Replace(categories)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) Delete(eventId int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		registrationIds := tx.Model(&Registration{}).Select("id").Where("event_id = ?", eventId)
		if err := tx.Where("registration_id IN (?)", registrationIds).Delete(&Result{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", eventId).Delete(&Registration{}).Error; err != nil {
			return err
		}
		event := &Event{Id: eventId}
		if err := tx.Model(event).Association("Categories").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&Event{}, eventId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
