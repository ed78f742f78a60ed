package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Registration is a contestant's entry into one event.
type Registration struct {
	Id           int `gorm:"primaryKey"`
	ContestantId int `gorm:"not null;uniqueIndex:idx_registration_contestant_event"`
	EventId      int `gorm:"not null;uniqueIndex:idx_registration_contestant_event;index"`

	Contestant *Contestant `gorm:"foreignKey:ContestantId;constraint:OnDelete:CASCADE"`
	Event      *Event      `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

type RegistrationRepository struct {
	DB *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{DB: db}
}

func (r *RegistrationRepository) GetRegistrationById(registrationId int) (*Registration, error) {
	var registration Registration
	result := r.DB.Preload("Contestant").Preload("Event").First(&registration, registrationId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &registration, nil
}

func (r *RegistrationRepository) GetRegistrationsForEvent(ctx context.Context, eventId int) ([]*Registration, error) {
	registrations := make([]*Registration, 0)
	result := r.DB.WithContext(ctx).
		Preload("Contestant.Group").
		Preload("Contestant.Category").
		Where("event_id = ?", eventId).
		Order("id").
		Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}
	return registrations, nil
}

func (r *RegistrationRepository) FindAll() ([]*Registration, error) {
	registrations := make([]*Registration, 0)
	result := r.DB.Order("id").Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}
	return registrations, nil
}

func (r *RegistrationRepository) Create(registration *Registration) (*Registration, error) {
	result := r.DB.Omit("Contestant", "Event").Create(registration)
	if result.Error != nil {
		return nil, result.Error
	}
	return registration, nil
}

func (r *RegistrationRepository) Delete(registrationId int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("registration_id = ?", registrationId).Delete(&Result{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Registration{}, registrationId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// replaceRegistrations drops the contestant's registrations for events outside eventIds
// (with their results) and adds the missing ones.
func replaceRegistrations(tx *gorm.DB, contestantId int, eventIds []int) error {
	stale := tx.Model(&Registration{}).Select("id").Where("contestant_id = ?", contestantId)
	if len(eventIds) > 0 {
		stale = stale.Where("event_id NOT IN ?", eventIds)
	}
	if err := tx.Where("registration_id IN (?)", stale).Delete(&Result{}).Error; err != nil {
		return err
	}
	deleteQuery := tx.Where("contestant_id = ?", contestantId)
	if len(eventIds) > 0 {
		deleteQuery = deleteQuery.Where("event_id NOT IN ?", eventIds)
	}
	if err := deleteQuery.Delete(&Registration{}).Error; err != nil {
		return err
	}
	if len(eventIds) == 0 {
		return nil
	}
	registrations := make([]*Registration, len(eventIds))
	for i, eventId := range eventIds {
		registrations[i] = &Registration{ContestantId: contestantId, EventId: eventId}
	}
	return tx.Omit("Contestant", "Event").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&registrations).Error
}
