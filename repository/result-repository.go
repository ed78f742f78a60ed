package repository

import (
	"context"

	"gorm.io/gorm"
)

const (
	PositionFirst  = 1
	PositionSecond = 2
	PositionThird  = 3
	// PositionNonPoster holds scorers that count towards standings but stay off the poster.
	PositionNonPoster = 4
)

// Result is a recorded outcome for a registration. Tied registrations share position and
// points and are told apart by DisplayOrder.
type Result struct {
	Id              int    `gorm:"primaryKey"`
	RegistrationId  int    `gorm:"not null;index"`
	Position        int    `gorm:"not null;check:position BETWEEN 1 AND 4"`
	Points          int    `gorm:"not null;default:0;check:points >= 0"`
	ResultNumber    string `gorm:"not null"`
	IncludeInPoster bool   `gorm:"not null"`
	DisplayOrder    int    `gorm:"not null;default:1"`

	Registration *Registration `gorm:"foreignKey:RegistrationId;constraint:OnDelete:CASCADE"`
}

// IsPosterEligible reports whether the result is shown on generated posters.
func (r *Result) IsPosterEligible() bool {
	return r.IncludeInPoster && r.Position >= PositionFirst && r.Position <= PositionThird
}

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) eventRegistrationIds(db *gorm.DB, eventId int) *gorm.DB {
	return db.Model(&Registration{}).Select("id").Where("event_id = ?", eventId)
}

// ReplaceEventResults deletes every result of the event's registrations and inserts results
// in their place. Readers never observe a partially replaced set.
func (r *ResultRepository) ReplaceEventResults(ctx context.Context, eventId int, results []*Result) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("registration_id IN (?)", r.eventRegistrationIds(tx, eventId)).Delete(&Result{}).Error
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return nil
		}
		return tx.Omit("Registration").Create(&results).Error
	})
}

func (r *ResultRepository) GetEventResults(ctx context.Context, eventId int) ([]*Result, error) {
	results := make([]*Result, 0)
	err := r.DB.WithContext(ctx).
		Preload("Registration.Event").
		Preload("Registration.Contestant.Group").
		Where("registration_id IN (?)", r.eventRegistrationIds(r.DB, eventId)).
		Order("position, display_order, id").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetPosterResults returns the results shown on the event's poster, ordered for rendering.
func (r *ResultRepository) GetPosterResults(ctx context.Context, eventId int) ([]*Result, error) {
	results := make([]*Result, 0)
	err := r.DB.WithContext(ctx).
		Preload("Registration.Contestant.Group").
		Where("registration_id IN (?)", r.eventRegistrationIds(r.DB, eventId)).
		Where("position IN ? AND include_in_poster = ?", []int{PositionFirst, PositionSecond, PositionThird}, true).
		Order("position, display_order, id").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetWinners returns poster-eligible results of all events, or of one event when eventId is set.
func (r *ResultRepository) GetWinners(ctx context.Context, eventId *int) ([]*Result, error) {
	results := make([]*Result, 0)
	query := r.DB.WithContext(ctx).
		Preload("Registration.Event").
		Preload("Registration.Contestant.Group").
		Preload("Registration.Contestant.Category").
		Where("position IN ? AND include_in_poster = ?", []int{PositionFirst, PositionSecond, PositionThird}, true)
	if eventId != nil {
		query = query.Where("registration_id IN (?)", r.eventRegistrationIds(r.DB, *eventId))
	}
	err := query.Order("position, display_order, id").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ResultRepository) FindAll(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, 0)
	err := r.DB.WithContext(ctx).
		Preload("Registration.Event").
		Preload("Registration.Contestant.Group").
		Order("id").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
