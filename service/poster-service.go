package service

import (
	"context"
	"festival/client"
	"festival/poster"
	"festival/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PosterService struct {
	generator        *poster.Generator
	resultRepository *repository.ResultRepository
	eventRepository  *repository.EventRepository
	announcers       []client.Announcer
	logger           *zap.Logger
}

func NewPosterService(db *gorm.DB, generator *poster.Generator, logger *zap.Logger, announcers ...client.Announcer) *PosterService {
	return &PosterService{
		generator:        generator,
		resultRepository: repository.NewResultRepository(db),
		eventRepository:  repository.NewEventRepository(db),
		announcers:       announcers,
		logger:           logger,
	}
}

// GeneratePosters renders the event's posters. When at least one was published the poster URLs
// are announced as well.
func (e *PosterService) GeneratePosters(ctx context.Context, eventId int) ([]poster.Artifact, error) {
	artifacts, err := e.generator.Generate(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if len(artifacts) == 0 || len(e.announcers) == 0 {
		return artifacts, nil
	}
	event, err := e.eventRepository.GetEventById(ctx, eventId, "Categories")
	if err != nil {
		e.logger.Warn("skipping poster announcement", zap.Int("event_id", eventId), zap.Error(err))
		return artifacts, nil
	}
	results, err := e.resultRepository.GetPosterResults(ctx, eventId)
	if err != nil {
		e.logger.Warn("skipping poster announcement", zap.Int("event_id", eventId), zap.Error(err))
		return artifacts, nil
	}
	announcement := buildAnnouncement(event, results)
	for _, artifact := range artifacts {
		announcement.PosterURLs = append(announcement.PosterURLs, artifact.URL)
	}
	announce(ctx, e.logger, e.announcers, announcement)
	return artifacts, nil
}
