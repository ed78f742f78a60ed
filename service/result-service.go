package service

import (
	"context"
	"encoding/csv"
	"errors"
	"festival/app_error"
	"festival/client"
	"festival/metrics"
	"festival/repository"
	"festival/scoring"
	"io"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StandingsListener is told after results change, so pushed standings can be refreshed.
type StandingsListener interface {
	StandingsChanged(ctx context.Context)
}

type ResultService struct {
	resultRepository    *repository.ResultRepository
	eventRepository     *repository.EventRepository
	registrationService *RegistrationService
	announcers          []client.Announcer
	listeners           []StandingsListener
	logger              *zap.Logger
}

func NewResultService(db *gorm.DB, logger *zap.Logger, announcers ...client.Announcer) *ResultService {
	return &ResultService{
		resultRepository:    repository.NewResultRepository(db),
		eventRepository:     repository.NewEventRepository(db),
		registrationService: NewRegistrationService(db),
		announcers:          announcers,
		logger:              logger,
	}
}

// AddStandingsListener must be called before the service handles requests.
func (e *ResultService) AddStandingsListener(listener StandingsListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *ResultService) getEvent(ctx context.Context, eventId int) (*repository.Event, error) {
	event, err := e.eventRepository.GetEventById(ctx, eventId, "Categories")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("event", eventId)
		}
		return nil, err
	}
	return event, nil
}

// SubmitResults validates the sheet and replaces every stored result of the event with it.
// A rejected sheet leaves the stored results untouched. Resubmissions for the same event are
// not serialized, the last committed one wins.
func (e *ResultService) SubmitResults(ctx context.Context, submission *scoring.Submission) ([]*repository.Result, error) {
	event, err := e.getEvent(ctx, submission.EventId)
	if err != nil {
		return nil, err
	}
	registrations, err := e.registrationService.RegistrationsById(ctx, event.Id)
	if err != nil {
		return nil, err
	}
	if err := scoring.ValidateSubmission(submission, registrations); err != nil {
		metrics.ResultsSubmittedCounter.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if err := e.resultRepository.ReplaceEventResults(ctx, event.Id, scoring.BuildResults(submission)); err != nil {
		metrics.ResultsSubmittedCounter.WithLabelValues("failed").Inc()
		return nil, err
	}
	metrics.ResultsSubmittedCounter.WithLabelValues("accepted").Inc()

	results, err := e.resultRepository.GetEventResults(ctx, event.Id)
	if err != nil {
		return nil, err
	}
	e.logger.Info("results recorded",
		zap.Int("event_id", event.Id),
		zap.String("result_number", submission.ResultNumber),
		zap.Int("results", len(results)))
	announce(ctx, e.logger, e.announcers, buildAnnouncement(event, results))
	for _, listener := range e.listeners {
		listener.StandingsChanged(ctx)
	}
	return results, nil
}

// GetResultSheet returns the event and its current results folded into a submission.
func (e *ResultService) GetResultSheet(ctx context.Context, eventId int) (*repository.Event, *scoring.Submission, error) {
	event, err := e.getEvent(ctx, eventId)
	if err != nil {
		return nil, nil, err
	}
	results, err := e.resultRepository.GetEventResults(ctx, eventId)
	if err != nil {
		return nil, nil, err
	}
	return event, scoring.SheetFromResults(eventId, results), nil
}

func (e *ResultService) GetEventResults(ctx context.Context, eventId int) ([]*repository.Result, error) {
	if _, err := e.getEvent(ctx, eventId); err != nil {
		return nil, err
	}
	return e.resultRepository.GetEventResults(ctx, eventId)
}

func (e *ResultService) GetResults(ctx context.Context) ([]*repository.Result, error) {
	return e.resultRepository.FindAll(ctx)
}

var winnersHeader = []string{"Event", "Result Number", "Position", "Name", "Group", "Category", "Points"}

// ExportWinners writes the poster winners of every event, or of one event, as CSV.
func (e *ResultService) ExportWinners(ctx context.Context, eventId *int, w io.Writer) error {
	if eventId != nil {
		if _, err := e.getEvent(ctx, *eventId); err != nil {
			return err
		}
	}
	winners, err := e.resultRepository.GetWinners(ctx, eventId)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(winnersHeader); err != nil {
		return err
	}
	for _, result := range winners {
		var eventName, name, group, category string
		if registration := result.Registration; registration != nil {
			if registration.Event != nil {
				eventName = registration.Event.Name
			}
			if contestant := registration.Contestant; contestant != nil {
				name = contestant.FullName
				group = contestant.GroupName()
				if contestant.Category != nil {
					category = contestant.Category.Name
				}
			}
		}
		err := writer.Write([]string{
			eventName,
			result.ResultNumber,
			scoring.PositionLabel(result.Position),
			name,
			group,
			category,
			strconv.Itoa(result.Points),
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
