package service

import (
	"context"
	"festival/client"
	"festival/metrics"
	"festival/repository"
	"festival/scoring"
	"time"

	"go.uber.org/zap"
)

const announceTimeout = 10 * time.Second

func buildAnnouncement(event *repository.Event, results []*repository.Result) *client.ResultAnnouncement {
	announcement := &client.ResultAnnouncement{
		EventId:    event.Id,
		EventName:  event.Name,
		Categories: event.CategoryNames(),
		Winners:    make([]client.AnnouncedWinner, 0, len(results)),
	}
	for _, result := range results {
		if announcement.ResultNumber == "" {
			announcement.ResultNumber = result.ResultNumber
		}
		winner := client.AnnouncedWinner{
			Position: result.Position,
			Label:    scoring.PositionLabel(result.Position),
			Points:   result.Points,
		}
		if result.Registration != nil && result.Registration.Contestant != nil {
			winner.Name = result.Registration.Contestant.FullName
			winner.Group = result.Registration.Contestant.GroupName()
		}
		announcement.Winners = append(announcement.Winners, winner)
	}
	return announcement
}

// announce delivers to every announcer. Failures are logged, the recorded data stays valid
// whether or not anyone heard about it.
func announce(ctx context.Context, logger *zap.Logger, announcers []client.Announcer, announcement *client.ResultAnnouncement) {
	if len(announcers) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), announceTimeout)
	defer cancel()
	for _, announcer := range announcers {
		if err := announcer.Announce(ctx, announcement); err != nil {
			metrics.AnnouncementCounter.WithLabelValues(announcer.Name(), "failed").Inc()
			logger.Warn("failed to announce results",
				zap.String("announcer", announcer.Name()),
				zap.Int("event_id", announcement.EventId),
				zap.Error(err))
			continue
		}
		metrics.AnnouncementCounter.WithLabelValues(announcer.Name(), "sent").Inc()
	}
}
