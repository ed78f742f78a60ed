package client

import "context"

type AnnouncedWinner struct {
	Position int    `json:"position"`
	Label    string `json:"label"`
	Name     string `json:"name"`
	Group    string `json:"group"`
	Points   int    `json:"points"`
}

// ResultAnnouncement is published whenever the results of an event are recorded.
type ResultAnnouncement struct {
	EventId      int               `json:"event_id"`
	EventName    string            `json:"event_name"`
	Categories   []string          `json:"categories"`
	ResultNumber string            `json:"result_number"`
	Winners      []AnnouncedWinner `json:"winners"`
	PosterURLs   []string          `json:"poster_urls,omitempty"`
}

type Announcer interface {
	Announce(ctx context.Context, announcement *ResultAnnouncement) error
	Name() string
}
