package repository

import (
	"context"
	"festival/metrics"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type GroupTotal struct {
	GroupId     int
	GroupName   string
	TotalPoints int
}

type ContestantTotal struct {
	ContestantId       int
	FullName           string
	GroupName          string
	TotalPoints        int
	EventsParticipated int
}

type StandingsRepository struct {
	DB *gorm.DB
}

func NewStandingsRepository(db *gorm.DB) *StandingsRepository {
	return &StandingsRepository{DB: db}
}

func observeQuery(query string) func() {
	t := time.Now()
	return func() {
		metrics.QueryDuration.WithLabelValues(query).Observe(time.Since(t).Seconds())
	}
}

func (r *StandingsRepository) table(model string) string {
	return r.DB.Statement.Quote(r.DB.NamingStrategy.TableName(model))
}

// GetGroupTotals sums result points per group. Groups without results report 0.
func (r *StandingsRepository) GetGroupTotals(ctx context.Context) ([]*GroupTotal, error) {
	defer observeQuery("group_totals")()
	query := fmt.Sprintf(`
	SELECT
		g.id AS group_id,
		g.name AS group_name,
		COALESCE(SUM(res.points), 0) AS total_points
	FROM
		%s AS g
	LEFT JOIN
		%s AS c ON c.group_id = g.id
	LEFT JOIN
		%s AS reg ON reg.contestant_id = c.id
	LEFT JOIN
		%s AS res ON res.registration_id = reg.id
	GROUP BY
		g.id, g.name
	`, r.table("Group"), r.table("Contestant"), r.table("Registration"), r.table("Result"))

	totals := make([]*GroupTotal, 0)
	if err := r.DB.WithContext(ctx).Raw(query).Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

// GetContestantTotals sums points > 0 per contestant and counts the distinct events they scored in.
// Contestants without a scoring result are absent.
func (r *StandingsRepository) GetContestantTotals(ctx context.Context) ([]*ContestantTotal, error) {
	defer observeQuery("contestant_totals")()
	query := fmt.Sprintf(`
	SELECT
		c.id AS contestant_id,
		c.full_name AS full_name,
		COALESCE(g.name, '') AS group_name,
		SUM(res.points) AS total_points,
		COUNT(DISTINCT reg.event_id) AS events_participated
	FROM
		%s AS c
	JOIN
		%s AS reg ON reg.contestant_id = c.id
	JOIN
		%s AS res ON res.registration_id = reg.id
	LEFT JOIN
		%s AS g ON g.id = c.group_id
	WHERE
		res.points > 0
	GROUP BY
		c.id, c.full_name, g.name
	`, r.table("Contestant"), r.table("Registration"), r.table("Result"), r.table("Group"))

	totals := make([]*ContestantTotal, 0)
	if err := r.DB.WithContext(ctx).Raw(query).Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}
