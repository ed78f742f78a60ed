package scoring

import (
	"festival/metrics"
	"festival/repository"
	"sort"
	"time"
)

type GroupStanding struct {
	Rank        int
	GroupId     int
	GroupName   string
	TotalPoints int
}

type ChampionStanding struct {
	Rank               int
	ContestantId       int
	FullName           string
	GroupName          string
	TotalPoints        int
	EventsParticipated int
}

// RankGroups orders groups by total points, ties broken by name then id.
func RankGroups(totals []*repository.GroupTotal) []*GroupStanding {
	t := time.Now()
	standings := make([]*GroupStanding, 0, len(totals))
	for _, total := range totals {
		standings = append(standings, &GroupStanding{
			GroupId:     total.GroupId,
			GroupName:   total.GroupName,
			TotalPoints: total.TotalPoints,
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.GroupName != b.GroupName {
			return a.GroupName < b.GroupName
		}
		return a.GroupId < b.GroupId
	})
	for i, standing := range standings {
		standing.Rank = i + 1
		if i > 0 && standings[i-1].TotalPoints == standing.TotalPoints {
			standing.Rank = standings[i-1].Rank
		}
	}
	metrics.RankingDuration.WithLabelValues("groups").Observe(time.Since(t).Seconds())
	return standings
}

// RankChampions orders contestants by total points, ties broken by name then id.
// Contestants without points are dropped.
func RankChampions(totals []*repository.ContestantTotal) []*ChampionStanding {
	t := time.Now()
	standings := make([]*ChampionStanding, 0, len(totals))
	for _, total := range totals {
		if total.TotalPoints <= 0 {
			continue
		}
		standings = append(standings, &ChampionStanding{
			ContestantId:       total.ContestantId,
			FullName:           total.FullName,
			GroupName:          total.GroupName,
			TotalPoints:        total.TotalPoints,
			EventsParticipated: total.EventsParticipated,
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.FullName != b.FullName {
			return a.FullName < b.FullName
		}
		return a.ContestantId < b.ContestantId
	})
	for i, standing := range standings {
		standing.Rank = i + 1
		if i > 0 && standings[i-1].TotalPoints == standing.TotalPoints {
			standing.Rank = standings[i-1].Rank
		}
	}
	metrics.RankingDuration.WithLabelValues("champions").Observe(time.Since(t).Seconds())
	return standings
}
