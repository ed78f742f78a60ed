package service

import (
	"context"
	"festival/repository"
	"festival/scoring"

	"gorm.io/gorm"
)

// StandingsService recomputes standings from the stored results on every call.
type StandingsService struct {
	standingsRepository *repository.StandingsRepository
}

func NewStandingsService(db *gorm.DB) *StandingsService {
	return &StandingsService{
		standingsRepository: repository.NewStandingsRepository(db),
	}
}

func (e *StandingsService) GetGroupStandings(ctx context.Context) ([]*scoring.GroupStanding, error) {
	totals, err := e.standingsRepository.GetGroupTotals(ctx)
	if err != nil {
		return nil, err
	}
	return scoring.RankGroups(totals), nil
}

func (e *StandingsService) GetChampions(ctx context.Context) ([]*scoring.ChampionStanding, error) {
	totals, err := e.standingsRepository.GetContestantTotals(ctx)
	if err != nil {
		return nil, err
	}
	return scoring.RankChampions(totals), nil
}
