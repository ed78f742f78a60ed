package service

import (
	"errors"
	"festival/app_error"
	"festival/repository"
	"festival/utils"
	"net/mail"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContestantRow is one contestant as it arrives from a bulk import: relations are given by name.
type ContestantRow struct {
	FullName    string
	Email       string
	State       string
	Gender      string
	Group       string
	Category    string
	Course      string
	PhoneNumber string
	Events      []string
}

type RowFailure struct {
	Row   int
	Error string
}

type ImportReport struct {
	Applied  int
	Failures []RowFailure
}

type ContestantService struct {
	contestantRepository *repository.ContestantRepository
	groupRepository      *repository.GroupRepository
	categoryRepository   *repository.CategoryRepository
	eventRepository      *repository.EventRepository
	logger               *zap.Logger
}

func NewContestantService(db *gorm.DB, logger *zap.Logger) *ContestantService {
	return &ContestantService{
		contestantRepository: repository.NewContestantRepository(db),
		groupRepository:      repository.NewGroupRepository(db),
		categoryRepository:   repository.NewCategoryRepository(db),
		eventRepository:      repository.NewEventRepository(db),
		logger:               logger,
	}
}

func (e *ContestantService) GetContestants() ([]*repository.Contestant, error) {
	return e.contestantRepository.FindAll()
}

func (e *ContestantService) GetContestantById(contestantId int) (*repository.Contestant, error) {
	return e.contestantRepository.GetContestantById(contestantId)
}

func (e *ContestantService) DeleteContestant(contestantId int) error {
	return e.contestantRepository.Delete(contestantId)
}

// Register creates a contestant and enrolls them in the given events, all of which must be open
// to the contestant's category.
func (e *ContestantService) Register(contestant *repository.Contestant, eventIds []int) (*repository.Contestant, error) {
	validationErr := &app_error.ValidationError{}
	contestant.FullName = strings.TrimSpace(contestant.FullName)
	contestant.Email = strings.ToLower(strings.TrimSpace(contestant.Email))
	validateContestant(contestant, validationErr)
	if contestant.GroupId != nil {
		if _, err := e.groupRepository.GetGroupById(*contestant.GroupId); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			validationErr.Add("group %d does not exist", *contestant.GroupId)
		}
	}
	if contestant.CategoryId != nil {
		if _, err := e.categoryRepository.GetCategoryById(*contestant.CategoryId); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			validationErr.Add("category %d does not exist", *contestant.CategoryId)
		}
	}
	eventIds = utils.Uniques(eventIds)
	events, err := e.eventRepository.GetEventsByIds(eventIds)
	if err != nil {
		return nil, err
	}
	found := utils.ToMap(events, func(event *repository.Event) int { return event.Id })
	for _, eventId := range eventIds {
		if _, ok := found[eventId]; !ok {
			validationErr.Add("event %d does not exist", eventId)
		}
	}
	checkEventsOpen(events, contestant.CategoryId, validationErr)
	if err := validationErr.OrNil(); err != nil {
		return nil, err
	}
	return e.contestantRepository.CreateWithEvents(contestant, eventIds)
}

// ApplyRow creates or updates the contestant with the row's email. Its registrations are made
// to match the row's events exactly.
func (e *ContestantService) ApplyRow(row *ContestantRow) (*repository.Contestant, error) {
	validationErr := &app_error.ValidationError{}
	contestant := &repository.Contestant{
		FullName:    strings.TrimSpace(row.FullName),
		Email:       strings.ToLower(strings.TrimSpace(row.Email)),
		State:       strings.TrimSpace(row.State),
		Gender:      repository.Gender(strings.TrimSpace(row.Gender)),
		Course:      strings.TrimSpace(row.Course),
		PhoneNumber: strings.TrimSpace(row.PhoneNumber),
	}
	validateContestant(contestant, validationErr)

	if name := strings.TrimSpace(row.Group); name != "" {
		group, err := e.groupRepository.GetGroupByName(name)
		if err == nil {
			contestant.GroupId = &group.Id
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			validationErr.Add("group %q does not exist", name)
		} else {
			return nil, err
		}
	}
	if name := strings.TrimSpace(row.Category); name != "" {
		category, err := e.categoryRepository.GetCategoryByName(name)
		if err == nil {
			contestant.CategoryId = &category.Id
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			validationErr.Add("category %q does not exist", name)
		} else {
			return nil, err
		}
	}

	names := utils.Uniques(utils.Filter(utils.Map(row.Events, strings.TrimSpace), func(name string) bool { return name != "" }))
	events, err := e.eventRepository.GetEventsByNames(names)
	if err != nil {
		return nil, err
	}
	byName := utils.ToMap(events, func(event *repository.Event) string { return event.Name })
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			validationErr.Add("event %q does not exist", name)
		}
	}
	checkEventsOpen(events, contestant.CategoryId, validationErr)
	if err := validationErr.OrNil(); err != nil {
		return nil, err
	}
	eventIds := utils.Map(events, func(event *repository.Event) int { return event.Id })
	return e.contestantRepository.UpsertWithEvents(contestant, eventIds)
}

// ImportRows applies every row independently. A failing row is reported and does not stop
// the import.
func (e *ContestantService) ImportRows(rows []*ContestantRow) (*ImportReport, error) {
	report := &ImportReport{Failures: make([]RowFailure, 0)}
	for i, row := range rows {
		_, err := e.ApplyRow(row)
		if err == nil {
			report.Applied++
			continue
		}
		if app_error.Status(err) >= 500 {
			return nil, err
		}
		e.logger.Info("contestant row rejected", zap.Int("row", i+1), zap.Error(err))
		report.Failures = append(report.Failures, RowFailure{Row: i + 1, Error: err.Error()})
	}
	return report, nil
}

func validateContestant(contestant *repository.Contestant, validationErr *app_error.ValidationError) {
	if strings.TrimSpace(contestant.FullName) == "" {
		validationErr.Add("full name is required")
	}
	if _, err := mail.ParseAddress(contestant.Email); err != nil {
		validationErr.Add("email %q is not valid", contestant.Email)
	}
	switch {
	case strings.EqualFold(string(contestant.Gender), string(repository.GenderMale)):
		contestant.Gender = repository.GenderMale
	case strings.EqualFold(string(contestant.Gender), string(repository.GenderFemale)):
		contestant.Gender = repository.GenderFemale
	default:
		validationErr.Add("gender must be %s or %s", repository.GenderMale, repository.GenderFemale)
	}
}

func checkEventsOpen(events []*repository.Event, categoryId *int, validationErr *app_error.ValidationError) {
	if categoryId == nil {
		return
	}
	for _, event := range events {
		categoryIds := utils.Map(event.Categories, func(c *repository.Category) int { return c.Id })
		if !utils.Contains(categoryIds, *categoryId) {
			validationErr.Add("event %q is not open to the contestant's category", event.Name)
		}
	}
}
