package controller

import (
	"bytes"
	"festival/app_error"
	"festival/repository"
	"festival/scoring"
	"festival/service"
	"festival/utils"
	"fmt"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	resultService       *service.ResultService
	registrationService *service.RegistrationService
}

func NewResultController(deps *Dependencies, listeners ...service.StandingsListener) *ResultController {
	resultService := service.NewResultService(deps.DB, deps.Logger, deps.ResultAnnouncers...)
	for _, listener := range listeners {
		resultService.AddStandingsListener(listener)
	}
	return &ResultController{
		resultService:       resultService,
		registrationService: service.NewRegistrationService(deps.DB),
	}
}

func setupResultController(deps *Dependencies, listeners ...service.StandingsListener) []RouteInfo {
	e := NewResultController(deps, listeners...)
	return []RouteInfo{
		{Method: "GET", Path: "/results", HandlerFunc: e.getResultsHandler()},
		{Method: "GET", Path: "/events/:event_id/results", HandlerFunc: e.getResultSheetHandler()},
		{Method: "PUT", Path: "/events/:event_id/results", HandlerFunc: e.submitResultsHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "GET", Path: "/export-winners", HandlerFunc: e.exportWinnersHandler()},
		{Method: "GET", Path: "/export-winners/:event_id", HandlerFunc: e.exportWinnersHandler()},
	}
}

// @id GetResults
// @Description Fetches every recorded result
// @Tags result
// @Produce json
// @Success 200 {array} ResultResponse
// @Router /results [get]
func (e *ResultController) getResultsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := e.resultService.GetResults(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(results, toResultResponse))
	}
}

// @id GetResultSheet
// @Description Fetches the current result sheet of an event together with its registrations
// @Tags result
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} ResultSheet
// @Router /events/{event_id}/results [get]
func (e *ResultController) getResultSheetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		event, sheet, err := e.resultService.GetResultSheet(c.Request.Context(), eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		registrations, err := e.registrationService.GetRegistrationsForEvent(c.Request.Context(), eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toResultSheet(event, sheet, registrations))
	}
}

// @id SubmitResults
// @Description Replaces all results of an event. Tied contestants share a position, non_poster holds scorers left off the poster.
// @Tags result
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param sheet body ResultSheetCreate true "Result sheet"
// @Success 200 {array} ResultResponse
// @Router /events/{event_id}/results [put]
func (e *ResultController) submitResultsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		var request ResultSheetCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		results, err := e.resultService.SubmitResults(c.Request.Context(), request.toSubmission(eventId))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(results, toResultResponse))
	}
}

// @id ExportWinners
// @Description Downloads the poster winners of all events, or of one event, as CSV
// @Tags result
// @Produce text/csv
// @Param event_id path int false "Event Id"
// @Success 200 {string} string
// @Router /export-winners/{event_id} [get]
func (e *ResultController) exportWinnersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventId *int
		fileName := "winners.csv"
		if c.Param("event_id") != "" {
			id, ok := intParam(c, "event_id")
			if !ok {
				return
			}
			eventId = &id
			fileName = fmt.Sprintf("winners_event_%d.csv", id)
		}
		var buf bytes.Buffer
		if err := e.resultService.ExportWinners(c.Request.Context(), eventId, &buf); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		c.Data(200, "text/csv; charset=utf-8", buf.Bytes())
	}
}

type PlacementCreate struct {
	RegistrationIds []int `json:"registration_ids"`
	Points          *int  `json:"points"`
}

type ResultSheetCreate struct {
	ResultNumber string           `json:"result_number"`
	First        *PlacementCreate `json:"first"`
	Second       *PlacementCreate `json:"second"`
	Third        *PlacementCreate `json:"third"`
	NonPoster    *PlacementCreate `json:"non_poster"`
}

func (r *ResultSheetCreate) toSubmission(eventId int) *scoring.Submission {
	submission := &scoring.Submission{
		EventId:      eventId,
		ResultNumber: r.ResultNumber,
		Placements:   make(map[int]*scoring.Placement),
	}
	buckets := map[int]*PlacementCreate{
		repository.PositionFirst:     r.First,
		repository.PositionSecond:    r.Second,
		repository.PositionThird:     r.Third,
		repository.PositionNonPoster: r.NonPoster,
	}
	for position, placement := range buckets {
		if placement == nil {
			continue
		}
		submission.Placements[position] = &scoring.Placement{
			RegistrationIds: placement.RegistrationIds,
			Points:          placement.Points,
		}
	}
	return submission
}

type Placement struct {
	RegistrationIds []int `json:"registration_ids" binding:"required"`
	Points          *int  `json:"points"`
}

type EventRegistration struct {
	Id             int    `json:"id" binding:"required"`
	ContestantId   int    `json:"contestant_id" binding:"required"`
	ContestantName string `json:"contestant_name" binding:"required"`
	GroupName      string `json:"group_name"`
}

type ResultSheet struct {
	EventId       int                  `json:"event_id" binding:"required"`
	EventName     string               `json:"event_name" binding:"required"`
	IsGeneral     bool                 `json:"is_general" binding:"required"`
	ResultNumber  string               `json:"result_number"`
	First         *Placement           `json:"first"`
	Second        *Placement           `json:"second"`
	Third         *Placement           `json:"third"`
	NonPoster     *Placement           `json:"non_poster"`
	Registrations []*EventRegistration `json:"registrations" binding:"required"`
}

func toPlacement(placement *scoring.Placement) *Placement {
	if placement == nil {
		return nil
	}
	return &Placement{RegistrationIds: placement.RegistrationIds, Points: placement.Points}
}

func toResultSheet(event *repository.Event, sheet *scoring.Submission, registrations []*repository.Registration) *ResultSheet {
	return &ResultSheet{
		EventId:      event.Id,
		EventName:    event.Name,
		IsGeneral:    event.IsGeneral(),
		ResultNumber: sheet.ResultNumber,
		First:        toPlacement(sheet.Placements[repository.PositionFirst]),
		Second:       toPlacement(sheet.Placements[repository.PositionSecond]),
		Third:        toPlacement(sheet.Placements[repository.PositionThird]),
		NonPoster:    toPlacement(sheet.Placements[repository.PositionNonPoster]),
		Registrations: utils.Map(registrations, func(r *repository.Registration) *EventRegistration {
			registration := &EventRegistration{Id: r.Id, ContestantId: r.ContestantId}
			if r.Contestant != nil {
				registration.ContestantName = r.Contestant.FullName
				registration.GroupName = r.Contestant.GroupName()
			}
			return registration
		}),
	}
}

type ResultResponse struct {
	Id              int    `json:"id" binding:"required"`
	RegistrationId  int    `json:"registration_id" binding:"required"`
	EventId         int    `json:"event_id" binding:"required"`
	EventName       string `json:"event_name"`
	ContestantName  string `json:"contestant_name"`
	GroupName       string `json:"group_name"`
	Position        int    `json:"position" binding:"required"`
	PositionLabel   string `json:"position_label" binding:"required"`
	Points          int    `json:"points" binding:"required"`
	ResultNumber    string `json:"result_number" binding:"required"`
	IncludeInPoster bool   `json:"include_in_poster" binding:"required"`
	DisplayOrder    int    `json:"display_order" binding:"required"`
}

func toResultResponse(result *repository.Result) *ResultResponse {
	response := &ResultResponse{
		Id:              result.Id,
		RegistrationId:  result.RegistrationId,
		Position:        result.Position,
		PositionLabel:   scoring.PositionLabel(result.Position),
		Points:          result.Points,
		ResultNumber:    result.ResultNumber,
		IncludeInPoster: result.IncludeInPoster,
		DisplayOrder:    result.DisplayOrder,
	}
	if registration := result.Registration; registration != nil {
		response.EventId = registration.EventId
		if registration.Event != nil {
			response.EventName = registration.Event.Name
		}
		if registration.Contestant != nil {
			response.ContestantName = registration.Contestant.FullName
			response.GroupName = registration.Contestant.GroupName()
		}
	}
	return response
}
