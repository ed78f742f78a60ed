package controller

import (
	"festival/app_error"
	"festival/repository"
	"festival/service"
	"festival/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type ContestantController struct {
	contestantService *service.ContestantService
}

func NewContestantController(deps *Dependencies) *ContestantController {
	return &ContestantController{
		contestantService: service.NewContestantService(deps.DB, deps.Logger),
	}
}

func setupContestantController(deps *Dependencies) []RouteInfo {
	e := NewContestantController(deps)
	basePath := "/contestants"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getContestantsHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "POST", Path: "", HandlerFunc: e.registerContestantHandler()},
		{Method: "PUT", Path: "/import", HandlerFunc: e.importContestantsHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "GET", Path: "/:id", HandlerFunc: e.getContestantHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "DELETE", Path: "/:id", HandlerFunc: e.deleteContestantHandler(), Authenticated: true, RequiredRoles: adminOnly},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetContestants
// @Description Fetches all contestants
// @Tags contestant
// @Security BearerAuth
// @Produce json
// @Success 200 {array} ContestantResponse
// @Router /contestants [get]
func (e *ContestantController) getContestantsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		contestants, err := e.contestantService.GetContestants()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(contestants, toContestantResponse))
	}
}

// @id GetContestant
// @Description Fetches a contestant
// @Tags contestant
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contestant Id"
// @Success 200 {object} ContestantResponse
// @Router /contestants/{id} [get]
func (e *ContestantController) getContestantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		contestantId, ok := intParam(c, "id")
		if !ok {
			return
		}
		contestant, err := e.contestantService.GetContestantById(contestantId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toContestantResponse(contestant))
	}
}

// @id RegisterContestant
// @Description Registers a contestant for a set of events
// @Tags contestant
// @Accept json
// @Produce json
// @Param contestant body ContestantCreate true "Registration form"
// @Success 201 {object} ContestantResponse
// @Router /contestants [post]
func (e *ContestantController) registerContestantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request ContestantCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		contestant, err := e.contestantService.Register(request.toModel(), request.EventIds)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		contestant, err = e.contestantService.GetContestantById(contestant.Id)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toContestantResponse(contestant))
	}
}

// @id ImportContestants
// @Description Creates or updates contestants by email. Groups, categories and events are referenced by name.
// @Tags contestant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param rows body []ContestantRow true "Rows to apply"
// @Success 200 {object} ImportResponse
// @Router /contestants/import [put]
func (e *ContestantController) importContestantsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []ContestantRow
		if err := c.BindJSON(&rows); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		report, err := e.contestantService.ImportRows(utils.Map(rows, ContestantRow.toRow))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toImportResponse(report))
	}
}

// @id DeleteContestant
// @Description Deletes a contestant with their registrations and results
// @Tags contestant
// @Security BearerAuth
// @Param id path int true "Contestant Id"
// @Success 204
// @Router /contestants/{id} [delete]
func (e *ContestantController) deleteContestantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		contestantId, ok := intParam(c, "id")
		if !ok {
			return
		}
		if err := e.contestantService.DeleteContestant(contestantId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type ContestantCreate struct {
	FullName    string            `json:"full_name" binding:"required"`
	Email       string            `json:"email" binding:"required"`
	State       string            `json:"state" binding:"required"`
	Gender      repository.Gender `json:"gender" binding:"required"`
	GroupId     *int              `json:"group_id"`
	CategoryId  *int              `json:"category_id"`
	Course      string            `json:"course" binding:"required"`
	PhoneNumber string            `json:"phone_number" binding:"required"`
	EventIds    []int             `json:"event_ids"`
}

func (c *ContestantCreate) toModel() *repository.Contestant {
	return &repository.Contestant{
		FullName:    c.FullName,
		Email:       c.Email,
		State:       c.State,
		Gender:      c.Gender,
		GroupId:     c.GroupId,
		CategoryId:  c.CategoryId,
		Course:      c.Course,
		PhoneNumber: c.PhoneNumber,
	}
}

type ContestantRow struct {
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	State       string   `json:"state"`
	Gender      string   `json:"gender"`
	Group       string   `json:"group"`
	Category    string   `json:"category"`
	Course      string   `json:"course"`
	PhoneNumber string   `json:"phone_number"`
	Events      []string `json:"events"`
}

func (r ContestantRow) toRow() *service.ContestantRow {
	return &service.ContestantRow{
		FullName:    r.FullName,
		Email:       r.Email,
		State:       r.State,
		Gender:      r.Gender,
		Group:       r.Group,
		Category:    r.Category,
		Course:      r.Course,
		PhoneNumber: r.PhoneNumber,
		Events:      r.Events,
	}
}

type RowFailure struct {
	Row   int    `json:"row" binding:"required"`
	Error string `json:"error" binding:"required"`
}

type ImportResponse struct {
	Applied  int          `json:"applied" binding:"required"`
	Failures []RowFailure `json:"failures" binding:"required"`
}

func toImportResponse(report *service.ImportReport) *ImportResponse {
	return &ImportResponse{
		Applied: report.Applied,
		Failures: utils.Map(report.Failures, func(f service.RowFailure) RowFailure {
			return RowFailure{Row: f.Row, Error: f.Error}
		}),
	}
}

type ContestantResponse struct {
	Id           int               `json:"id" binding:"required"`
	FullName     string            `json:"full_name" binding:"required"`
	Email        string            `json:"email" binding:"required"`
	State        string            `json:"state" binding:"required"`
	Gender       repository.Gender `json:"gender" binding:"required"`
	GroupId      *int              `json:"group_id"`
	GroupName    string            `json:"group_name"`
	CategoryId   *int              `json:"category_id"`
	CategoryName string            `json:"category_name"`
	Course       string            `json:"course" binding:"required"`
	PhoneNumber  string            `json:"phone_number" binding:"required"`
	RegisteredAt time.Time         `json:"registered_at" binding:"required"`
}

func toContestantResponse(contestant *repository.Contestant) *ContestantResponse {
	response := &ContestantResponse{
		Id:           contestant.Id,
		FullName:     contestant.FullName,
		Email:        contestant.Email,
		State:        contestant.State,
		Gender:       contestant.Gender,
		GroupId:      contestant.GroupId,
		GroupName:    contestant.GroupName(),
		CategoryId:   contestant.CategoryId,
		Course:       contestant.Course,
		PhoneNumber:  contestant.PhoneNumber,
		RegisteredAt: contestant.RegisteredAt,
	}
	if contestant.Category != nil {
		response.CategoryName = contestant.Category.Name
	}
	return response
}
