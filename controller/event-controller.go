package controller

import (
	"festival/app_error"
	"festival/repository"
	"festival/service"
	"festival/utils"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	eventService *service.EventService
}

func NewEventController(deps *Dependencies) *EventController {
	return &EventController{
		eventService: service.NewEventService(deps.DB),
	}
}

func setupEventController(deps *Dependencies) []RouteInfo {
	e := NewEventController(deps)
	basePath := "/events"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "GET", Path: "/:event_id", HandlerFunc: e.getEventHandler()},
		{Method: "PATCH", Path: "/:event_id", HandlerFunc: e.updateEventHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "DELETE", Path: "/:event_id", HandlerFunc: e.deleteEventHandler(), Authenticated: true, RequiredRoles: adminOnly},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return append(routes,
		RouteInfo{Method: "GET", Path: "/events-for-registration/:category_id", HandlerFunc: e.getEventsForCategoryHandler()},
	)
}

// @id GetEvents
// @Description Fetches all events
// @Tags event
// @Produce json
// @Success 200 {array} EventResponse
// @Router /events [get]
func (e *EventController) getEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.eventService.GetEvents()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(events, toEventResponse))
	}
}

// @id GetEvent
// @Description Fetches an event with its categories
// @Tags event
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} EventResponse
// @Router /events/{event_id} [get]
func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		event, err := e.eventService.GetEventById(c.Request.Context(), eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id GetEventsForCategory
// @Description Fetches the events a contestant of the category can register for
// @Tags event
// @Produce json
// @Param category_id path int true "Category Id"
// @Success 200 {array} EventResponse
// @Router /events-for-registration/{category_id} [get]
func (e *EventController) getEventsForCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, ok := intParam(c, "category_id")
		if !ok {
			return
		}
		events, err := e.eventService.GetEventsForCategory(categoryId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(events, toEventResponse))
	}
}

// @id CreateEvent
// @Description Creates an event
// @Tags event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event body EventCreate true "Event to create"
// @Success 201 {object} EventResponse
// @Router /events [post]
func (e *EventController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request EventCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.SaveEvent(&repository.Event{Name: request.Name, Rules: request.Rules}, request.CategoryIds)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toEventResponse(event))
	}
}

// @id UpdateEvent
// @Description Updates an event and replaces its categories
// @Tags event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param event body EventCreate true "Event"
// @Success 200 {object} EventResponse
// @Router /events/{event_id} [patch]
func (e *EventController) updateEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		var request EventCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.GetEventById(c.Request.Context(), eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		event.Name = request.Name
		event.Rules = request.Rules
		event, err = e.eventService.SaveEvent(event, request.CategoryIds)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id DeleteEvent
// @Description Deletes an event with its registrations and results
// @Tags event
// @Security BearerAuth
// @Param event_id path int true "Event Id"
// @Success 204
// @Router /events/{event_id} [delete]
func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		if err := e.eventService.DeleteEvent(eventId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type EventCreate struct {
	Name        string  `json:"name" binding:"required"`
	Rules       *string `json:"rules"`
	CategoryIds []int   `json:"category_ids"`
}

type EventResponse struct {
	Id          int      `json:"id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Rules       *string  `json:"rules"`
	CategoryIds []int    `json:"category_ids" binding:"required"`
	Categories  []string `json:"categories" binding:"required"`
	IsGeneral   bool     `json:"is_general" binding:"required"`
}

func toEventResponse(event *repository.Event) *EventResponse {
	return &EventResponse{
		Id:          event.Id,
		Name:        event.Name,
		Rules:       event.Rules,
		CategoryIds: utils.Map(event.Categories, func(c *repository.Category) int { return c.Id }),
		Categories:  event.CategoryNames(),
		IsGeneral:   event.IsGeneral(),
	}
}
