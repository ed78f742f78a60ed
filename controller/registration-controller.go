package controller

import (
	"festival/app_error"
	"festival/repository"
	"festival/service"
	"festival/utils"

	"github.com/gin-gonic/gin"
)

type RegistrationController struct {
	registrationService *service.RegistrationService
}

func NewRegistrationController(deps *Dependencies) *RegistrationController {
	return &RegistrationController{
		registrationService: service.NewRegistrationService(deps.DB),
	}
}

func setupRegistrationController(deps *Dependencies) []RouteInfo {
	e := NewRegistrationController(deps)
	basePath := "/registrations"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getRegistrationsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createRegistrationHandler()},
		{Method: "DELETE", Path: "/:id", HandlerFunc: e.deleteRegistrationHandler(), Authenticated: true, RequiredRoles: adminOnly},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetRegistrations
// @Description Fetches all registrations
// @Tags registration
// @Produce json
// @Success 200 {array} Registration
// @Router /registrations [get]
func (e *RegistrationController) getRegistrationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		registrations, err := e.registrationService.GetRegistrations()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(registrations, toRegistrationResponse))
	}
}

// @id CreateRegistration
// @Description Enrolls an existing contestant in an event open to their category
// @Tags registration
// @Accept json
// @Produce json
// @Param registration body RegistrationCreate true "Registration"
// @Success 201 {object} Registration
// @Router /registrations [post]
func (e *RegistrationController) createRegistrationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request RegistrationCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		registration, err := e.registrationService.Enroll(c.Request.Context(), request.ContestantId, request.EventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toRegistrationResponse(registration))
	}
}

// @id DeleteRegistration
// @Description Deletes a registration and its results
// @Tags registration
// @Security BearerAuth
// @Param id path int true "Registration Id"
// @Success 204
// @Router /registrations/{id} [delete]
func (e *RegistrationController) deleteRegistrationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		registrationId, ok := intParam(c, "id")
		if !ok {
			return
		}
		if err := e.registrationService.DeleteRegistration(registrationId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type RegistrationCreate struct {
	ContestantId int `json:"contestant_id" binding:"required"`
	EventId      int `json:"event_id" binding:"required"`
}

type Registration struct {
	Id           int `json:"id" binding:"required"`
	ContestantId int `json:"contestant_id" binding:"required"`
	EventId      int `json:"event_id" binding:"required"`
}

func toRegistrationResponse(registration *repository.Registration) *Registration {
	return &Registration{
		Id:           registration.Id,
		ContestantId: registration.ContestantId,
		EventId:      registration.EventId,
	}
}
