package controller

import (
	"festival/app_error"
	"festival/poster"
	"festival/service"
	"festival/utils"

	"github.com/gin-gonic/gin"
)

type PosterController struct {
	posterService *service.PosterService
}

func NewPosterController(deps *Dependencies) *PosterController {
	return &PosterController{
		posterService: service.NewPosterService(deps.DB, deps.Generator, deps.Logger, deps.PosterAnnouncers...),
	}
}

func setupPosterController(deps *Dependencies) []RouteInfo {
	e := NewPosterController(deps)
	return []RouteInfo{
		{Method: "GET", Path: "/generate-event-posters/:event_id", HandlerFunc: e.generatePostersHandler()},
	}
}

// @id GenerateEventPosters
// @Description Renders one result poster per template for the event. Events without poster results yield an empty list.
// @Tags poster
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} PosterResponse
// @Router /generate-event-posters/{event_id} [get]
func (e *PosterController) generatePostersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		artifacts, err := e.posterService.GeneratePosters(c.Request.Context(), eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(artifacts, toPosterResponse))
	}
}

type PosterResponse struct {
	TemplateId string `json:"template_id" binding:"required"`
	URL        string `json:"url" binding:"required"`
}

func toPosterResponse(artifact poster.Artifact) *PosterResponse {
	return &PosterResponse{TemplateId: artifact.TemplateId, URL: artifact.URL}
}
