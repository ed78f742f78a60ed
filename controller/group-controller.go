package controller

import (
	"festival/app_error"
	"festival/repository"
	"festival/service"
	"festival/utils"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

type GroupController struct {
	groupService *service.GroupService
	cache        persistence.CacheStore
}

func NewGroupController(deps *Dependencies) *GroupController {
	return &GroupController{
		groupService: service.NewGroupService(deps.DB),
		cache:        deps.Cache,
	}
}

func setupGroupController(deps *Dependencies) []RouteInfo {
	e := NewGroupController(deps)
	basePath := "/groups"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: cache.CachePage(e.cache, time.Minute, e.getGroupsHandler())},
		{Method: "POST", Path: "", HandlerFunc: e.createGroupHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "GET", Path: "/:id", HandlerFunc: e.getGroupHandler()},
		{Method: "PATCH", Path: "/:id", HandlerFunc: e.updateGroupHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "DELETE", Path: "/:id", HandlerFunc: e.deleteGroupHandler(), Authenticated: true, RequiredRoles: adminOnly},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetGroups
// @Description Fetches all groups
// @Tags group
// @Produce json
// @Success 200 {array} Group
// @Router /groups [get]
func (e *GroupController) getGroupsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := e.groupService.GetGroups()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(groups, toGroupResponse))
	}
}

// @id GetGroup
// @Description Fetches a group by id
// @Tags group
// @Produce json
// @Param id path int true "Group Id"
// @Success 200 {object} Group
// @Router /groups/{id} [get]
func (e *GroupController) getGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := intParam(c, "id")
		if !ok {
			return
		}
		group, err := e.groupService.GetGroupById(groupId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toGroupResponse(group))
	}
}

// @id CreateGroup
// @Description Creates a group
// @Tags group
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param group body NameCreate true "Group to create"
// @Success 201 {object} Group
// @Router /groups [post]
func (e *GroupController) createGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request NameCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		group, err := e.groupService.SaveGroup(&repository.Group{Name: request.Name})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		flush(e.cache)
		c.JSON(201, toGroupResponse(group))
	}
}

// @id UpdateGroup
// @Description Renames a group
// @Tags group
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Group Id"
// @Param group body NameCreate true "New name"
// @Success 200 {object} Group
// @Router /groups/{id} [patch]
func (e *GroupController) updateGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := intParam(c, "id")
		if !ok {
			return
		}
		var request NameCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		group, err := e.groupService.GetGroupById(groupId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		group.Name = request.Name
		group, err = e.groupService.SaveGroup(group)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		flush(e.cache)
		c.JSON(200, toGroupResponse(group))
	}
}

// @id DeleteGroup
// @Description Deletes a group
// @Tags group
// @Security BearerAuth
// @Param id path int true "Group Id"
// @Success 204
// @Router /groups/{id} [delete]
func (e *GroupController) deleteGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := intParam(c, "id")
		if !ok {
			return
		}
		if err := e.groupService.DeleteGroup(groupId); err != nil {
			app_error.Respond(c, err)
			return
		}
		flush(e.cache)
		c.Status(204)
	}
}

type NameCreate struct {
	Name string `json:"name" binding:"required"`
}

type Group struct {
	Id   int    `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func toGroupResponse(group *repository.Group) *Group {
	return &Group{Id: group.Id, Name: group.Name}
}
