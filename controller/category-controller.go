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

type CategoryController struct {
	categoryService *service.CategoryService
	cache           persistence.CacheStore
}

func NewCategoryController(deps *Dependencies) *CategoryController {
	return &CategoryController{
		categoryService: service.NewCategoryService(deps.DB),
		cache:           deps.Cache,
	}
}

func setupCategoryController(deps *Dependencies) []RouteInfo {
	e := NewCategoryController(deps)
	basePath := "/categories"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: cache.CachePage(e.cache, time.Minute, e.getCategoriesHandler())},
		{Method: "POST", Path: "", HandlerFunc: e.createCategoryHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "GET", Path: "/:id", HandlerFunc: e.getCategoryHandler()},
		{Method: "PATCH", Path: "/:id", HandlerFunc: e.updateCategoryHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "DELETE", Path: "/:id", HandlerFunc: e.deleteCategoryHandler(), Authenticated: true, RequiredRoles: adminOnly},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetCategories
// @Description Fetches all categories
// @Tags category
// @Produce json
// @Success 200 {array} Category
// @Router /categories [get]
func (e *CategoryController) getCategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := e.categoryService.GetCategories()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(categories, toCategoryResponse))
	}
}

// @id GetCategory
// @Description Fetches a category by id
// @Tags category
// @Produce json
// @Param id path int true "Category Id"
// @Success 200 {object} Category
// @Router /categories/{id} [get]
func (e *CategoryController) getCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, ok := intParam(c, "id")
		if !ok {
			return
		}
		category, err := e.categoryService.GetCategoryById(categoryId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toCategoryResponse(category))
	}
}

// @id CreateCategory
// @Description Creates a category
// @Tags category
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category body NameCreate true "Category to create"
// @Success 201 {object} Category
// @Router /categories [post]
func (e *CategoryController) createCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request NameCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		category, err := e.categoryService.SaveCategory(&repository.Category{Name: request.Name})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		flush(e.cache)
		c.JSON(201, toCategoryResponse(category))
	}
}

// @id UpdateCategory
// @Description Renames a category
// @Tags category
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category Id"
// @Param category body NameCreate true "New name"
// @Success 200 {object} Category
// @Router /categories/{id} [patch]
func (e *CategoryController) updateCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, ok := intParam(c, "id")
		if !ok {
			return
		}
		var request NameCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		category, err := e.categoryService.GetCategoryById(categoryId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		category.Name = request.Name
		category, err = e.categoryService.SaveCategory(category)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		flush(e.cache)
		c.JSON(200, toCategoryResponse(category))
	}
}

// @id DeleteCategory
// @Description Deletes a category
// @Tags category
// @Security BearerAuth
// @Param id path int true "Category Id"
// @Success 204
// @Router /categories/{id} [delete]
func (e *CategoryController) deleteCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, ok := intParam(c, "id")
		if !ok {
			return
		}
		if err := e.categoryService.DeleteCategory(categoryId); err != nil {
			app_error.Respond(c, err)
			return
		}
		flush(e.cache)
		c.Status(204)
	}
}

type Category struct {
	Id   int    `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func toCategoryResponse(category *repository.Category) *Category {
	return &Category{Id: category.Id, Name: category.Name}
}
