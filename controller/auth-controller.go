package controller

import (
	"festival/app_error"
	"festival/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	operatorService *service.OperatorService
}

func NewAuthController(deps *Dependencies) *AuthController {
	return &AuthController{
		operatorService: service.NewOperatorService(deps.DB),
	}
}

func setupAuthController(deps *Dependencies) []RouteInfo {
	e := NewAuthController(deps)
	basePath := "/auth"
	routes := []RouteInfo{
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id Login
// @Description Exchanges operator credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Operator credentials"
// @Success 200 {object} LoginResponse
// @Router /auth/login [post]
func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request LoginRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		token, err := e.operatorService.Login(request.Username, request.Password)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, LoginResponse{Token: token})
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token" binding:"required"`
}
