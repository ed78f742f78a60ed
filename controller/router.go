package controller

import (
	"festival/auth"
	"festival/client"
	"festival/poster"
	"festival/repository"
	"strings"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var adminOnly = []string{string(repository.PermissionAdmin)}

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []string
}

// Dependencies are the long lived collaborators shared by all controllers.
type Dependencies struct {
	DB        *gorm.DB
	Logger    *zap.Logger
	Cache     persistence.CacheStore
	Generator *poster.Generator
	// Publisher stores uploaded gallery and carousel images.
	Publisher poster.Publisher
	// ResultAnnouncers are told about every recorded result sheet.
	ResultAnnouncers []client.Announcer
	// PosterAnnouncers are told about freshly generated posters.
	PosterAnnouncers []client.Announcer
}

func SetRoutes(r *gin.Engine, deps *Dependencies) {
	api := r.Group("/api")
	standingsController := NewStandingsController(deps)
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupAuthController(deps)...)
	routes = append(routes, setupGroupController(deps)...)
	routes = append(routes, setupCategoryController(deps)...)
	routes = append(routes, setupEventController(deps)...)
	routes = append(routes, setupContestantController(deps)...)
	routes = append(routes, setupRegistrationController(deps)...)
	routes = append(routes, setupResultController(deps, standingsController)...)
	routes = append(routes, setupStandingsController(standingsController)...)
	routes = append(routes, setupPosterController(deps)...)
	routes = append(routes, setupGalleryController(deps)...)
	routes = append(routes, setupPingController(deps)...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		api.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie("auth"); err == nil {
		return cookie
	}
	return ""
}

func AuthMiddleware(roles []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		token, err := auth.ParseToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		claims := &auth.Claims{}
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		c.Set("operator_id", claims.OperatorId)
		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, requiredRole := range roles {
			if claims.HasPermission(requiredRole) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(403, gin.H{"error": "Unauthorized"})
	}
}
