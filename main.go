package main

import (
	"festival/client"
	"festival/config"
	"festival/controller"
	"festival/docs"
	"festival/poster"
	"festival/repository"
	"festival/utils"
	"regexp"
	"strings"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

// @title           Festival Backend API
// @version         1.0
// @description     Registration, results, standings and result posters of the festival.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	t := time.Now()

	cfg := config.Env()
	logger, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.InitDB(cfg, repository.Models()...)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	publisher := newPublisher(cfg, logger)
	templates := poster.DefaultTemplates(utils.SplitTrimmed(cfg.PosterTemplates))
	assets := poster.LoadAssets(cfg.PosterAssetsDir, templates, logger)
	generator := poster.NewGenerator(
		repository.NewEventRepository(db),
		repository.NewResultRepository(db),
		poster.DirTemplates(cfg.PosterAssetsDir),
		templates,
		assets,
		publisher,
		logger,
	)
	resultAnnouncers, posterAnnouncers := newAnnouncers(cfg, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Fatal("failed to set trusted proxies", zap.Error(err))
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r)
	r.Static("/media", cfg.MediaRoot)
	controller.SetRoutes(r, &controller.Dependencies{
		DB:               db,
		Logger:           logger,
		Cache:            persistence.NewInMemoryStore(60 * time.Second),
		Generator:        generator,
		Publisher:        publisher,
		ResultAnnouncers: resultAnnouncers,
		PosterAnnouncers: posterAnnouncers,
	})
	logger.Info("server started", zap.Duration("startup", time.Since(t)), zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

// newPublisher prefers cloudinary and keeps the local media directory as fallback.
func newPublisher(cfg *config.Config, logger *zap.Logger) poster.Publisher {
	publishers := make([]poster.Publisher, 0, 2)
	if cfg.HasCloudinary() {
		cloudinary, err := client.NewCloudinaryClient(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Warn("cloudinary disabled", zap.Error(err))
		} else {
			publishers = append(publishers, cloudinary)
		}
	}
	publishers = append(publishers, poster.NewLocalPublisher(cfg.MediaRoot, cfg.PublicBaseURL))
	return poster.NewFallbackPublisher(logger, publishers...)
}

func newAnnouncers(cfg *config.Config, logger *zap.Logger) (results []client.Announcer, posters []client.Announcer) {
	if cfg.KafkaBroker != "" {
		writer, err := config.GetResultsWriter(cfg)
		if err != nil {
			logger.Warn("kafka announcements disabled", zap.Error(err))
		} else {
			results = append(results, client.NewKafkaAnnouncer(writer))
		}
	}
	if cfg.DiscordBotToken != "" && cfg.DiscordChannelID != "" {
		discord, err := client.NewDiscordAnnouncer(cfg.DiscordBotToken, cfg.DiscordChannelID)
		if err != nil {
			logger.Warn("discord announcements disabled", zap.Error(err))
		} else {
			posters = append(posters, discord)
		}
	}
	return results, posters
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics", "/api/ping"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		if strings.HasPrefix(url, "/media/") {
			return "/media/?"
		}
		url = re.ReplaceAllString(url, "?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	getCors := cors.New(corsConfigGetOptions)
	otherCors := cors.New(corsConfigOtherMethods)
	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			// the preflighted method decides which policy applies
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				getCors(c)
			} else {
				otherCors(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			getCors(c)
		} else {
			otherCors(c)
		}
	})
}

func allowedOrigins() []string {
	origins := utils.SplitTrimmed(config.Env().AllowedOrigins)
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
