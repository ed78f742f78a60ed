package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Server
	Port           string
	PublicBaseURL  string
	LogLevel       string
	AllowedOrigins string

	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string
	DatabaseSchema   string

	// Authentication
	JWTSecret string

	// Cloudinary
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Posters
	MediaRoot       string
	PosterAssetsDir string
	PosterTemplates string

	// Announcements - optional
	KafkaBroker       string
	KafkaResultsTopic string
	DiscordBotToken   string
	DiscordChannelID  string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:           getEnvWithDefault("PORT", "8000"),
		PublicBaseURL:  getEnvWithDefault("PUBLIC_BASE_URL", "http://localhost:8000"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000"),

		// Database - required
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),
		DatabaseSchema:   getEnvWithDefault("DATABASE_SCHEMA", "festival"),

		// JWT - required
		JWTSecret: getEnv("JWT_SECRET"),

		// Cloudinary - without it posters and uploads land on local disk
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		MediaRoot:       getEnvWithDefault("MEDIA_ROOT", "media"),
		PosterAssetsDir: getEnvWithDefault("POSTER_ASSETS_DIR", "assets"),
		PosterTemplates: getEnvWithDefault("POSTER_TEMPLATES", "template_black.png,template_pink.png,template_purple.png"),

		KafkaBroker:       os.Getenv("KAFKA_BROKER"),
		KafkaResultsTopic: getEnvWithDefault("KAFKA_RESULTS_TOPIC", "festival-results"),
		DiscordBotToken:   os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordChannelID:  os.Getenv("DISCORD_CHANNEL_ID"),
	}
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Helper functions
func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	if value == "" {
		return "dev-" + key
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// HasCloudinary reports whether all cloudinary credentials are present.
func (c *Config) HasCloudinary() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// DatabaseMaxConnections caps the pool, small hosting plans allow few connections.
func DatabaseMaxConnections() int {
	return getEnvAsInt("DATABASE_MAX_CONNECTIONS", 10)
}
