package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestGormConfigPrefixesTables(t *testing.T) {
	naming := GormConfig("festival").NamingStrategy.(schema.NamingStrategy)
	assert.Equal(t, "festival.results", naming.TableName("Result"))
	plain := GormConfig("").NamingStrategy.(schema.NamingStrategy)
	assert.Equal(t, "results", plain.TableName("Result"))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("FESTIVAL_TEST_VALUE", "")
	assert.Equal(t, "fallback", getEnvWithDefault("FESTIVAL_TEST_VALUE", "fallback"))
	t.Setenv("FESTIVAL_TEST_VALUE", "set")
	assert.Equal(t, "set", getEnvWithDefault("FESTIVAL_TEST_VALUE", "fallback"))

	t.Setenv("DATABASE_MAX_CONNECTIONS", "not a number")
	assert.Equal(t, 10, DatabaseMaxConnections())
	t.Setenv("DATABASE_MAX_CONNECTIONS", "4")
	assert.Equal(t, 4, DatabaseMaxConnections())
}

func TestHasCloudinary(t *testing.T) {
	cfg := &Config{CloudinaryCloudName: "demo", CloudinaryAPIKey: "key"}
	assert.False(t, cfg.HasCloudinary())
	cfg.CloudinaryAPISecret = "secret"
	assert.True(t, cfg.HasCloudinary())
}
