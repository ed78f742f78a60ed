package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// InitDB opens the postgres connection and migrates the given models into the configured schema.
func InitDB(cfg *Config, models ...interface{}) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DatabaseHost, cfg.DatabasePort, cfg.PostgresUser, cfg.PostgresPassword, cfg.DatabaseName)
	db, err := gorm.Open(postgres.Open(dsn), GormConfig(cfg.DatabaseSchema))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(DatabaseMaxConnections())

	x := db.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, cfg.DatabaseSchema))
	if x.Error != nil {
		return nil, x.Error
	}
	if err := db.AutoMigrate(models...); err != nil {
		return nil, err
	}
	return db, nil
}

// GormConfig is shared by the server, the tests and the CLI so that table names line up.
func GormConfig(schemaName string) *gorm.Config {
	prefix := ""
	if schemaName != "" {
		prefix = schemaName + "."
	}
	return &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   prefix,
			SingularTable: false,
		},
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
}
