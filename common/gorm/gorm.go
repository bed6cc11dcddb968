package gorm

import (
	"log/slog"
	"os"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sunthewhat/cert-studio-api/common"
	"github.com/sunthewhat/cert-studio-api/type/shared/model"
)

func InitGorm() {
	lg := slogGorm.New(
		slogGorm.WithHandler(slog.Default().Handler()),
		slogGorm.WithSlowThreshold(100*time.Millisecond),
	)

	connector := postgres.New(
		postgres.Config{
			DSN:                  *common.Config.Postgres,
			PreferSimpleProtocol: true,
		},
	)

	db, connectionErr := gorm.Open(connector, &gorm.Config{
		Logger: lg,
	})

	if connectionErr != nil {
		slog.Error("Failed to connect to database", "error", connectionErr)
		os.Exit(1)
	}

	if migrateErr := db.AutoMigrate(&model.CertificateRecord{}, &model.User{}); migrateErr != nil {
		slog.Error("Failed to migrate database", "error", migrateErr)
		os.Exit(1)
	}

	slog.Info("GORM Connected!")

	common.Gorm = db
}
