package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sponsorapp/sponsor-api/internal/api"
	"github.com/sponsorapp/sponsor-api/internal/config"
	"github.com/sponsorapp/sponsor-api/internal/db"
	"github.com/sponsorapp/sponsor-api/internal/logger"
	"github.com/sponsorapp/sponsor-api/internal/pkg/secrets"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	box, err := secrets.NewBox(conf.API.ObscuringKey)
	if err != nil {
		return fmt.Errorf("failed to initialize secret box -> %w", err)
	}

	// Admin accounts are provisioned out-of-band and read-only afterwards.
	if err = db.SeedAccounts(postgresDB, box, conf.Accounts); err != nil {
		return fmt.Errorf("failed to seed accounts -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, box)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
