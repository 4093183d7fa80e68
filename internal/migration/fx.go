package migration

import (
	"github.com/smallbiznis/quotation/internal/config"
	"github.com/smallbiznis/quotation/internal/quotation/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module prepares the schema on startup. Postgres runs the versioned
// embedded migrations; the other dialects fall back to AutoMigrate.
var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		return conn.AutoMigrate(
			&domain.Quotation{},
			&domain.LineItem{},
		)
	}),
)
