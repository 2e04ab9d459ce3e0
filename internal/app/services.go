package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/peyvand/peyvand_backend/config"
	"github.com/peyvand/peyvand_backend/internal/repo"
	"github.com/peyvand/peyvand_backend/internal/service/revenue"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideRevenueService,
	),
)

func ProvideRevenueService(db *repo.Client, rdb *redis.Client, cfg *config.Config) revenue.Service {
	return revenue.New(db, rdb, cfg)
}
