package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/quotation/internal/config"
	"github.com/smallbiznis/quotation/internal/logger"
	"github.com/smallbiznis/quotation/internal/migration"
	"github.com/smallbiznis/quotation/internal/server"
	"github.com/smallbiznis/quotation/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
