package main

import (
	"github.com/PrimeDigitals001/Prototype-pos/internal/clock"
	"github.com/PrimeDigitals001/Prototype-pos/internal/config"
	"github.com/PrimeDigitals001/Prototype-pos/internal/observability"
	"github.com/PrimeDigitals001/Prototype-pos/internal/server"
	"github.com/PrimeDigitals001/Prototype-pos/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
