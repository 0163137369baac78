package main

import (
	"context"

	"github.com/dsmirnov/promoboard/internal/client/cli"
	"github.com/dsmirnov/promoboard/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
