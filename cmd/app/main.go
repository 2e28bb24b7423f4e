package main

import (
	"context"

	"royalstay/config"
	"royalstay/di"
	"royalstay/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	menu := di.InitializeMenu()
	menu.Run(context.Background())
}
