package main

import (
	"rozvoz/config"
	"rozvoz/di"
	"rozvoz/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
