package main

import (
	"os"

	"github.com/DRSN-tech/market-backend/internal/app"
	config "github.com/DRSN-tech/market-backend/internal/cfg"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/joho/godotenv"
)

//	@title			mini-market API
//	@version		1.0
//	@description	Бэкенд небольшого интернет-магазина: каталог, корзина, заказы, оплата.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	log := logger.NewSlogLogger()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file found, using environment")
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
