package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/devvivek172/delivery-cost-api/internal/config"
	"github.com/devvivek172/delivery-cost-api/internal/modules/quotes"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	repo, err := quotes.NewRepository()
	if err != nil {
		log.Fatalf("failed to build catalog: %v", err)
	}
	svc := quotes.NewService(repo, cfg.MaxInvolvedWarehouses)
	handler := quotes.NewHandler(svc)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
