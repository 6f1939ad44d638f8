package main

import (
	"os"
	"strings"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// .envは無ければ無いでいい
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not loaded")
	}

	cfg := config.Load()

	if cfg.GoEnv == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// ストア（localStorage相当）を開く
	store, err := db.Open(cfg.StorePath)
	if err != nil {
		log.Fatal().Err(err).Msg("store open failed")
	}
	defer store.Close()

	// Repository生成
	cartRepo := infraRepo.NewCartBoltRepository(store)
	orderRepo := infraRepo.NewOrderBoltRepository(store)
	productRepo := infraRepo.NewProductMemoryRepository()

	// Usecase生成
	itemV := validator.NewItemValidator()
	cartUC := usecase.NewCartUsecase(cartRepo, orderRepo, itemV)
	orderUC := usecase.NewOrderUsecase(cartUC)
	productUC := usecase.NewProductUsecase(productRepo)

	// Handler生成
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)
	productH := handler.NewProductHandler(productUC)

	// Server起動
	e := server.New(cfg, cartH, orderH, productH)

	port := strings.TrimPrefix(cfg.Port, ":")
	if err := server.Start(e, port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
