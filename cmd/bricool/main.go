package main

import (
	"fmt"
	"os"

	"github.com/Banana-Clint/Bricool/internal/config"
	"github.com/Banana-Clint/Bricool/internal/excel"
	httphandler "github.com/Banana-Clint/Bricool/internal/http"
	"github.com/Banana-Clint/Bricool/internal/logger"
	"github.com/Banana-Clint/Bricool/internal/pdf"
	"github.com/Banana-Clint/Bricool/internal/repository"
	"github.com/Banana-Clint/Bricool/internal/seed"
	"github.com/Banana-Clint/Bricool/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	customerRepo := repository.NewCustomerRepository()
	contractorRepo := repository.NewContractorRepository()
	if cfg.SeedData {
		customerRepo.Seed(seed.Customers())
		contractorRepo.Seed(seed.Contractors())
		log.Info().
			Int("customers", customerRepo.Len()).
			Int("contractors", contractorRepo.Len()).
			Msg("loaded sample data")
	}

	customerService := service.NewCustomerService(customerRepo)
	contractorService := service.NewContractorService(contractorRepo, excel.NewGenerator(), pdf.NewGenerator())

	customerHandler := httphandler.NewCustomerHandler(customerService, log)
	contractorHandler := httphandler.NewContractorHandler(contractorService, log)
	router := httphandler.NewRouter(customerHandler, contractorHandler, cfg, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Environment).Msg("starting directory api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
