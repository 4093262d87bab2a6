package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sincrotec/gestao-service/internal/auth"
	"github.com/sincrotec/gestao-service/internal/cep"
	"github.com/sincrotec/gestao-service/internal/config"
	"github.com/sincrotec/gestao-service/internal/db"
	"github.com/sincrotec/gestao-service/internal/excel"
	httphandler "github.com/sincrotec/gestao-service/internal/http"
	"github.com/sincrotec/gestao-service/internal/http/middleware"
	"github.com/sincrotec/gestao-service/internal/logger"
	"github.com/sincrotec/gestao-service/internal/pdf"
	"github.com/sincrotec/gestao-service/internal/repository"
	"github.com/sincrotec/gestao-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	accessTTL, err := time.ParseDuration(cfg.Auth.AccessTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_ACCESS_TTL")
	}
	resetTTL, err := time.ParseDuration(cfg.Auth.ResetTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_RESET_TTL")
	}

	userRepo := repository.NewUserRepository(database)
	clientRepo := repository.NewClientRepository(database)
	contractRepo := repository.NewContractRepository(database)
	receivableRepo := repository.NewReceivableRepository(database)

	tokenManager := auth.NewManager(cfg.Auth.AccessSecret, accessTTL, resetTTL)
	pdfGenerator := pdf.NewGenerator()
	excelGenerator := excel.NewGenerator()
	cepClient := cep.NewClient(cfg.CEP.BaseURL)

	authService := service.NewAuthService(userRepo, tokenManager)
	userService := service.NewUserService(userRepo)
	clientService := service.NewClientService(clientRepo)
	contractService := service.NewContractService(contractRepo, clientRepo, cfg)
	receivableService := service.NewReceivableService(receivableRepo, contractRepo, cfg)
	dashboardService := service.NewDashboardService(clientRepo, contractRepo)
	reportService := service.NewReportService(clientRepo, contractRepo, receivableRepo, pdfGenerator, excelGenerator)

	handler := httphandler.NewHandler(
		authService,
		userService,
		clientService,
		contractService,
		receivableService,
		dashboardService,
		reportService,
		cepClient,
		log,
	)

	router := httphandler.NewRouter(
		handler,
		middleware.Auth(tokenManager),
		middleware.OptionalAuth(tokenManager),
		middleware.RequireAdmin(),
		cfg.Environment,
	)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting gestao service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
