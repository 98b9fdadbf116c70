package main

import (
	"fmt"
	"os"

	"waste-service/internal/auth"
	"waste-service/internal/config"
	"waste-service/internal/db"
	httphandler "waste-service/internal/http"
	"waste-service/internal/http/middleware"
	"waste-service/internal/logger"
	"waste-service/internal/repository"
	"waste-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	userRepo := repository.NewUserRepository(database)
	deviceRepo := repository.NewDeviceRepository(database)
	truckRepo := repository.NewTruckRepository(database)
	scheduleRepo := repository.NewScheduleRepository(database)
	collectionRepo := repository.NewSpecialCollectionRepository(database)

	tokens := auth.NewManager(cfg.Auth.JWTSecret)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	deviceService := service.NewDeviceService(deviceRepo, userRepo)
	truckService := service.NewTruckService(truckRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	collectionService := service.NewSpecialCollectionService(collectionRepo, userRepo)

	handler := httphandler.NewHandler(
		authService,
		userService,
		deviceService,
		truckService,
		scheduleService,
		collectionService,
		cfg.IsProduction(),
		log,
	)
	router := httphandler.NewRouter(handler, middleware.Auth(tokens), cfg.Environment, cfg.HTTP.FrontendOrigin)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting waste management service")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
