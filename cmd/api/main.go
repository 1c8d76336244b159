package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Faizansait10/portfolio-advisor/internal/config"
	"github.com/Faizansait10/portfolio-advisor/internal/handler"
	"github.com/Faizansait10/portfolio-advisor/internal/integrations/predictor"
	"github.com/Faizansait10/portfolio-advisor/internal/middleware"
	"github.com/Faizansait10/portfolio-advisor/internal/repository"
	"github.com/Faizansait10/portfolio-advisor/internal/service"
	"github.com/Faizansait10/portfolio-advisor/internal/utils/email"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	profileRepo := repository.NewRiskProfileRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)

	var mailer *email.Sender
	if cfg.SMTPHost != "" {
		mailer = email.NewSender(cfg, logger)
	}

	predictionClient := predictor.NewClient(cfg, logger)

	userSvc := service.NewUserService(userRepo, mailer, logger)
	advisorSvc := service.NewAdvisorService(profileRepo, allocationRepo, predictionClient, logger)
	productSvc := service.NewProductService(productRepo, logger)
	h := handler.NewHandler(userSvc, advisorSvc, productSvc, mailer, cfg, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/users", h.ListUsers).Methods("GET")
	authRouter.HandleFunc("/advisor/predictions", h.CreatePrediction).Methods("POST")
	authRouter.HandleFunc("/advisor/profile", h.GetLatestProfile).Methods("GET")
	authRouter.HandleFunc("/advisor/profiles", h.GetProfileHistory).Methods("GET")
	authRouter.HandleFunc("/advisor/recommendations", h.CreateRecommendation).Methods("POST")
	authRouter.HandleFunc("/advisor/recommendations", h.GetRecommendationHistory).Methods("GET")
	authRouter.HandleFunc("/products", h.CreateProduct).Methods("POST")
	authRouter.HandleFunc("/products", h.ListProducts).Methods("GET")
	authRouter.HandleFunc("/products/{id}", h.GetProduct).Methods("GET")
	authRouter.HandleFunc("/products/{id}", h.UpdateProduct).Methods("PUT")
	authRouter.HandleFunc("/products/{id}", h.DeleteProduct).Methods("DELETE")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
