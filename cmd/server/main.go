package main

import (
	"log"
	"net/http"
	"os"

	_ "lakehire/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"lakehire/internal/auth"
	"lakehire/internal/cache"
	"lakehire/internal/config"
	"lakehire/internal/db"
	"lakehire/internal/handler"
	"lakehire/internal/mail"
	"lakehire/internal/model"
	"lakehire/internal/repository"
	"lakehire/internal/router"
	"lakehire/internal/service"
)

// @title Lakehire API
// @version 1.0
// @description Recruiting marketplace API: role-gated accounts, consultant profiles, company job postings, applications, and admin moderation.
// @host localhost:4000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.ConsultantReference{},
			&model.Consultant{},
			&model.JobView{},
			&model.ProfileView{},
			&model.Application{},
			&model.Job{},
			&model.Company{},
			&model.Profile{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Company{},
		&model.Job{},
		&model.Application{},
		&model.ProfileView{},
		&model.JobView{},
		&model.Consultant{},
		&model.ConsultantReference{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	var publisher mail.Publisher = mail.NopPublisher{}
	if cfg.KafkaBroker != "" {
		publisher = mail.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaMailTopic)
		defer publisher.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)
	viewRepo := repository.NewViewRepository(gormDB)
	consultantRepo := repository.NewConsultantRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, publisher)
	userService := service.NewUserService(userRepo, cacheClient)
	profileService := service.NewProfileService(profileRepo, viewRepo)
	companyService := service.NewCompanyService(companyRepo)
	jobService := service.NewJobService(jobRepo, companyRepo, viewRepo)
	applicationService := service.NewApplicationService(applicationRepo, profileRepo, jobRepo)
	consultantService := service.NewConsultantService(consultantRepo)
	adminService := service.NewAdminService(userRepo, profileRepo, companyRepo, jobRepo, applicationRepo, consultantRepo, userService, publisher)
	menuService := service.NewMenuService()
	uploadService := service.NewUploadService(cacheClient, cfg.UploadDir)

	// Register routes
	router.Register(e, jwtService, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(userService),
		Profile:     handler.NewProfileHandler(profileService),
		Company:     handler.NewCompanyHandler(companyService),
		Job:         handler.NewJobHandler(jobService),
		Application: handler.NewApplicationHandler(applicationService),
		Consultant:  handler.NewConsultantHandler(consultantService),
		Admin:       handler.NewAdminHandler(adminService, jobService, consultantService),
		Menu:        handler.NewMenuHandler(menuService),
		Upload:      handler.NewUploadHandler(uploadService),
	})

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
