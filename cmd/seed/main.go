package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lakehire/internal/config"
	"lakehire/internal/db"
	"lakehire/internal/model"
	"lakehire/internal/repository"
	"lakehire/internal/service"
)

// Seeds an admin account plus a small demo data set: one company user with a
// verified job posting and one consultant with a public profile. Running it
// twice is safe; existing rows are left alone.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

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
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)

	admin, created, err := ensureUser(ctx, userRepo,
		envOr("ADMIN_EMAIL", "admin@lakehire.local"),
		envOr("ADMIN_PASSWORD", "admin-change-me"),
		"Platform", "Admin", model.RoleAdmin)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if created {
		log.Printf("Admin account created: %s", admin.Email)
	} else {
		log.Printf("Admin account already present: %s", admin.Email)
	}

	owner, created, err := ensureUser(ctx, userRepo,
		"owner@datapeak.example", "demo-password",
		"Dana", "Okafor", model.RoleCompany)
	if err != nil {
		log.Fatalf("Failed to seed company owner: %v", err)
	}
	if created {
		company := &model.Company{
			Name:        "Datapeak Analytics",
			Description: "Analytics consultancy building lakehouse platforms.",
			Website:     "https://datapeak.example",
			Industry:    "Data & Analytics",
			Size:        model.CompanySize("11-50"),
			Location:    "Berlin",
			CreatedByID: owner.ID,
		}
		if err := companyRepo.Create(ctx, company); err != nil {
			log.Fatalf("Failed to seed company: %v", err)
		}

		now := time.Now()
		job := &model.Job{
			CompanyID:          company.ID,
			Title:              "Senior Data Platform Engineer",
			Description:        "Design and operate our customer-facing lakehouse platform.",
			Requirements:       model.StringList{"5+ years data engineering", "Production Spark experience"},
			Skills:             model.StringList{"spark", "kafka", "airflow", "terraform"},
			Location:           "Remote",
			Type:               model.EmploymentContract,
			Experience:         model.ExperienceSenior,
			SalaryMin:          90,
			SalaryMax:          130,
			SalaryType:         model.SalaryHourly,
			ProjectScope:       "Greenfield platform build, 6-9 months",
			ProjectDuration:    "6-9 months",
			DataVolume:         "2 TB/day ingest",
			IsActive:           true,
			VerificationStatus: model.VerificationApproved,
			VerifiedByID:       &admin.ID,
			VerifiedAt:         &now,
			PostedByID:         owner.ID,
		}
		if err := jobRepo.Create(ctx, job); err != nil {
			log.Fatalf("Failed to seed job: %v", err)
		}
		log.Printf("Seeded company %q with one approved job", company.Name)
	}

	consultant, created, err := ensureUser(ctx, userRepo,
		"mira@consultant.example", "demo-password",
		"Mira", "Chen", model.RoleConsultant)
	if err != nil {
		log.Fatalf("Failed to seed consultant: %v", err)
	}
	if created {
		profile := &model.Profile{
			UserID:       consultant.ID,
			Title:        "Data Engineer",
			Bio:          "Batch and streaming pipelines on open table formats.",
			Location:     "Amsterdam",
			Skills:       model.StringList{"spark", "flink", "dbt"},
			Experience:   7,
			HourlyRate:   decimal.NewFromInt(110),
			Availability: model.AvailabilityAvailable,
			IsPublic:     true,
		}
		profile.CompletionScore = service.CompletionScore(profile)
		if err := profileRepo.Create(ctx, profile); err != nil {
			log.Fatalf("Failed to seed profile: %v", err)
		}
		log.Printf("Seeded consultant %s with a public profile", consultant.Email)
	}

	log.Println("Seed completed successfully!")
}

// ensureUser creates an approved, email-verified user unless one already
// exists for the address.
func ensureUser(ctx context.Context, repo repository.UserRepository, email, password, firstName, lastName string, role model.Role) (*model.User, bool, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return existing, false, nil
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("lookup %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:         email,
		PasswordHash:  string(hash),
		FirstName:     firstName,
		LastName:      lastName,
		Role:          role,
		Status:        model.UserStatusApproved,
		EmailVerified: true,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create %s: %w", email, err)
	}
	return user, true, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
