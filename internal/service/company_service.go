package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "lakehire/internal/errors"
	"lakehire/internal/model"
	"lakehire/internal/repository"
)

// CompanyService manages companies owned by company-role users.
type CompanyService interface {
	CreateCompany(ctx context.Context, ownerID uuid.UUID, company *model.Company) (*model.Company, error)
	UpdateCompany(ctx context.Context, userID, companyID uuid.UUID, isAdmin bool, updated *model.Company) (*model.Company, error)
	DeleteCompany(ctx context.Context, userID, companyID uuid.UUID, isAdmin bool) error
	GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error)
	ListCompanies(ctx context.Context) ([]model.Company, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]model.Company, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new company service.
func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) CreateCompany(ctx context.Context, ownerID uuid.UUID, company *model.Company) (*model.Company, error) {
	company.ID = uuid.Nil
	company.CreatedByID = ownerID
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, userID, companyID uuid.UUID, isAdmin bool, updated *model.Company) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, err
	}
	if company.CreatedByID != userID && !isAdmin {
		return nil, apperrors.ErrForbidden
	}

	company.Name = updated.Name
	company.Description = updated.Description
	company.Website = updated.Website
	company.Industry = updated.Industry
	company.Size = updated.Size
	company.Location = updated.Location
	company.LogoURL = updated.LogoURL

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}

// DeleteCompany removes the company and, by cascade, its jobs.
func (s *companyService) DeleteCompany(ctx context.Context, userID, companyID uuid.UUID, isAdmin bool) error {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCompanyNotFound
		}
		return err
	}
	if company.CreatedByID != userID && !isAdmin {
		return apperrors.ErrForbidden
	}
	return s.companyRepo.Delete(ctx, companyID)
}

func (s *companyService) GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]model.Company, error) {
	return s.companyRepo.List(ctx)
}

func (s *companyService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]model.Company, error) {
	return s.companyRepo.ListByOwner(ctx, ownerID)
}
