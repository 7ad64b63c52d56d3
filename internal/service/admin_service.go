package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "lakehire/internal/errors"
	"lakehire/internal/mail"
	"lakehire/internal/model"
	"lakehire/internal/repository"
)

// PlatformStats is the admin dashboard aggregate.
type PlatformStats struct {
	PendingUsers       int64 `json:"pending_users"`
	ApprovedUsers      int64 `json:"approved_users"`
	Consultants        int64 `json:"consultants"`
	Companies          int64 `json:"companies"`
	Profiles           int64 `json:"profiles"`
	Jobs               int64 `json:"jobs"`
	JobsAwaitingReview int64 `json:"jobs_awaiting_review"`
	Applications       int64 `json:"applications"`
	PendingConsultants int64 `json:"pending_consultants"`
}

// BroadcastRecipients selects who an admin broadcast goes to.
type BroadcastRecipients string

const (
	BroadcastAll         BroadcastRecipients = "all"
	BroadcastConsultants BroadcastRecipients = "consultants"
	BroadcastCompanies   BroadcastRecipients = "companies"
)

// AdminService implements the moderation surface.
type AdminService interface {
	PendingUsers(ctx context.Context, role model.Role) ([]model.User, error)
	ApproveUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	RejectUser(ctx context.Context, id uuid.UUID, reason string) (*model.User, error)
	Stats(ctx context.Context) (*PlatformStats, error)
	Broadcast(ctx context.Context, subject, message string, recipients BroadcastRecipients, explicit []string, ctaText, ctaURL string) (int, error)
}

type adminService struct {
	userRepo        repository.UserRepository
	profileRepo     repository.ProfileRepository
	companyRepo     repository.CompanyRepository
	jobRepo         repository.JobRepository
	applicationRepo repository.ApplicationRepository
	consultantRepo  repository.ConsultantRepository
	userService     UserService
	publisher       mail.Publisher
}

// NewAdminService creates a new admin service.
func NewAdminService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	companyRepo repository.CompanyRepository,
	jobRepo repository.JobRepository,
	applicationRepo repository.ApplicationRepository,
	consultantRepo repository.ConsultantRepository,
	userService UserService,
	publisher mail.Publisher,
) AdminService {
	return &adminService{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		companyRepo:     companyRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		consultantRepo:  consultantRepo,
		userService:     userService,
		publisher:       publisher,
	}
}

// PendingUsers lists users awaiting moderation, optionally narrowed by role.
// Users become eligible for approval once their email is verified.
func (s *adminService) PendingUsers(ctx context.Context, role model.Role) ([]model.User, error) {
	return s.userRepo.ListByStatus(ctx, model.UserStatusEmailVerified, role)
}

// ApproveUser moves a user to approved and notifies them.
func (s *adminService) ApproveUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.Status = model.UserStatusApproved
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("approve user: %w", err)
	}
	s.userService.InvalidateUser(ctx, user.ID)

	_ = s.publisher.Publish(ctx, mail.Event{
		Type: mail.EventUserApproved,
		To:   []string{user.Email},
		Name: user.FirstName,
	})
	return user, nil
}

// RejectUser moves a user to rejected and notifies them with the reason.
func (s *adminService) RejectUser(ctx context.Context, id uuid.UUID, reason string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.Status = model.UserStatusRejected
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("reject user: %w", err)
	}
	s.userService.InvalidateUser(ctx, user.ID)

	_ = s.publisher.Publish(ctx, mail.Event{
		Type:   mail.EventUserRejected,
		To:     []string{user.Email},
		Name:   user.FirstName,
		Reason: reason,
	})
	return user, nil
}

// Stats aggregates the platform counters for the admin dashboard.
func (s *adminService) Stats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}
	var err error

	if stats.PendingUsers, err = s.userRepo.CountByStatus(ctx, model.UserStatusEmailVerified); err != nil {
		return nil, err
	}
	if stats.ApprovedUsers, err = s.userRepo.CountByStatus(ctx, model.UserStatusApproved); err != nil {
		return nil, err
	}
	if stats.Consultants, err = s.userRepo.CountByRole(ctx, model.RoleConsultant); err != nil {
		return nil, err
	}
	if stats.Companies, err = s.companyRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Profiles, err = s.profileRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Jobs, err = s.jobRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.JobsAwaitingReview, err = s.jobRepo.CountByVerification(ctx, model.VerificationPending); err != nil {
		return nil, err
	}
	if stats.Applications, err = s.applicationRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingConsultants, err = s.consultantRepo.CountByStatus(ctx, model.ConsultantPending); err != nil {
		return nil, err
	}
	return stats, nil
}

// Broadcast resolves the recipient group to addresses and publishes one mail
// event. Returns the number of recipients.
func (s *adminService) Broadcast(ctx context.Context, subject, message string, recipients BroadcastRecipients, explicit []string, ctaText, ctaURL string) (int, error) {
	var to []string

	if len(explicit) > 0 {
		to = explicit
	} else {
		var roles []model.Role
		switch recipients {
		case BroadcastConsultants:
			roles = []model.Role{model.RoleConsultant}
		case BroadcastCompanies:
			roles = []model.Role{model.RoleCompany}
		case BroadcastAll, "":
			roles = []model.Role{model.RoleConsultant, model.RoleCompany, model.RoleStaff}
		default:
			return 0, apperrors.ErrForbidden
		}

		users, err := s.userRepo.ListByRoles(ctx, roles...)
		if err != nil {
			return 0, fmt.Errorf("resolve recipients: %w", err)
		}
		for _, u := range users {
			to = append(to, u.Email)
		}
	}

	if len(to) == 0 {
		return 0, nil
	}

	err := s.publisher.Publish(ctx, mail.Event{
		Type:    mail.EventBroadcast,
		To:      to,
		Subject: subject,
		Message: message,
		CTAText: ctaText,
		CTAURL:  ctaURL,
	})
	if err != nil {
		return 0, err
	}
	return len(to), nil
}
