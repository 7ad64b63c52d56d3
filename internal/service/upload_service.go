package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"lakehire/internal/cache"
	apperrors "lakehire/internal/errors"
)

const (
	uploadTicketPrefix = "cv_upload:"
	uploadTicketTTL    = 15 * time.Minute

	// MaxCVSize caps CV uploads at 10 MB.
	MaxCVSize = 10 << 20
)

// allowed CV content types: PDF, DOC, DOCX
var allowedCVTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// UploadTarget is the pre-authorized destination returned to the client,
// which then PUTs the raw file bytes to URL.
type UploadTarget struct {
	Ticket    string `json:"ticket"`
	UploadURL string `json:"upload_url"`
	Path      string `json:"path"`
}

type uploadTicket struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Path        string `json:"path"`
}

// UploadService implements the ticketed CV upload sub-protocol.
type UploadService interface {
	RequestCVUpload(ctx context.Context, filename, contentType string, size int64) (*UploadTarget, error)
	ReceiveCV(ctx context.Context, ticket string, body io.Reader) (string, error)
}

type uploadService struct {
	cache *cache.Client
	dir   string
}

// NewUploadService creates an upload service storing files under dir.
func NewUploadService(cache *cache.Client, dir string) UploadService {
	return &uploadService{cache: cache, dir: dir}
}

// RequestCVUpload validates type and size, then issues a short-lived ticket
// naming the PUT target.
func (s *uploadService) RequestCVUpload(ctx context.Context, filename, contentType string, size int64) (*UploadTarget, error) {
	ext, ok := allowedCVTypes[contentType]
	if !ok {
		return nil, apperrors.ErrInvalidUpload
	}
	if size <= 0 || size > MaxCVSize {
		return nil, apperrors.ErrInvalidUpload
	}

	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return nil, apperrors.ErrInvalidUpload
	}
	if !strings.HasSuffix(strings.ToLower(base), ext) {
		return nil, apperrors.ErrInvalidUpload
	}

	ticket := uuid.New().String()
	storedPath := filepath.Join("cv", ticket+ext)

	payload, err := json.Marshal(uploadTicket{
		Filename:    base,
		ContentType: contentType,
		Path:        storedPath,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal ticket: %w", err)
	}
	if err := s.cache.Set(ctx, uploadTicketPrefix+ticket, payload, uploadTicketTTL); err != nil {
		return nil, fmt.Errorf("store ticket: %w", err)
	}

	return &UploadTarget{
		Ticket:    ticket,
		UploadURL: "/api/cv/files/" + ticket,
		Path:      storedPath,
	}, nil
}

// ReceiveCV consumes a ticket and stores the raw bytes. The ticket is single
// use; an unknown or expired ticket is rejected.
func (s *uploadService) ReceiveCV(ctx context.Context, ticket string, body io.Reader) (string, error) {
	data, _ := s.cache.Get(ctx, uploadTicketPrefix+ticket)
	if data == nil {
		return "", apperrors.ErrUploadTicketExpired
	}
	var t uploadTicket
	if err := json.Unmarshal(data, &t); err != nil {
		return "", apperrors.ErrUploadTicketExpired
	}
	_ = s.cache.Delete(ctx, uploadTicketPrefix+ticket)

	dest := filepath.Join(s.dir, t.Path)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	// size was validated at ticket time; the limit is re-enforced here
	n, err := io.Copy(f, io.LimitReader(body, MaxCVSize+1))
	if err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	if n > MaxCVSize {
		_ = os.Remove(dest)
		return "", apperrors.ErrInvalidUpload
	}

	return t.Path, nil
}
