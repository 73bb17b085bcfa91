package qrcodes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bryanwahyu/applicant-intake/internal/application"
	domain "github.com/bryanwahyu/applicant-intake/internal/domain/qrcodes"
)

const (
	defaultTitle = "Employment Application Form"
	pageType     = "employment_form"
)

// Encoder renders a target URL into a PNG image.
type Encoder interface {
	EncodePNG(url string) ([]byte, error)
}

// Service generates QR codes for the form URL and serves the latest one.
type Service struct {
	Repo    domain.Repository
	Images  domain.ImageStore
	Encoder Encoder
	Clock   application.Clock
}

func NewService(repo domain.Repository, images domain.ImageStore, enc Encoder, clock application.Clock) *Service {
	return &Service{Repo: repo, Images: images, Encoder: enc, Clock: clock}
}

// Generate encodes the URL, uploads the PNG and persists the metadata row.
func (s *Service) Generate(ctx context.Context, url string) (*domain.QRCode, error) {
	png, err := s.Encoder.EncodePNG(url)
	if err != nil {
		return nil, fmt.Errorf("encoding qr: %w", err)
	}

	id := uuid.New().String()
	key := fmt.Sprintf("qr/%s.png", id)
	imageURL, err := s.Images.UploadPNG(ctx, key, png)
	if err != nil {
		return nil, fmt.Errorf("uploading qr image: %w", err)
	}

	code := &domain.QRCode{
		ID:        domain.QRCodeID(id),
		Title:     defaultTitle,
		URL:       url,
		ImageURL:  imageURL,
		PageType:  pageType,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.Repo.Save(ctx, code); err != nil {
		return nil, fmt.Errorf("saving qr code: %w", err)
	}
	return code, nil
}

// Latest returns the most recent code, or nil when none was generated yet.
func (s *Service) Latest(ctx context.Context) (*domain.QRCode, error) {
	code, err := s.Repo.Latest(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return code, err
}
