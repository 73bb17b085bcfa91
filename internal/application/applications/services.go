package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bryanwahyu/applicant-intake/internal/application"
	domain "github.com/bryanwahyu/applicant-intake/internal/domain/applications"
	analysesdomain "github.com/bryanwahyu/applicant-intake/internal/domain/analyses"
)

// Service implements intake + admin aggregation use-cases.
type Service struct {
	Repo     domain.Repository
	Analyses analysesdomain.Repository
	Clock    application.Clock

	validate *validator.Validate
}

func NewService(repo domain.Repository, analyses analysesdomain.Repository, clock application.Clock) *Service {
	return &Service{
		Repo:     repo,
		Analyses: analyses,
		Clock:    clock,
		validate: newValidator(),
	}
}

//
// ==== USE CASES ====
//

// SubmitCommand carries one applicant submission.
type SubmitCommand struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=10,phone_chars"`
	Address         string `json:"address" validate:"omitempty,max=200"`
	PayRange        string `json:"pay_range" validate:"required,max=100"`
	EducationLevel  string `json:"education_level" validate:"required,education_level"`
	Certificates    string `json:"certificates" validate:"omitempty,max=1000"`
	LinkedIn        string `json:"linkedin" validate:"omitempty,url"`
	AdditionalNotes string `json:"additional_notes" validate:"omitempty,max=2000"`
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field errors; nothing was persisted.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid form data: " + strings.Join(msgs, "; ")
}

// ApplicationWithAnalysis is one admin listing row.
type ApplicationWithAnalysis struct {
	*domain.Application
	Analysis *analysesdomain.Analysis `json:"analysis"`
}

// Submit validates the submission and inserts exactly one row with status=new.
func (s *Service) Submit(ctx context.Context, cmd SubmitCommand) (*domain.Application, error) {
	if err := s.Validate(cmd); err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	app := &domain.Application{
		ID:              domain.ApplicationID(uuid.New().String()),
		Name:            cmd.Name,
		Email:           cmd.Email,
		Phone:           cmd.Phone,
		Address:         cmd.Address,
		PayRange:        cmd.PayRange,
		EducationLevel:  domain.EducationLevel(cmd.EducationLevel),
		Certificates:    cmd.Certificates,
		LinkedIn:        cmd.LinkedIn,
		AdditionalNotes: cmd.AdditionalNotes,
		Status:          domain.StatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("saving application: %w", err)
	}
	return app, nil
}

// Validate runs the field rules without touching storage.
func (s *Service) Validate(cmd SubmitCommand) error {
	err := s.validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   jsonFieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// List returns applications newest first, each with its most recent analysis
// attached (or nil). A failed per-row analysis lookup degrades that row to
// nil instead of aborting the listing.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]*ApplicationWithAnalysis, error) {
	if filter.Status == "all" {
		filter.Status = ""
	}
	apps, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	out := make([]*ApplicationWithAnalysis, 0, len(apps))
	for _, app := range apps {
		row := &ApplicationWithAnalysis{Application: app}
		a, err := s.Analyses.LatestByApplication(ctx, string(app.ID))
		switch {
		case err == nil:
			row.Analysis = a
		case errors.Is(err, sql.ErrNoRows):
			// no analysis yet
		default:
			log.Printf("latest analysis lookup failed for application=%s: %v", app.ID, err)
		}
		out = append(out, row)
	}
	return out, nil
}

// ExportRows returns all applications newest first, without the analysis
// join; serialization itself is a pure function in the export package.
func (s *Service) ExportRows(ctx context.Context) ([]*domain.Application, error) {
	return s.Repo.List(ctx, domain.ListFilter{})
}

// Get ambil 1 application by id
func (s *Service) Get(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	return s.Repo.Get(ctx, id)
}

// UpdateStatus mutates only the status column (admin workflow).
func (s *Service) UpdateStatus(ctx context.Context, id domain.ApplicationID, status string) error {
	if strings.TrimSpace(status) == "" {
		return &ValidationError{Fields: []FieldError{{Field: "status", Message: "status is required"}}}
	}
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.UpdateStatus(ctx, id, domain.Status(status))
}
