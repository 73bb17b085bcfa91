package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	domain "github.com/bryanwahyu/applicant-intake/internal/domain/applications"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, name, email, phone, address, pay_range, education_level,
       certificates, linkedin, additional_notes, status, created_at, updated_at`

// Save insert/update Application record
func (r *ApplicationRepository) Save(ctx context.Context, a *domain.Application) error {
	const q = `
INSERT INTO job_applications
(id, name, email, phone, address, pay_range, education_level,
 certificates, linkedin, additional_notes, status, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 name=VALUES(name), email=VALUES(email), phone=VALUES(phone), address=VALUES(address),
 pay_range=VALUES(pay_range), education_level=VALUES(education_level),
 certificates=VALUES(certificates), linkedin=VALUES(linkedin),
 additional_notes=VALUES(additional_notes), status=VALUES(status),
 updated_at=VALUES(updated_at);
`
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.Name, a.Email, a.Phone, nullString(a.Address),
		a.PayRange, a.EducationLevel,
		nullString(a.Certificates), nullString(a.LinkedIn), nullString(a.AdditionalNotes),
		a.Status, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

// Get by ID
func (r *ApplicationRepository) Get(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	q := fmt.Sprintf(`SELECT %s FROM job_applications WHERE id=? LIMIT 1;`, applicationColumns)
	return scanApplication(r.db.QueryRowContext(ctx, q, id))
}

// List applications, newest first. Status filters exactly; search matches a
// case-insensitive substring of name OR email.
func (r *ApplicationRepository) List(ctx context.Context, f domain.ListFilter) ([]*domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_applications WHERE 1=1`, applicationColumns)
	var args []interface{}

	if f.Status != "" && f.Status != "all" {
		query += " AND status = ?"
		args = append(args, f.Status)
	}
	if f.Search != "" {
		term := "%" + strings.ToLower(escapeLikePattern(f.Search)) + "%"
		query += " AND (LOWER(name) LIKE ? OR LOWER(email) LIKE ?)"
		args = append(args, term, term)
	}

	// id DESC tie-break keeps the ordering deterministic for equal timestamps
	query += " ORDER BY created_at DESC, id DESC;"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying applications: %w", err)
	}
	defer rows.Close()

	var out []*domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateStatus hanya update kolom status (+ updated_at)
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id domain.ApplicationID, status domain.Status) error {
	const q = `
UPDATE job_applications
SET status = ?, updated_at = NOW()
WHERE id = ?;`
	_, err := r.db.ExecContext(ctx, q, status, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var a domain.Application
	var address, certs, linkedin, notes sql.NullString
	if err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &address, &a.PayRange, &a.EducationLevel,
		&certs, &linkedin, &notes, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Address = fromNull(address)
	a.Certificates = fromNull(certs)
	a.LinkedIn = fromNull(linkedin)
	a.AdditionalNotes = fromNull(notes)
	return &a, nil
}
