package postgres

import (
	"context"
	"database/sql"
	"fmt"

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

// Save inserts or updates an application record
func (r *ApplicationRepository) Save(ctx context.Context, a *domain.Application) error {
	const q = `
INSERT INTO job_applications
(id, name, email, phone, address, pay_range, education_level,
 certificates, linkedin, additional_notes, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
ON CONFLICT (id) DO UPDATE SET
  name=EXCLUDED.name, email=EXCLUDED.email, phone=EXCLUDED.phone,
  address=EXCLUDED.address, pay_range=EXCLUDED.pay_range,
  education_level=EXCLUDED.education_level, certificates=EXCLUDED.certificates,
  linkedin=EXCLUDED.linkedin, additional_notes=EXCLUDED.additional_notes,
  status=EXCLUDED.status, updated_at=EXCLUDED.updated_at;
`
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.Name, a.Email, a.Phone, nullString(a.Address),
		a.PayRange, a.EducationLevel,
		nullString(a.Certificates), nullString(a.LinkedIn), nullString(a.AdditionalNotes),
		a.Status, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *ApplicationRepository) Get(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	q := fmt.Sprintf(`SELECT %s FROM job_applications WHERE id=$1 LIMIT 1;`, applicationColumns)
	return scanApplication(r.db.QueryRowContext(ctx, q, id))
}

func (r *ApplicationRepository) List(ctx context.Context, f domain.ListFilter) ([]*domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_applications WHERE 1=1`, applicationColumns)
	var args []interface{}

	if f.Status != "" && f.Status != "all" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLikePattern(f.Search)+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", n, n)
	}

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

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id domain.ApplicationID, status domain.Status) error {
	const q = `
UPDATE job_applications
SET status = $1, updated_at = NOW()
WHERE id = $2;`
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
