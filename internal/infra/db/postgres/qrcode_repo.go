package postgres

import (
	"context"
	"database/sql"

	domain "github.com/bryanwahyu/applicant-intake/internal/domain/qrcodes"
)

type QRCodeRepository struct {
	db *sql.DB
}

func NewQRCodeRepository(db *sql.DB) *QRCodeRepository {
	return &QRCodeRepository{db: db}
}

func (r *QRCodeRepository) Save(ctx context.Context, c *domain.QRCode) error {
	const q = `
INSERT INTO qr_codes
  (id, title, url, image_url, page_type, created_at)
VALUES ($1,$2,$3,$4,$5,$6);
`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Title, c.URL, c.ImageURL, c.PageType, c.CreatedAt)
	return err
}

func (r *QRCodeRepository) Latest(ctx context.Context) (*domain.QRCode, error) {
	const q = `
SELECT id, title, url, image_url, page_type, created_at
FROM qr_codes
ORDER BY created_at DESC, id DESC
LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q)

	var c domain.QRCode
	if err := row.Scan(&c.ID, &c.Title, &c.URL, &c.ImageURL, &c.PageType, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
