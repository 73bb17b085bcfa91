package qrcodes

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, q *QRCode) error
	// Latest returns the most recently generated code, or sql.ErrNoRows.
	Latest(ctx context.Context) (*QRCode, error)
}

// ImageStore port untuk penyimpanan gambar QR
type ImageStore interface {
	UploadPNG(ctx context.Context, key string, data []byte) (string, error)
}
