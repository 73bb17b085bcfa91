package export

import (
	"bytes"
	"encoding/csv"
	"time"

	domain "github.com/bryanwahyu/applicant-intake/internal/domain/applications"
)

// csvFields is the fixed, ordered column set for CSV export.
var csvFields = []string{
	"id", "name", "email", "phone", "address", "education_level", "pay_range",
	"certificates", "linkedin", "additional_notes", "status", "created_at", "updated_at",
}

// ToCSV serializes the rows in input order. Pure function of its input;
// absent optional fields become empty cells, never the string "null".
func ToCSV(apps []*domain.Application) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvFields); err != nil {
		return nil, err
	}
	for _, a := range apps {
		record := []string{
			string(a.ID),
			a.Name,
			a.Email,
			a.Phone,
			a.Address,
			string(a.EducationLevel),
			a.PayRange,
			a.Certificates,
			a.LinkedIn,
			a.AdditionalNotes,
			string(a.Status),
			a.CreatedAt.Format(time.RFC3339),
			a.UpdatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
