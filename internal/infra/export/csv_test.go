package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/applicant-intake/internal/domain/applications"
)

func exportFixture() []*domain.Application {
	created := time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)
	return []*domain.Application{
		{
			ID:             "id-1",
			Name:           "Jane Doe",
			Email:          "jane@x.com",
			Phone:          "555-123-4567",
			PayRange:       "$30/hour",
			EducationLevel: domain.EducationBachelor,
			Status:         domain.StatusNew,
			CreatedAt:      created,
			UpdatedAt:      created,
		},
		{
			ID:              "id-2",
			Name:            `Bob "The Builder", Jr.`,
			Email:           "bob@x.com",
			Phone:           "555-000-1111",
			Address:         "12 Main St,\nSpringfield",
			PayRange:        "$25/hour",
			EducationLevel:  domain.EducationHighSchool,
			Certificates:    "CPR, First Aid",
			LinkedIn:        "https://linkedin.com/in/bob",
			AdditionalNotes: "Available weekends",
			Status:          domain.StatusNew,
			CreatedAt:       created.Add(time.Hour),
			UpdatedAt:       created.Add(2 * time.Hour),
		},
	}
}

func TestToCSV_ColumnOrder(t *testing.T) {
	data, err := ToCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		"id", "name", "email", "phone", "address", "education_level", "pay_range",
		"certificates", "linkedin", "additional_notes", "status", "created_at", "updated_at",
	}, records[0])
}

func TestToCSV_EmptyOptionalsAreEmptyCells(t *testing.T) {
	data, err := ToCSV(exportFixture()[:1])
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "", row[4], "address")
	assert.Equal(t, "", row[7], "certificates")
	assert.Equal(t, "", row[8], "linkedin")
	assert.Equal(t, "", row[9], "additional_notes")
	for _, cell := range row {
		assert.NotEqual(t, "null", cell)
	}
}

func TestToCSV_RoundTripPreservesValues(t *testing.T) {
	apps := exportFixture()
	data, err := ToCSV(apps)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// quotes, commas and newlines must survive a standard parser
	row := records[2]
	assert.Equal(t, "id-2", row[0])
	assert.Equal(t, `Bob "The Builder", Jr.`, row[1])
	assert.Equal(t, "12 Main St,\nSpringfield", row[4])
	assert.Equal(t, "CPR, First Aid", row[7])
	assert.Equal(t, apps[1].CreatedAt.Format(time.RFC3339), row[11])
}

func TestToCSV_RowOrderMatchesInput(t *testing.T) {
	apps := exportFixture()
	data, err := ToCSV(apps)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "id-1", records[1][0])
	assert.Equal(t, "id-2", records[2][0])
}
