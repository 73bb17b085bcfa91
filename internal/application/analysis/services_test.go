package analysis

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/applicant-intake/internal/domain/ai"
	"github.com/bryanwahyu/applicant-intake/internal/domain/analyses"
	"github.com/bryanwahyu/applicant-intake/internal/domain/applications"
)

// ==========================
// Test Helper Fakes
// ==========================

type fakeAppRepo struct {
	apps map[applications.ApplicationID]*applications.Application
}

func (f *fakeAppRepo) Save(ctx context.Context, a *applications.Application) error { return nil }

func (f *fakeAppRepo) Get(ctx context.Context, id applications.ApplicationID) (*applications.Application, error) {
	if a, ok := f.apps[id]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeAppRepo) List(ctx context.Context, _ applications.ListFilter) ([]*applications.Application, error) {
	return nil, nil
}

func (f *fakeAppRepo) UpdateStatus(ctx context.Context, id applications.ApplicationID, s applications.Status) error {
	return nil
}

type fakeAnalysisRepo struct {
	saved   []*analyses.Analysis
	saveErr error
}

func (f *fakeAnalysisRepo) Save(ctx context.Context, a *analyses.Analysis) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, a)
	return nil
}

func (f *fakeAnalysisRepo) LatestByApplication(ctx context.Context, id string) (*analyses.Analysis, error) {
	return nil, sql.ErrNoRows
}

type mockAIClient struct {
	researchCalls int
	researchFn    func(url string) (string, error)
	assessFn      func(app *applications.Application, research string) (string, error)
	qualifyFn     func(app *applications.Application, assessment string) (ai.Qualification, error)
}

func (m *mockAIClient) ResearchProfile(ctx context.Context, url string) (string, error) {
	m.researchCalls++
	if m.researchFn != nil {
		return m.researchFn(url)
	}
	return "profile looks solid", nil
}

func (m *mockAIClient) AssessApplicant(ctx context.Context, app *applications.Application, research string) (string, error) {
	if m.assessFn != nil {
		return m.assessFn(app, research)
	}
	return "comprehensive assessment text", nil
}

func (m *mockAIClient) QualifyApplicant(ctx context.Context, app *applications.Application, assessment string) (ai.Qualification, error) {
	if m.qualifyFn != nil {
		return m.qualifyFn(app, assessment)
	}
	return ai.Qualification{Category: "QUALIFIED", Reason: "meets the bar"}, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func testApplication(linkedin string) *applications.Application {
	return &applications.Application{
		ID:             "app-1",
		Name:           "Jane Doe",
		Email:          "jane@x.com",
		Phone:          "555-123-4567",
		PayRange:       "$30/hour",
		EducationLevel: applications.EducationBachelor,
		LinkedIn:       linkedin,
		Status:         applications.StatusNew,
	}
}

func newTestService(app *applications.Application, client *mockAIClient) (*Service, *fakeAnalysisRepo) {
	repo := &fakeAnalysisRepo{}
	apps := &fakeAppRepo{apps: map[applications.ApplicationID]*applications.Application{}}
	if app != nil {
		apps.apps[app.ID] = app
	}
	clock := fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewService(apps, repo, client, clock), repo
}

// ==========================
// Pipeline Tests
// ==========================

func TestAnalyze_Success_WithLinkedIn(t *testing.T) {
	client := &mockAIClient{}
	svc, repo := newTestService(testApplication("https://linkedin.com/in/janedoe"), client)

	a, err := svc.Analyze(context.Background(), "app-1")
	require.NoError(t, err)

	assert.Equal(t, 1, client.researchCalls)
	assert.Equal(t, analyses.CategoryQualified, a.QualificationCategory)
	assert.Equal(t, "meets the bar", a.QualificationReason)
	assert.Equal(t, "comprehensive assessment text", a.ResearchSummary)
	assert.Equal(t, "profile looks solid", a.LinkedInAnalysis)
	assert.Equal(t, "app-1", a.ApplicationID)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), a.AnalyzedAt)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, a, repo.saved[0])
}

func TestAnalyze_NoLinkedIn_SkipsResearch(t *testing.T) {
	client := &mockAIClient{}
	svc, repo := newTestService(testApplication(""), client)

	a, err := svc.Analyze(context.Background(), "app-1")
	require.NoError(t, err)

	assert.Equal(t, 0, client.researchCalls, "research call must never be issued without a profile URL")
	assert.Empty(t, a.LinkedInAnalysis)
	require.Len(t, repo.saved, 1)
	assert.Empty(t, repo.saved[0].LinkedInAnalysis)
}

func TestAnalyze_ResearchFailure_IsRecovered(t *testing.T) {
	client := &mockAIClient{
		researchFn: func(string) (string, error) { return "", errors.New("provider down") },
	}
	svc, repo := newTestService(testApplication("https://linkedin.com/in/janedoe"), client)

	a, err := svc.Analyze(context.Background(), "app-1")
	require.NoError(t, err)

	assert.Empty(t, a.LinkedInAnalysis)
	assert.Equal(t, analyses.CategoryQualified, a.QualificationCategory)
	assert.Len(t, repo.saved, 1)
}

func TestAnalyze_AssessmentFailure_IsFatal(t *testing.T) {
	client := &mockAIClient{
		assessFn: func(*applications.Application, string) (string, error) {
			return "", errors.New("provider timeout")
		},
	}
	svc, repo := newTestService(testApplication(""), client)

	_, err := svc.Analyze(context.Background(), "app-1")
	require.Error(t, err)
	assert.Empty(t, repo.saved, "no partial analysis row may be written")
}

func TestAnalyze_QualifyFailure_FallsBackToFollowUp(t *testing.T) {
	client := &mockAIClient{
		qualifyFn: func(*applications.Application, string) (ai.Qualification, error) {
			return ai.Qualification{}, errors.New("unparseable response")
		},
	}
	svc, repo := newTestService(testApplication(""), client)

	a, err := svc.Analyze(context.Background(), "app-1")
	require.NoError(t, err)

	assert.Equal(t, analyses.CategoryFollowUp, a.QualificationCategory)
	assert.Equal(t, FallbackReason, a.QualificationReason)
	assert.Equal(t, "comprehensive assessment text", a.ResearchSummary,
		"the assessment already paid for must be kept")
	assert.Len(t, repo.saved, 1)
}

func TestAnalyze_QualifyUnknownCategory_FallsBackToFollowUp(t *testing.T) {
	client := &mockAIClient{
		qualifyFn: func(*applications.Application, string) (ai.Qualification, error) {
			return ai.Qualification{Category: "MAYBE", Reason: "unsure"}, nil
		},
	}
	svc, _ := newTestService(testApplication(""), client)

	a, err := svc.Analyze(context.Background(), "app-1")
	require.NoError(t, err)

	assert.Equal(t, analyses.CategoryFollowUp, a.QualificationCategory)
	assert.Equal(t, FallbackReason, a.QualificationReason)
}

func TestAnalyze_UnknownApplication(t *testing.T) {
	svc, repo := newTestService(nil, &mockAIClient{})

	_, err := svc.Analyze(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Empty(t, repo.saved)
}

func TestAnalyze_SaveFailure_IsSurfaced(t *testing.T) {
	svc, repo := newTestService(testApplication(""), &mockAIClient{})
	repo.saveErr = errors.New("insert failed")

	_, err := svc.Analyze(context.Background(), "app-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving analysis")
}

func TestAnalyze_Rerun_AppendsSecondRow(t *testing.T) {
	svc, repo := newTestService(testApplication(""), &mockAIClient{})

	_, err := svc.Analyze(context.Background(), "app-1")
	require.NoError(t, err)
	_, err = svc.Analyze(context.Background(), "app-1")
	require.NoError(t, err)

	require.Len(t, repo.saved, 2)
	assert.NotEqual(t, repo.saved[0].ID, repo.saved[1].ID)
}
