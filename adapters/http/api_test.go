package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactUC "github.com/naveensdev/portfolio-api/internal/application/usecase/contact"
	contentUC "github.com/naveensdev/portfolio-api/internal/application/usecase/content"
	portfolioUC "github.com/naveensdev/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/naveensdev/portfolio-api/internal/application/usecase/profile"
	"github.com/naveensdev/portfolio-api/internal/config"
	"github.com/naveensdev/portfolio-api/internal/domain/certification"
	"github.com/naveensdev/portfolio-api/internal/domain/contact"
	"github.com/naveensdev/portfolio-api/internal/domain/education"
	"github.com/naveensdev/portfolio-api/internal/domain/experience"
	"github.com/naveensdev/portfolio-api/internal/domain/profile"
	"github.com/naveensdev/portfolio-api/internal/domain/project"
	"github.com/naveensdev/portfolio-api/internal/domain/skill"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

// In-memory repositories backing the handler tests.

type memProfileRepo struct{ rows []*profile.Profile }

func (r *memProfileRepo) First(context.Context) (*profile.Profile, error) {
	if len(r.rows) == 0 {
		return nil, apperror.NewNotFound("profile")
	}
	return r.rows[0], nil
}
func (r *memProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	r.rows = append(r.rows, p)
	return nil
}

type memEducationRepo struct{ rows []*education.Education }

func (r *memEducationRepo) List(context.Context) ([]*education.Education, error) { return r.rows, nil }
func (r *memEducationRepo) Save(_ context.Context, e *education.Education) error {
	r.rows = append(r.rows, e)
	return nil
}

type memExperienceRepo struct{ rows []*experience.Experience }

func (r *memExperienceRepo) List(context.Context) ([]*experience.Experience, error) {
	return r.rows, nil
}
func (r *memExperienceRepo) Save(_ context.Context, e *experience.Experience) error {
	r.rows = append(r.rows, e)
	return nil
}

type memProjectRepo struct{ rows []*project.Project }

func (r *memProjectRepo) List(context.Context) ([]*project.Project, error) { return r.rows, nil }
func (r *memProjectRepo) Save(_ context.Context, p *project.Project) error {
	r.rows = append(r.rows, p)
	return nil
}

type memSkillRepo struct{ rows []*skill.SkillCategory }

func (r *memSkillRepo) List(context.Context) ([]*skill.SkillCategory, error) { return r.rows, nil }
func (r *memSkillRepo) Save(_ context.Context, c *skill.SkillCategory) error {
	r.rows = append(r.rows, c)
	return nil
}

type memCertificationRepo struct{ rows []*certification.Certification }

func (r *memCertificationRepo) List(context.Context) ([]*certification.Certification, error) {
	return r.rows, nil
}
func (r *memCertificationRepo) Save(_ context.Context, c *certification.Certification) error {
	r.rows = append(r.rows, c)
	return nil
}

type memContactRepo struct{ rows []*contact.ContactMessage }

func (r *memContactRepo) Create(_ context.Context, m *contact.ContactMessage) error {
	r.rows = append(r.rows, m)
	return nil
}

type stubNotifier struct {
	result contact.NotifyResult
	calls  int
}

func (n *stubNotifier) Notify(context.Context, *contact.ContactMessage) contact.NotifyResult {
	n.calls++
	return n.result
}

type testEnv struct {
	router      *gin.Engine
	profiles    *memProfileRepo
	education   *memEducationRepo
	experiences *memExperienceRepo
	projects    *memProjectRepo
	skills      *memSkillRepo
	certs       *memCertificationRepo
	contacts    *memContactRepo
	notifier    *stubNotifier
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		profiles:    &memProfileRepo{},
		education:   &memEducationRepo{},
		experiences: &memExperienceRepo{},
		projects:    &memProjectRepo{},
		skills:      &memSkillRepo{},
		certs:       &memCertificationRepo{},
		contacts:    &memContactRepo{},
		notifier:    &stubNotifier{result: contact.NotifySent},
	}

	log := logger.NewNop()
	cfg := config.Config{}
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}

	profileUseCase := profileUC.NewProfileUseCase(env.profiles)
	contentUseCase := contentUC.NewContentUseCase(env.education, env.experiences, env.projects, env.skills, env.certs)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(
		env.profiles, env.education, env.experiences, env.projects, env.skills, env.certs,
		nil, 0, log,
	)
	submitUseCase := contactUC.NewSubmitContactUseCase(env.contacts, env.notifier, nil, log)

	env.router = NewRouter(cfg, log,
		NewContentHandler(profileUseCase, contentUseCase),
		NewPortfolioHandler(portfolioUseCase),
		NewContactHandler(submitUseCase),
	)
	return env
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	env := newTestEnv()
	rr := env.get(t, "/health")
	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestGetProfileNotFoundWhenEmpty(t *testing.T) {
	env := newTestEnv()
	rr := env.get(t, "/api/profile")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetProfileReturnsFirstRow(t *testing.T) {
	env := newTestEnv()
	env.profiles.rows = []*profile.Profile{
		{ID: 1, Name: "First", Title: "Engineer"},
		{ID: 2, Name: "Second", Title: "Stale copy"},
	}

	rr := env.get(t, "/api/profile")
	assert.Equal(t, http.StatusOK, rr.Code)

	var dto ProfileDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, "First", dto.Name)
}

func TestListEndpointsReturnEmptyListsNotErrors(t *testing.T) {
	env := newTestEnv()
	for _, path := range []string{"/api/education", "/api/experience", "/api/projects", "/api/skills", "/api/certifications"} {
		rr := env.get(t, path)
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Equal(t, "[]", rr.Body.String(), path)
	}
}

func TestListSkillsNestsChildrenAndPreservesProficiency(t *testing.T) {
	env := newTestEnv()
	env.skills.rows = []*skill.SkillCategory{
		{ID: 1, Name: "Languages", Icon: "code", Skills: []skill.Skill{
			{ID: 10, Name: "Python", Proficiency: 95},
			{ID: 11, Name: "SQL", Proficiency: 0},
		}},
		{ID: 2, Name: "Tools", Icon: "tools", Skills: []skill.Skill{
			{ID: 12, Name: "Docker", Proficiency: 100},
		}},
	}

	rr := env.get(t, "/api/skills")
	assert.Equal(t, http.StatusOK, rr.Code)

	var dtos []SkillCategoryDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dtos))
	require.Len(t, dtos, 2)
	require.Len(t, dtos[0].Skills, 2)
	assert.Equal(t, 95, dtos[0].Skills[0].Proficiency)
	assert.Equal(t, 0, dtos[0].Skills[1].Proficiency)
	assert.Equal(t, 100, dtos[1].Skills[0].Proficiency)
}

func TestListExperienceNestsResponsibilities(t *testing.T) {
	env := newTestEnv()
	env.experiences.rows = []*experience.Experience{
		{ID: 1, Title: "Intern", Company: "Acme", Responsibilities: []experience.Responsibility{
			{ID: 1, Description: "Built pipelines"},
			{ID: 2, Description: "Reviewed code"},
		}},
	}

	rr := env.get(t, "/api/experience")
	assert.Equal(t, http.StatusOK, rr.Code)

	var dtos []ExperienceDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dtos))
	require.Len(t, dtos, 1)
	require.Len(t, dtos[0].Responsibilities, 2)
	assert.Equal(t, "Built pipelines", dtos[0].Responsibilities[0].Description)
}

func TestListEndpointsAreFaithfulProjections(t *testing.T) {
	env := newTestEnv()
	env.education.rows = []*education.Education{{ID: 1}, {ID: 2}, {ID: 3}}
	env.projects.rows = []*project.Project{{ID: 7}, {ID: 9}}
	env.certs.rows = []*certification.Certification{{ID: 4}}

	checks := []struct {
		path string
		want []int64
	}{
		{"/api/education", []int64{1, 2, 3}},
		{"/api/projects", []int64{7, 9}},
		{"/api/certifications", []int64{4}},
	}
	for _, check := range checks {
		rr := env.get(t, check.path)
		require.Equal(t, http.StatusOK, rr.Code, check.path)

		var rows []struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
		got := make([]int64, len(rows))
		for i, row := range rows {
			got[i] = row.ID
		}
		assert.Equal(t, check.want, got, check.path)
	}
}

func TestGetPortfolioAggregatesEverything(t *testing.T) {
	env := newTestEnv()
	env.profiles.rows = []*profile.Profile{{ID: 1, Name: "Naveen S", Title: "AI Engineer"}}
	env.education.rows = []*education.Education{{ID: 1, Institution: "KCE", Degree: "B.Tech"}}
	env.projects.rows = []*project.Project{{ID: 1, Title: "AutoML", Highlights: []string{"x"}}}

	rr := env.get(t, "/api/portfolio")
	assert.Equal(t, http.StatusOK, rr.Code)

	var dto PortfolioDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	require.NotNil(t, dto.Profile)
	assert.Equal(t, "Naveen S", dto.Profile.Name)
	assert.Len(t, dto.Education, 1)
	assert.Len(t, dto.Projects, 1)
	assert.Empty(t, dto.Experiences)
}

func TestGetPortfolioToleratesMissingProfile(t *testing.T) {
	env := newTestEnv()
	rr := env.get(t, "/api/portfolio")
	assert.Equal(t, http.StatusOK, rr.Code)

	var dto PortfolioDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Nil(t, dto.Profile)
}

func TestSubmitContactPersistsAndEchoes(t *testing.T) {
	env := newTestEnv()
	rr := env.postJSON(t, "/api/contact", gin.H{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "Hi there",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var dto ContactMessageDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, "Ada", dto.Name)
	assert.Equal(t, "ada@example.com", dto.Email)
	assert.Equal(t, "Hi there", dto.Message)
	assert.NotEmpty(t, dto.ID)
	assert.NotEmpty(t, dto.CreatedAt)

	require.Len(t, env.contacts.rows, 1)
	assert.Equal(t, dto.ID, env.contacts.rows[0].ID.String())
	assert.Equal(t, 1, env.notifier.calls)
}

func TestSubmitContactSucceedsDespiteNotificationOutcome(t *testing.T) {
	for _, result := range []contact.NotifyResult{contact.NotifyFailed, contact.NotifyUnconfigured} {
		env := newTestEnv()
		env.notifier.result = result

		rr := env.postJSON(t, "/api/contact", gin.H{
			"name": "Ada", "email": "ada@example.com", "message": "Hi",
		})
		assert.Equal(t, http.StatusCreated, rr.Code, result.String())
		assert.Len(t, env.contacts.rows, 1, result.String())
	}
}

func TestSubmitContactRejectsMissingFields(t *testing.T) {
	cases := []gin.H{
		{"email": "a@b.c", "message": "hi"},
		{"name": "", "email": "a@b.c", "message": "hi"},
		{"name": "Ada", "message": "hi"},
		{"name": "Ada", "email": "not-an-email", "message": "hi"},
		{"name": "Ada", "email": "a@b.c"},
	}
	for i, body := range cases {
		env := newTestEnv()
		rr := env.postJSON(t, "/api/contact", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, "case %d", i)
		assert.Empty(t, env.contacts.rows, "case %d", i)
	}
}
