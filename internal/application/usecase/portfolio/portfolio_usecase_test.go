package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naveensdev/portfolio-api/internal/domain/certification"
	"github.com/naveensdev/portfolio-api/internal/domain/education"
	"github.com/naveensdev/portfolio-api/internal/domain/experience"
	"github.com/naveensdev/portfolio-api/internal/domain/profile"
	"github.com/naveensdev/portfolio-api/internal/domain/project"
	"github.com/naveensdev/portfolio-api/internal/domain/skill"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

type countingProfileRepo struct {
	row   *profile.Profile
	reads int
}

func (r *countingProfileRepo) First(context.Context) (*profile.Profile, error) {
	r.reads++
	if r.row == nil {
		return nil, apperror.NewNotFound("profile")
	}
	return r.row, nil
}
func (r *countingProfileRepo) Save(context.Context, *profile.Profile) error { return nil }

type emptyEducationRepo struct{}

func (emptyEducationRepo) List(context.Context) ([]*education.Education, error) {
	return []*education.Education{}, nil
}
func (emptyEducationRepo) Save(context.Context, *education.Education) error { return nil }

type emptyExperienceRepo struct{}

func (emptyExperienceRepo) List(context.Context) ([]*experience.Experience, error) {
	return []*experience.Experience{}, nil
}
func (emptyExperienceRepo) Save(context.Context, *experience.Experience) error { return nil }

type emptyProjectRepo struct{}

func (emptyProjectRepo) List(context.Context) ([]*project.Project, error) {
	return []*project.Project{}, nil
}
func (emptyProjectRepo) Save(context.Context, *project.Project) error { return nil }

type emptySkillRepo struct{}

func (emptySkillRepo) List(context.Context) ([]*skill.SkillCategory, error) {
	return []*skill.SkillCategory{}, nil
}
func (emptySkillRepo) Save(context.Context, *skill.SkillCategory) error { return nil }

type emptyCertificationRepo struct{}

func (emptyCertificationRepo) List(context.Context) ([]*certification.Certification, error) {
	return []*certification.Certification{}, nil
}
func (emptyCertificationRepo) Save(context.Context, *certification.Certification) error { return nil }

type memCache struct {
	entries map[string][]byte
	getErr  error
}

func newMemCache() *memCache { return &memCache{entries: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[key], nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func newUseCase(profiles *countingProfileRepo, cache Cache) *PortfolioUseCase {
	return NewPortfolioUseCase(
		profiles,
		emptyEducationRepo{}, emptyExperienceRepo{}, emptyProjectRepo{},
		emptySkillRepo{}, emptyCertificationRepo{},
		cache, time.Minute, logger.NewNop(),
	)
}

func TestPortfolioSecondReadServedFromCache(t *testing.T) {
	profiles := &countingProfileRepo{row: &profile.Profile{ID: 1, Name: "Naveen S"}}
	uc := newUseCase(profiles, newMemCache())

	first, err := uc.ExecuteGetPortfolio(context.Background())
	require.NoError(t, err)
	require.NotNil(t, first.Profile)

	second, err := uc.ExecuteGetPortfolio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Naveen S", second.Profile.Name)
	assert.Equal(t, 1, profiles.reads)
}

func TestPortfolioCacheFailureFallsThrough(t *testing.T) {
	profiles := &countingProfileRepo{row: &profile.Profile{ID: 1, Name: "Naveen S"}}
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	uc := newUseCase(profiles, cache)

	out, err := uc.ExecuteGetPortfolio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Naveen S", out.Profile.Name)
	assert.Equal(t, 1, profiles.reads)
}

func TestPortfolioWithoutCacheOrProfile(t *testing.T) {
	profiles := &countingProfileRepo{}
	uc := newUseCase(profiles, nil)

	out, err := uc.ExecuteGetPortfolio(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out.Profile)
	assert.NotNil(t, out.Education)
	assert.Empty(t, out.Education)
}
