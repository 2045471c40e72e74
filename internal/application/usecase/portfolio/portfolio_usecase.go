package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/naveensdev/portfolio-api/internal/domain/certification"
	"github.com/naveensdev/portfolio-api/internal/domain/education"
	"github.com/naveensdev/portfolio-api/internal/domain/experience"
	"github.com/naveensdev/portfolio-api/internal/domain/profile"
	"github.com/naveensdev/portfolio-api/internal/domain/project"
	"github.com/naveensdev/portfolio-api/internal/domain/skill"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

const cacheKey = "portfolio:aggregate:v1"

// Cache is a byte cache for the assembled aggregate. May be nil, in which
// case every read goes to the repositories. Cache errors are logged and
// never affect the response.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type PortfolioUseCase struct {
	profileRepo       profile.Repository
	educationRepo     education.Repository
	experienceRepo    experience.Repository
	projectRepo       project.Repository
	skillRepo         skill.Repository
	certificationRepo certification.Repository
	cache             Cache
	cacheTTL          time.Duration
	logger            logger.Logger
}

func NewPortfolioUseCase(
	profileRepo profile.Repository,
	educationRepo education.Repository,
	experienceRepo experience.Repository,
	projectRepo project.Repository,
	skillRepo skill.Repository,
	certificationRepo certification.Repository,
	cache Cache,
	cacheTTL time.Duration,
	log logger.Logger,
) *PortfolioUseCase {
	return &PortfolioUseCase{
		profileRepo:       profileRepo,
		educationRepo:     educationRepo,
		experienceRepo:    experienceRepo,
		projectRepo:       projectRepo,
		skillRepo:         skillRepo,
		certificationRepo: certificationRepo,
		cache:             cache,
		cacheTTL:          cacheTTL,
		logger:            log,
	}
}

type GetPortfolioOutput struct {
	Profile         *profile.Profile               `json:"profile"`
	Education       []*education.Education         `json:"education"`
	Experiences     []*experience.Experience       `json:"experiences"`
	Projects        []*project.Project             `json:"projects"`
	SkillCategories []*skill.SkillCategory         `json:"skill_categories"`
	Certifications  []*certification.Certification `json:"certifications"`
}

func (uc *PortfolioUseCase) ExecuteGetPortfolio(ctx context.Context) (*GetPortfolioOutput, error) {
	if cached := uc.fromCache(ctx); cached != nil {
		return cached, nil
	}

	out := &GetPortfolioOutput{}

	p, err := uc.profileRepo.First(ctx)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("portfolio profile read failed: %w", err)
	}
	out.Profile = p // nil when the table is empty

	if out.Education, err = uc.educationRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("portfolio education read failed: %w", err)
	}
	if out.Experiences, err = uc.experienceRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("portfolio experience read failed: %w", err)
	}
	if out.Projects, err = uc.projectRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("portfolio projects read failed: %w", err)
	}
	if out.SkillCategories, err = uc.skillRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("portfolio skills read failed: %w", err)
	}
	if out.Certifications, err = uc.certificationRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("portfolio certifications read failed: %w", err)
	}

	uc.toCache(ctx, out)
	return out, nil
}

func (uc *PortfolioUseCase) fromCache(ctx context.Context) *GetPortfolioOutput {
	if uc.cache == nil {
		return nil
	}
	raw, err := uc.cache.Get(ctx, cacheKey)
	if err != nil {
		uc.logger.Warn("Portfolio cache read failed", zap.Error(err))
		return nil
	}
	if raw == nil {
		return nil
	}
	out := &GetPortfolioOutput{}
	if err := json.Unmarshal(raw, out); err != nil {
		uc.logger.Warn("Portfolio cache entry corrupt, ignoring", zap.Error(err))
		return nil
	}
	return out
}

func (uc *PortfolioUseCase) toCache(ctx context.Context, out *GetPortfolioOutput) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(out)
	if err != nil {
		uc.logger.Warn("Portfolio cache marshal failed", zap.Error(err))
		return
	}
	if err := uc.cache.Set(ctx, cacheKey, raw, uc.cacheTTL); err != nil {
		uc.logger.Warn("Portfolio cache write failed", zap.Error(err))
	}
}
