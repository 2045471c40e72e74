package content

import (
	"context"
	"fmt"

	"github.com/naveensdev/portfolio-api/internal/domain/certification"
	"github.com/naveensdev/portfolio-api/internal/domain/education"
	"github.com/naveensdev/portfolio-api/internal/domain/experience"
	"github.com/naveensdev/portfolio-api/internal/domain/project"
	"github.com/naveensdev/portfolio-api/internal/domain/skill"
)

// ContentUseCase serves the list projections. Every operation is total over
// its table: an empty table is an empty list, never an error.
type ContentUseCase struct {
	educationRepo     education.Repository
	experienceRepo    experience.Repository
	projectRepo       project.Repository
	skillRepo         skill.Repository
	certificationRepo certification.Repository
}

func NewContentUseCase(
	educationRepo education.Repository,
	experienceRepo experience.Repository,
	projectRepo project.Repository,
	skillRepo skill.Repository,
	certificationRepo certification.Repository,
) *ContentUseCase {
	return &ContentUseCase{
		educationRepo:     educationRepo,
		experienceRepo:    experienceRepo,
		projectRepo:       projectRepo,
		skillRepo:         skillRepo,
		certificationRepo: certificationRepo,
	}
}

func (uc *ContentUseCase) ListEducation(ctx context.Context) ([]*education.Education, error) {
	entries, err := uc.educationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list education failed: %w", err)
	}
	return entries, nil
}

func (uc *ContentUseCase) ListExperience(ctx context.Context) ([]*experience.Experience, error) {
	entries, err := uc.experienceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experience failed: %w", err)
	}
	return entries, nil
}

func (uc *ContentUseCase) ListProjects(ctx context.Context) ([]*project.Project, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	return projects, nil
}

func (uc *ContentUseCase) ListSkills(ctx context.Context) ([]*skill.SkillCategory, error) {
	categories, err := uc.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}
	return categories, nil
}

func (uc *ContentUseCase) ListCertifications(ctx context.Context) ([]*certification.Certification, error) {
	certs, err := uc.certificationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list certifications failed: %w", err)
	}
	return certs, nil
}
