package profile

import (
	"context"

	"github.com/naveensdev/portfolio-api/internal/domain/profile"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
}

func NewProfileUseCase(repo profile.Repository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: repo}
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteGetProfile returns the first profile row. A missing row surfaces
// as apperror.ErrNotFound from the repository.
func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.First(ctx)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}
