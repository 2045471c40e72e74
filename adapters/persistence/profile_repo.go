package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveensdev/portfolio-api/internal/domain/profile"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

// First returns the lowest-id row. The table is a logical singleton read
// via first-match, not a unique constraint.
func (r *postgresProfileRepo) First(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT id, name, title, tagline, about, email, phone, linkedin, github, leetcode
		FROM profile
		ORDER BY id
		LIMIT 1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Tagline,
		&p.About,
		&p.Email,
		&p.Phone,
		&p.LinkedIn,
		&p.GitHub,
		&p.LeetCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profile (name, title, tagline, about, email, phone, linkedin, github, leetcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Title, p.Tagline, p.About, p.Email,
		p.Phone, p.LinkedIn, p.GitHub, p.LeetCode,
	).Scan(&p.ID)
	if err != nil {
		return apperror.NewInternal("failed to save profile", err)
	}
	return nil
}
