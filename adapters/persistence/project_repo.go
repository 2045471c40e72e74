package persistence

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/naveensdev/portfolio-api/internal/domain/project"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	builder := psql.Select("id, title, description, technologies, highlights, link, github, is_featured").
		From("projects").
		OrderBy("id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	defer rows.Close()

	projects := make([]*project.Project, 0)
	for rows.Next() {
		p := &project.Project{}
		var highlightsBytes []byte
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Technologies, &highlightsBytes, &p.Link, &p.GitHub, &p.IsFeatured); err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}

		if err := json.Unmarshal(highlightsBytes, &p.Highlights); err != nil {
			r.logger.Warn("Failed to unmarshal project highlights", zap.Int64("project_id", p.ID), zap.Error(err))
			p.Highlights = []string{}
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	highlightsBytes, err := json.Marshal(p.Highlights)
	if err != nil {
		return apperror.NewInternal("failed to marshal project highlights", err)
	}

	query := `
		INSERT INTO projects (title, description, technologies, highlights, link, github, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, query,
		p.Title, p.Description, p.Technologies, highlightsBytes, p.Link, p.GitHub, p.IsFeatured,
	).Scan(&p.ID)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}
