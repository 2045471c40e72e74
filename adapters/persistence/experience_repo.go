package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveensdev/portfolio-api/internal/domain/experience"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

func (r *postgresExperienceRepo) List(ctx context.Context) ([]*experience.Experience, error) {
	builder := psql.Select("id, title, company, location, start_date, end_date, description, technologies").
		From("experience").
		OrderBy("id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build experience query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experience", err)
	}

	entries := make([]*experience.Experience, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		e := &experience.Experience{Responsibilities: []experience.Responsibility{}}
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.StartDate, &e.EndDate, &e.Description, &e.Technologies); err != nil {
			rows.Close()
			return nil, apperror.NewInternal("failed to scan experience row", err)
		}
		entries = append(entries, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	rows.Close()

	if len(entries) == 0 {
		return entries, nil
	}

	if err := r.attachResponsibilities(ctx, entries, ids); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *postgresExperienceRepo) attachResponsibilities(ctx context.Context, entries []*experience.Experience, ids []int64) error {
	query := `
		SELECT id, experience_id, description
		FROM responsibilities
		WHERE experience_id = ANY($1)
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return apperror.NewInternal("failed to query responsibilities", err)
	}
	defer rows.Close()

	byParent := make(map[int64]*experience.Experience, len(entries))
	for _, e := range entries {
		byParent[e.ID] = e
	}

	for rows.Next() {
		var resp experience.Responsibility
		var parentID int64
		if err := rows.Scan(&resp.ID, &parentID, &resp.Description); err != nil {
			return apperror.NewInternal("failed to scan responsibility row", err)
		}
		if parent, ok := byParent[parentID]; ok {
			parent.Responsibilities = append(parent.Responsibilities, resp)
		}
	}
	if err := rows.Err(); err != nil {
		return apperror.NewInternal("error iterating responsibility rows", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	query := `
		INSERT INTO experience (title, company, location, start_date, end_date, description, technologies)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		e.Title, e.Company, e.Location, e.StartDate, e.EndDate, e.Description, e.Technologies,
	).Scan(&e.ID)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}

	for i := range e.Responsibilities {
		resp := &e.Responsibilities[i]
		err := r.db.QueryRow(ctx,
			`INSERT INTO responsibilities (experience_id, description) VALUES ($1, $2) RETURNING id`,
			e.ID, resp.Description,
		).Scan(&resp.ID)
		if err != nil {
			return apperror.NewInternal("failed to save responsibility", err)
		}
	}
	return nil
}
