package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveensdev/portfolio-api/internal/domain/education"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

func (r *postgresEducationRepo) List(ctx context.Context) ([]*education.Education, error) {
	builder := psql.Select("id, institution, degree, cgpa, start_year, end_year, location").
		From("education").
		OrderBy("id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build education query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	defer rows.Close()

	entries := make([]*education.Education, 0)
	for rows.Next() {
		e := &education.Education{}
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.CGPA, &e.StartYear, &e.EndYear, &e.Location); err != nil {
			return nil, apperror.NewInternal("failed to scan education row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return entries, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO education (institution, degree, cgpa, start_year, end_year, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		e.Institution, e.Degree, e.CGPA, e.StartYear, e.EndYear, e.Location,
	).Scan(&e.ID)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}
