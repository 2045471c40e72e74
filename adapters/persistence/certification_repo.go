package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveensdev/portfolio-api/internal/domain/certification"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

type postgresCertificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCertificationRepo(db *pgxpool.Pool, logger logger.Logger) certification.Repository {
	return &postgresCertificationRepo{db: db, logger: logger}
}

func (r *postgresCertificationRepo) List(ctx context.Context) ([]*certification.Certification, error) {
	builder := psql.Select("id, title, issuer, date, link").
		From("certifications").
		OrderBy("id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build certifications query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certifications", err)
	}
	defer rows.Close()

	certs := make([]*certification.Certification, 0)
	for rows.Next() {
		c := &certification.Certification{}
		if err := rows.Scan(&c.ID, &c.Title, &c.Issuer, &c.Date, &c.Link); err != nil {
			return nil, apperror.NewInternal("failed to scan certification row", err)
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certification rows", err)
	}
	return certs, nil
}

func (r *postgresCertificationRepo) Save(ctx context.Context, c *certification.Certification) error {
	query := `
		INSERT INTO certifications (title, issuer, date, link)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, c.Title, c.Issuer, c.Date, c.Link).Scan(&c.ID)
	if err != nil {
		return apperror.NewInternal("failed to save certification", err)
	}
	return nil
}
