package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveensdev/portfolio-api/internal/domain/skill"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]*skill.SkillCategory, error) {
	builder := psql.Select("id, name, icon").
		From("skill_categories").
		OrderBy("id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill categories query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skill categories", err)
	}

	categories := make([]*skill.SkillCategory, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		c := &skill.SkillCategory{Skills: []skill.Skill{}}
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			rows.Close()
			return nil, apperror.NewInternal("failed to scan skill category row", err)
		}
		categories = append(categories, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, apperror.NewInternal("error iterating skill category rows", err)
	}
	rows.Close()

	if len(categories) == 0 {
		return categories, nil
	}

	if err := r.attachSkills(ctx, categories, ids); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *postgresSkillRepo) attachSkills(ctx context.Context, categories []*skill.SkillCategory, ids []int64) error {
	query := `
		SELECT id, category_id, name, proficiency
		FROM skills
		WHERE category_id = ANY($1)
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return apperror.NewInternal("failed to query skills", err)
	}
	defer rows.Close()

	byParent := make(map[int64]*skill.SkillCategory, len(categories))
	for _, c := range categories {
		byParent[c.ID] = c
	}

	for rows.Next() {
		var s skill.Skill
		var parentID int64
		if err := rows.Scan(&s.ID, &parentID, &s.Name, &s.Proficiency); err != nil {
			return apperror.NewInternal("failed to scan skill row", err)
		}
		if parent, ok := byParent[parentID]; ok {
			parent.Skills = append(parent.Skills, s)
		}
	}
	if err := rows.Err(); err != nil {
		return apperror.NewInternal("error iterating skill rows", err)
	}
	return nil
}

func (r *postgresSkillRepo) Save(ctx context.Context, c *skill.SkillCategory) error {
	if err := c.Validate(); err != nil {
		return apperror.NewInvalidInput(err.Error(), err)
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO skill_categories (name, icon) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Icon,
	).Scan(&c.ID)
	if err != nil {
		return apperror.NewInternal("failed to save skill category", err)
	}

	for i := range c.Skills {
		s := &c.Skills[i]
		err := r.db.QueryRow(ctx,
			`INSERT INTO skills (category_id, name, proficiency) VALUES ($1, $2, $3) RETURNING id`,
			c.ID, s.Name, s.Proficiency,
		).Scan(&s.ID)
		if err != nil {
			return apperror.NewInternal("failed to save skill", err)
		}
	}
	return nil
}
