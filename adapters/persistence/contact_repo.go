package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveensdev/portfolio-api/internal/domain/contact"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

// Create is the only write the API exposes. A failure here must reach the
// workflow; nothing is swallowed.
func (r *postgresContactRepo) Create(ctx context.Context, m *contact.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Message, m.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save contact message", err)
	}
	return nil
}
