package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naveensdev/portfolio-api/internal/domain/contact"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

// SubmitContactUseCase runs the contact workflow: validate, persist, then
// attempt the owner notification. The notification outcome never changes
// what the caller sees; once the row is in, the submission succeeded.
type SubmitContactUseCase struct {
	contactRepo contact.Repository
	notifier    contact.Notifier
	publisher   contact.EventPublisher
	logger      logger.Logger
}

// publisher may be nil when event publishing is unconfigured.
func NewSubmitContactUseCase(
	repo contact.Repository,
	notifier contact.Notifier,
	publisher contact.EventPublisher,
	log logger.Logger,
) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		contactRepo: repo,
		notifier:    notifier,
		publisher:   publisher,
		logger:      log,
	}
}

type SubmitContactInput struct {
	Name    string
	Email   string
	Message string
}

type SubmitContactOutput struct {
	Message *contact.ContactMessage
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	m := &contact.ContactMessage{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := m.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.contactRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("persist contact message: %w", err)
	}

	// Side effects below are isolated: the message is already durable and
	// the response is already decided.
	switch result := uc.notifier.Notify(ctx, m); result {
	case contact.NotifySent:
		uc.logger.Info("Contact notification delivered", zap.String("message_id", m.ID.String()))
	case contact.NotifyUnconfigured:
		uc.logger.Warn("Contact notification skipped, gateway unconfigured", zap.String("message_id", m.ID.String()))
	case contact.NotifyFailed:
		uc.logger.Warn("Contact notification attempt failed", zap.String("message_id", m.ID.String()))
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishReceived(ctx, m); err != nil {
			uc.logger.Warn("Failed to publish contact event", zap.String("message_id", m.ID.String()), zap.Error(err))
		}
	}

	return &SubmitContactOutput{Message: m}, nil
}
