package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrMessageRequired = errors.New("message is required")
)

// ContactMessage is append-only: creation is its only lifecycle event.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(m.Email) == "" {
		return ErrEmailRequired
	}
	if strings.TrimSpace(m.Message) == "" {
		return ErrMessageRequired
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, m *ContactMessage) error
}

// NotifyResult is the outcome of a single notification attempt. The gateway
// never returns an error: every transport, auth, or encoding failure is
// folded into NotifyFailed.
type NotifyResult int

const (
	NotifySent NotifyResult = iota
	NotifyFailed
	NotifyUnconfigured
)

func (r NotifyResult) String() string {
	switch r {
	case NotifySent:
		return "sent"
	case NotifyFailed:
		return "failed"
	case NotifyUnconfigured:
		return "unconfigured"
	default:
		return "unknown"
	}
}

// Notifier delivers the owner notification for a persisted message.
type Notifier interface {
	Notify(ctx context.Context, m *ContactMessage) NotifyResult
}

// EventPublisher emits a contact.message.received event. Best-effort, same
// isolation contract as Notifier.
type EventPublisher interface {
	PublishReceived(ctx context.Context, m *ContactMessage) error
}
