package message

import (
	"context"
	"errors"
	"fmt"
	"time"

	messageRepo "medicore/database/repository/message"
	"medicore/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Message failure taxonomy.
var (
	ErrValidation      = errors.New("all fields are required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrMessageNotFound = errors.New("message not found")
	ErrNoMessages      = errors.New("no messages found")
)

// MessageService handles contact messages from site visitors and the admin
// workflow around them.
type MessageService interface {
	Create(ctx context.Context, name, email, body string) (*models.Message, error)
	GetByID(ctx context.Context, id string) (*models.Message, error)
	GetAll(ctx context.Context) ([]models.Message, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Message, error)
	Respond(ctx context.Context, id, response string) (*models.Message, error)
	Delete(ctx context.Context, id string) error
}

// DefaultMessageService is the production MessageService.
type DefaultMessageService struct {
	Repo messageRepo.MessageRepository
}

// Create records a new contact message in the pending state.
func (s *DefaultMessageService) Create(ctx context.Context, name, email, body string) (*models.Message, error) {
	if name == "" || email == "" || body == "" {
		return nil, ErrValidation
	}
	now := time.Now()
	msg := &models.Message{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Message:   body,
		Status:    models.MessageStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// GetByID fetches a single message.
func (s *DefaultMessageService) GetByID(ctx context.Context, id string) (*models.Message, error) {
	msg, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to fetch message %s: %w", id, err)
	}
	return msg, nil
}

// GetAll lists messages newest first.
func (s *DefaultMessageService) GetAll(ctx context.Context) ([]models.Message, error) {
	msgs, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	if len(msgs) == 0 {
		return nil, ErrNoMessages
	}
	return msgs, nil
}

// UpdateStatus moves a message through the pending/read/resolved workflow.
func (s *DefaultMessageService) UpdateStatus(ctx context.Context, id, status string) (*models.Message, error) {
	if !models.IsValidMessageStatus(status) {
		return nil, ErrInvalidStatus
	}
	msg, err := s.Repo.UpdateFields(ctx, id, bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to update message %s: %w", id, err)
	}
	return msg, nil
}

// Respond stores an admin reply and marks the message resolved.
func (s *DefaultMessageService) Respond(ctx context.Context, id, response string) (*models.Message, error) {
	if response == "" {
		return nil, ErrValidation
	}
	now := time.Now()
	msg, err := s.Repo.UpdateFields(ctx, id, bson.M{
		"response":     response,
		"responseDate": now,
		"status":       models.MessageStatusResolved,
		"updatedAt":    now,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to respond to message %s: %w", id, err)
	}
	return msg, nil
}

// Delete removes a message.
func (s *DefaultMessageService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to delete message %s: %w", id, err)
	}
	return nil
}
