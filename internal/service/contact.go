package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/YusovID/pangea-backend/internal/repository"
	"github.com/google/uuid"
)

type ContactService interface {
	Submit(ctx context.Context, name, email, subject, message string) error
}

type ContactServiceImpl struct {
	log  *slog.Logger
	repo repository.ContactRepository
	now  func() time.Time
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository) *ContactServiceImpl {
	return &ContactServiceImpl{log: log, repo: repo, now: utcNow}
}

func (s *ContactServiceImpl) Submit(ctx context.Context, name, email, subject, message string) error {
	const op = "internal.service.contact.Submit"

	m := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: s.now(),
	}

	if err := s.repo.CreateContactMessage(ctx, m); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("contact message received", slog.String("op", op), slog.String("email", email), slog.String("subject", subject))

	return nil
}
