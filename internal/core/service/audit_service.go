package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/smatech/auth-service/internal/core/domain"
	"github.com/smatech/auth-service/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists events to the audit
// repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event.
func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.InsertEvent(ctx, &event); err != nil {
		return fmt.Errorf("record auth event: %w", err)
	}

	s.log.Debug().
		Str("kind", string(event.Kind)).
		Str("email", event.Email).
		Msg("auth event recorded")

	return nil
}
