package service

import (
	"context"
	"fmt"
	"time"

	"study-assistant/internal/repository"
)

// SessionService 维护会话表中的活跃时间。
type SessionService interface {
	Touch(ctx context.Context, sessionID string) error
}

type sessionService struct {
	repo repository.SessionRepository
	now  func() time.Time
}

// NewSessionService 创建一个新的 SessionService 实例。
func NewSessionService(repo repository.SessionRepository) SessionService {
	return &sessionService{repo: repo, now: time.Now}
}

func (s *sessionService) Touch(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.repo.Touch(ctx, sessionID, s.now()); err != nil {
		return fmt.Errorf("failed to touch session %s: %w", sessionID, err)
	}
	return nil
}
