package repository

import (
	"context"
	"time"

	"study-assistant/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository 定义了会话表的操作接口。
type SessionRepository interface {
	Touch(ctx context.Context, sessionID string, now time.Time) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository 创建一个新的 SessionRepository 实例。
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Touch 新会话插入一行，已有会话只刷新 last_active。
func (r *sessionRepository) Touch(ctx context.Context, sessionID string, now time.Time) error {
	session := model.Session{SessionID: sessionID, CreatedAt: now, LastActive: now}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"last_active": now}),
	}).Create(&session).Error
}
