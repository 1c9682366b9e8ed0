// Package repository 提供了数据访问层的实现。
package repository

import (
	"context"

	"study-assistant/internal/model"

	"gorm.io/gorm"
)

// ConversationRepository 定义了问答记录的持久化操作。记录只追加，不更新也不删除。
type ConversationRepository interface {
	Create(ctx context.Context, conversation *model.Conversation) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]model.Conversation, error)
}

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository 创建一个新的 ConversationRepository 实例。
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// Create 插入一条问答记录。
func (r *conversationRepository) Create(ctx context.Context, conversation *model.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

// ListBySession 按时间倒序返回某个会话最近的问答记录。
func (r *conversationRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.Conversation, error) {
	var conversations []model.Conversation
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&conversations).Error
	return conversations, err
}
