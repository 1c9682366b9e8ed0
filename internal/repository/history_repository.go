package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"study-assistant/internal/model"

	"github.com/go-redis/redis/v8"
)

const (
	historyMaxMessages = 20
	historyTTL         = 7 * 24 * time.Hour
)

// HistoryRepository 定义了会话近期消息缓存的操作接口。
type HistoryRepository interface {
	GetHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error)
	AppendHistory(ctx context.Context, sessionID string, messages ...model.ChatMessage) error
}

type redisHistoryRepository struct {
	redisClient *redis.Client
}

// NewHistoryRepository 创建一个基于 Redis 的 HistoryRepository 实例。
func NewHistoryRepository(redisClient *redis.Client) HistoryRepository {
	return &redisHistoryRepository{redisClient: redisClient}
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("session:%s:history", sessionID)
}

// GetHistory 从 Redis 列表读取会话的消息历史，没有记录时返回空切片。
func (r *redisHistoryRepository) GetHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	items, err := r.redisClient.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session history: %w", err)
	}
	messages := make([]model.ChatMessage, 0, len(items))
	for _, item := range items {
		var msg model.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session history: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// AppendHistory 在一个事务中执行 RPUSH、LTRIM 和 EXPIRE，只保留最近 20 条。
// 同一会话的并发追加不会互相覆盖。
func (r *redisHistoryRepository) AppendHistory(ctx context.Context, sessionID string, messages ...model.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(messages))
	for _, msg := range messages {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal session history: %w", err)
		}
		values = append(values, data)
	}

	key := historyKey(sessionID)
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		pipe.LTrim(ctx, key, -historyMaxMessages, -1)
		pipe.Expire(ctx, key, historyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append session history: %w", err)
	}
	return nil
}
