// Package model 包含了应用的数据模型定义。
package model

import "time"

// ChatMessage 代表缓存在 Redis 中的单条对话消息。
type ChatMessage struct {
	Role      string    `json:"role"` // "user" 或 "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation 代表一次问答交互，只追加、不修改。
type Conversation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SessionID string `gorm:"type:varchar(100);index;not null" json:"sessionId"`
	Question  string `gorm:"type:text;not null" json:"question"`
	Answer    string `gorm:"type:text;not null" json:"answer"`
	// Subject 为空表示未识别出学科。
	Subject    *string   `gorm:"type:varchar(50)" json:"subject"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// Messages 把一次问答展开为 user/assistant 两条消息。
func (c Conversation) Messages() []ChatMessage {
	return []ChatMessage{
		{Role: "user", Content: c.Question, Timestamp: c.CreatedAt},
		{Role: "assistant", Content: c.Answer, Timestamp: c.CreatedAt},
	}
}

// AskResult 是 /api/ask 的响应体。
type AskResult struct {
	Answer          string  `json:"answer"`
	DetectedSubject *string `json:"detected_subject"`
	Confidence      float64 `json:"confidence"`
}
