package model

import "time"

// Session 对应于 'sessions' 表，记录浏览器会话的创建与最近活跃时间。
type Session struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"sessionId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
}

func (Session) TableName() string {
	return "sessions"
}
