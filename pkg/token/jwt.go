// Package token 提供了会话 Cookie 所用 JWT 的签发与校验。
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionManager 负责会话 token 的签发和验证。
type SessionManager struct {
	secretKey []byte
	ttl       time.Duration
}

// SessionClaims 在 JWT 中携带会话标识。
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewSessionManager 创建一个新的 SessionManager 实例。
// ttlHours: token 的有效期（小时）。
func NewSessionManager(secret string, ttlHours int) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secret),
		ttl:       time.Hour * time.Duration(ttlHours),
	}
}

// TTL 返回 token 的有效期，供 Cookie 的 MaxAge 使用。
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue 为给定的会话标识签发一个 HS256 token。
func (m *SessionManager) Issue(sessionID string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify 校验 token 并返回其中的会话信息。
// 签名不匹配、已过期或缺少会话标识时返回错误。
func (m *SessionManager) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// NewSessionID 生成形如 session_20240101_120000_1a2b3c4d 的会话标识。
func NewSessionID(now time.Time) string {
	return fmt.Sprintf("session_%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8])
}
