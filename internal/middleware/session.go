package middleware

import (
	"net/http"
	"time"

	"study-assistant/internal/service"
	"study-assistant/pkg/log"
	"study-assistant/pkg/token"

	"github.com/gin-gonic/gin"
)

// SessionIDKey 是会话标识在 gin.Context 中的键。
const SessionIDKey = "sessionID"

// Session 创建一个 Gin 中间件，从签名 Cookie 中恢复会话标识。
// Cookie 缺失、被篡改或已过期时签发新的会话，并刷新会话表的活跃时间。
func Session(manager *token.SessionManager, sessionService service.SessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		if raw, err := c.Cookie(cookieName); err == nil && raw != "" {
			if claims, err := manager.Verify(raw); err == nil {
				sessionID = claims.SessionID
			} else {
				log.Debugf("丢弃无效的会话 Cookie: %v", err)
			}
		}

		if sessionID == "" {
			newID := token.NewSessionID(time.Now())
			signed, err := manager.Issue(newID)
			if err != nil {
				// 签发失败时本次请求记在 default 会话下
				log.Error("签发会话 token 失败", err)
			} else {
				sessionID = newID
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(cookieName, signed, int(manager.TTL().Seconds()), "/", "", false, true)
			}
		}

		if sessionID != "" {
			if err := sessionService.Touch(c.Request.Context(), sessionID); err != nil {
				log.Errorw("更新会话活跃时间失败", "sessionID", sessionID, "error", err)
			}
			c.Set(SessionIDKey, sessionID)
		}
		c.Next()
	}
}

// SessionID 返回当前请求的会话标识，没有时返回 default。
func SessionID(c *gin.Context) string {
	if sessionID := c.GetString(SessionIDKey); sessionID != "" {
		return sessionID
	}
	return service.DefaultSessionID
}
