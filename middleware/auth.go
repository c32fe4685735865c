package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/insights-dashboard/session"
	"github.com/vnkhanh/insights-dashboard/utils"
)

const (
	CtxSession   = "session"
	CtxAuthToken = "authToken"
)

// AuthSSO đọc cookie SSO, xác minh JWT, dựng session cho request và inject vào context.
func AuthSSO(cookieName, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication cookie"})
			return
		}

		claims, err := utils.VerifyToken(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		sess := session.FromIdentity(claims.WebLogin, claims.Groups)
		if !sess.CheckSession() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has no weblogin"})
			return
		}

		c.Set(CtxSession, sess)
		c.Set(CtxAuthToken, raw)
		c.Next()
	}
}

// SessionFrom trả về session của request, hoặc một session rỗng nếu chưa xác thực.
func SessionFrom(c *gin.Context) *session.Store {
	if v, ok := c.Get(CtxSession); ok {
		if s, ok := v.(*session.Store); ok {
			return s
		}
	}
	return session.New()
}

func AuthTokenFrom(c *gin.Context) string {
	return c.GetString(CtxAuthToken)
}
