package middleware

import (
	"time"

	"github.com/naludev/cohabitdb/model"
	"github.com/naludev/cohabitdb/usecase"
	"github.com/naludev/cohabitdb/utils"

	"github.com/gin-gonic/gin"
)

// SessionDuration bounds a login session record; the JWT's own expiry
// is what actually gates requests.
const SessionDuration = 24 * time.Hour

// CreateSession records the device the user just logged in from.
func CreateSession(c *gin.Context, userID string, sessions usecase.SessionStore) error {
	now := time.Now()
	session := &model.Session{
		SessionID:      utils.NewID(),
		UserID:         userID,
		DeviceInfo:     utils.DescribeUserAgent(c.Request.UserAgent()),
		IPAddress:      c.ClientIP(),
		CreatedAt:      now,
		ExpiresAt:      now.Add(SessionDuration),
		LastActivityAt: now,
		IsActive:       true,
	}

	return sessions.CreateSession(c.Request.Context(), session)
}
