package handler

import (
	"errors"
	"log/slog"

	"github.com/naludev/cohabitdb/dto"
	"github.com/naludev/cohabitdb/middleware"
	"github.com/naludev/cohabitdb/services"
	"github.com/naludev/cohabitdb/usecase"
	"github.com/naludev/cohabitdb/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	users         *usecase.UserService
	notifications *usecase.NotificationService
	sessions      usecase.SessionStore
}

func NewSessionHandler(users *usecase.UserService, notifications *usecase.NotificationService, sessions usecase.SessionStore) *SessionHandler {
	return &SessionHandler{users: users, notifications: notifications, sessions: sessions}
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the identical response so the endpoint cannot be
// used to enumerate accounts.
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request")
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.TrackAuthAttempt("failure", "login")
			utils.BadRequest(c, "Invalid email or password")
			return
		}
		utils.TrackError("auth", "user_lookup")
		utils.InternalError(c, "Server error")
		return
	}

	if req.ExpoPushToken != "" {
		if err := h.users.UpdatePushToken(ctx, user.UserID, req.ExpoPushToken); err != nil {
			utils.TrackError("auth", "push_token_update")
			utils.InternalError(c, "Error saving notification token")
			return
		}
	}

	if _, err := h.notifications.Create(ctx, user.UserID, "info", "User logged in"); err != nil {
		// the login itself succeeded; a lost login notification is not
		// worth failing the request over
		slog.Warn("failed to record login notification", "user_id", user.UserID, "error", err)
	}

	unread, err := h.notifications.UnreadForUser(ctx, user.UserID)
	if err != nil {
		utils.TrackError("auth", "unread_fetch")
		utils.InternalError(c, "Server error")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	if err := middleware.CreateSession(c, user.UserID, h.sessions); err != nil {
		slog.Warn("failed to record login session", "user_id", user.UserID, "error", err)
	}

	utils.TrackAuthAttempt("success", "login")

	utils.Success(c, gin.H{
		"token":               token,
		"userId":              user.UserID,
		"unreadNotifications": unread,
	})
}

// Logout adds the bearer token to the revocation set; the entry
// expires when the token itself would have.
func (h *SessionHandler) Logout(c *gin.Context) {
	token := middleware.ExtractBearerToken(c)
	if token != "" {
		if err := services.RevokeToken(token, services.TokenExpiry(token)); err != nil {
			utils.TrackError("auth", "token_revocation")
			utils.InternalError(c, "Failed to logout")
			return
		}
	}

	if userID, exists := c.Get("user_id"); exists {
		if err := h.sessions.EndUserSessions(c.Request.Context(), userID.(string)); err != nil {
			slog.Warn("failed to end session records", "user_id", userID, "error", err)
		}
	}

	utils.TrackAuthAttempt("success", "logout")
	utils.Success(c, gin.H{"message": "Logged out successfully"})
}

// SessionStatus confirms the caller's token passed the guard.
func (h *SessionHandler) SessionStatus(c *gin.Context) {
	if userID, exists := c.Get("user_id"); exists {
		if err := h.sessions.TouchUserSessions(c.Request.Context(), userID.(string)); err != nil {
			slog.Warn("failed to touch session records", "user_id", userID, "error", err)
		}
	}

	utils.Success(c, gin.H{"message": "User is logged in"})
}
