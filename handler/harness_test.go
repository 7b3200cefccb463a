package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naludev/cohabitdb/middleware"
	"github.com/naludev/cohabitdb/services"
	"github.com/naludev/cohabitdb/usecase"
	"github.com/naludev/cohabitdb/utils"
)

type testApp struct {
	users         *memUsers
	groups        *memGroups
	tasks         *memTasks
	calendars     *memCalendars
	notifications *memNotifications
	sessions      *memSessions

	userSvc  *usecase.UserService
	groupSvc *usecase.GroupService
	taskSvc  *usecase.TaskService

	router *gin.Engine
}

type memRevoker struct {
	revoked map[string]bool
}

func (m *memRevoker) Revoke(token string, _ time.Time) error {
	if m.revoked == nil {
		m.revoked = make(map[string]bool)
	}
	m.revoked[token] = true
	return nil
}

func (m *memRevoker) IsRevoked(token string) bool {
	return m.revoked[token]
}

// newTestApp wires the real services and handlers over in-memory
// stores, with the same route shapes the server registers.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("GO_ENV", "test")
	services.InitJWT()
	utils.InitValidator()

	services.Revoker = &memRevoker{}
	t.Cleanup(func() { services.Revoker = nil })

	app := &testApp{
		users:         newMemUsers(),
		groups:        newMemGroups(),
		tasks:         newMemTasks(),
		calendars:     newMemCalendars(),
		notifications: newMemNotifications(),
		sessions:      &memSessions{},
	}

	app.userSvc = usecase.NewUserService(app.users)
	app.groupSvc = usecase.NewGroupService(app.groups, app.users, app.calendars)
	app.taskSvc = usecase.NewTaskService(app.tasks, app.groups, app.calendars)
	notificationSvc := usecase.NewNotificationService(app.notifications)
	calendarSvc := usecase.NewCalendarService(app.calendars)

	userHandler := NewUserHandler(app.userSvc)
	sessionHandler := NewSessionHandler(app.userSvc, notificationSvc, app.sessions)
	groupHandler := NewGroupHandler(app.groupSvc)
	taskHandler := NewTaskHandler(app.taskSvc, app.userSvc)
	calendarHandler := NewCalendarHandler(calendarSvc)
	notificationHandler := NewNotificationHandler(notificationSvc)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/users", userHandler.Register)
	api.POST("/login", sessionHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.POST("/logout", sessionHandler.Logout)
	protected.GET("/session/status", sessionHandler.SessionStatus)
	protected.GET("/users/:id", userHandler.GetUserByID)
	protected.GET("/user/:assignedTo", taskHandler.GetAssignedUser)
	protected.POST("/groups", groupHandler.CreateGroup)
	protected.GET("/groups", groupHandler.GetAllGroups)
	protected.GET("/groups/:id", groupHandler.GetGroupByID)
	protected.PUT("/groups/:id", groupHandler.UpdateGroup)
	protected.DELETE("/groups/:id", groupHandler.DeleteGroup)
	protected.POST("/groups/:id/users", groupHandler.AddUserToGroup)
	protected.POST("/groups/:id/users/email", groupHandler.AddUserToGroupByEmail)
	protected.DELETE("/groups/:id/users/:userId", groupHandler.RemoveUserFromGroup)
	protected.GET("/groups/user/:userId", groupHandler.GetGroupsByUserID)
	protected.POST("/groups/users", groupHandler.GetUsersByIDs)
	protected.POST("/tasks", taskHandler.CreateTask)
	protected.GET("/tasks", taskHandler.GetAllTasks)
	protected.GET("/tasks/:id", taskHandler.GetTaskByID)
	protected.PUT("/tasks/:id", taskHandler.UpdateTask)
	protected.PUT("/tasks/:id/status", taskHandler.UpdateTaskStatus)
	protected.DELETE("/tasks/:id", taskHandler.DeleteTask)
	protected.POST("/calendars", calendarHandler.CreateCalendar)
	protected.GET("/calendars/:id", calendarHandler.GetCalendarByID)
	protected.POST("/notifications", notificationHandler.CreateNotification)
	protected.GET("/notifications/:id", notificationHandler.GetAllNotifications)
	protected.GET("/notifications/:id/:notificationId", notificationHandler.GetNotificationByID)
	protected.PUT("/notifications/:id/:notificationId/read", notificationHandler.MarkNotificationAsRead)

	app.router = router
	return app
}

// request performs an HTTP call against the app router. body is
// JSON-encoded when non-nil; token, when set, goes in the bearer
// header.
func (app *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response %q: %v", w.Body, err)
	}
	return decoded
}

// registerAndLogin creates an account and returns its id and a live
// token.
func (app *testApp) registerAndLogin(t *testing.T, email, username string) (string, string) {
	t.Helper()
	w := app.request(t, "POST", "/api/users", "", map[string]string{
		"email":    email,
		"password": "secret42",
		"username": username,
		"name":     "Test",
		"lastname": "User",
	})
	if w.Code != 201 {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body)
	}
	userID, _ := decodeBody(t, w)["id"].(string)

	w = app.request(t, "POST", "/api/login", "", map[string]string{
		"email":    email,
		"password": "secret42",
	})
	if w.Code != 200 {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body)
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatal("login response has no token")
	}
	return userID, token
}
