package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authService "second-brain-api/internal/apps/auth/service"
	"second-brain-api/internal/apps/reminder/models"
	"second-brain-api/internal/apps/reminder/service"
	"second-brain-api/internal/common/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// fakeReminderService returns scripted results and records calls
type fakeReminderService struct {
	created   *models.ReminderResponse
	listed    []models.ReminderResponse
	updated   *models.ReminderResponse
	err       error
	lastOwner uint
	deleted   []uint
}

func (f *fakeReminderService) CreateReminder(userID uint, req models.CreateReminderRequest) (*models.ReminderResponse, error) {
	f.lastOwner = userID
	return f.created, f.err
}

func (f *fakeReminderService) ListReminders(userID uint, status string) ([]models.ReminderResponse, error) {
	f.lastOwner = userID
	return f.listed, f.err
}

func (f *fakeReminderService) UpdateReminder(userID, id uint, req models.UpdateReminderRequest) (*models.ReminderResponse, error) {
	f.lastOwner = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.updated, nil
}

func (f *fakeReminderService) DeleteReminder(userID, id uint) error {
	f.lastOwner = userID
	f.deleted = append(f.deleted, id)
	return f.err
}

func setupRouter(svc service.ReminderService, tokens authService.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	RegisterReminderRoutes(api, NewReminderHandler(svc), middleware.RequireAuth(tokens))
	return router
}

func bearer(t *testing.T, tokens authService.TokenService, userID uint) string {
	t.Helper()
	pair, err := tokens.Issue(userID)
	require.NoError(t, err)
	return "Bearer " + pair.AccessToken
}

func TestCreateReminder(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	svc := &fakeReminderService{
		created: &models.ReminderResponse{ID: 7, Content: "Take medication", Status: models.ReminderStatusPending},
	}
	router := setupRouter(svc, tokens)

	body := `{"content":"Take medication","scheduledTime":"2026-09-01T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, 42))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "success").Bool())
	assert.Equal(t, int64(7), gjson.Get(w.Body.String(), "reminder.id").Int())
	assert.Equal(t, uint(42), svc.lastOwner)
}

func TestCreateReminderValidation(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeReminderService{}, tokens)

	// content present but scheduledTime missing
	req := httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(`{"content":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, 42))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRemindersRequiresAuth(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeReminderService{}, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/reminders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListReminders(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	svc := &fakeReminderService{
		listed: []models.ReminderResponse{
			{ID: 1, Content: "first", Status: models.ReminderStatusPending},
			{ID: 2, Content: "second", Status: models.ReminderStatusPending},
		},
	}
	router := setupRouter(svc, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/reminders?status=pending", nil)
	req.Header.Set("Authorization", bearer(t, tokens, 42))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	reminders := gjson.Get(w.Body.String(), "reminders")
	assert.Equal(t, 2, len(reminders.Array()))
	assert.Equal(t, "first", reminders.Array()[0].Get("content").String())
}

func TestUpdateReminderNotFound(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	svc := &fakeReminderService{err: service.ErrReminderNotFound}
	router := setupRouter(svc, tokens)

	req := httptest.NewRequest(http.MethodPatch, "/api/reminders/99", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, 42))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateReminderBadID(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeReminderService{}, tokens)

	req := httptest.NewRequest(http.MethodPatch, "/api/reminders/abc", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, 42))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteReminder(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	svc := &fakeReminderService{}
	router := setupRouter(svc, tokens)

	req := httptest.NewRequest(http.MethodDelete, "/api/reminders/5", nil)
	req.Header.Set("Authorization", bearer(t, tokens, 42))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.deleted, 1)
	assert.Equal(t, uint(5), svc.deleted[0])
}
