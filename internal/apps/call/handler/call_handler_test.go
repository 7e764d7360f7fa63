package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	authService "second-brain-api/internal/apps/auth/service"
	"second-brain-api/internal/apps/call/models"
	"second-brain-api/internal/common/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// fakeCallService returns scripted results
type fakeCallService struct {
	token      string
	twiml      string
	outgoing   *models.OutgoingCallResponse
	history    []models.CallResponse
	statusSIDs []string
}

func (f *fakeCallService) VoiceToken(userID uint) (string, error) {
	return f.token, nil
}

func (f *fakeCallService) OutgoingCall(userID uint, phoneNumber string) (*models.OutgoingCallResponse, error) {
	return f.outgoing, nil
}

func (f *fakeCallService) IncomingCall(from, to, callSID string) (string, error) {
	return f.twiml, nil
}

func (f *fakeCallService) CallTwiML(userIdentity string) (string, error) {
	return f.twiml, nil
}

func (f *fakeCallService) StatusCallback(callSID, callStatus string, duration *int) error {
	f.statusSIDs = append(f.statusSIDs, callSID)
	return nil
}

func (f *fakeCallService) History(userID uint) ([]models.CallResponse, error) {
	return f.history, nil
}

func setupRouter(svc *fakeCallService, tokens authService.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	RegisterCallRoutes(api, NewCallHandler(svc), middleware.RequireAuth(tokens))
	return router
}

func bearer(t *testing.T, tokens authService.TokenService, userID uint) string {
	t.Helper()
	token, err := tokens.IssueAccessToken(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestVoiceToken(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeCallService{token: "voice-token"}, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/calls/token", nil)
	req.Header.Set("Authorization", bearer(t, tokens, 42))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "voice-token", gjson.Get(w.Body.String(), "token").String())
}

func TestVoiceToken_NoAuth(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeCallService{}, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/calls/token", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIncomingCall_ReturnsXML(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeCallService{twiml: "<Response></Response>"}, tokens)

	form := url.Values{}
	form.Set("From", "+15551234567")
	form.Set("To", "+15559990000")
	form.Set("CallSid", "CA123")

	req := httptest.NewRequest(http.MethodPost, "/api/calls/incoming", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/xml")
	assert.Equal(t, "<Response></Response>", w.Body.String())
}

func TestCallTwiML_ReturnsXML(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeCallService{twiml: "<Response></Response>"}, tokens)

	req := httptest.NewRequest(http.MethodPost, "/api/calls/twiml/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/xml")
	assert.Equal(t, "<Response></Response>", w.Body.String())
}

func TestOpenAIStream_Registered(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeCallService{}, tokens)

	req := httptest.NewRequest(http.MethodPost, "/api/calls/openai-stream/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OpenAI stream endpoint", gjson.Get(w.Body.String(), "message").String())
}

func TestStatusCallback(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	svc := &fakeCallService{}
	router := setupRouter(svc, tokens)

	form := url.Values{}
	form.Set("CallSid", "CA123")
	form.Set("CallStatus", "completed")
	form.Set("CallDuration", "120")

	req := httptest.NewRequest(http.MethodPost, "/api/calls/status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"CA123"}, svc.statusSIDs)
}

func TestOutgoingCall(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeCallService{
		outgoing: &models.OutgoingCallResponse{Success: true, CallSID: "CA123", Status: "queued"},
	}, tokens)

	req := httptest.NewRequest(http.MethodPost, "/api/calls/outgoing", strings.NewReader(`{"phoneNumber":"5551234567"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, 42))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CA123", gjson.Get(w.Body.String(), "callSid").String())
}

func TestOutgoingCall_MissingPhone(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeCallService{}, tokens)

	req := httptest.NewRequest(http.MethodPost, "/api/calls/outgoing", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, 42))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistory(t *testing.T) {
	tokens := authService.NewTokenService("test-secret", time.Hour)
	router := setupRouter(&fakeCallService{
		history: []models.CallResponse{{ID: 1, Status: "completed", Type: "incoming"}},
	}, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/calls/history", nil)
	req.Header.Set("Authorization", bearer(t, tokens, 42))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), gjson.Get(w.Body.String(), "calls.#").Int())
}
