package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/souqplus/api/internal/middleware"
	"github.com/souqplus/api/internal/models"
	"github.com/souqplus/api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// brokenRemoveKV accepts writes but fails every removal.
type brokenRemoveKV struct {
	*models.MemoryKV
}

func (b *brokenRemoveKV) Remove(ctx context.Context, key string) error {
	return fmt.Errorf("connection refused")
}

func TestLogoutStorageFailureStillAnswersCleanly(t *testing.T) {
	kv := &brokenRemoveKV{MemoryKV: models.NewMemoryKV()}
	sessions := services.NewSessionService(kv, slog.Default())
	users := services.NewUserService(sessions, "test-secret")

	user, _, err := users.Login(context.Background(), "demo@souqplus.app", "password123")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ErrorHandler(slog.Default()))
	r.Use(func(c *gin.Context) {
		c.Set("user", user)
	})
	r.POST("/auth/logout", Logout(users))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r.ServeHTTP(w, req)

	// Logout degrades silently on a storage failure: a clean 200 with a
	// single JSON document, never a second error body appended.
	assert.Equal(t, http.StatusOK, w.Code)
	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)

	// The session is gone regardless of the failed removal.
	assert.False(t, sessions.IsAuthenticated(user.ID.String()))
}

func TestLoginEndpoint(t *testing.T) {
	sessions := services.NewSessionService(models.NewMemoryKV(), slog.Default())
	users := services.NewUserService(sessions, "test-secret")

	r := gin.New()
	r.POST("/auth/login", Login(users))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		jsonBody(t, map[string]string{"email": "demo@souqplus.app", "password": "password123"}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string      `json:"access_token"`
			User        models.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.AccessToken)
	assert.True(t, sessions.IsAuthenticated(body.Data.User.ID.String()))
}

func TestLoginEndpointRejectsBadPayload(t *testing.T) {
	sessions := services.NewSessionService(models.NewMemoryKV(), slog.Default())
	users := services.NewUserService(sessions, "test-secret")

	r := gin.New()
	r.POST("/auth/login", Login(users))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		jsonBody(t, map[string]string{"email": "not-an-email", "password": "password123"}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
