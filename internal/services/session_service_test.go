package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/souqplus/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.Default()
}

func testUser() *models.User {
	return &models.User{
		ID:         uuid.NewSHA1(userNamespace, []byte("ahmed@example.com")),
		Email:      "ahmed@example.com",
		FullName:   "Ahmed Al-Rashid",
		IsVerified: true,
		JoinedDate: time.Now(),
	}
}

// failingKV rejects writes and reads so the atomicity paths can be
// exercised.
type failingKV struct {
	setErr    error
	getErr    error
	removeErr error
	inner     *models.MemoryKV
}

func (f *failingKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.inner.Get(ctx, key)
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.inner.Set(ctx, key, value)
}

func (f *failingKV) Remove(ctx context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.inner.Remove(ctx, key)
}

func TestLoginPersistsThenAuthenticates(t *testing.T) {
	kv := models.NewMemoryKV()
	s := NewSessionService(kv, testLogger())
	user := testUser()

	err := s.Login(context.Background(), user)
	require.NoError(t, err)

	assert.True(t, s.IsAuthenticated(user.ID.String()))

	// The durable record exists under the per-user key.
	_, ok, err := kv.Get(context.Background(), models.UserDataKey+":"+user.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoginFailedWriteLeavesStateUntouched(t *testing.T) {
	kv := &failingKV{setErr: fmt.Errorf("disk full"), inner: models.NewMemoryKV()}
	s := NewSessionService(kv, testLogger())
	user := testUser()

	err := s.Login(context.Background(), user)
	require.Error(t, err)

	// A failed persistence write must not flip the in-memory state.
	assert.False(t, s.IsAuthenticated(user.ID.String()))

	_, found, err := s.Restore(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRestoreAcrossRestart(t *testing.T) {
	kv := models.NewMemoryKV()
	user := testUser()

	first := NewSessionService(kv, testLogger())
	require.NoError(t, first.Login(context.Background(), user))

	// A fresh service over the same storage simulates a cold start.
	second := NewSessionService(kv, testLogger())
	assert.False(t, second.IsAuthenticated(user.ID.String()))

	restored, found, err := second.Restore(context.Background(), user.ID.String())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, user.ID, restored.ID)
	assert.Equal(t, user.Email, restored.Email)
	assert.True(t, second.IsAuthenticated(user.ID.String()))
}

func TestRestoreMalformedRecordFailsSafe(t *testing.T) {
	kv := models.NewMemoryKV()
	user := testUser()
	key := models.UserDataKey + ":" + user.ID.String()
	require.NoError(t, kv.Set(context.Background(), key, "{not valid json"))

	s := NewSessionService(kv, testLogger())
	restored, found, err := s.Restore(context.Background(), user.ID.String())

	assert.Error(t, err)
	assert.False(t, found)
	assert.Nil(t, restored)
	assert.False(t, s.IsAuthenticated(user.ID.String()))
}

func TestRestoreStorageErrorFailsSafe(t *testing.T) {
	kv := &failingKV{getErr: fmt.Errorf("connection refused"), inner: models.NewMemoryKV()}
	s := NewSessionService(kv, testLogger())

	restored, found, err := s.Restore(context.Background(), uuid.NewString())
	assert.Error(t, err)
	assert.False(t, found)
	assert.Nil(t, restored)
}

func TestRestoreMissingRecord(t *testing.T) {
	s := NewSessionService(models.NewMemoryKV(), testLogger())

	restored, found, err := s.Restore(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, restored)
}

func TestLogoutClearsSessionAndStorage(t *testing.T) {
	kv := models.NewMemoryKV()
	s := NewSessionService(kv, testLogger())
	user := testUser()
	require.NoError(t, s.Login(context.Background(), user))

	require.NoError(t, s.Logout(context.Background(), user.ID.String()))

	assert.False(t, s.IsAuthenticated(user.ID.String()))
	_, ok, err := kv.Get(context.Background(), models.UserDataKey+":"+user.ID.String())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogoutClearsMemoryEvenWhenRemovalFails(t *testing.T) {
	kv := &failingKV{removeErr: fmt.Errorf("connection refused"), inner: models.NewMemoryKV()}
	s := NewSessionService(kv, testLogger())
	user := testUser()
	require.NoError(t, s.Login(context.Background(), user))

	err := s.Logout(context.Background(), user.ID.String())
	assert.Error(t, err)

	// The session must not stay authenticated just because storage broke.
	assert.False(t, s.IsAuthenticated(user.ID.String()))
}
