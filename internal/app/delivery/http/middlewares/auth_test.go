package middlewares

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]string
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionService) ResolveSession(ctx context.Context, sessionID string) (string, error) {
	data, ok := f.sessions[sessionID]
	if !ok {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return data, nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func TestAuthenticate(t *testing.T) {
	secret := "test-secret"
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		SessionService: &fakeSessionService{sessions: map[string]string{"sess-1": `{"session_id":"sess-1","mobile":"919000000001"}`}},
		InternalConfig: &config.InternalConfig{JWT: config.JWT{Secret: secret, ExpTimeInHour: 1}},
	}

	protected := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		assert.True(t, ok)
		assert.Contains(t, sessionData, "919000000001")
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid token resolves the session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/workers/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing header rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/workers/profile", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired session rejected", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-gone", secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/workers/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Tampered token rejected", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", "other-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/workers/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
