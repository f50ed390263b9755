package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
)

type fakeAuthenticator struct {
	userID    string
	sessionID string
	err       error
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, token string) (string, string, error) {
	return f.userID, f.sessionID, f.err
}

func newMiddlewareRouter(authenticator Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(authenticator))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c), "session_id": SessionID(c)})
	})
	return router
}

func TestMiddleware_ValidToken(t *testing.T) {
	router := newMiddlewareRouter(&fakeAuthenticator{userID: "user-1", sessionID: "session-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "session-1")
}

func TestMiddleware_MissingHeader(t *testing.T) {
	router := newMiddlewareRouter(&fakeAuthenticator{userID: "user-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_NotBearer(t *testing.T) {
	router := newMiddlewareRouter(&fakeAuthenticator{userID: "user-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_RejectedToken(t *testing.T) {
	router := newMiddlewareRouter(&fakeAuthenticator{err: domain.ErrUnauthenticated})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer expiredtoken")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
