package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/fausse-reservations/utils"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(ContextUserID),
			"role":    c.GetString(ContextRole),
		})
	})
	return r
}

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	now := time.Now()

	assert.True(t, rl.allow("1.1.1.1", now))
	assert.True(t, rl.allow("1.1.1.1", now))
	assert.False(t, rl.allow("1.1.1.1", now))
	assert.True(t, rl.allow("2.2.2.2", now))

	// Outside the window the earlier requests no longer count.
	assert.True(t, rl.allow("1.1.1.1", now.Add(2*time.Minute)))
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(5, time.Second)
	now := time.Now()
	rl.allow("1.1.1.1", now)
	rl.allow("2.2.2.2", now.Add(5*time.Second))

	rl.Sweep(now.Add(5 * time.Second))
	assert.Equal(t, 1, rl.clients())
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(NewRateLimiter(1, time.Minute).RateLimit())

	assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)
	w := get(r, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestLoginRateLimiter(t *testing.T) {
	r := newEngine(NewLoginRateLimiter(time.Hour, 2).Limit())

	assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)
	assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/ping", nil).Code)
}

func TestLoginRateLimiterSweep(t *testing.T) {
	l := NewLoginRateLimiter(time.Minute, 2)
	now := time.Now()

	l.limiter("1.1.1.1")
	require.True(t, l.limiter("2.2.2.2").AllowN(now, 2))
	require.Equal(t, 2, l.clients())

	// The idle client is full again and forgotten; the other is still limited.
	l.Sweep(now)
	assert.Equal(t, 1, l.clients())
	assert.False(t, l.limiter("2.2.2.2").AllowN(now, 1))

	l.Sweep(now.Add(5 * time.Minute))
	assert.Equal(t, 0, l.clients())
}

func TestStaffAuth(t *testing.T) {
	secret := []byte("test-secret")
	r := newEngine(StaffAuth(secret), RequireRole("staff"))

	token, err := utils.GenerateToken(secret, time.Hour, 3, "staff")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/ping", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/ping", map[string]string{"Authorization": token}).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/ping", map[string]string{"Authorization": "Bearer garbage"}).Code)

	w := get(r, "/ping", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"staff"`)

	assert.Equal(t, http.StatusOK, get(r, "/ping?token="+token, nil).Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	secret := []byte("test-secret")
	r := newEngine(StaffAuth(secret), RequireRole("manager"))

	staff, err := utils.GenerateToken(secret, time.Hour, 3, "staff")
	require.NoError(t, err)
	admin, err := utils.GenerateToken(secret, time.Hour, 1, "admin")
	require.NoError(t, err)

	w := get(r, "/ping", map[string]string{"Authorization": "Bearer " + staff})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"role \"staff\" may not access this resource"}`, w.Body.String())
	assert.Equal(t, http.StatusOK, get(r, "/ping", map[string]string{"Authorization": "Bearer " + admin}).Code)
}

func TestRequireRoleWithoutAuth(t *testing.T) {
	r := newEngine(RequireRole("staff"))

	w := get(r, "/ping", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := newEngine(CORSMiddlewares("https://fausse.test"))
	r.OPTIONS("/ping", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://fausse.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggerMiddlewareSetsRequestID(t *testing.T) {
	r := newEngine(LoggerMiddleware())

	w := get(r, "/ping", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = get(r, "/ping", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestSecurityHeaders(t *testing.T) {
	w := get(newEngine(SecurityHeaders(false)), "/ping", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	w = get(newEngine(SecurityHeaders(true)), "/ping", nil)
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
