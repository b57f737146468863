package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/ticket-service/internal/config"
	"github.com/iliyamo/ticket-service/internal/utils"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"account_id": AccountID(c)})
}

func TestJWTAuth(t *testing.T) {
	tok, err := utils.NewAccessToken("secret", 9, 5)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid token", header: "Bearer " + tok.Token, status: http.StatusOK},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + tok.Token, status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", status: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, JWTAuth("secret")(okHandler)(c))
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"account_id":9}`, rec.Body.String())
				assert.Equal(t, int64(9), AccountID(c))
			}
		})
	}
}

func TestAccountID_Anonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Zero(t, AccountID(c))
}

func TestNewTokenBucket_PassThrough(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/tickets/purchase", nil), rec)

	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)
	require.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/tickets/purchase", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/tickets/purchase")

	cfg := config.RateLimitConfig{Prefix: "rl"}
	assert.Equal(t, "rl:account:anon", rateKey(cfg, c))

	c.Set(AccountIDKey, int64(12))
	assert.Equal(t, "rl:account:12", rateKey(cfg, c))

	cfg.KeyStrategy = "ip"
	assert.Equal(t, "rl:ip:10.0.0.1", rateKey(cfg, c))

	cfg.KeyStrategy = "account_route"
	assert.Equal(t, "rl:account:12:route:POST /v1/tickets/purchase", rateKey(cfg, c))

	cfg.KeyStrategy = "ip_account"
	assert.Equal(t, "rl:ip:10.0.0.1:account:12", rateKey(cfg, c))
}
