// internal/adapters/in/http/middleware/middleware_test.go
package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdom "borgo/internal/domain/user"
)

func TestCORS_Preflight(t *testing.T) {
	h := CORS("https://borgo.example")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/shops", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://borgo.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_EmptyOriginFallsBackToWildcard(t *testing.T) {
	h := CORS("")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecover_AnswersWithJSON(t *testing.T) {
	h := Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestRecover_PanicTextWithQuotesStaysValidJSON(t *testing.T) {
	h := Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(`unexpected token "}" in input`)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])
	assert.Equal(t, `unexpected token "}" in input`, body["detail"])
}

func TestAuth_DisabledInjectsMerchant(t *testing.T) {
	m := &AuthMiddleware{Disabled: true}

	var got *userdom.User
	h := m.Handler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shops", nil))

	require.NotNil(t, got)
	assert.Equal(t, "esercente@example.com", got.Email)
	assert.True(t, got.CanManageShops())
}

func TestAuth_NoBearerPassesThroughAnonymous(t *testing.T) {
	m := &AuthMiddleware{FirebaseAuth: &FirebaseAuthClient{}}

	called := false
	h := m.Handler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := CurrentUser(r)
		assert.False(t, ok)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shops", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
