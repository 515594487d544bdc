package middleware

import (
	"RestAPIFurb/internal/auth"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// verifier поверх TokenManager, как UserService в проде
type tmVerifier struct{ tm *auth.TokenManager }

func (v tmVerifier) VerifyToken(token string) (*auth.Claims, error) { return v.tm.Verify(token) }

// next-хендлер отвечает 200 и username из claims
func claimsEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaimsFromContext(r.Context())
		if !ok {
			t.Fatalf("claims must be in context")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(c.Username))
	})
}

// Тест: валидный Bearer-токен: claims попадают в контекст
func TestWithAuth_ValidBearerSetsClaims(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Minute)
	token, err := tm.Issue(77, "joao")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	h := WithAuth(tmVerifier{tm})(claimsEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rr.Code)
	}
	if rr.Body.String() != "joao" {
		t.Fatalf("unexpected body: %q", rr.Body.String())
	}
}

// Тест: без заголовка: 401 и next не вызывается
func TestWithAuth_NoHeader(t *testing.T) {
	tm := auth.NewTokenManager("any-secret", time.Minute)
	h := WithAuth(tmVerifier{tm})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next must not be called without token")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Token não fornecido") {
		t.Fatalf("unexpected body: %q", rr.Body.String())
	}
}

// Тест: токен подписан другим секретом: 401
func TestWithAuth_InvalidToken(t *testing.T) {
	token, _ := auth.NewTokenManager("secret-A", time.Minute).Issue(5, "x")

	h := WithAuth(tmVerifier{auth.NewTokenManager("secret-B", time.Minute)})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next must not be called with invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Token inválido") {
		t.Fatalf("unexpected body: %q", rr.Body.String())
	}
}

func Test_bearerToken(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"Bearer":          "",
		"Basic abc":       "",
		"Bearer abc":      "abc",
		"bearer  abc ":    "abc",
		"Token abcdefghi": "",
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		if got := bearerToken(req); got != want {
			t.Fatalf("header %q: want %q, got %q", header, want, got)
		}
	}
}
